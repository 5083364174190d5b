package watch_availability

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/infra/feed"
)

// Обработчик подписывается напрямую на feed
var _ ChangeFeed = (*feed.Feed)(nil)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// streamRecorder потокобезопасный ResponseWriter c поддержкой Flush:
// тело читается тестом, пока обработчик продолжает писать
type streamRecorder struct {
	mu     sync.Mutex
	status int
	header http.Header
	body   bytes.Buffer
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{header: make(http.Header)}
}

func (r *streamRecorder) Header() http.Header {
	return r.header
}

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.Write(p)
}

func (r *streamRecorder) WriteHeader(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) bodyString() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.String()
}

func (r *streamRecorder) code() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func TestHandle_StreamsChangeEvents(t *testing.T) {
	f := feed.New()
	h := NewHandler(f, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/2025-06-01/watch", nil).WithContext(ctx)
	req = mux.SetURLVars(req, map[string]string{"date": "2025-06-01"})

	rec := newStreamRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Handle(rec, req)
	}()

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.Eventually(t, func() bool {
		return f.Subscribers(date) == 1
	}, time.Second, 5*time.Millisecond)

	f.Publish(date)

	require.Eventually(t, func() bool {
		return strings.Contains(rec.bodyString(), "event: change")
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, http.StatusOK, rec.code())
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.bodyString(), ": connected 2025-06-01")
	assert.Equal(t, 0, f.Subscribers(date))
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(feed.New(), nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/yesterday/watch", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "yesterday"})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
