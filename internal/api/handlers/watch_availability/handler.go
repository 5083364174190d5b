package watch_availability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoStreaming = "потоковая передача не поддерживается"
	pingInterval   = 30 * time.Second
)

type Handler struct {
	changeFeed ChangeFeed
	logger     Logger
}

func NewHandler(changeFeed ChangeFeed, logger Logger) *Handler {
	return &Handler{
		changeFeed: changeFeed,
		logger:     logger,
	}
}

// Handle GET /api/v1/availability/{date}/watch
//
// SSE-поток изменений бронирований на дату. Событие не несет данных:
// по нему клиент перечитывает сетку доступности, поэтому потерянное
// при переполнении буфера событие ничего не ломает.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability/{date}/watch - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /availability/{date}/watch - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgNoStreaming)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Буфер на одно событие: подряд идущие публикации схлопываются,
	// клиент все равно перечитает актуальное состояние целиком
	events := make(chan struct{}, 1)
	unsubscribe := h.changeFeed.Subscribe(date, func() {
		select {
		case events <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	h.logger.Info("GET /availability/{date}/watch - Subscriber connected: date=%s", vars["date"])

	// Подтверждаем подключение
	fmt.Fprintf(w, ": connected %s\n\n", vars["date"])
	flusher.Flush()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /availability/{date}/watch - Subscriber disconnected: date=%s", vars["date"])
			return

		case <-events:
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", vars["date"])
			flusher.Flush()

		case <-ping.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
