package feed

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	june1 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	june2 = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
)

func TestPublish_NotifiesSubscribersOfDate(t *testing.T) {
	f := New()

	calls := 0
	f.Subscribe(june1, func() { calls++ })

	f.Publish(june1)
	f.Publish(june1)

	assert.Equal(t, 2, calls)
}

func TestPublish_DoesNotCrossDates(t *testing.T) {
	f := New()

	var gotJune1, gotJune2 int
	f.Subscribe(june1, func() { gotJune1++ })
	f.Subscribe(june2, func() { gotJune2++ })

	f.Publish(june1)

	assert.Equal(t, 1, gotJune1)
	assert.Equal(t, 0, gotJune2)
}

func TestPublish_SameDayDifferentClockStillMatches(t *testing.T) {
	f := New()

	calls := 0
	f.Subscribe(june1, func() { calls++ })

	// Ключ - календарная дата, время суток не участвует
	f.Publish(time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, 1, calls)
}

func TestPublish_DeliversInSubscriptionOrder(t *testing.T) {
	f := New()

	var order []string
	f.Subscribe(june1, func() { order = append(order, "first") })
	f.Subscribe(june1, func() { order = append(order, "second") })
	f.Subscribe(june1, func() { order = append(order, "third") })

	f.Publish(june1)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestUnsubscribe(t *testing.T) {
	f := New()

	calls := 0
	unsubscribe := f.Subscribe(june1, func() { calls++ })

	f.Publish(june1)
	unsubscribe()
	f.Publish(june1)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, f.Subscribers(june1))

	// Повторная отписка безопасна
	unsubscribe()
}

func TestSubscribers(t *testing.T) {
	f := New()

	assert.Equal(t, 0, f.Subscribers(june1))

	f.Subscribe(june1, func() {})
	f.Subscribe(june1, func() {})
	f.Subscribe(june2, func() {})

	assert.Equal(t, 2, f.Subscribers(june1))
	assert.Equal(t, 1, f.Subscribers(june2))
}

func TestPublish_ConcurrentWithSubscribe(t *testing.T) {
	f := New()

	var mu sync.Mutex
	calls := 0
	f.Subscribe(june1, func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f.Publish(june1)
		}()
		go func() {
			defer wg.Done()
			unsubscribe := f.Subscribe(june2, func() {})
			unsubscribe()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, calls)
}
