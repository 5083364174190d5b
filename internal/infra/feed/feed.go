package feed

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Handler обработчик события изменения бронирований на дату.
// Событие не несет данных: подписчик перечитывает доступность сам,
// поэтому пропущенное уведомление не ломает консистентность.
type Handler func()

type subscriber struct {
	id      int64
	handler Handler
}

// Feed внутрипроцессный fan-out изменений бронирований с ключом по дате.
// Публикация на одну дату не будит подписчиков других дат. Доставка
// best-effort, не более одного вызова обработчика на публикацию;
// уведомления одной даты доставляются в порядке публикаций.
type Feed struct {
	mu     sync.Mutex
	subs   map[string][]subscriber
	nextID int64
}

// New создает пустой feed
func New() *Feed {
	return &Feed{
		subs: make(map[string][]subscriber),
	}
}

// Subscribe регистрирует обработчик изменений на дату.
// Возвращает функцию отписки; повторный вызов отписки безопасен.
func (f *Feed) Subscribe(date time.Time, handler func()) func() {
	key := dateKey(date)

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.subs[key] = append(f.subs[key], subscriber{id: id, handler: handler})
	f.mu.Unlock()

	return func() {
		f.unsubscribe(key, id)
	}
}

// Publish уведомляет всех текущих подписчиков указанной даты.
// Обработчики вызываются синхронно в порядке подписки.
func (f *Feed) Publish(date time.Time) {
	key := dateKey(date)

	f.mu.Lock()
	current := make([]subscriber, len(f.subs[key]))
	copy(current, f.subs[key])
	f.mu.Unlock()

	for _, sub := range current {
		sub.handler()
	}
}

// Subscribers возвращает число подписчиков даты
func (f *Feed) Subscribers(date time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[dateKey(date)])
}

func (f *Feed) unsubscribe(key string, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subs[key]
	for i, sub := range subs {
		if sub.id == id {
			f.subs[key] = append(subs[:i], subs[i+1:]...)
			break
		}
	}

	if len(f.subs[key]) == 0 {
		delete(f.subs, key)
	}
}

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}
