package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	Contains(slotStart types.TimeString) bool
	IsElapsed(date time.Time, now time.Time, slotStart types.TimeString) bool
	SlotEnd(slotStart types.TimeString) (types.TimeString, error)
}

// ChangeFeed интерфейс канала уведомлений об изменениях
type ChangeFeed interface {
	Publish(date time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
