package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/retry"
)

// Параметры повторов чтения при временных сбоях хранилища.
// Чтение идемпотентно, поэтому повторять его безопасно.
const (
	listRetryAttempts = 3
	listRetryBackoff  = 100 * time.Millisecond
)

// UseCase use case для получения сетки доступности слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         SlotCatalog
	profileClient   ProfileClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog SlotCatalog,
	profileClient ProfileClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		profileClient:   profileClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит сетку слотов: перечисление каталога на дату, поверх
// которого накладываются активные бронирования из хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Перечисляем слоты каталога (для сегодняшней даты прошедшие
	// слоты уже отфильтрованы)
	slots := uc.catalog.Enumerate(req.Date, now)

	// 2. Читаем активные бронирования даты с ограниченными повторами
	var reservations []*domain.Reservation
	err := retry.Do(ctx, listRetryAttempts, listRetryBackoff, func() error {
		var listErr error
		reservations, listErr = uc.reservationRepo.ListByDate(ctx, req.Date)
		return listErr
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations for %s after %d attempts: %v",
			req.Date.Format(domain.DateFormat), listRetryAttempts, err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}

	// 3. Накладываем занятость на сетку
	overlaid, err := uc.overlayReservations(ctx, slots, reservations)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailability: %d slots for date=%s", len(overlaid), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: overlaid,
	}, nil
}
