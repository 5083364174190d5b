package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования корта
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         SlotCatalog
	changeFeed      ChangeFeed
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalog SlotCatalog,
	changeFeed ChangeFeed,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		changeFeed:      changeFeed,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Занятость слота НЕ проверяется чтением перед записью: арбитраж гонки
// выполняет уникальное ограничение хранилища, проигравший получает
// ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, date=%s, time=%s, visibility=%s, recurrence=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.Visibility, req.Recurrence)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Время начала должно принадлежать сетке каталога
	if !uc.catalog.Contains(req.StartTime) {
		uc.logger.Warn("CreateReservation: time %s is not a catalog slot", req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	// 5. Слот на сегодня не должен быть уже начавшимся
	if uc.catalog.IsElapsed(req.Date, now, req.StartTime) {
		uc.logger.Warn("CreateReservation: slot %s on %s has already elapsed",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotInPast
	}

	endTime, err := uc.catalog.SlotEnd(req.StartTime)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to compute slot end for %s: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
	}

	pending := &domain.Reservation{
		UserID:     req.UserID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    endTime,
		Visibility: req.Visibility,
		Recurrence: req.Recurrence,
		Status:     domain.StatusActive,
	}

	// 6. Разворачиваем повторяемость в конкретные вхождения
	// (для weekly сохраняется только первое, см. expandOccurrences)
	occurrences := expandOccurrences(pending)

	var created *domain.Reservation
	for _, occurrence := range occurrences {
		created, err = uc.reservationRepo.Create(ctx, occurrence)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				// Проигранная гонка за слот - ожидаемый исход, не сбой
				uc.logger.Warn("CreateReservation: slot %s on %s already taken, user=%s lost the race",
					req.StartTime, req.Date.Format(domain.DateFormat), req.UserID)
				return nil, ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
	}

	// 7. Уведомляем зрителей этой даты
	uc.changeFeed.Publish(created.Date)

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", created.ID)

	return &Response{
		ID:         created.ID,
		UserID:     created.UserID,
		Date:       created.Date,
		StartTime:  created.StartTime,
		EndTime:    created.EndTime,
		Visibility: created.Visibility,
		Recurrence: created.Recurrence,
		Status:     created.Status,
		CreatedAt:  created.CreatedAt,
		UpdatedAt:  created.UpdatedAt,
	}, nil
}
