package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	reservationRepo ReservationRepository
	changeFeed      ChangeFeed
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	changeFeed ChangeFeed,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		changeFeed:      changeFeed,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только свое бронирование, администратор - любое.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, requesterID string, role domain.Role) (*domain.Reservation, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, requesterID)

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !res.IsOwnedBy(requesterID) && role != domain.RoleAdmin {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", requesterID, id)
		return nil, ErrAccessDenied
	}

	return res, nil
}

// ListByUser получает историю бронирований пользователя.
// Пользователь может запросить только собственную историю, администратор - любую.
func (s *Service) ListByUser(ctx context.Context, userID, requesterID string, role domain.Role) ([]*domain.Reservation, error) {
	s.logger.Info("ListByUser: fetching reservations for user=%s requested by user=%s", userID, requesterID)

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if userID != requesterID && role != domain.RoleAdmin {
		s.logger.Warn("ListByUser: access denied for user=%s to history of user=%s", requesterID, userID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: successfully fetched %d reservations for user=%s", len(reservations), userID)
	return reservations, nil
}

// ListAll получает бронирования с фильтрацией по периоду и владельцу.
// Доступно только администраторам.
func (s *Service) ListAll(ctx context.Context, filter domain.ReservationsFilter, role domain.Role) ([]*domain.Reservation, error) {
	s.logger.Info("ListAll: fetching reservations with filter")

	if role != domain.RoleAdmin {
		s.logger.Warn("ListAll: access denied, admin role required")
		return nil, ErrAccessDenied
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d reservations", len(reservations))
	return reservations, nil
}

// Cancel удаляет бронирование.
// Владелец отменяет свое бронирование, администратор - любое.
// После удаления зрители даты получают уведомление об изменении.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, requesterID string, role domain.Role) error {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%s", id, requesterID)

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	// Проверяем права доступа: владелец или администратор
	if !res.IsOwnedBy(requesterID) && role != domain.RoleAdmin {
		s.logger.Warn("Cancel: access denied for user=%s to cancel reservation id=%s", requesterID, id)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found during deletion", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Уведомляем зрителей даты об освободившемся слоте
	s.changeFeed.Publish(res.Date)

	s.logger.Info("Cancel: successfully cancelled reservation id=%s on %s %s",
		id, res.Date.Format(domain.DateFormat), res.StartTime)
	return nil
}

func (s *Service) getReservation(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("getReservation: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("getReservation: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return res, nil
}
