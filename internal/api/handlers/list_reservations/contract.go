package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type ReservationService interface {
	ListAll(ctx context.Context, filter domain.ReservationsFilter, role domain.Role) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
