package cancel_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type ReservationService interface {
	Cancel(ctx context.Context, id uuid.UUID, requesterID string, role domain.Role) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
