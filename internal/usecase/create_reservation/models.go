package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     string            // ID пользователя (непрозрачная строка от identity-провайдера)
	Date       time.Time         // Дата бронирования (без времени)
	StartTime  types.TimeString  // Время начала слота (например, "10:00")
	Visibility domain.Visibility // Видимость бронирования для других
	Recurrence domain.Recurrence // Признак еженедельного повторения
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         uuid.UUID
	UserID     string
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Visibility domain.Visibility
	Recurrence domain.Recurrence
	Status     domain.ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
