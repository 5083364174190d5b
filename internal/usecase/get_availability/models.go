package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на получение доступности слотов
type Request struct {
	Date time.Time // Дата, на которую запрашивается сетка слотов
}

// Response модель ответа с сеткой слотов на дату
type Response struct {
	Date  time.Time
	Slots []domain.AvailabilitySlot
}
