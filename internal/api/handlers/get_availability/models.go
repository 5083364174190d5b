package get_availability

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP-модель одного слота сетки
type SlotResponse struct {
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	State            string  `json:"state"` // "free" | "occupied"
	Visibility       *string `json:"visibility,omitempty"`
	OwnerDisplayName *string `json:"ownerDisplayName,omitempty"`
}

// AvailabilityResponse HTTP-модель сетки доступности на дату
type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		item := SlotResponse{
			StartTime:        slot.StartTime.String(),
			EndTime:          slot.EndTime.String(),
			State:            string(slot.State),
			OwnerDisplayName: slot.OwnerDisplayName,
		}
		if slot.Visibility != nil {
			visibility := string(*slot.Visibility)
			item.Visibility = &visibility
		}
		slots = append(slots, item)
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
