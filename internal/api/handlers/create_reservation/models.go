package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date       string `json:"date"`       // "2025-06-01"
	StartTime  string `json:"startTime"`  // "10:00"
	Visibility string `json:"visibility"` // "public" | "private"
	Recurrence string `json:"recurrence"` // "one_time" | "weekly"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Visibility string `json:"visibility"`
	Recurrence string `json:"recurrence"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:     userID,
		Date:       date,
		StartTime:  startTime,
		Visibility: domain.Visibility(r.Visibility),
		Recurrence: domain.Recurrence(r.Recurrence),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID.String(),
		UserID:     resp.UserID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		Visibility: string(resp.Visibility),
		Recurrence: string(resp.Recurrence),
		Status:     string(resp.Status),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
