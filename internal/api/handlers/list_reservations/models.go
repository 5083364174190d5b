package list_reservations

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// ReservationResponse HTTP-модель бронирования для административной выборки
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
}

// ReservationListResponse HTTP-модель списка бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// ParseFilter разбирает query-параметры start_date, end_date, user_id
func ParseFilter(query url.Values) (domain.ReservationsFilter, error) {
	var filter domain.ReservationsFilter

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &endDate
	}

	if raw := query.Get("user_id"); raw != "" {
		filter.UserID = &raw
	}

	return filter, nil
}

// FromDomainList конвертирует доменные бронирования в HTTP response
func FromDomainList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, ReservationResponse{
			ID:         res.ID.String(),
			UserID:     res.UserID,
			Date:       res.Date.Format(domain.DateFormat),
			StartTime:  res.StartTime.String(),
			EndTime:    res.EndTime.String(),
			Visibility: string(res.Visibility),
			Recurrence: string(res.Recurrence),
			Status:     string(res.Status),
			CreatedAt:  res.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
