package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Visibility видимость бронирования для других пользователей
type Visibility string

const (
	// VisibilityPublic имя владельца видно всем зрителям слота
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate зрители видят только факт занятости слота
	VisibilityPrivate Visibility = "private"
)

// IsValid проверяет, что значение видимости допустимо
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Recurrence признак повторяемости бронирования
type Recurrence string

const (
	// RecurrenceOneTime разовое бронирование
	RecurrenceOneTime Recurrence = "one_time"
	// RecurrenceWeekly еженедельное бронирование.
	// Хранится только первое вхождение, метка информационная (см. expandOccurrences)
	RecurrenceWeekly Recurrence = "weekly"
)

// IsValid проверяет, что значение повторяемости допустимо
func (r Recurrence) IsValid() bool {
	return r == RecurrenceOneTime || r == RecurrenceWeekly
}

// ReservationStatus статус жизненного цикла бронирования
type ReservationStatus string

const (
	// StatusActive действующее бронирование, занимает слот
	StatusActive ReservationStatus = "active"
)

// Reservation бронирование корта на один часовой слот.
// Пара (Date, StartTime) уникальна среди активных бронирований -
// это центральный инвариант системы, его обеспечивает БД.
type Reservation struct {
	ID         uuid.UUID
	UserID     string // внешний идентификатор аккаунта, непрозрачная строка
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Visibility Visibility
	Recurrence Recurrence
	Status     ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает слот
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsPublic возвращает true, если имя владельца можно показывать другим
func (r *Reservation) IsPublic() bool {
	return r.Visibility == VisibilityPublic
}

// IsOwnedBy проверяет, что бронирование принадлежит пользователю
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// ReservationsFilter фильтр для административной выборки бронирований
type ReservationsFilter struct {
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
	UserID    *string    // Фильтр по владельцу (опционально)
}
