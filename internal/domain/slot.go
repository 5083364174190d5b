package domain

import "github.com/m04kA/SMC-CourtBookingService/pkg/types"

// SlotState состояние слота на выбранную дату
type SlotState string

const (
	// SlotFree слот свободен для бронирования
	SlotFree SlotState = "free"
	// SlotOccupied слот занят активным бронированием
	SlotOccupied SlotState = "occupied"
)

// AvailabilitySlot слот расписания с состоянием занятости.
// Для занятого слота заполняется Visibility; имя владельца
// присутствует только у публичных бронирований.
type AvailabilitySlot struct {
	StartTime        types.TimeString
	EndTime          types.TimeString
	State            SlotState
	Visibility       *Visibility
	OwnerDisplayName *string
}

// IsFree возвращает true, если слот свободен
func (s *AvailabilitySlot) IsFree() bool {
	return s.State == SlotFree
}

// IsOccupied возвращает true, если слот занят
func (s *AvailabilitySlot) IsOccupied() bool {
	return s.State == SlotOccupied
}
