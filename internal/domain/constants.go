package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default schedule values (один корт, фиксированное расписание)
const (
	DefaultOpenTime            = "08:00"
	DefaultCloseTime           = "23:00"
	DefaultSlotDurationMinutes = 60
)

// Role роль пользователя, приходит от внешнего identity-провайдера
type Role string

const (
	// RoleUser обычный пользователь
	RoleUser Role = "user"
	// RoleAdmin администратор, может удалять чужие бронирования
	RoleAdmin Role = "admin"
)
