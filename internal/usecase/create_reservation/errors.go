package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: booking date is in the past")

	// ErrInvalidTimeSlot возвращается, когда время начала не входит в сетку каталога
	ErrInvalidTimeSlot = errors.New("create_reservation: time slot is not in the catalog")

	// ErrSlotInPast возвращается, когда слот на сегодня уже начался или прошел
	ErrSlotInPast = errors.New("create_reservation: time slot has already elapsed")

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием.
	// Штатный исход проигранной гонки: вызывающая сторона перечитывает
	// доступность и дает пользователю выбрать заново, без автоповтора.
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
