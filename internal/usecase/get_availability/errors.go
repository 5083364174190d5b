package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrAvailabilityUnknown возвращается, когда хранилище недоступно и
	// повторы исчерпаны. Неопределенность всегда явная: слот никогда не
	// объявляется свободным или занятым по догадке.
	ErrAvailabilityUnknown = errors.New("get_availability: availability is unknown")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
