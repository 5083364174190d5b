package create_reservation

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// expandOccurrences разворачивает запрос в список сохраняемых вхождений.
//
// one_time - единственное запрошенное вхождение.
// weekly - материализуется ТОЛЬКО первое вхождение, метка recurrence
// сохраняется для отображения. Последующие недели не генерируются, отмена
// серии не поддерживается; полноценные серии - отдельная фича со своей
// схемой хранения, а не тихая догенерация здесь.
func expandOccurrences(res *domain.Reservation) []*domain.Reservation {
	return []*domain.Reservation{res}
}
