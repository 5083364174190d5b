package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	profileClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// overlayReservations размечает слоты каталога активными бронированиями.
// Слот занят тогда и только тогда, когда на его время начала есть активное
// бронирование; имя владельца подставляется только для публичных.
func (uc *UseCase) overlayReservations(
	ctx context.Context,
	slots []types.TimeString,
	reservations []*domain.Reservation,
) ([]domain.AvailabilitySlot, error) {
	byStart := make(map[types.TimeString]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		byStart[res.StartTime] = res
	}

	// Кэш имен на время запроса: один владелец может занимать несколько слотов
	names := make(map[string]*string)

	result := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, slotStart := range slots {
		slotEnd, err := uc.catalog.SlotEnd(slotStart)
		if err != nil {
			// Слот из каталога всегда имеет конец; сетка никогда
			// не ужимается молча
			uc.logger.Error("GetAvailability: failed to compute slot end for %s: %v", slotStart, err)
			return nil, fmt.Errorf("%w: slot end for %s: %v", ErrInternal, slotStart, err)
		}

		res, occupied := byStart[slotStart]
		if !occupied {
			result = append(result, domain.AvailabilitySlot{
				StartTime: slotStart,
				EndTime:   slotEnd,
				State:     domain.SlotFree,
			})
			continue
		}

		slot := domain.AvailabilitySlot{
			StartTime:  slotStart,
			EndTime:    slotEnd,
			State:      domain.SlotOccupied,
			Visibility: ptr.Ptr(res.Visibility),
		}

		// Приватное бронирование никогда не раскрывает владельца
		if res.IsPublic() {
			slot.OwnerDisplayName = uc.resolveDisplayName(ctx, res.UserID, names)
		}

		result = append(result, slot)
	}

	return result, nil
}

// resolveDisplayName получает имя владельца с кэшированием на запрос.
// Недоступность сервиса профилей деградирует до занятого слота без имени.
func (uc *UseCase) resolveDisplayName(ctx context.Context, userID string, cache map[string]*string) *string {
	if name, ok := cache[userID]; ok {
		return name
	}

	var result *string

	name, err := uc.profileClient.GetDisplayName(ctx, userID)
	switch {
	case err == nil && name != "":
		result = ptr.Ptr(name)
	case errors.Is(err, profileClient.ErrProfileNotFound):
		uc.logger.Warn("GetAvailability: no profile for user=%s, slot shown without owner name", userID)
	case err != nil:
		uc.logger.Warn("GetAvailability: display name lookup failed for user=%s: %v", userID, err)
	}

	cache[userID] = result
	return result
}
