package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// ErrInvalidSchedule возвращается при некорректном рабочем окне
var ErrInvalidSchedule = errors.New("catalog: invalid schedule configuration")

// Catalog фиксированное расписание слотов корта на день.
// Чистое вычисление: результат зависит только от даты и текущего момента,
// никакого состояния и побочных эффектов.
type Catalog struct {
	openTime            types.TimeString
	closeTime           types.TimeString
	slotDurationMinutes int
}

// New создает каталог слотов из рабочего окна и шага слота
func New(openTime, closeTime string, slotDurationMinutes int) (*Catalog, error) {
	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidSchedule, err)
	}

	closeT, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidSchedule, err)
	}

	if !open.IsBefore(closeT) {
		return nil, fmt.Errorf("%w: open %s must be before close %s", ErrInvalidSchedule, open, closeT)
	}

	if slotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive", ErrInvalidSchedule)
	}

	return &Catalog{
		openTime:            open,
		closeTime:           closeT,
		slotDurationMinutes: slotDurationMinutes,
	}, nil
}

// SlotDurationMinutes возвращает длительность слота в минутах
func (c *Catalog) SlotDurationMinutes() int {
	return c.slotDurationMinutes
}

// AllSlots возвращает полную сетку слотов дня по возрастанию,
// без фильтрации по текущему времени
func (c *Catalog) AllSlots() []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := c.openTime

	for current.IsBefore(c.closeTime) {
		slotEnd, err := current.AddMinutes(c.slotDurationMinutes)
		if err != nil {
			break
		}
		// Слот не должен выходить за время закрытия
		if slotEnd.IsAfter(c.closeTime) {
			break
		}

		slots = append(slots, current)

		current = slotEnd
	}

	return slots
}

// Enumerate возвращает слоты, доступные для бронирования на указанную дату.
// Для прошедших дат список пуст. Для сегодняшней даты исключаются слоты,
// начало которых уже наступило (start <= now). Для будущих дат сетка полная.
func (c *Catalog) Enumerate(date time.Time, now time.Time) []types.TimeString {
	if isDateInPast(date, now) {
		return []types.TimeString{}
	}

	allSlots := c.AllSlots()

	if !isSameDay(date, now) {
		return allSlots
	}

	nowTime := types.NewTimeString(now)

	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.IsAfter(nowTime) {
			available = append(available, slot)
		}
	}

	return available
}

// Contains проверяет, что слот принадлежит сетке каталога
func (c *Catalog) Contains(slotStart types.TimeString) bool {
	for _, slot := range c.AllSlots() {
		if slot == slotStart {
			return true
		}
	}
	return false
}

// IsElapsed проверяет, что слот на указанную дату уже начался или прошел
func (c *Catalog) IsElapsed(date time.Time, now time.Time, slotStart types.TimeString) bool {
	if isDateInPast(date, now) {
		return true
	}
	if !isSameDay(date, now) {
		return false
	}
	return !slotStart.IsAfter(types.NewTimeString(now))
}

// SlotEnd возвращает время конца слота
func (c *Catalog) SlotEnd(slotStart types.TimeString) (types.TimeString, error) {
	return slotStart.AddMinutes(c.slotDurationMinutes)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
