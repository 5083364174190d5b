package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New("09:00", "12:00", 60)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New("12:00", "09:00", 60)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = New("09:00", "12:00", 0)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = New("bad", "12:00", 60)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestAllSlots_FullGridInOrder(t *testing.T) {
	c := mustCatalog(t)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, c.AllSlots())
}

func TestAllSlots_PartialSlotDropped(t *testing.T) {
	// 90-минутные слоты в окне 09:00-12:00: последний неполный не выдается
	c, err := New("09:00", "12:00", 90)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, c.AllSlots())
}

func TestEnumerate_FutureDateFullGrid(t *testing.T) {
	c := mustCatalog(t)
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	future := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, c.Enumerate(future, now))
}

func TestEnumerate_PastDateEmpty(t *testing.T) {
	c := mustCatalog(t)
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	past := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, c.Enumerate(past, now))
}

func TestEnumerate_TodayFiltersElapsedSlots(t *testing.T) {
	c := mustCatalog(t)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// 10:30 - слоты 09:00 и 10:00 уже начались
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, []types.TimeString{"11:00"}, c.Enumerate(today, now))

	// Ровно в начале слота он считается прошедшим
	now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, []types.TimeString{"11:00"}, c.Enumerate(today, now))

	// До открытия сетка полная
	now = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, c.Enumerate(today, now))
}

func TestContains(t *testing.T) {
	c := mustCatalog(t)

	assert.True(t, c.Contains("10:00"))
	assert.False(t, c.Contains("10:30"))
	assert.False(t, c.Contains("12:00"))
}

func TestIsElapsed(t *testing.T) {
	c := mustCatalog(t)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, c.IsElapsed(past, now, "11:00"))
	assert.False(t, c.IsElapsed(future, now, "09:00"))

	assert.True(t, c.IsElapsed(today, now, "09:00"))
	// Граница: слот, начинающийся ровно сейчас, уже прошел
	assert.True(t, c.IsElapsed(today, now, "10:00"))
	assert.False(t, c.IsElapsed(today, now, "11:00"))
}

func TestSlotEnd(t *testing.T) {
	c := mustCatalog(t)

	end, err := c.SlotEnd("11:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), end)
}
