package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/catalog"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	profileClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type fakeRepo struct {
	reservations []*domain.Reservation
	failures     int
	calls        int
}

func (r *fakeRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	r.calls++
	if r.calls <= r.failures {
		return nil, errors.New("connection refused")
	}
	return r.reservations, nil
}

type fakeProfiles struct {
	names map[string]string
	err   error
	calls int
}

func (p *fakeProfiles) GetDisplayName(_ context.Context, userID string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.names[userID], nil
}

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	tomorrow = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(t *testing.T, repo ReservationRepository, profiles ProfileClient) *UseCase {
	t.Helper()

	slotCatalog, err := catalog.New("09:00", "12:00", 60)
	require.NoError(t, err)

	uc := NewUseCase(repo, slotCatalog, profiles, nopLogger{})
	uc.timeProvider = &stubClock{now: testNow}
	return uc
}

func activeReservation(userID string, start types.TimeString, visibility domain.Visibility) *domain.Reservation {
	end, _ := start.AddMinutes(60)
	return &domain.Reservation{
		UserID:     userID,
		Date:       tomorrow,
		StartTime:  start,
		EndTime:    end,
		Visibility: visibility,
		Recurrence: domain.RecurrenceOneTime,
		Status:     domain.StatusActive,
	}
}

func TestExecute_OverlaysReservationsOnGrid(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		activeReservation("user-1", "09:00", domain.VisibilityPublic),
		activeReservation("user-2", "11:00", domain.VisibilityPrivate),
	}}
	profiles := &fakeProfiles{names: map[string]string{"user-1": "Иван Петров"}}
	uc := newTestUseCase(t, repo, profiles)

	resp, err := uc.Execute(context.Background(), &Request{Date: tomorrow})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	first := resp.Slots[0]
	assert.Equal(t, types.TimeString("09:00"), first.StartTime)
	assert.Equal(t, types.TimeString("10:00"), first.EndTime)
	assert.Equal(t, domain.SlotOccupied, first.State)
	require.NotNil(t, first.Visibility)
	assert.Equal(t, domain.VisibilityPublic, *first.Visibility)
	require.NotNil(t, first.OwnerDisplayName)
	assert.Equal(t, "Иван Петров", *first.OwnerDisplayName)

	second := resp.Slots[1]
	assert.Equal(t, types.TimeString("10:00"), second.StartTime)
	assert.Equal(t, domain.SlotFree, second.State)
	assert.Nil(t, second.Visibility)
	assert.Nil(t, second.OwnerDisplayName)

	// Приватное бронирование: занято, но владелец не раскрывается
	third := resp.Slots[2]
	assert.Equal(t, types.TimeString("11:00"), third.StartTime)
	assert.Equal(t, domain.SlotOccupied, third.State)
	require.NotNil(t, third.Visibility)
	assert.Equal(t, domain.VisibilityPrivate, *third.Visibility)
	assert.Nil(t, third.OwnerDisplayName)
}

func TestExecute_TodayExcludesElapsedSlots(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(t, repo, &fakeProfiles{})
	uc.timeProvider = &stubClock{now: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].StartTime)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepo{}, &fakeProfiles{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RetriesTransientStorageFailure(t *testing.T) {
	repo := &fakeRepo{failures: 2}
	uc := newTestUseCase(t, repo, &fakeProfiles{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tomorrow})
	require.NoError(t, err)

	assert.Equal(t, 3, repo.calls)
	assert.Len(t, resp.Slots, 3)
}

func TestExecute_UnknownAfterRetriesExhausted(t *testing.T) {
	repo := &fakeRepo{failures: 10}
	uc := newTestUseCase(t, repo, &fakeProfiles{})

	// Хранилище недоступно: доступность неизвестна, слоты не выдумываются
	_, err := uc.Execute(context.Background(), &Request{Date: tomorrow})
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Equal(t, listRetryAttempts, repo.calls)
}

// brokenCatalog выдает слот, для которого не вычисляется конец
type brokenCatalog struct{}

func (brokenCatalog) Enumerate(time.Time, time.Time) []types.TimeString {
	return []types.TimeString{"09:00"}
}

func (brokenCatalog) SlotEnd(types.TimeString) (types.TimeString, error) {
	return "", errors.New("no slot end")
}

func TestExecute_SlotEndFailureIsAnError(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, brokenCatalog{}, &fakeProfiles{}, nopLogger{})
	uc.timeProvider = &stubClock{now: testNow}

	// Слот без конца - внутренняя ошибка, а не молча ужатая сетка
	_, err := uc.Execute(context.Background(), &Request{Date: tomorrow})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ProfileServiceDegradation(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		activeReservation("user-1", "09:00", domain.VisibilityPublic),
	}}
	profiles := &fakeProfiles{err: profileClient.ErrServiceDegraded}
	uc := newTestUseCase(t, repo, profiles)

	resp, err := uc.Execute(context.Background(), &Request{Date: tomorrow})
	require.NoError(t, err)

	// Слот остается занятым, имя просто не показывается
	first := resp.Slots[0]
	assert.Equal(t, domain.SlotOccupied, first.State)
	assert.Nil(t, first.OwnerDisplayName)
}

func TestExecute_DisplayNameCachedPerRequest(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		activeReservation("user-1", "09:00", domain.VisibilityPublic),
		activeReservation("user-1", "10:00", domain.VisibilityPublic),
	}}
	profiles := &fakeProfiles{names: map[string]string{"user-1": "Иван Петров"}}
	uc := newTestUseCase(t, repo, profiles)

	resp, err := uc.Execute(context.Background(), &Request{Date: tomorrow})
	require.NoError(t, err)

	assert.Equal(t, 1, profiles.calls)
	require.NotNil(t, resp.Slots[0].OwnerDisplayName)
	require.NotNil(t, resp.Slots[1].OwnerDisplayName)
	assert.Equal(t, *resp.Slots[0].OwnerDisplayName, *resp.Slots[1].OwnerDisplayName)
}
