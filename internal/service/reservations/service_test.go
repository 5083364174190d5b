package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
)

type fakeRepo struct {
	byID map[uuid.UUID]*domain.Reservation
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	repo := &fakeRepo{byID: make(map[uuid.UUID]*domain.Reservation)}
	for _, res := range reservations {
		repo.byID[res.ID] = res
	}
	return repo
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, res := range r.byID {
		if res.UserID == userID {
			result = append(result, res)
		}
	}
	return result, nil
}

func (r *fakeRepo) ListWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, res := range r.byID {
		if filter.UserID != nil && res.UserID != *filter.UserID {
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeFeed struct {
	published []time.Time
}

func (f *fakeFeed) Publish(date time.Time) {
	f.published = append(f.published, date)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var june1 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newReservation(userID string) *domain.Reservation {
	return &domain.Reservation{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       june1,
		StartTime:  "10:00",
		EndTime:    "11:00",
		Visibility: domain.VisibilityPublic,
		Recurrence: domain.RecurrenceOneTime,
		Status:     domain.StatusActive,
	}
}

func TestGetByID(t *testing.T) {
	res := newReservation("user-1")
	svc := NewService(newFakeRepo(res), &fakeFeed{}, nopLogger{})

	got, err := svc.GetByID(context.Background(), res.ID, "user-1", domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)

	// Чужое бронирование недоступно обычному пользователю
	_, err = svc.GetByID(context.Background(), res.ID, "user-2", domain.RoleUser)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор видит любое
	_, err = svc.GetByID(context.Background(), res.ID, "admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), uuid.New(), "user-1", domain.RoleUser)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListByUser(t *testing.T) {
	svc := NewService(
		newFakeRepo(newReservation("user-1"), newReservation("user-1"), newReservation("user-2")),
		&fakeFeed{},
		nopLogger{},
	)

	reservations, err := svc.ListByUser(context.Background(), "user-1", "user-1", domain.RoleUser)
	require.NoError(t, err)
	assert.Len(t, reservations, 2)

	_, err = svc.ListByUser(context.Background(), "user-1", "user-2", domain.RoleUser)
	assert.ErrorIs(t, err, ErrAccessDenied)

	reservations, err = svc.ListByUser(context.Background(), "user-2", "admin-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)

	_, err = svc.ListByUser(context.Background(), "", "user-1", domain.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAll(t *testing.T) {
	svc := NewService(
		newFakeRepo(newReservation("user-1"), newReservation("user-2")),
		&fakeFeed{},
		nopLogger{},
	)

	_, err := svc.ListAll(context.Background(), domain.ReservationsFilter{}, domain.RoleUser)
	assert.ErrorIs(t, err, ErrAccessDenied)

	reservations, err := svc.ListAll(context.Background(), domain.ReservationsFilter{}, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, reservations, 2)

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.ListAll(context.Background(), domain.ReservationsFilter{
		StartDate: &start,
		EndDate:   &end,
	}, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_ByOwnerPublishesChange(t *testing.T) {
	res := newReservation("user-1")
	repo := newFakeRepo(res)
	feed := &fakeFeed{}
	svc := NewService(repo, feed, nopLogger{})

	err := svc.Cancel(context.Background(), res.ID, "user-1", domain.RoleUser)
	require.NoError(t, err)

	assert.Empty(t, repo.byID)
	require.Len(t, feed.published, 1)
	assert.Equal(t, june1, feed.published[0])
}

func TestCancel_ByStrangerDenied(t *testing.T) {
	res := newReservation("user-1")
	repo := newFakeRepo(res)
	feed := &fakeFeed{}
	svc := NewService(repo, feed, nopLogger{})

	err := svc.Cancel(context.Background(), res.ID, "user-2", domain.RoleUser)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Бронирование осталось, уведомлений нет
	assert.Len(t, repo.byID, 1)
	assert.Empty(t, feed.published)
}

func TestCancel_ByAdmin(t *testing.T) {
	res := newReservation("user-1")
	repo := newFakeRepo(res)
	svc := NewService(repo, &fakeFeed{}, nopLogger{})

	err := svc.Cancel(context.Background(), res.ID, "admin-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, repo.byID)
}

func TestCancel_NotFound(t *testing.T) {
	feed := &fakeFeed{}
	svc := NewService(newFakeRepo(), feed, nopLogger{})

	err := svc.Cancel(context.Background(), uuid.New(), "user-1", domain.RoleUser)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, feed.published)
}
