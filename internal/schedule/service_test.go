package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexx9363/tennis-courts-v1/internal/court"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/clock"
)

var testNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

type fakeRepository struct {
	nextID    int64
	schedules map[int64]*Schedule
	reserved  map[int64]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID:    1,
		schedules: map[int64]*Schedule{},
		reserved:  map[int64]bool{},
	}
}

func (f *fakeRepository) add(s *Schedule) *Schedule {
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	} else if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	f.schedules[s.ID] = s
	return s
}

func (f *fakeRepository) Create(_ context.Context, s *Schedule) error {
	f.add(s)
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int64) (*Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (f *fakeRepository) FindByCourtOrderByStart(_ context.Context, courtID int64) ([]*Schedule, error) {
	var out []*Schedule
	for _, s := range f.schedules {
		if s.TennisCourtID == courtID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindInRange(_ context.Context, start, end time.Time) ([]*Schedule, error) {
	var out []*Schedule
	for _, s := range f.schedules {
		if !s.StartDateTime.Before(start) && !s.EndDateTime.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) ExistsByCourtAndStart(_ context.Context, courtID int64, start time.Time) (bool, error) {
	for _, s := range f.schedules {
		if s.TennisCourtID == courtID && s.StartDateTime.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) HasReadyReservation(_ context.Context, scheduleID int64) (bool, error) {
	return f.reserved[scheduleID], nil
}

type fakeCourtService struct {
	courts map[int64]*court.TennisCourt
}

func (f *fakeCourtService) GetByID(_ context.Context, id int64) (*court.TennisCourt, error) {
	tc, ok := f.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	return tc, nil
}

func (f *fakeCourtService) Create(context.Context, string) (*court.TennisCourt, error) {
	return nil, nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	courts := &fakeCourtService{courts: map[int64]*court.TennisCourt{
		1: {ID: 1, Name: "Center Court"},
	}}
	return NewService(repo, courts, clock.Fixed{Instant: testNow}), repo
}

func TestAdd(t *testing.T) {
	svc, _ := newTestService()
	start := testNow.Add(24 * time.Hour)

	s, err := svc.Add(context.Background(), 1, &start)
	require.NoError(t, err)

	assert.NotZero(t, s.ID)
	assert.Equal(t, int64(1), s.TennisCourtID)
	assert.Equal(t, "Center Court", s.TennisCourtName)
	assert.Equal(t, start, s.StartDateTime)
	assert.Equal(t, start.Add(time.Hour), s.EndDateTime)
}

func TestAdd_MissingStart(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Add(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrStartRequired)
	assert.EqualError(t, err, "Schedule start date is missing")
}

func TestAdd_StartInPast(t *testing.T) {
	svc, _ := newTestService()
	start := testNow.Add(-time.Minute)

	_, err := svc.Add(context.Background(), 1, &start)
	require.ErrorIs(t, err, ErrStartInPast)
	assert.EqualError(t, err, "Schedule start date cannot be older than today")
}

func TestAdd_CourtNotFound(t *testing.T) {
	svc, _ := newTestService()
	start := testNow.Add(24 * time.Hour)

	_, err := svc.Add(context.Background(), 99, &start)
	require.ErrorIs(t, err, court.ErrNotFound)
}

func TestAdd_DuplicateSlot(t *testing.T) {
	svc, _ := newTestService()
	start := testNow.Add(24 * time.Hour)

	_, err := svc.Add(context.Background(), 1, &start)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), 1, &start)
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.EqualError(t, err, "The schedule is not available")
}

func TestGetValidForReservation(t *testing.T) {
	svc, repo := newTestService()
	s := repo.add(&Schedule{
		TennisCourtID: 1,
		StartDateTime: testNow.Add(24 * time.Hour),
		EndDateTime:   testNow.Add(25 * time.Hour),
	})

	got, err := svc.GetValidForReservation(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestGetValidForReservation_AlreadyReserved(t *testing.T) {
	svc, repo := newTestService()
	s := repo.add(&Schedule{
		TennisCourtID: 1,
		StartDateTime: testNow.Add(24 * time.Hour),
		EndDateTime:   testNow.Add(25 * time.Hour),
	})
	repo.reserved[s.ID] = true

	_, err := svc.GetValidForReservation(context.Background(), s.ID)
	require.ErrorIs(t, err, ErrAlreadyReserved)
	assert.EqualError(t, err, "Reservation already exists")
}

func TestGetValidForReservation_StartPassed(t *testing.T) {
	svc, repo := newTestService()
	s := repo.add(&Schedule{
		TennisCourtID: 1,
		StartDateTime: testNow.Add(-time.Hour),
		EndDateTime:   testNow,
	})

	_, err := svc.GetValidForReservation(context.Background(), s.ID)
	require.ErrorIs(t, err, ErrStartPassed)
}

func TestGetValidForReservation_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetValidForReservation(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}
