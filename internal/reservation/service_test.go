package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexx9363/tennis-courts-v1/internal/guest"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/clock"
	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
)

var testNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

// fakeRepository keeps reservations in memory.
type fakeRepository struct {
	nextID       int64
	reservations map[int64]*Reservation
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, reservations: map[int64]*Reservation{}}
}

func (f *fakeRepository) add(r *Reservation) *Reservation {
	if r.ID == 0 {
		r.ID = f.nextID
		f.nextID++
	} else if r.ID >= f.nextID {
		f.nextID = r.ID + 1
	}
	f.reservations[r.ID] = r
	return r
}

func (f *fakeRepository) Create(_ context.Context, r *Reservation) error {
	f.add(r)
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int64) (*Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (f *fakeRepository) Update(_ context.Context, r *Reservation) error {
	if _, ok := f.reservations[r.ID]; !ok {
		return ErrNotFound
	}
	f.reservations[r.ID] = r
	return nil
}

func (f *fakeRepository) FindAllPast(_ context.Context, now time.Time) ([]*Reservation, error) {
	var past []*Reservation
	for _, r := range f.reservations {
		if !r.ScheduleStart.After(now) {
			past = append(past, r)
		}
	}
	return past, nil
}

func (f *fakeRepository) SaveReschedule(_ context.Context, prev, next *Reservation) error {
	if _, ok := f.reservations[prev.ID]; !ok {
		return ErrNotFound
	}
	f.reservations[prev.ID] = prev
	f.add(next)
	return nil
}

// fakeGuestService resolves guests from a fixed set.
type fakeGuestService struct {
	guests map[int64]*guest.Guest
}

func (f *fakeGuestService) GetByID(_ context.Context, id int64) (*guest.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return nil, guest.ErrNotFound
	}
	return g, nil
}

func (f *fakeGuestService) Create(context.Context, string) (*guest.Guest, error)     { return nil, nil }
func (f *fakeGuestService) List(context.Context) ([]*guest.Guest, error)             { return nil, nil }
func (f *fakeGuestService) FindByName(context.Context, string) ([]*guest.Guest, error) {
	return nil, nil
}
func (f *fakeGuestService) FindByPartialName(context.Context, string) ([]*guest.Guest, error) {
	return nil, nil
}
func (f *fakeGuestService) Update(context.Context, int64, string) (*guest.Guest, error) {
	return nil, nil
}
func (f *fakeGuestService) Delete(context.Context, int64) error { return nil }

// fakeScheduleService serves slots for booking validation.
type fakeScheduleService struct {
	valid map[int64]*schedule.Schedule
	errs  map[int64]error
}

func (f *fakeScheduleService) GetValidForReservation(_ context.Context, id int64) (*schedule.Schedule, error) {
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	s, ok := f.valid[id]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	return s, nil
}

func (f *fakeScheduleService) Add(context.Context, int64, *time.Time) (*schedule.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleService) GetByID(context.Context, int64) (*schedule.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleService) FindByDates(context.Context, time.Time, time.Time) ([]*schedule.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleService) FindByCourt(context.Context, int64) ([]*schedule.Schedule, error) {
	return nil, nil
}

type fixture struct {
	repo      *fakeRepository
	guests    *fakeGuestService
	schedules *fakeScheduleService
	service   Service
}

func newFixture() *fixture {
	repo := newFakeRepository()
	guests := &fakeGuestService{guests: map[int64]*guest.Guest{
		1: {ID: 1, Name: "First Guest"},
	}}
	schedules := &fakeScheduleService{
		valid: map[int64]*schedule.Schedule{},
		errs:  map[int64]error{},
	}
	return &fixture{
		repo:      repo,
		guests:    guests,
		schedules: schedules,
		service:   NewService(repo, guests, schedules, clock.Fixed{Instant: testNow}),
	}
}

func (f *fixture) addSlot(id int64, start time.Time) *schedule.Schedule {
	s := &schedule.Schedule{
		ID:            id,
		TennisCourtID: 1,
		StartDateTime: start,
		EndDateTime:   start.Add(time.Hour),
	}
	f.schedules.valid[id] = s
	return s
}

func (f *fixture) addReservation(id int64, status Status, start time.Time) *Reservation {
	return f.repo.add(&Reservation{
		ID:            id,
		GuestID:       1,
		GuestName:     "First Guest",
		ScheduleID:    id + 100,
		ScheduleStart: start,
		ScheduleEnd:   start.Add(time.Hour),
		Value:         Deposit,
		RefundValue:   decimal.Zero,
		Status:        status,
	})
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.True(t, got.Equal(w), "want %s, got %s", w, got)
}

func TestBook(t *testing.T) {
	f := newFixture()
	f.addSlot(2, testNow.Add(24*time.Hour))

	r, err := f.service.Book(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.NotZero(t, r.ID)
	assert.Equal(t, int64(1), r.GuestID)
	assert.Equal(t, "First Guest", r.GuestName)
	assert.Equal(t, int64(2), r.ScheduleID)
	assert.Equal(t, StatusReadyToPlay, r.Status)
	assertMoney(t, "10", r.Value)
	assertMoney(t, "0", r.RefundValue)
	assert.Nil(t, r.PreviousReservationID)
}

func TestBook_GuestNotFound(t *testing.T) {
	f := newFixture()
	f.addSlot(2, testNow.Add(24*time.Hour))

	_, err := f.service.Book(context.Background(), 99, 2)
	require.ErrorIs(t, err, guest.ErrNotFound)
	assert.Empty(t, f.repo.reservations)
}

func TestBook_SlotAlreadyReserved(t *testing.T) {
	f := newFixture()
	f.schedules.errs[2] = schedule.ErrAlreadyReserved

	_, err := f.service.Book(context.Background(), 1, 2)
	require.ErrorIs(t, err, schedule.ErrAlreadyReserved)
	assert.Empty(t, f.repo.reservations)
}

func TestCancel_RefundTiers(t *testing.T) {
	cases := []struct {
		name       string
		untilStart time.Duration
		wantRefund string
		wantValue  string
	}{
		{"two days ahead refunds everything", 48 * time.Hour, "10", "0"},
		{"exactly 24 hours refunds everything", 24 * time.Hour, "10", "0"},
		{"13 hours refunds three quarters", 13 * time.Hour, "7.5", "2.5"},
		{"10 hours refunds half", 10 * time.Hour, "5", "5"},
		{"one hour refunds a quarter", time.Hour, "2.5", "7.5"},
		{"30 seconds refunds nothing", 30 * time.Second, "0", "10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.addReservation(1, StatusReadyToPlay, testNow.Add(tc.untilStart))

			r, err := f.service.Cancel(context.Background(), 1)
			require.NoError(t, err)

			assert.Equal(t, StatusCancelled, r.Status)
			assertMoney(t, tc.wantRefund, r.RefundValue)
			assertMoney(t, tc.wantValue, r.Value)

			// Cancellation only redistributes the deposit.
			assert.True(t, r.Value.Add(r.RefundValue).Equal(Deposit),
				"value %s + refund %s should equal the deposit", r.Value, r.RefundValue)
		})
	}
}

func TestCancel_NotReadyToPlay(t *testing.T) {
	f := newFixture()
	f.addReservation(1, StatusCancelled, testNow.Add(24*time.Hour))

	_, err := f.service.Cancel(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotReadyToPlay)
	assert.EqualError(t, err, "Can not update because it's not in ready to play status.")

	stored := f.repo.reservations[1]
	assertMoney(t, "10", stored.Value)
	assertMoney(t, "0", stored.RefundValue)
}

func TestCancel_PastReservation(t *testing.T) {
	f := newFixture()
	f.addReservation(1, StatusReadyToPlay, testNow.Add(-24*time.Hour))

	_, err := f.service.Cancel(context.Background(), 1)
	require.ErrorIs(t, err, ErrPastReservation)
	assert.EqualError(t, err, "Can not update past reservations.")

	stored := f.repo.reservations[1]
	assert.Equal(t, StatusReadyToPlay, stored.Status)
	assertMoney(t, "10", stored.Value)
	assertMoney(t, "0", stored.RefundValue)
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.service.Cancel(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReschedule(t *testing.T) {
	f := newFixture()
	prev := f.addReservation(1, StatusReadyToPlay, testNow.Add(48*time.Hour))
	f.addSlot(7, testNow.Add(72*time.Hour))

	newID := int64(7)
	next, err := f.service.Reschedule(context.Background(), 1, &newID)
	require.NoError(t, err)

	// The old reservation is terminal with a full refund (48h ahead).
	assert.Equal(t, StatusRescheduled, prev.Status)
	assertMoney(t, "10", prev.RefundValue)
	assertMoney(t, "0", prev.Value)

	// The replacement starts fresh and points back at the old one.
	assert.NotEqual(t, prev.ID, next.ID)
	assert.Equal(t, int64(7), next.ScheduleID)
	assert.Equal(t, StatusReadyToPlay, next.Status)
	assertMoney(t, "10", next.Value)
	assertMoney(t, "0", next.RefundValue)
	require.NotNil(t, next.PreviousReservationID)
	assert.Equal(t, prev.ID, *next.PreviousReservationID)
}

func TestReschedule_NilScheduleID(t *testing.T) {
	f := newFixture()
	f.addReservation(1, StatusReadyToPlay, testNow.Add(48*time.Hour))

	_, err := f.service.Reschedule(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrScheduleIDRequired)
	assert.EqualError(t, err, "Schedule id cannot be null.")
}

func TestReschedule_SameSlot(t *testing.T) {
	f := newFixture()
	r := f.addReservation(1, StatusReadyToPlay, testNow.Add(48*time.Hour))

	_, err := f.service.Reschedule(context.Background(), 1, &r.ScheduleID)
	require.ErrorIs(t, err, ErrSameSlot)
	assert.EqualError(t, err, "Cannot reschedule to the same slot.")
	assert.Equal(t, StatusReadyToPlay, r.Status)
}

func TestReschedule_ValidatesPreviousReservation(t *testing.T) {
	f := newFixture()
	f.addReservation(1, StatusRescheduled, testNow.Add(48*time.Hour))
	f.addSlot(7, testNow.Add(72*time.Hour))

	newID := int64(7)
	_, err := f.service.Reschedule(context.Background(), 1, &newID)
	require.ErrorIs(t, err, ErrNotReadyToPlay)
}

func TestReschedule_NewSlotTaken(t *testing.T) {
	f := newFixture()
	prev := f.addReservation(1, StatusReadyToPlay, testNow.Add(48*time.Hour))
	f.schedules.errs[7] = schedule.ErrAlreadyReserved

	newID := int64(7)
	_, err := f.service.Reschedule(context.Background(), 1, &newID)
	require.ErrorIs(t, err, schedule.ErrAlreadyReserved)

	// Nothing was persisted for the failed attempt.
	assert.Equal(t, StatusReadyToPlay, prev.Status)
	assert.Len(t, f.repo.reservations, 1)
}

func TestFindAllPast(t *testing.T) {
	f := newFixture()
	f.addReservation(1, StatusReadyToPlay, testNow.Add(-24*time.Hour))
	f.addReservation(2, StatusCancelled, testNow.Add(-time.Hour))
	f.addReservation(3, StatusReadyToPlay, testNow.Add(24*time.Hour))

	past, err := f.service.FindAllPast(context.Background())
	require.NoError(t, err)
	require.Len(t, past, 2)
	for _, r := range past {
		assert.False(t, r.ScheduleStart.After(testNow))
	}
}
