package reservation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alexx9363/tennis-courts-v1/internal/guest"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/clock"
	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
)

// Service defines the reservation lifecycle: booking, cancellation and
// rescheduling with the time-tiered refund policy.
type Service interface {
	Book(ctx context.Context, guestID, scheduleID int64) (*Reservation, error)
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	Cancel(ctx context.Context, id int64) (*Reservation, error)
	Reschedule(ctx context.Context, previousID int64, newScheduleID *int64) (*Reservation, error)
	FindAllPast(ctx context.Context) ([]*Reservation, error)
}

type service struct {
	repo            Repository
	guestService    guest.Service
	scheduleService schedule.Service
	clock           clock.Clock
}

// NewService creates a new reservation Service.
func NewService(repo Repository, guestService guest.Service, scheduleService schedule.Service, clk clock.Clock) Service {
	return &service{
		repo:            repo,
		guestService:    guestService,
		scheduleService: scheduleService,
		clock:           clk,
	}
}

func (s *service) Book(ctx context.Context, guestID, scheduleID int64) (*Reservation, error) {
	g, err := s.guestService.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	sched, err := s.scheduleService.GetValidForReservation(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	r := newReservation(g, sched, nil)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id int64) (*Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateUpdate(r); err != nil {
		return nil, err
	}

	r.applyRefund(s.clock.Now(), StatusCancelled)
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Reschedule(ctx context.Context, previousID int64, newScheduleID *int64) (*Reservation, error) {
	prev, err := s.repo.GetByID(ctx, previousID)
	if err != nil {
		return nil, err
	}

	if newScheduleID == nil {
		return nil, ErrScheduleIDRequired
	}
	if *newScheduleID == prev.ScheduleID {
		return nil, ErrSameSlot
	}

	if err := s.validateUpdate(prev); err != nil {
		return nil, err
	}

	newSched, err := s.scheduleService.GetValidForReservation(ctx, *newScheduleID)
	if err != nil {
		return nil, err
	}

	g, err := s.guestService.GetByID(ctx, prev.GuestID)
	if err != nil {
		return nil, err
	}

	prev.applyRefund(s.clock.Now(), StatusRescheduled)
	next := newReservation(g, newSched, &prev.ID)

	// Releasing the old slot and taking the new one are persisted as a
	// single transaction.
	if err := s.repo.SaveReschedule(ctx, prev, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) FindAllPast(ctx context.Context) ([]*Reservation, error) {
	return s.repo.FindAllPast(ctx, s.clock.Now())
}

// validateUpdate holds the shared preconditions for cancel and reschedule.
// It runs before any state is written.
func (s *service) validateUpdate(r *Reservation) error {
	if r.Status != StatusReadyToPlay {
		return ErrNotReadyToPlay
	}
	if r.ScheduleStart.Before(s.clock.Now()) {
		return ErrPastReservation
	}
	return nil
}

func newReservation(g *guest.Guest, sched *schedule.Schedule, previousID *int64) *Reservation {
	return &Reservation{
		GuestID:               g.ID,
		GuestName:             g.Name,
		ScheduleID:            sched.ID,
		ScheduleCourtID:       sched.TennisCourtID,
		ScheduleStart:         sched.StartDateTime,
		ScheduleEnd:           sched.EndDateTime,
		Value:                 Deposit,
		RefundValue:           decimal.Zero,
		Status:                StatusReadyToPlay,
		PreviousReservationID: previousID,
	}
}
