package schedule

import (
	"context"
	"time"

	"github.com/alexx9363/tennis-courts-v1/internal/court"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/clock"
)

// Service defines business logic related to schedule slots.
type Service interface {
	Add(ctx context.Context, courtID int64, start *time.Time) (*Schedule, error)
	GetByID(ctx context.Context, id int64) (*Schedule, error)
	FindByDates(ctx context.Context, start, end time.Time) ([]*Schedule, error)
	FindByCourt(ctx context.Context, courtID int64) ([]*Schedule, error)

	// GetValidForReservation returns the slot only if it can take a new
	// reservation: no READY_TO_PLAY reservation references it and its start
	// has not passed. The slot itself is never mutated.
	GetValidForReservation(ctx context.Context, id int64) (*Schedule, error)
}

type service struct {
	repo         Repository
	courtService court.Service
	clock        clock.Clock
}

// NewService creates a new schedule Service.
func NewService(repo Repository, courtService court.Service, clk clock.Clock) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		clock:        clk,
	}
}

func (s *service) Add(ctx context.Context, courtID int64, start *time.Time) (*Schedule, error) {
	if start == nil {
		return nil, ErrStartRequired
	}
	if start.Before(s.clock.Now()) {
		return nil, ErrStartInPast
	}

	tc, err := s.courtService.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByCourtAndStart(ctx, courtID, *start)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	sched := &Schedule{
		TennisCourtID:   tc.ID,
		TennisCourtName: tc.Name,
		StartDateTime:   *start,
		EndDateTime:     start.Add(SlotDuration),
	}
	if err := s.repo.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) FindByDates(ctx context.Context, start, end time.Time) ([]*Schedule, error) {
	return s.repo.FindInRange(ctx, start, end)
}

func (s *service) FindByCourt(ctx context.Context, courtID int64) ([]*Schedule, error) {
	return s.repo.FindByCourtOrderByStart(ctx, courtID)
}

func (s *service) GetValidForReservation(ctx context.Context, id int64) (*Schedule, error) {
	reserved, err := s.repo.HasReadyReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if reserved {
		return nil, ErrAlreadyReserved
	}

	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sched.StartDateTime.Before(s.clock.Now()) {
		return nil, ErrStartPassed
	}
	return sched, nil
}
