package court

import (
	"context"
	"strings"
)

// Service defines business logic related to tennis courts.
type Service interface {
	Create(ctx context.Context, name string) (*TennisCourt, error)
	GetByID(ctx context.Context, id int64) (*TennisCourt, error)
}

type service struct {
	repo Repository
}

// NewService creates a new tennis court Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*TennisCourt, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	tc := &TennisCourt{Name: name}
	if err := s.repo.Create(ctx, tc); err != nil {
		return nil, err
	}
	return tc, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*TennisCourt, error) {
	return s.repo.GetByID(ctx, id)
}
