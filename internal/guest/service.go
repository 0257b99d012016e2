package guest

import (
	"context"
	"strings"
)

// Service defines business logic related to guests.
type Service interface {
	Create(ctx context.Context, name string) (*Guest, error)
	GetByID(ctx context.Context, id int64) (*Guest, error)
	List(ctx context.Context) ([]*Guest, error)
	FindByName(ctx context.Context, name string) ([]*Guest, error)
	FindByPartialName(ctx context.Context, partial string) ([]*Guest, error)
	Update(ctx context.Context, id int64, name string) (*Guest, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService creates a new guest Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string) (*Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	g := &Guest{Name: name}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Guest, error) {
	return s.repo.List(ctx)
}

func (s *service) FindByName(ctx context.Context, name string) ([]*Guest, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *service) FindByPartialName(ctx context.Context, partial string) ([]*Guest, error) {
	return s.repo.FindByPartialName(ctx, partial)
}

func (s *service) Update(ctx context.Context, id int64, name string) (*Guest, error) {
	if id == 0 {
		return nil, ErrIDRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Name = name
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
