package store

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]Store, error)
	Get(ctx context.Context, id string) (*Store, error)
	Create(ctx context.Context, s *Store) (*Store, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Store, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Store, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new store. New stores always start unverified.
func (s *service) Create(ctx context.Context, st *Store) (*Store, error) {
	st.ID = uuid.NewString()
	st.Verified = false
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
