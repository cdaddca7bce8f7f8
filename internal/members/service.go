package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aarya-club/backend/internal/models"
)

// ErrNotFound reports an operation on a member id that does not exist.
var ErrNotFound = errors.New("Member not found")

// Service applies member CRUD against the store. Unlike events, update never
// creates a row: a missing id is reported as not found.
type Service struct {
	store Store
}

// NewService creates a member service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// FindAll returns all members in storage order.
func (s *Service) FindAll(ctx context.Context) ([]models.Member, error) {
	return s.store.List(ctx)
}

// Find returns a single member or ErrNotFound.
func (s *Service) Find(ctx context.Context, id int64) (*models.Member, error) {
	m, err := s.store.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w with id: %d", ErrNotFound, id)
	}
	return m, err
}

// Add persists a new member and returns the confirmation message.
func (s *Service) Add(ctx context.Context, m *models.Member) (string, error) {
	if err := s.store.Save(ctx, m); err != nil {
		return "", err
	}
	return "Member added successfully", nil
}

// Update replaces the member stored under id, or ErrNotFound when absent.
func (s *Service) Update(ctx context.Context, id int64, m *models.Member) (string, error) {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrNotFound
	}
	m.ID = id
	if err := s.store.Update(ctx, m); err != nil {
		return "", err
	}
	return "Member updated successfully", nil
}

// Remove deletes a member by id, or ErrNotFound when absent.
func (s *Service) Remove(ctx context.Context, id int64) (string, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", ErrNotFound
	}
	return "Member removed successfully", nil
}
