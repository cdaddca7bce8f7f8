package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aarya-club/backend/internal/models"
)

// ErrNotFound reports a lookup or delete for an event id that does not exist.
var ErrNotFound = errors.New("event not found")

// Service applies event CRUD against the store, translating missing rows
// into ErrNotFound.
type Service struct {
	store Store
}

// NewService creates an event service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// FindAll returns all events in storage order.
func (s *Service) FindAll(ctx context.Context) ([]models.Event, error) {
	return s.store.List(ctx)
}

// Find returns a single event or ErrNotFound.
func (s *Service) Find(ctx context.Context, id int) (*models.Event, error) {
	e, err := s.store.Get(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w with id: %d", ErrNotFound, id)
	}
	return e, err
}

// Add persists a new event and returns the confirmation message.
func (s *Service) Add(ctx context.Context, e *models.Event) (string, error) {
	if err := s.store.Save(ctx, e); err != nil {
		return "", err
	}
	return "add record", nil
}

// Update stores the event under id regardless of any id in the record,
// creating the row when it does not exist.
func (s *Service) Update(ctx context.Context, id int, e *models.Event) (string, error) {
	e.ID = id
	if err := s.store.Upsert(ctx, e); err != nil {
		return "", err
	}
	return "Record Updated", nil
}

// Remove deletes an event by id, or ErrNotFound when absent.
func (s *Service) Remove(ctx context.Context, id int) (string, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", fmt.Errorf("%w with id: %d", ErrNotFound, id)
	}
	return "Record Deleted", nil
}
