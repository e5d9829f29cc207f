package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventConflict = errors.New("event already exists")
)

// EventRepository is the event store. Every list is ordered newest-first.
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *Event) error

	// GetByID retrieves a single event by its unique identifier.
	GetByID(ctx context.Context, id string) (*Event, error)

	// List returns every stored event.
	List(ctx context.Context) ([]*Event, error)

	// ListByCategory returns the events of a single category.
	ListByCategory(ctx context.Context, category Category) ([]*Event, error)

	// ListByRange returns events whose timestamp falls within [from, to], both inclusive.
	ListByRange(ctx context.Context, from, to time.Time) ([]*Event, error)

	// Delete removes an event. It reports whether a row was actually removed.
	Delete(ctx context.Context, id string) (bool, error)

	Count(ctx context.Context) (int, error)
}
