package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

var _ domain.EventRepository = (*InMemoryEventRepository)(nil)

type InMemoryEventRepository struct {
	store map[string]*domain.Event

	mu sync.RWMutex
}

func NewInMemoryEventRepository() *InMemoryEventRepository {
	return &InMemoryEventRepository{
		store: make(map[string]*domain.Event),
	}
}

func (r *InMemoryEventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[event.ID]; exists {
		return domain.ErrEventConflict
	}

	clone := *event
	r.store[event.ID] = &clone
	return nil
}

func (r *InMemoryEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.store[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *event
	return &clone, nil
}

func (r *InMemoryEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.filter(func(*domain.Event) bool { return true }), nil
}

func (r *InMemoryEventRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool { return e.Category == category }), nil
}

func (r *InMemoryEventRepository) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool {
		return !e.Timestamp.Before(from) && !e.Timestamp.After(to)
	}), nil
}

func (r *InMemoryEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return false, nil
	}

	delete(r.store, id)
	return true, nil
}

func (r *InMemoryEventRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.store), nil
}

func (r *InMemoryEventRepository) filter(keep func(*domain.Event) bool) []*domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*domain.Event, 0, len(r.store))
	for _, e := range r.store {
		if keep(e) {
			clone := *e
			events = append(events, &clone)
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].ID < events[j].ID
		}
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	return events
}
