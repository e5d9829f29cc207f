package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

// StreakNotifier is told about every write that may move the current streak.
type StreakNotifier interface {
	Enqueue(reason string)
}

type EventService struct {
	repo     domain.EventRepository
	notifier StreakNotifier
	loc      *time.Location
	now      func() time.Time
}

func NewEventService(repo domain.EventRepository, notifier StreakNotifier, loc *time.Location) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		repo:     repo,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for tests and replays.
func (s *EventService) WithClock(now func() time.Time) *EventService {
	s.now = now
	return s
}

type CreateEventInput struct {
	Name            string
	Category        string
	Timestamp       *time.Time
	ComplianceLevel *int
	Notes           *string
}

func (s *EventService) Create(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	ts := s.now()
	if input.Timestamp != nil {
		ts = *input.Timestamp
	}

	event, err := domain.NewEvent(input.Name, domain.ParseCategory(input.Category), ts, input.ComplianceLevel, input.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, domain.WrapStorage("create event", err)
	}

	s.notify("create")
	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WrapStorage("get event", err)
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.WrapStorage("list events", err)
	}
	return events, nil
}

// ListByCategory accepts free text; unknown names select the "other" category.
func (s *EventService) ListByCategory(ctx context.Context, category string) ([]*domain.Event, error) {
	events, err := s.repo.ListByCategory(ctx, domain.ParseCategory(category))
	if err != nil {
		return nil, domain.WrapStorage("list events by category", err)
	}
	return events, nil
}

func (s *EventService) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidRange
	}

	events, err := s.repo.ListByRange(ctx, from.UTC(), to.UTC())
	if err != nil {
		return nil, domain.WrapStorage("list events by range", err)
	}
	return events, nil
}

// Today returns the events of the current calendar day in the configured location.
func (s *EventService) Today(ctx context.Context) ([]*domain.Event, error) {
	start := startOfDay(s.now().In(s.loc))
	return s.ListByRange(ctx, start, start.AddDate(0, 0, 1).Add(-time.Nanosecond))
}

// ThisWeek returns the events from Monday 00:00 to Sunday 23:59:59.999999999.
func (s *EventService) ThisWeek(ctx context.Context) ([]*domain.Event, error) {
	start := StartOfWeek(s.now().In(s.loc))
	return s.ListByRange(ctx, start, start.AddDate(0, 0, 7).Add(-time.Nanosecond))
}

func (s *EventService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, domain.WrapStorage("count events", err)
	}
	return n, nil
}

func (s *EventService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, domain.WrapStorage("delete event", err)
	}
	if deleted {
		s.notify("delete")
	}
	return deleted, nil
}

func (s *EventService) notify(reason string) {
	if s.notifier != nil {
		s.notifier.Enqueue(reason)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	day := startOfDay(t)
	return day.AddDate(0, 0, -back)
}
