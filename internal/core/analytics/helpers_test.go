package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func event(ts time.Time, category domain.Category) *domain.Event {
	return &domain.Event{
		ID:        ts.Format(time.RFC3339Nano) + category.String(),
		Name:      "habit",
		Category:  category,
		Timestamp: ts,
	}
}

func eventWithCompliance(ts time.Time, category domain.Category, level int) *domain.Event {
	e := event(ts, category)
	e.ComplianceLevel = ptr(level)
	return e
}

// dailyEvents returns one event at 08:00 on every day of [from, to].
func dailyEvents(from, to time.Time, category domain.Category) []*domain.Event {
	var events []*domain.Event
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		events = append(events, event(time.Date(d.Year(), d.Month(), d.Day(), 8, 0, 0, 0, time.UTC), category))
	}
	return events
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
