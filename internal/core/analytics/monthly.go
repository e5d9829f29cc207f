package analytics

import (
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

// MonthlyStats aggregates a calendar month. Months outside 1-12 are normalised by
// calendar arithmetic, so month 13 of 2024 is January 2025.
func (c *Calculator) MonthlyStats(events []*domain.Event, year int, month time.Month) domain.MonthlyStats {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	monthEvents := c.eventsBetween(events, firstDay, lastDay)

	weeks := iter.Map(weekStarts(firstDay, lastDay), func(start *time.Time) domain.WeeklyStats {
		end := start.AddDate(0, 0, daysPerWeek-1)
		return c.WeeklyStats(c.eventsBetween(monthEvents, *start, end), *start)
	})

	consistency := c.consistency(events, firstDay, lastDay)

	insights := c.generateInsights(monthEvents, consistency)
	messages := make([]string, 0, len(insights))
	for _, in := range insights {
		messages = append(messages, in.Message)
	}

	return domain.MonthlyStats{
		Month:                 c.locale.MonthName(firstDay.Month()),
		Year:                  firstDay.Year(),
		Weeks:                 weeks,
		TotalEvents:           len(monthEvents),
		ConsistencyPercentage: consistency,
		MostCommonCategory:    mostCommonCategory(monthEvents),
		Insights:              messages,
	}
}

// weekStarts returns the Mondays from the one on or before firstDay up to the last
// one not after lastDay.
func weekStarts(firstDay, lastDay time.Time) []time.Time {
	back := (int(firstDay.Weekday()) + 6) % 7
	start := firstDay.AddDate(0, 0, -back)

	var starts []time.Time
	for !start.After(lastDay) {
		starts = append(starts, start)
		start = start.AddDate(0, 0, daysPerWeek)
	}
	return starts
}

func (c *Calculator) eventsBetween(events []*domain.Event, from, to time.Time) []*domain.Event {
	out := make([]*domain.Event, 0)
	for _, e := range events {
		if inRange(c.dateOf(e.Timestamp), from, to) {
			out = append(out, e)
		}
	}
	return out
}

// consistency is the share of days in [firstDay, lastDay] with at least one event.
// It scans the full event list rather than reusing the weekly rollups.
func (c *Calculator) consistency(events []*domain.Event, firstDay, lastDay time.Time) float64 {
	active := make(map[time.Time]struct{})
	for _, e := range events {
		d := c.dateOf(e.Timestamp)
		if inRange(d, firstDay, lastDay) {
			active[d] = struct{}{}
		}
	}

	daysInMonth := lastDay.Day() - firstDay.Day() + 1
	return float64(len(active)) / float64(daysInMonth) * 100
}

// mostCommonCategory breaks ties in favour of the earlier category in enumeration order.
func mostCommonCategory(events []*domain.Event) string {
	if len(events) == 0 {
		return domain.NoCategory
	}

	counts := make([]int, len(domain.AllCategories))
	for _, e := range events {
		counts[e.Category.Index()]++
	}

	best := 0
	for i, n := range counts {
		if n > counts[best] {
			best = i
		}
	}
	return domain.AllCategories[best].String()
}
