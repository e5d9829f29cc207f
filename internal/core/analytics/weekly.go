package analytics

import (
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

const daysPerWeek = 7

var dayOffsets = []int{0, 1, 2, 3, 4, 5, 6}

// WeeklyStats aggregates the seven days starting at weekStart. The start date is
// used as given; callers wanting calendar weeks must pass a Monday.
func (c *Calculator) WeeklyStats(events []*domain.Event, weekStart time.Time) domain.WeeklyStats {
	start := civilDate(weekStart)

	days := iter.Map(dayOffsets, func(offset *int) domain.DailyStats {
		return c.dailyFor(events, start.AddDate(0, 0, *offset))
	})

	total := 0
	best := 0
	for i, d := range days {
		total += d.TotalEvents
		if d.TotalEvents > days[best].TotalEvents {
			best = i
		}
	}

	return domain.WeeklyStats{
		WeekStart:     formatDate(start),
		WeekEnd:       formatDate(start.AddDate(0, 0, daysPerWeek-1)),
		Days:          days,
		TotalEvents:   total,
		MostActiveDay: days[best].Date,
		Trend:         classifyTrend(days),
	}
}

// classifyTrend compares the halves split at len/2. With an odd number of days the
// middle day belongs to the second half. The tolerance is 10% of the first half,
// rounded down.
func classifyTrend(days []domain.DailyStats) domain.Trend {
	if len(days) < 2 {
		return domain.TrendStable
	}

	mid := len(days) / 2
	first, second := 0, 0
	for _, d := range days[:mid] {
		first += d.TotalEvents
	}
	for _, d := range days[mid:] {
		second += d.TotalEvents
	}

	threshold := first / 10

	switch {
	case second > first+threshold:
		return domain.TrendUp
	case second+threshold < first:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}
