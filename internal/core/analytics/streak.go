package analytics

import (
	"sort"
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

// CurrentStreak counts consecutive active days ending at the most recent active day.
// The streak is alive only if that day is today or yesterday.
func (c *Calculator) CurrentStreak(events []*domain.Event) int {
	if len(events) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(events))
	var dates []time.Time
	for _, e := range events {
		d := c.dateOf(e.Timestamp)
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	today := c.Today()
	yesterday := today.AddDate(0, 0, -1)
	if !dates[0].Equal(today) && !dates[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].AddDate(0, 0, -1).Equal(dates[i]) {
			break
		}
		streak++
	}
	return streak
}
