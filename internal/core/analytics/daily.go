package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

// DailyStats aggregates the events recorded on the calendar date of date.
func (c *Calculator) DailyStats(events []*domain.Event, date time.Time) domain.DailyStats {
	return c.dailyFor(events, civilDate(date))
}

func (c *Calculator) dailyFor(events []*domain.Event, day time.Time) domain.DailyStats {
	counts := make([]int, len(domain.AllCategories))
	total := 0
	complianceSum := 0
	complianceCount := 0

	for _, e := range events {
		if !c.dateOf(e.Timestamp).Equal(day) {
			continue
		}
		total++
		counts[e.Category.Index()]++

		if e.ComplianceLevel != nil {
			complianceSum += *e.ComplianceLevel
			complianceCount++
		}
	}

	stats := domain.DailyStats{
		Date:        formatDate(day),
		TotalEvents: total,
		ByCategory:  make([]domain.CategoryCount, 0),
	}

	for i, n := range counts {
		if n > 0 {
			stats.ByCategory = append(stats.ByCategory, domain.CategoryCount{
				Category: domain.AllCategories[i],
				Count:    n,
			})
		}
	}

	if complianceCount > 0 {
		stats.AverageCompliance = float64(complianceSum) / float64(complianceCount)
	}

	return stats
}
