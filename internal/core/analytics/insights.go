package analytics

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

const (
	highConsistency = 80.0
	midConsistency  = 50.0
)

// weekdayOrder is the scan order for the most-active-weekday tie-break.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// generateInsights always yields the consistency message first, then, when there
// are events, the busiest hour and the busiest weekday. Ties go to the earliest
// hour and to the earliest weekday counted from Monday.
func (c *Calculator) generateInsights(events []*domain.Event, consistency float64) []domain.Insight {
	insights := []domain.Insight{c.consistencyInsight(consistency)}

	if len(events) == 0 {
		return insights
	}

	var hours [24]int
	var weekdays [7]int
	for _, e := range events {
		local := e.Timestamp.In(c.loc)
		hours[local.Hour()]++
		weekdays[local.Weekday()]++
	}

	bestHour := 0
	for h, n := range hours {
		if n > hours[bestHour] {
			bestHour = h
		}
	}

	bestDay := weekdayOrder[0]
	for _, d := range weekdayOrder {
		if weekdays[d] > weekdays[bestDay] {
			bestDay = d
		}
	}

	return append(insights,
		domain.Insight{
			Message: fmt.Sprintf(c.locale.activeHour, c.locale.period(bestHour), bestHour),
			Type:    domain.InsightPattern,
		},
		domain.Insight{
			Message: fmt.Sprintf(c.locale.activeWeekday, c.locale.WeekdayName(bestDay)),
			Type:    domain.InsightPattern,
		},
	)
}

func (c *Calculator) consistencyInsight(consistency float64) domain.Insight {
	switch {
	case consistency >= highConsistency:
		return domain.Insight{
			Message: fmt.Sprintf(c.locale.consistencyHigh, consistency),
			Type:    domain.InsightAchievement,
		}
	case consistency >= midConsistency:
		return domain.Insight{
			Message: fmt.Sprintf(c.locale.consistencyMid, consistency),
			Type:    domain.InsightPattern,
		}
	default:
		return domain.Insight{
			Message: fmt.Sprintf(c.locale.consistencyLow, consistency),
			Type:    domain.InsightSuggestion,
		}
	}
}
