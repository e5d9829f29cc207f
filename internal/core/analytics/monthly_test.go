package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

func TestMonthlyStats_FullMonth(t *testing.T) {
	calc := NewCalculator()
	events := dailyEvents(at(2024, 1, 1, 0, 0), at(2024, 1, 31, 0, 0), domain.CategoryExercise)

	stats := calc.MonthlyStats(events, 2024, time.January)

	assert.Equal(t, "January", stats.Month)
	assert.Equal(t, 2024, stats.Year)
	assert.Equal(t, 31, stats.TotalEvents)
	assert.Equal(t, 100.0, stats.ConsistencyPercentage)
	assert.Equal(t, "exercise", stats.MostCommonCategory)

	require.Len(t, stats.Weeks, 5)
	assert.Equal(t, "2024-01-01", stats.Weeks[0].WeekStart)
	assert.Equal(t, "2024-01-29", stats.Weeks[4].WeekStart)

	require.Len(t, stats.Insights, 3)
	assert.Equal(t, "Excellent consistency! You were active on 100.0% of the days this month.", stats.Insights[0])
	assert.Equal(t, "You are most active in the morning (around 8:00).", stats.Insights[1])
	assert.Equal(t, "Your most active day is Monday.", stats.Insights[2])
}

func TestMonthlyStats_EmptyMonth(t *testing.T) {
	calc := NewCalculator()

	stats := calc.MonthlyStats(nil, 2024, time.June)

	assert.Equal(t, 0, stats.TotalEvents)
	assert.Equal(t, 0.0, stats.ConsistencyPercentage)
	assert.Equal(t, domain.NoCategory, stats.MostCommonCategory)
	assert.Equal(t, []string{"Consistency is still low (0.0%). Try setting a daily reminder."}, stats.Insights)
	assert.NotEmpty(t, stats.Weeks)
}

func TestMonthlyStats_PartialEdgeWeeks(t *testing.T) {
	calc := NewCalculator()

	// March 2024 starts on a Friday, so the first week begins on 26 February.
	events := []*domain.Event{
		event(at(2024, 2, 27, 9, 0), domain.CategoryHealth),
		event(at(2024, 3, 1, 9, 0), domain.CategorySleep),
		event(at(2024, 3, 2, 21, 0), domain.CategorySleep),
		event(at(2024, 4, 1, 9, 0), domain.CategoryHealth),
	}

	stats := calc.MonthlyStats(events, 2024, time.March)

	require.Len(t, stats.Weeks, 5)
	first := stats.Weeks[0]
	assert.Equal(t, "2024-02-26", first.WeekStart)
	assert.Equal(t, 0, first.Days[1].TotalEvents, "days outside the month carry no events")
	assert.Equal(t, 2, first.TotalEvents)

	last := stats.Weeks[len(stats.Weeks)-1]
	assert.Equal(t, "2024-03-25", last.WeekStart)
	assert.Equal(t, 0, last.TotalEvents, "April events must not leak into the last week")

	assert.Equal(t, 2, stats.TotalEvents)
	assert.InDelta(t, 2.0/31.0*100, stats.ConsistencyPercentage, 1e-9)
	assert.Equal(t, "sleep", stats.MostCommonCategory)
	assert.Equal(t, "Consistency is still low (6.5%). Try setting a daily reminder.", stats.Insights[0])
}

func TestMonthlyStats_CalendarEdges(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantWeeks []string
	}{
		{
			name:      "Leap February",
			year:      2024,
			month:     time.February,
			wantWeeks: []string{"2024-01-29", "2024-02-05", "2024-02-12", "2024-02-19", "2024-02-26"},
		},
		{
			name:      "December rolls into the next year",
			year:      2023,
			month:     time.December,
			wantWeeks: []string{"2023-11-27", "2023-12-04", "2023-12-11", "2023-12-18", "2023-12-25"},
		},
		{
			name:      "Month ending on a Monday gets a one-day week",
			year:      2024,
			month:     time.September,
			wantWeeks: []string{"2024-08-26", "2024-09-02", "2024-09-09", "2024-09-16", "2024-09-23", "2024-09-30"},
		},
		{
			name:      "February starting on Monday",
			year:      2021,
			month:     time.February,
			wantWeeks: []string{"2021-02-01", "2021-02-08", "2021-02-15", "2021-02-22"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := calc.MonthlyStats(nil, tt.year, tt.month)

			got := make([]string, 0, len(stats.Weeks))
			for _, w := range stats.Weeks {
				got = append(got, w.WeekStart)
			}
			assert.Equal(t, tt.wantWeeks, got)
		})
	}
}

func TestMonthlyStats_NormalisesOutOfRangeMonth(t *testing.T) {
	calc := NewCalculator()
	events := []*domain.Event{event(at(2025, time.January, 15, 9, 0), domain.CategoryHealth)}

	t.Run("Month 13 is January of the next year", func(t *testing.T) {
		stats := calc.MonthlyStats(events, 2024, 13)

		assert.Equal(t, "January", stats.Month)
		assert.Equal(t, 2025, stats.Year)
		assert.Equal(t, 1, stats.TotalEvents)
		require.NotEmpty(t, stats.Weeks)
		assert.Equal(t, "2024-12-30", stats.Weeks[0].WeekStart)
	})

	t.Run("Month 0 is December of the previous year", func(t *testing.T) {
		stats := calc.MonthlyStats(events, 2025, 0)

		assert.Equal(t, "December", stats.Month)
		assert.Equal(t, 2024, stats.Year)
		assert.Equal(t, 0, stats.TotalEvents)
	})
}

func TestMonthlyStats_WeeksCoverWholeMonth(t *testing.T) {
	calc := NewCalculator()

	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			stats := calc.MonthlyStats(nil, year, month)

			covered := make(map[string]bool)
			for _, w := range stats.Weeks {
				start, err := time.Parse(domain.DateLayout, w.WeekStart)
				require.NoError(t, err)
				assert.Equal(t, time.Monday, start.Weekday(), "%d-%02d week %s", year, month, w.WeekStart)
				require.Len(t, w.Days, 7)
				for _, d := range w.Days {
					covered[d.Date] = true
				}
			}

			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
				assert.True(t, covered[d.Format(domain.DateLayout)], "%s not covered", d.Format(domain.DateLayout))
			}
		}
	}
}

func TestMonthlyStats_ConsistencyTiers(t *testing.T) {
	calc := NewCalculator()

	t.Run("Half of April is the pattern tier", func(t *testing.T) {
		events := dailyEvents(at(2024, 4, 1, 0, 0), at(2024, 4, 15, 0, 0), domain.CategoryHealth)
		stats := calc.MonthlyStats(events, 2024, time.April)

		assert.Equal(t, 50.0, stats.ConsistencyPercentage)
		assert.Equal(t, "Fairly consistent (50.0%). Keep it up!", stats.Insights[0])
	})

	t.Run("Eighty percent is the achievement tier", func(t *testing.T) {
		events := dailyEvents(at(2024, 4, 1, 0, 0), at(2024, 4, 24, 0, 0), domain.CategoryHealth)
		stats := calc.MonthlyStats(events, 2024, time.April)

		assert.InDelta(t, 80.0, stats.ConsistencyPercentage, 1e-9)
		assert.Contains(t, stats.Insights[0], "Excellent consistency!")
	})

	t.Run("Several events on one day count once", func(t *testing.T) {
		events := []*domain.Event{
			event(at(2024, 4, 3, 7, 0), domain.CategoryHealth),
			event(at(2024, 4, 3, 12, 0), domain.CategoryHealth),
			event(at(2024, 4, 3, 19, 0), domain.CategoryHealth),
		}
		stats := calc.MonthlyStats(events, 2024, time.April)

		assert.Equal(t, 3, stats.TotalEvents)
		assert.InDelta(t, 100.0/30.0, stats.ConsistencyPercentage, 1e-9)
	})
}

func TestMonthlyStats_MostCommonCategoryTieBreak(t *testing.T) {
	calc := NewCalculator()

	events := []*domain.Event{
		event(at(2024, 5, 2, 8, 0), domain.CategorySleep),
		event(at(2024, 5, 3, 8, 0), domain.CategorySleep),
		event(at(2024, 5, 4, 8, 0), domain.CategoryHealth),
		event(at(2024, 5, 5, 8, 0), domain.CategoryHealth),
		event(at(2024, 5, 6, 8, 0), domain.CategoryOther),
	}

	stats := calc.MonthlyStats(events, 2024, time.May)
	assert.Equal(t, "health", stats.MostCommonCategory)
}

func TestMonthlyStats_Locale(t *testing.T) {
	calc := NewCalculator(WithLocale(Indonesian))
	events := dailyEvents(at(2024, 8, 1, 0, 0), at(2024, 8, 31, 0, 0), domain.CategoryHealth)

	stats := calc.MonthlyStats(events, 2024, time.August)

	assert.Equal(t, "Agustus", stats.Month)
	assert.Equal(t, "Konsistensi sangat baik! Kamu aktif 100.0% dari hari dalam bulan ini.", stats.Insights[0])
	assert.Equal(t, "Kamu paling aktif di waktu pagi (sekitar jam 8).", stats.Insights[1])
}
