package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

func TestGenerateInsights_ConsistencyTiers(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		consistency float64
		wantType    domain.InsightType
		wantMessage string
	}{
		{100, domain.InsightAchievement, "Excellent consistency! You were active on 100.0% of the days this month."},
		{80, domain.InsightAchievement, "Excellent consistency! You were active on 80.0% of the days this month."},
		{79.99, domain.InsightPattern, "Fairly consistent (80.0%). Keep it up!"},
		{50, domain.InsightPattern, "Fairly consistent (50.0%). Keep it up!"},
		{49.96, domain.InsightSuggestion, "Consistency is still low (50.0%). Try setting a daily reminder."},
		{0, domain.InsightSuggestion, "Consistency is still low (0.0%). Try setting a daily reminder."},
	}

	for _, tt := range tests {
		insights := calc.generateInsights(nil, tt.consistency)

		require.Len(t, insights, 1, "no events means only the consistency message")
		assert.Equal(t, tt.wantType, insights[0].Type)
		assert.Equal(t, tt.wantMessage, insights[0].Message)
	}
}

func TestGenerateInsights_Order(t *testing.T) {
	calc := NewCalculator()
	events := []*domain.Event{
		event(at(2024, 1, 3, 19, 15), domain.CategoryHealth),
		event(at(2024, 1, 10, 19, 45), domain.CategoryHealth),
		event(at(2024, 1, 11, 7, 0), domain.CategoryHealth),
	}

	insights := calc.generateInsights(events, 10)

	require.Len(t, insights, 3)
	assert.Equal(t, domain.InsightSuggestion, insights[0].Type)
	assert.Equal(t, "You are most active in the evening (around 19:00).", insights[1].Message)
	assert.Equal(t, "Your most active day is Wednesday.", insights[2].Message)
	assert.Equal(t, domain.InsightPattern, insights[1].Type)
	assert.Equal(t, domain.InsightPattern, insights[2].Type)
}

func TestGenerateInsights_TieBreaks(t *testing.T) {
	calc := NewCalculator()

	t.Run("Earliest hour wins", func(t *testing.T) {
		events := []*domain.Event{
			event(at(2024, 1, 2, 14, 0), domain.CategoryHealth),
			event(at(2024, 1, 2, 9, 0), domain.CategoryHealth),
		}
		insights := calc.generateInsights(events, 0)
		assert.Equal(t, "You are most active in the morning (around 9:00).", insights[1].Message)
	})

	t.Run("Monday-first weekday order", func(t *testing.T) {
		events := []*domain.Event{
			event(at(2024, 1, 7, 10, 0), domain.CategoryHealth), // Sunday
			event(at(2024, 1, 1, 10, 0), domain.CategoryHealth), // Monday
		}
		insights := calc.generateInsights(events, 0)
		assert.Equal(t, "Your most active day is Monday.", insights[2].Message)
	})

	t.Run("Sunday only wins with a strictly higher count", func(t *testing.T) {
		events := []*domain.Event{
			event(at(2024, 1, 7, 10, 0), domain.CategoryHealth),
			event(at(2024, 1, 14, 10, 0), domain.CategoryHealth),
			event(at(2024, 1, 2, 10, 0), domain.CategoryHealth),
		}
		insights := calc.generateInsights(events, 0)
		assert.Equal(t, "Your most active day is Sunday.", insights[2].Message)
	})
}

func TestGenerateInsights_UsesConfiguredLocation(t *testing.T) {
	calc := NewCalculator(WithLocation(time.FixedZone("WIB", 7*3600)))

	// Monday 23:00 UTC is Tuesday 06:00 in UTC+7.
	events := []*domain.Event{event(at(2024, 1, 1, 23, 0), domain.CategoryHealth)}

	insights := calc.generateInsights(events, 0)
	assert.Equal(t, "You are most active in the morning (around 6:00).", insights[1].Message)
	assert.Equal(t, "Your most active day is Tuesday.", insights[2].Message)
}

func TestLocale_Period(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "late night"},
		{4, "late night"},
		{5, "morning"},
		{11, "morning"},
		{12, "afternoon/evening"},
		{17, "afternoon/evening"},
		{18, "evening"},
		{21, "evening"},
		{22, "late night"},
		{23, "late night"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, English.period(tt.hour), "hour %d", tt.hour)
	}
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, Indonesian.Tag, ParseLocale("id").Tag)
	assert.Equal(t, Indonesian.Tag, ParseLocale("id-ID").Tag)
	assert.Equal(t, English.Tag, ParseLocale("en-GB").Tag)
	assert.Equal(t, English.Tag, ParseLocale("").Tag)
	assert.Equal(t, English.Tag, ParseLocale("not a locale").Tag)
}

func TestLocale_Names(t *testing.T) {
	assert.Equal(t, "December", English.MonthName(time.December))
	assert.Equal(t, "Desember", Indonesian.MonthName(time.December))
	assert.Equal(t, "Unknown", English.MonthName(time.Month(13)))
	assert.Equal(t, "Jumat", Indonesian.WeekdayName(time.Friday))
}
