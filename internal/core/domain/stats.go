package domain

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// NoCategory is reported as the most common category of an empty month.
const NoCategory = "none"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type InsightType string

const (
	InsightAchievement InsightType = "achievement"
	InsightPattern     InsightType = "pattern"
	InsightSuggestion  InsightType = "suggestion"
	InsightWarning     InsightType = "warning"
)

type Insight struct {
	Message string      `json:"message"`
	Type    InsightType `json:"insight_type"`
}

type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

type DailyStats struct {
	Date              string          `json:"date"`
	TotalEvents       int             `json:"total_events"`
	ByCategory        []CategoryCount `json:"by_category"`
	AverageCompliance float64         `json:"average_compliance"`
}

type WeeklyStats struct {
	WeekStart     string       `json:"week_start"`
	WeekEnd       string       `json:"week_end"`
	Days          []DailyStats `json:"days"`
	TotalEvents   int          `json:"total_events"`
	MostActiveDay string       `json:"most_active_day"`
	Trend         Trend        `json:"trend"`
}

type MonthlyStats struct {
	Month                 string        `json:"month"`
	Year                  int           `json:"year"`
	Weeks                 []WeeklyStats `json:"weeks"`
	TotalEvents           int           `json:"total_events"`
	ConsistencyPercentage float64       `json:"consistency_percentage"`
	MostCommonCategory    string        `json:"most_common_category"`
	Insights              []string      `json:"insights"`
}
