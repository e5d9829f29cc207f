package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

// StatsService fetches the full event list once per call and hands it to the
// analytics engine.
type StatsService struct {
	repo domain.EventRepository
	calc *analytics.Calculator
}

func NewStatsService(repo domain.EventRepository, calc *analytics.Calculator) *StatsService {
	return &StatsService{
		repo: repo,
		calc: calc,
	}
}

func (s *StatsService) snapshot(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.WrapStorage("list events", err)
	}
	return events, nil
}

func (s *StatsService) GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := s.calc.DailyStats(events, date)
	return &stats, nil
}

func (s *StatsService) GetWeeklyStats(ctx context.Context, weekStart time.Time) (*domain.WeeklyStats, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := s.calc.WeeklyStats(events, weekStart)
	return &stats, nil
}

func (s *StatsService) GetMonthlyStats(ctx context.Context, year int, month time.Month) (*domain.MonthlyStats, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := s.calc.MonthlyStats(events, year, month)
	return &stats, nil
}

func (s *StatsService) GetCurrentStreak(ctx context.Context) (int, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return s.calc.CurrentStreak(events), nil
}

// Today is the current calendar date of the engine, used as the default date.
func (s *StatsService) Today() time.Time {
	return s.calc.Today()
}
