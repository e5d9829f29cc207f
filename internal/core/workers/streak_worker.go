package workers

import (
	"context"
	"log/slog"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

type EventLister interface {
	List(ctx context.Context) ([]*domain.Event, error)
}

type StreakCalculator interface {
	CurrentStreak(events []*domain.Event) int
}

// Milestones are the streak lengths, in days, worth announcing.
var Milestones = []int{3, 7, 14, 30, 60, 100, 365}

type StreakJob struct {
	Reason string
}

// StreakWorker recomputes the current streak after writes and announces milestones.
type StreakWorker struct {
	repo EventLister
	calc StreakCalculator
	jobs chan StreakJob
	log  *slog.Logger

	last int
}

func NewStreakWorker(repo EventLister, calc StreakCalculator, log *slog.Logger) *StreakWorker {
	if log == nil {
		log = slog.Default()
	}
	return &StreakWorker{
		repo: repo,
		calc: calc,
		jobs: make(chan StreakJob, 100),
		log:  log.With("component", "worker"),
	}
}

// Start loads the current streak, so milestones already reached before a restart
// are not announced again, then consumes jobs until ctx is cancelled.
func (w *StreakWorker) Start(ctx context.Context) {
	w.prime(ctx)

	go func() {
		w.log.Info("streak worker started", "current", w.last)
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.log.Info("streak worker shutting down")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(reason string) {
	select {
	case w.jobs <- StreakJob{Reason: reason}:
	default:
		w.log.Warn("streak worker queue full, dropping job", "reason", reason)
	}
}

func (w *StreakWorker) prime(ctx context.Context) {
	events, err := w.repo.List(ctx)
	if err != nil {
		w.log.Warn("failed to load initial streak, starting from zero", "error", err)
		return
	}
	w.last = w.calc.CurrentStreak(events)
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	events, err := w.repo.List(ctx)
	if err != nil {
		w.log.Error("failed to load events", "reason", job.Reason, "error", err)
		return
	}

	current := w.calc.CurrentStreak(events)
	previous := w.last
	w.last = current

	if current == previous {
		return
	}

	w.log.Debug("streak changed", "previous", previous, "current", current, "reason", job.Reason)
	if m, ok := reachedMilestone(previous, current); ok {
		w.log.Info("streak milestone reached", "days", m, "current", current)
	}
}

// reachedMilestone reports the largest milestone crossed when going from previous to current.
func reachedMilestone(previous, current int) (int, bool) {
	reached, ok := 0, false
	for _, m := range Milestones {
		if previous < m && current >= m {
			reached, ok = m, true
		}
	}
	return reached, ok
}
