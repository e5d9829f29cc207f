package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

var _ domain.EventRepository = (*CachedEventRepository)(nil)

const (
	snapshotVersionKey = "events:version"
	defaultListTTL     = 30 * time.Minute
)

// CachedEventRepository keeps a snapshot of the full event list in Redis. Every
// statistics request reads the full list, so that is the only query worth caching.
//
// Snapshots are keyed by a version counter that every write bumps. A List that
// raced with a write stores its result under the old version, where no reader
// looks any more, and it simply expires.
type CachedEventRepository struct {
	next  domain.EventRepository
	cache *redis.Client
	ttl   time.Duration
	log   *slog.Logger
}

func NewCachedEventRepository(next domain.EventRepository, cache *redis.Client, ttl time.Duration, log *slog.Logger) *CachedEventRepository {
	if ttl <= 0 {
		ttl = defaultListTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &CachedEventRepository{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log.With("component", "cache"),
	}
}

func snapshotKey(version int64) string {
	return fmt.Sprintf("events:all:v%d", version)
}

func (r *CachedEventRepository) currentVersion(ctx context.Context) (int64, error) {
	v, err := r.cache.Get(ctx, snapshotVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (r *CachedEventRepository) invalidate(ctx context.Context) {
	if err := r.cache.Incr(ctx, snapshotVersionKey).Err(); err != nil {
		r.log.Warn("failed to bump snapshot version", "error", err)
	}
}

func (r *CachedEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	version, err := r.currentVersion(ctx)
	if err != nil {
		r.log.Warn("redis read error, bypassing cache", "error", err)
		return r.next.List(ctx)
	}
	key := snapshotKey(version)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var events []*domain.Event
		if err := json.Unmarshal([]byte(val), &events); err == nil {
			return events, nil
		}

		r.log.Warn("corrupted event snapshot, cleaning up key", "key", key)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn("redis read error", "error", err)
	}

	events, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(events); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.log.Warn("redis set error", "error", setErr)
		}
	}

	return events, nil
}

func (r *CachedEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedEventRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Event, error) {
	return r.next.ListByCategory(ctx, category)
}

func (r *CachedEventRepository) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	return r.next.ListByRange(ctx, from, to)
}

func (r *CachedEventRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

func (r *CachedEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := r.next.Create(ctx, event); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.invalidate(ctx)
	}
	return deleted, nil
}
