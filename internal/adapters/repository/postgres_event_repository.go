package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

var _ domain.EventRepository = (*PostgresEventRepository)(nil)

const uniqueViolation = "23505"

const eventColumns = `id, name, category, timestamp, compliance_level, notes, created_at`

type PostgresEventRepository struct {
	db *sqlx.DB
}

func NewPostgresEventRepository(db *sqlx.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO events (
			id, name, category, timestamp,
			compliance_level, notes, created_at
		) VALUES (
			:id, :name, :category, :timestamp,
			:compliance_level, :notes, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEventConflict
		}
		return err
	}
	return nil
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	event.Timestamp = event.Timestamp.UTC()
	return &event, nil
}

func (r *PostgresEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY timestamp DESC`
	return r.selectEvents(ctx, query)
}

func (r *PostgresEventRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE category = $1
		ORDER BY timestamp DESC`
	return r.selectEvents(ctx, query, category)
}

func (r *PostgresEventRepository) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE timestamp >= $1
		  AND timestamp <= $2
		ORDER BY timestamp DESC`
	return r.selectEvents(ctx, query, from.UTC(), to.UTC())
}

func (r *PostgresEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PostgresEventRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM events`)
	return count, err
}

func (r *PostgresEventRepository) selectEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	events := []*domain.Event{}

	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, err
	}
	for _, e := range events {
		e.Timestamp = e.Timestamp.UTC()
	}
	return events, nil
}

// isUniqueViolation understands both the pgx and the lib/pq driver errors.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
