package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// StatsHistoryRepository persists one stats snapshot per dataset load so
// load-over-load trends survive restarts. The live dashboard never reads
// these back into its derivation pipeline.
type StatsHistoryRepository interface {
	Record(ctx context.Context, record *domain.SnapshotRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.SnapshotRecord, error)
}

type statsHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewStatsHistoryRepository returns a Postgres-backed implementation.
func NewStatsHistoryRepository(pool *pgxpool.Pool) StatsHistoryRepository {
	return &statsHistoryRepository{pool: pool}
}

func (r *statsHistoryRepository) Record(ctx context.Context, record *domain.SnapshotRecord) error {
	const query = `
        INSERT INTO stats_history
            (id, dataset_id, total, high_priority, categories, critical_pending, pending, on_hold, out_of_rule, trend)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING recorded_at`

	return r.pool.QueryRow(ctx, query,
		record.ID,
		record.DatasetID,
		record.Snapshot.Total,
		record.Snapshot.HighPriority,
		record.Snapshot.Categories,
		record.Snapshot.CriticalPending,
		record.Snapshot.Pending,
		record.Snapshot.OnHold,
		record.Snapshot.OutOfRule,
		record.Snapshot.Trend,
	).Scan(&record.RecordedAt)
}

func (r *statsHistoryRepository) ListRecent(ctx context.Context, limit int) ([]domain.SnapshotRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
        SELECT id, dataset_id, total, high_priority, categories, critical_pending, pending, on_hold, out_of_rule, trend, recorded_at
        FROM stats_history
        ORDER BY recorded_at DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SnapshotRecord
	for rows.Next() {
		var record domain.SnapshotRecord
		if err := rows.Scan(
			&record.ID,
			&record.DatasetID,
			&record.Snapshot.Total,
			&record.Snapshot.HighPriority,
			&record.Snapshot.Categories,
			&record.Snapshot.CriticalPending,
			&record.Snapshot.Pending,
			&record.Snapshot.OnHold,
			&record.Snapshot.OutOfRule,
			&record.Snapshot.Trend,
			&record.RecordedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
