package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"explorerCache/internal/domain"
	"explorerCache/internal/ports"
)

var _ ports.IRefreshRepository = (*FailureRepo)(nil)

// FailureRepo реализует ports.IRefreshRepository для PostgreSQL.
type FailureRepo struct {
	db  *DB
	log *slog.Logger
}

// NewFailureRepo возвращает репозиторий истории сбоев.
func NewFailureRepo(db *DB, log *slog.Logger) *FailureRepo {
	return &FailureRepo{db: db, log: log}
}

// SaveFailures сохраняет сбои одного обновления одной транзакцией.
func (r *FailureRepo) SaveFailures(ctx context.Context, records []domain.RefreshRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, rec := range records {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO refresh_failures (seq, slot, error, latency_ms, started_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			int64(rec.Seq), string(rec.Slot), rec.Error, durationMs(rec.Latency), rec.StartedAt)
		if err != nil {
			r.log.Debug("SaveFailures failed", "error", err)
			return err
		}
	}
	return tx.Commit()
}

// Failures возвращает последние сбои (новые сначала).
func (r *FailureRepo) Failures(ctx context.Context, limit int) ([]domain.RefreshRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, seq, slot, error, latency_ms, started_at
		 FROM refresh_failures ORDER BY started_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Debug("Failures failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.RefreshRecord
	for rows.Next() {
		var (
			rec     domain.RefreshRecord
			seq     int64
			slot    string
			latency float64
		)
		if err := rows.Scan(&rec.ID, &seq, &slot, &rec.Error, &latency, &rec.StartedAt); err != nil {
			return nil, err
		}
		rec.Seq = uint64(seq)
		rec.Slot = domain.Slot(slot)
		rec.Latency = time.Duration(latency * float64(time.Millisecond))
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *FailureRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
