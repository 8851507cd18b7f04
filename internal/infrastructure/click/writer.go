package click

import (
	"context"
	"fmt"
	"log/slog"

	"explorerCache/internal/domain"
)

const refreshTable = "cache_refresh_analytics"

// RefreshWriter пишет результаты обновлений кэша в ClickHouse: одна строка на слот.
type RefreshWriter struct {
	db    *Client
	table string
	log   *slog.Logger
}

// NewRefreshWriter создаёт писатель отчётов для аналитики.
func NewRefreshWriter(db *Client, log *slog.Logger) *RefreshWriter {
	return &RefreshWriter{
		db:    db,
		table: db.database + "." + refreshTable,
		log:   log,
	}
}

// EnsureTable создаёт таблицу, если её ещё нет. Вызови один раз при старте приложения.
func (w *RefreshWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			seq UInt64,
			slot LowCardinality(String),
			ok Bool,
			error String,
			latency_ms Float64,
			started_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (started_at, slot)
		PARTITION BY toYYYYMM(started_at)`,
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteRefresh реализует ports.IRefreshAnalytics: пишет отчёт одним батчем.
func (w *RefreshWriter) WriteRefresh(ctx context.Context, report domain.RefreshReport) error {
	if len(report.Results) == 0 {
		return nil
	}

	tx, err := w.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (seq, slot, ok, error, latency_ms, started_at)", w.table))
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}
	defer stmt.Close()

	for _, r := range report.Results {
		latency := float64(r.Latency.Microseconds()) / 1000
		if _, err := stmt.ExecContext(ctx, report.Seq, string(r.Slot), r.OK, r.Error, latency, report.StartedAt); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	w.log.Debug("refresh written to clickhouse", "seq", report.Seq, "rows", len(report.Results))
	return nil
}

// CountRows возвращает число строк по номеру обновления.
func (w *RefreshWriter) CountRows(ctx context.Context, seq uint64) (int, error) {
	var n uint64
	err := w.db.DB().QueryRowContext(ctx,
		fmt.Sprintf("SELECT count() FROM %s WHERE seq = ?", w.table), seq).Scan(&n)
	return int(n), err
}
