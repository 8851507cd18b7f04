package pg

import (
	"context"
)

const createRefreshFailuresTable = `
CREATE TABLE IF NOT EXISTS refresh_failures (
	id         SERIAL PRIMARY KEY,
	seq        BIGINT NOT NULL,
	slot       VARCHAR(32) NOT NULL,
	error      TEXT NOT NULL,
	latency_ms DOUBLE PRECISION NOT NULL,
	started_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS refresh_failures_started_at_idx ON refresh_failures (started_at DESC);
`

// Migrate создаёт таблицу refresh_failures, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createRefreshFailuresTable)
	return err
}
