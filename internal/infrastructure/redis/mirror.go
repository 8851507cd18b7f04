package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"explorerCache/internal/domain"
	"explorerCache/internal/ports"
)

var _ ports.ISnapshotMirror = (*Mirror)(nil)

// Mirror реализует ports.ISnapshotMirror через Redis: ключ — префикс + имя слота, значение — JSON агрегата.
// Нужен соседним сервисам, которые читают снимок главной, не ходя в апстрим.
type Mirror struct {
	cli    *Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// NewMirror возвращает зеркало снимка. ttl == 0 — ключи без срока жизни.
func NewMirror(cli *Client, prefix string, ttl time.Duration, log *slog.Logger) *Mirror {
	return &Mirror{cli: cli, prefix: prefix, ttl: ttl, log: log}
}

// SetSlot перезаписывает значение слота.
func (m *Mirror) SetSlot(ctx context.Context, slot domain.Slot, value json.RawMessage) error {
	if err := m.cli.Set(ctx, m.key(slot), []byte(value), m.ttl).Err(); err != nil {
		m.log.Debug("mirror set failed", "slot", slot, "error", err)
		return err
	}
	return nil
}

// GetSlot читает значение слота. Если ключа нет — found == false.
// Сам сервис зеркало только пишет; читают его другие процессы с тем же Redis
// (реплики эксплорера, фоновые задачи), им нужен тот же формат ключа.
func (m *Mirror) GetSlot(ctx context.Context, slot domain.Slot) (value json.RawMessage, found bool, err error) {
	b, err := m.cli.Get(ctx, m.key(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return nil, false, nil
		}
		m.log.Debug("mirror get failed", "slot", slot, "error", err)
		return nil, false, err
	}
	return json.RawMessage(b), true, nil
}

func (m *Mirror) key(slot domain.Slot) string {
	return m.prefix + string(slot)
}
