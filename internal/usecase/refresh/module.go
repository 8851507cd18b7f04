package refresh

import (
	"log/slog"
	"time"

	"explorerCache/internal/ports"
)

// DefaultTimeout ограничивает каждый побочный эффект обновления: кэш ждёт слушателя.
const DefaultTimeout = 500 * time.Millisecond

var _ ports.IRefreshUseCase = (*UseCase)(nil)

// UseCase — обработка обновлений кэша: зеркало в Redis, история сбоев, события в Kafka, аналитика.
// Любая зависимость может быть nil — тогда соответствующий шаг пропускается.
type UseCase struct {
	repo      ports.IRefreshRepository
	mirror    ports.ISnapshotMirror
	broker    ports.IProducer
	analytics ports.IRefreshAnalytics
	timeout   time.Duration
	log       *slog.Logger
}

// New создаёт юзкейс обновлений.
func New(repo ports.IRefreshRepository, mirror ports.ISnapshotMirror, broker ports.IProducer, analytics ports.IRefreshAnalytics, timeout time.Duration, log *slog.Logger) *UseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &UseCase{repo: repo, mirror: mirror, broker: broker, analytics: analytics, timeout: timeout, log: log}
}
