package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"explorerCache/internal/domain"
)

// IHomeCache — контракт опрашивающего кэша для транспорта (HTTP, gRPC).
type IHomeCache interface {
	Read(ctx context.Context) domain.Snapshot
	Slot(ctx context.Context, slot domain.Slot) (json.RawMessage, error)
	Status() domain.CacheStatus
	Cold() bool
}

// ISnapshotMirror — копия последних значений слотов во внешнем хранилище (например Redis).
type ISnapshotMirror interface {
	SetSlot(ctx context.Context, slot domain.Slot, value json.RawMessage) error
}

// ICacheMetrics — счётчики кэша. Реализация по умолчанию ничего не делает.
type ICacheMetrics interface {
	RefreshCompleted(d time.Duration)
	FetchObserved(slot domain.Slot, ok bool, d time.Duration)
	SlotWarmed(slot domain.Slot)
}

// IPinger — зависимость, доступность которой проверяет readiness.
type IPinger interface {
	Ping(ctx context.Context) error
}
