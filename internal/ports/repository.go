package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"explorerCache/internal/domain"
)

// IRefreshRepository — контракт хранения истории сбоев апстрима.
type IRefreshRepository interface {
	SaveFailures(ctx context.Context, records []domain.RefreshRecord) error
	Failures(ctx context.Context, limit int) ([]domain.RefreshRecord, error)
	Ping(ctx context.Context) error
}
