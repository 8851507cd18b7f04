package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"explorerCache/internal/domain"
)

// IRefreshAnalytics — запись отчётов об обновлениях в хранилище для аналитики (например, ClickHouse).
type IRefreshAnalytics interface {
	WriteRefresh(ctx context.Context, report domain.RefreshReport) error
}
