package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"explorerCache/internal/domain"
)

// IRefreshListener получает отчёт после каждого обновления кэша. Вызывается из одной горутины, по порядку обновлений.
type IRefreshListener interface {
	OnRefresh(ctx context.Context, report domain.RefreshReport)
}

// IRefreshUseCase — контракт обработки обновлений кэша (зеркало, история сбоев, события из Kafka).
type IRefreshUseCase interface {
	IRefreshListener
	Failures(ctx context.Context, limit int) ([]domain.RefreshRecord, error)
	HandleRefreshEvent(ctx context.Context, report domain.RefreshReport) error
}
