package ports

//go:generate mockgen -source=upstream.go -destination=../mocks/upstream_mock.go -package=mocks

import (
	"context"
	"encoding/json"
)

// IUpstream — запрос одного агрегата к бэкенду эксплорера.
type IUpstream interface {
	Fetch(ctx context.Context) (json.RawMessage, error)
}
