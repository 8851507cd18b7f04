package home

import (
	"time"

	"explorerCache/internal/domain"
)

// FailureItem — одна запись истории сбоев (для GET /api/v1/cache/failures).
type FailureItem struct {
	ID        int         `json:"id"`
	Seq       uint64      `json:"seq"`
	Slot      domain.Slot `json:"slot"`
	Error     string      `json:"error"`
	LatencyMs int64       `json:"latencyMs"`
	StartedAt time.Time   `json:"startedAt"`
}

// FailuresResponse — ответ со списком сбоев, новые первыми.
type FailuresResponse struct {
	Items []FailureItem `json:"items"`
}

// FailuresQuery — параметры выборки истории.
type FailuresQuery struct {
	Limit int `form:"limit"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toFailureItems(list []domain.RefreshRecord) []FailureItem {
	items := make([]FailureItem, len(list))
	for i, r := range list {
		items[i] = FailureItem{
			ID:        r.ID,
			Seq:       r.Seq,
			Slot:      r.Slot,
			Error:     r.Error,
			LatencyMs: r.Latency.Milliseconds(),
			StartedAt: r.StartedAt,
		}
	}
	return items
}
