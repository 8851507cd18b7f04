package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"explorerCache/internal/domain"
	"explorerCache/internal/ports"
)

var _ ports.IRefreshRepository = (*FailureRepo)(nil)

// failureDoc — документ в коллекции refresh_failures (без ID — в домене ID int для совместимости с PG, при чтении оставляем 0).
type failureDoc struct {
	Seq       int64     `bson:"seq"`
	Slot      string    `bson:"slot"`
	Error     string    `bson:"error"`
	LatencyMs float64   `bson:"latency_ms"`
	StartedAt time.Time `bson:"started_at"`
}

// FailureRepo реализует ports.IRefreshRepository для MongoDB.
type FailureRepo struct {
	client *Client
	log    *slog.Logger
}

// NewFailureRepo возвращает репозиторий истории сбоев.
func NewFailureRepo(client *Client, log *slog.Logger) *FailureRepo {
	return &FailureRepo{client: client, log: log}
}

// EnsureIndexes создаёт индекс по времени для выборки последних сбоев. Вызови один раз при старте.
func (r *FailureRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.client.Coll().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "started_at", Value: -1}},
	})
	return err
}

// SaveFailures сохраняет сбои одного обновления.
func (r *FailureRepo) SaveFailures(ctx context.Context, records []domain.RefreshRecord) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]any, 0, len(records))
	for _, rec := range records {
		docs = append(docs, failureDoc{
			Seq:       int64(rec.Seq),
			Slot:      string(rec.Slot),
			Error:     rec.Error,
			LatencyMs: float64(rec.Latency) / float64(time.Millisecond),
			StartedAt: rec.StartedAt,
		})
	}
	if _, err := r.client.Coll().InsertMany(ctx, docs); err != nil {
		r.log.Debug("SaveFailures failed", "error", err)
		return err
	}
	return nil
}

// Failures возвращает последние сбои (новые сначала).
func (r *FailureRepo) Failures(ctx context.Context, limit int) ([]domain.RefreshRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("Failures failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []failureDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.RefreshRecord, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.RefreshRecord{
			Seq:       uint64(d.Seq),
			Slot:      domain.Slot(d.Slot),
			Error:     d.Error,
			Latency:   time.Duration(d.LatencyMs * float64(time.Millisecond)),
			StartedAt: d.StartedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *FailureRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}
