package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"explorerCache/internal/domain"
	"explorerCache/internal/ports"
)

// maxRetryBackoff — потолок паузы между повторами одного сообщения.
const maxRetryBackoff = 30 * time.Second

// Consumer читает события обновлений кэша и передаёт их в use case.
type Consumer struct {
	r       *kafka.Reader
	uc      ports.IRefreshUseCase
	backoff time.Duration
	log     *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IRefreshUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.backoff = cfg.RetryBackoff
	c.log = log
	return c
}

// Message — сообщение из Kafka.
type Message = kafka.Message

// Run читает сообщения до отмены ctx. Коммит — только после успешной обработки
// или если сообщение не разбирается. Reader группы не перечитывает пропущенное сообщение,
// поэтому при ошибке use case то же сообщение повторяется здесь же.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		if err := c.process(ctx, msg); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// process вызывает handle, пока сообщение не обработано, с паузой, растущей вдвое до maxRetryBackoff.
// Ошибка возвращается только при отмене ctx.
func (c *Consumer) process(ctx context.Context, msg Message) error {
	backoff := c.backoff
	if backoff <= 0 {
		backoff = time.Second
	}
	for attempt := 1; !c.handle(ctx, msg); attempt++ {
		c.log.Warn("kafka handle failed, retrying", "attempt", attempt, "backoff", backoff.String(), "partition", msg.Partition, "offset", msg.Offset)
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
	return nil
}

// handle декодирует отчёт и вызывает use case. Возвращает true, если сообщение нужно закоммитить.
func (c *Consumer) handle(ctx context.Context, msg Message) bool {
	var report domain.RefreshReport
	if err := json.Unmarshal(msg.Value, &report); err != nil {
		c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return true
	}

	if err := c.uc.HandleRefreshEvent(ctx, report); err != nil {
		c.log.Warn("kafka handle error", "error", err, "seq", report.Seq, "partition", msg.Partition, "offset", msg.Offset)
		return false
	}
	return true
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
