package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// contentType — формат тела события. Консьюмер разбирает только JSON.
const contentType = "application/json"

// Producer публикует отчёты об обновлениях кэша, реализует ports.IProducer.
//
// Ключ сообщения — номер обновления (seq) в десятичной записи, тело — JSON domain.RefreshReport
// без значений слотов. Балансировщик Hash кладёт сообщения с одним ключом в одну партицию,
// так что повторная отправка того же отчёта не обгоняет исходную.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send отправляет одно событие и ждёт подтверждения брокера (или отмены ctx).
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	if err := p.w.WriteMessages(ctx, message(key, value)); err != nil {
		return fmt.Errorf("kafka send to %s: %w", p.w.Topic, err)
	}
	return nil
}

func message(key, value []byte) kafka.Message {
	return kafka.Message{
		Key:     key,
		Value:   value,
		Headers: []kafka.Header{{Key: "content-type", Value: []byte(contentType)}},
	}
}

// Close дожидается отправки буфера и закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
