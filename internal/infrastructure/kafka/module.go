package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config — настройки Kafka. Переменные: EXPLORER_KAFKA_*.
type Config struct {
	Enabled      bool          `envconfig:"ENABLED" default:"false"`
	Brokers      string        `envconfig:"BROKERS" default:"localhost:9092"` // через запятую, если несколько
	Topic        string        `envconfig:"TOPIC" default:"explorer-cache-refresh"`
	GroupID      string        `envconfig:"GROUP_ID" default:"explorer-cache"` // для consumer group
	BatchTimeout time.Duration `envconfig:"BATCH_TIMEOUT" default:"10ms"`
	RetryBackoff time.Duration `envconfig:"RETRY_BACKOFF" default:"500ms"` // первая пауза перед повтором сообщения
}

// brokersSlice возвращает список брокеров из строки (через запятую).
func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Client — конфиг и фабрики продюсера/консьюмера. Подключение к брокеру при создании Writer/Reader.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Producer создаёт продюсера для отправки событий в топик. После использования вызови Close().
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(c.cfg.brokersSlice()...),
		Topic:        c.cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: c.cfg.BatchTimeout,
	}
	return &Producer{w: w}
}

// Consumer создаёт консьюмера для чтения из топика (consumer group). После использования вызови Close().
func (c *Client) Consumer() *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.brokersSlice(),
		Topic:   c.cfg.Topic,
		GroupID: c.cfg.GroupID,
	})
	return &Consumer{r: r}
}
