package app

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "explorerCache/internal/api/grpc"
	"explorerCache/internal/api/http"
	"explorerCache/internal/infrastructure/click"
	"explorerCache/internal/infrastructure/kafka"
	"explorerCache/internal/infrastructure/mongo"
	"explorerCache/internal/infrastructure/pg"
	"explorerCache/internal/infrastructure/redis"
	"explorerCache/internal/infrastructure/upstream"
	"explorerCache/internal/pkg/logger"
)

const AppName = "EXPLORER"

// Хранилища истории сбоев.
const (
	HistoryNone  = "none"
	HistoryPg    = "pg"
	HistoryMongo = "mongo"
)

// CacheConfig — настройки опроса. Переменные: EXPLORER_CACHE_*.
type CacheConfig struct {
	Interval          time.Duration `envconfig:"INTERVAL" default:"1s"`
	WarmOnStart       bool          `envconfig:"WARM_ON_START" default:"true"`
	SideEffectTimeout time.Duration `envconfig:"SIDE_EFFECT_TIMEOUT" default:"500ms"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом EXPLORER.
type Config struct {
	Log            logger.Config     `envconfig:"LOG"`
	Server         http.ServerConfig `envconfig:"SERVER"`
	Grpc           apigrpc.Config    `envconfig:"GRPC"`
	Cache          CacheConfig       `envconfig:"CACHE"`
	Upstream       upstream.Config   `envconfig:"UPSTREAM"`
	HistoryBackend string            `envconfig:"HISTORY_BACKEND" default:"none"`
	DB             pg.Config         `envconfig:"DB"`
	Mongo          mongo.Config      `envconfig:"MONGO"`
	Redis          redis.Config      `envconfig:"REDIS"`
	Kafka          kafka.Config      `envconfig:"KAFKA"`
	ClickHouse     click.Config      `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig проверить не может.
func (c *Config) Validate() error {
	if c.Cache.Interval <= 0 {
		return fmt.Errorf("cache interval must be positive, got %s", c.Cache.Interval)
	}
	if c.Cache.SideEffectTimeout <= 0 {
		return fmt.Errorf("side effect timeout must be positive, got %s", c.Cache.SideEffectTimeout)
	}
	switch c.HistoryBackend {
	case HistoryNone, HistoryPg, HistoryMongo:
	default:
		return fmt.Errorf("unknown history backend %q (want %s, %s or %s)", c.HistoryBackend, HistoryNone, HistoryPg, HistoryMongo)
	}
	if c.Upstream.HomeURL == "" || c.Upstream.HomeListsURL == "" {
		return fmt.Errorf("upstream urls are required")
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
