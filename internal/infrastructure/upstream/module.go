package upstream

import (
	"time"

	"github.com/valyala/fasthttp"
)

// Config — адреса агрегатов бэкенда эксплорера. Переменные: EXPLORER_UPSTREAM_*.
type Config struct {
	HomeURL         string        `envconfig:"HOME_URL" default:"http://localhost:4000/api/home"`
	HomeListsURL    string        `envconfig:"HOME_LISTS_URL" default:"http://localhost:4000/api/home-lists"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"5s"`
	MaxConnsPerHost int           `envconfig:"MAX_CONNS_PER_HOST" default:"16"`
}

// NewClient создаёт общий fasthttp-клиент для всех апстримов.
func NewClient(cfg *Config) *fasthttp.Client {
	return &fasthttp.Client{
		Name:                "explorer-cache",
		ReadTimeout:         cfg.Timeout,
		WriteTimeout:        cfg.Timeout,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxIdleConnDuration: 30 * time.Second,
	}
}
