package system

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"explorerCache/internal/ports"
)

const pingTimeout = 2 * time.Second

// Controller — системные маршруты: liveness, readiness, метрики.
type Controller struct {
	cache   ports.IHomeCache
	deps    map[string]ports.IPinger
	metrics http.Handler
	log     *slog.Logger
}

// New создаёт системный контроллер. deps — внешние зависимости для readiness, по имени.
// metrics — обработчик /metrics; nil — глобальный реестр Prometheus.
func New(cache ports.IHomeCache, deps map[string]ports.IPinger, metrics http.Handler, log *slog.Logger) *Controller {
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	return &Controller{cache: cache, deps: deps, metrics: metrics, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readiness", c.ready)
	r.GET("/metrics", gin.WrapH(c.metrics))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if c.cache.Cold() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": "cache is cold"})
		return
	}

	names := make([]string, 0, len(c.deps))
	for name := range c.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), pingTimeout)
		err := c.deps[name].Ping(pingCtx)
		cancel()
		if err != nil {
			c.log.Warn("ready check failed", "dependency", name, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "dependency": name, "error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
