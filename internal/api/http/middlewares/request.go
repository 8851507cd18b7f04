package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger логирует каждый запрос: метод, путь, статус, длительность, client IP.
// Пробы пишутся на уровне Debug, чтобы не забивать лог.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery
	clientIP := c.ClientIP()
	method := c.Request.Method

	c.Next()

	level := slog.LevelInfo
	switch path {
	case "/liveness", "/readiness", "/metrics":
		level = slog.LevelDebug
	}
	if raw != "" {
		path = path + "?" + raw
	}
	slog.Log(c.Request.Context(), level, "request",
		"method", method,
		"path", path,
		"status", c.Writer.Status(),
		"ip", clientIP,
		"latency_ms", time.Since(start).Milliseconds(),
	)
}
