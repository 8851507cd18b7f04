package interceptors

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func intercept(t *testing.T, method string, handlerErr error) string {
	t.Helper()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := LoggingUnaryInterceptor(log)(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: method},
		func(context.Context, any) (any, error) { return "ok", handlerErr })

	assert.Equal(t, handlerErr, err, "ошибка хендлера возвращается как есть")
	return buf.String()
}

func TestLoggingUnaryInterceptor_OK(t *testing.T) {
	out := intercept(t, "/explorer.Cache/Read", nil)

	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "method=/explorer.Cache/Read")
	assert.Contains(t, out, "grpc_code=OK")
}

func TestLoggingUnaryInterceptor_HealthIsDebug(t *testing.T) {
	out := intercept(t, "/grpc.health.v1.Health/Check", nil)

	assert.Contains(t, out, "level=DEBUG")
}

func TestLoggingUnaryInterceptor_Errors(t *testing.T) {
	out := intercept(t, "/grpc.health.v1.Health/Check", status.Error(codes.NotFound, "unknown service"))
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "grpc_code=NotFound")

	out = intercept(t, "/explorer.Cache/Read", errors.New("boom"))
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "grpc_code=Unknown")
}
