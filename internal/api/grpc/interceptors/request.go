package interceptors

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код. Health-пробы пишутся на уровне Debug.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		st := status.Convert(err)
		attrs := []any{"method", info.FullMethod, "latency_ms", time.Since(start).Milliseconds(), "grpc_code", st.Code()}

		level := slog.LevelInfo
		switch {
		case st.Code() == codes.NotFound:
			attrs = append(attrs, "error", st.Message())
			level = slog.LevelWarn
		case err != nil:
			attrs = append(attrs, "error", st.Message())
			level = slog.LevelError
		case strings.HasPrefix(info.FullMethod, "/grpc.health.v1.Health/"):
			level = slog.LevelDebug
		}
		log.Log(ctx, level, "grpc request", attrs...)
		return resp, err
	}
}
