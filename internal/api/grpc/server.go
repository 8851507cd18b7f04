package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"explorerCache/internal/api/grpc/health"
	"explorerCache/internal/api/grpc/interceptors"
	"explorerCache/internal/ports"
)

// Config — настройки gRPC-сервера. Переменные: EXPLORER_GRPC_*.
type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Addr    string `envconfig:"ADDR" default:":9090"`
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer создаёт gRPC-сервер с health-сервисом кэша. Логирующий интерцептор пишет метод, latency_ms и grpc_code.
func NewServer(addr string, cache ports.IHomeCache, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	healthpb.RegisterHealthServer(s, health.New(cache, log))
	reflection.Register(s)
	return &Server{grpc: s, addr: addr}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом listener.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
