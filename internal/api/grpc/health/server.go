package health

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"explorerCache/internal/ports"
)

// ServiceName — имя сервиса кэша в health-протоколе. Пустое имя означает сервер целиком.
const ServiceName = "explorer.cache.v1.HomeCache"

// WatchInterval — как часто Watch перепроверяет состояние кэша.
var WatchInterval = time.Second

// Server реализует grpc.health.v1.Health: SERVING, как только кэш прогрет.
type Server struct {
	healthpb.UnimplementedHealthServer
	cache ports.IHomeCache
	log   *slog.Logger
}

// New создаёт health-сервис поверх кэша.
func New(cache ports.IHomeCache, log *slog.Logger) *Server {
	return &Server{cache: cache, log: log}
}

func (s *Server) Check(_ context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	st, err := s.serving(req.GetService())
	if err != nil {
		return nil, err
	}
	return &healthpb.HealthCheckResponse{Status: st}, nil
}

// Watch шлёт текущее состояние сразу и затем при каждом изменении, пока клиент не отключится.
// Для неизвестного сервиса шлёт SERVICE_UNKNOWN и держит поток открытым: набор сервисов
// не меняется, других обновлений не будет.
func (s *Server) Watch(req *healthpb.HealthCheckRequest, stream healthpb.Health_WatchServer) error {
	service := req.GetService()
	if _, err := s.serving(service); err != nil {
		if err := stream.Send(&healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVICE_UNKNOWN}); err != nil {
			return err
		}
		<-stream.Context().Done()
		return status.FromContextError(stream.Context().Err()).Err()
	}

	ticker := time.NewTicker(WatchInterval)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_UNKNOWN
	for {
		st, _ := s.serving(service)
		if st != last {
			if err := stream.Send(&healthpb.HealthCheckResponse{Status: st}); err != nil {
				return err
			}
			last = st
		}
		select {
		case <-stream.Context().Done():
			return status.FromContextError(stream.Context().Err()).Err()
		case <-ticker.C:
		}
	}
}

func (s *Server) serving(service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	if service != "" && service != ServiceName {
		return healthpb.HealthCheckResponse_SERVICE_UNKNOWN, status.Errorf(codes.NotFound, "unknown service %q", service)
	}
	if s.cache.Cold() {
		return healthpb.HealthCheckResponse_NOT_SERVING, nil
	}
	return healthpb.HealthCheckResponse_SERVING, nil
}
