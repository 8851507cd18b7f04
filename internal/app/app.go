package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	apigrpc "explorerCache/internal/api/grpc"
	apihttp "explorerCache/internal/api/http"
	"explorerCache/internal/api/http/controllers/home"
	"explorerCache/internal/api/http/controllers/system"
	"explorerCache/internal/domain"
	"explorerCache/internal/infrastructure/click"
	"explorerCache/internal/infrastructure/kafka"
	"explorerCache/internal/infrastructure/metrics"
	"explorerCache/internal/infrastructure/mongo"
	"explorerCache/internal/infrastructure/pg"
	"explorerCache/internal/infrastructure/redis"
	"explorerCache/internal/infrastructure/upstream"
	"explorerCache/internal/pkg/logger"
	"explorerCache/internal/ports"
	"explorerCache/internal/usecase/homecache"
	"explorerCache/internal/usecase/refresh"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (внешние зависимости подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run запускает приложение и блокируется до SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

// backends — опциональные адаптеры. Выключенный адаптер остаётся nil-интерфейсом.
type backends struct {
	repo      ports.IRefreshRepository
	mirror    ports.ISnapshotMirror
	producer  ports.IProducer
	analytics ports.IRefreshAnalytics
	deps      map[string]ports.IPinger
	closers   []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func (a *App) run(ctx context.Context) error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	b, err := a.connect(ctx, log)
	defer b.close()
	if err != nil {
		return err
	}

	uc := refresh.New(b.repo, b.mirror, b.producer, b.analytics, a.cfg.Cache.SideEffectTimeout, log)

	cli := upstream.NewClient(&a.cfg.Upstream)
	sources := []homecache.Source{
		{Slot: domain.SlotHome, Upstream: upstream.NewFetcher(cli, domain.SlotHome, a.cfg.Upstream.HomeURL, a.cfg.Upstream.Timeout, log)},
		{Slot: domain.SlotHomeLists, Upstream: upstream.NewFetcher(cli, domain.SlotHomeLists, a.cfg.Upstream.HomeListsURL, a.cfg.Upstream.Timeout, log)},
	}
	opts := []homecache.Option{
		homecache.WithInterval(a.cfg.Cache.Interval),
		homecache.WithMetrics(metrics.NewCacheMetrics(prometheus.DefaultRegisterer)),
		homecache.WithListener(uc),
	}
	if a.cfg.Cache.WarmOnStart {
		opts = append(opts, homecache.WithWarmOnStart())
	}
	cache, err := homecache.New(sources, log, opts...)
	if err != nil {
		return fmt.Errorf("home cache: %w", err)
	}
	if err := cache.Start(ctx); err != nil {
		return fmt.Errorf("home cache: %w", err)
	}
	defer cache.Stop()

	g, gctx := errgroup.WithContext(ctx)

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(cache, b.deps, nil, log),
		home.New(cache, uc, log))
	g.Go(func() error { return srv.Start(gctx) })

	if a.cfg.Grpc.Enabled {
		grpcSrv := apigrpc.NewServer(a.cfg.Grpc.Addr, cache, log)
		g.Go(grpcSrv.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return grpcSrv.Stop(shutdownCtx)
		})
	}

	if a.cfg.Kafka.Enabled && b.analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		g.Go(func() error {
			defer consumer.Close()
			if err := consumer.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("kafka consumer: %w", err)
			}
			return nil
		})
	}

	log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"grpc", a.cfg.Grpc.Addr,
		"history", a.cfg.HistoryBackend,
		"interval", a.cfg.Cache.Interval.String())

	return g.Wait()
}

// connect поднимает включённые в конфиге адаптеры. При ошибке уже открытые закрываются через close.
func (a *App) connect(ctx context.Context, log *slog.Logger) (*backends, error) {
	b := &backends{deps: map[string]ports.IPinger{}}

	switch a.cfg.HistoryBackend {
	case HistoryPg:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return b, fmt.Errorf("db: %w", err)
		}
		b.closers = append(b.closers, func() { _ = db.Close() })
		if err := pg.Migrate(ctx, db); err != nil {
			return b, fmt.Errorf("migrate: %w", err)
		}
		b.repo = pg.NewFailureRepo(db, log)
		b.deps["postgres"] = db
	case HistoryMongo:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return b, fmt.Errorf("mongo: %w", err)
		}
		b.closers = append(b.closers, func() { _ = client.Close(context.Background()) })
		repo := mongo.NewFailureRepo(client, log)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return b, fmt.Errorf("mongo indexes: %w", err)
		}
		b.repo = repo
		b.deps["mongo"] = client
	}

	if a.cfg.Redis.Enabled {
		rdb, err := redis.New(&a.cfg.Redis)
		if err != nil {
			return b, fmt.Errorf("redis: %w", err)
		}
		b.closers = append(b.closers, func() { _ = rdb.Close() })
		b.mirror = redis.NewMirror(rdb, a.cfg.Redis.KeyPrefix, a.cfg.Redis.TTL, log)
		b.deps["redis"] = rdb
	}

	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return b, fmt.Errorf("clickhouse: %w", err)
		}
		b.closers = append(b.closers, func() { _ = ch.Close() })
		writer := click.NewRefreshWriter(ch, log)
		if err := writer.EnsureTable(ctx); err != nil {
			return b, fmt.Errorf("clickhouse table: %w", err)
		}
		b.analytics = writer
		b.deps["clickhouse"] = ch
	}

	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		b.closers = append(b.closers, func() { _ = producer.Close() })
		b.producer = producer
	}

	return b, nil
}
