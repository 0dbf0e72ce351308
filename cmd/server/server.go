package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-mechanics/internal/config"
	"github.com/KirkDiggler/rpg-mechanics/internal/engine"
	"github.com/KirkDiggler/rpg-mechanics/internal/handlers/mechanics/v1alpha1"
	"github.com/KirkDiggler/rpg-mechanics/internal/orchestrators/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-mechanics/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-mechanics/internal/redis"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/builds"
	"github.com/KirkDiggler/rpg-mechanics/internal/repositories/catalog"
)

const shutdownTimeout = 30 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the rpg-mechanics gRPC server with the configured catalog source and build store.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().String("catalog-source", config.CatalogSourceFile, "catalog source: file, redis or sqlite")
	serverCmd.Flags().String("catalog-path", "catalog.toml", "catalog file for the file source")

	_ = viper.BindPFlag("grpc_port", serverCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("catalog.source", serverCmd.Flags().Lookup("catalog-source"))
	_ = viper.BindPFlag("catalog.path", serverCmd.Flags().Lookup("catalog-path"))
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redisclient.New(cfg.Redis.AddrList(), &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	if err := redisclient.Ping(ctx, redisClient, 5*time.Second); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	catalogRepo, watcher, closeCatalog, err := openCatalog(cfg.Catalog, redisClient)
	if err != nil {
		return err
	}
	defer closeCatalog()

	buildRepo, err := builds.NewRedis(&builds.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create build repository: %w", err)
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	svc, err := mechanics.New(&mechanics.Config{
		Engine:      eng,
		CatalogRepo: catalogRepo,
		BuildRepo:   buildRepo,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewUUID("build"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create mechanics service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{MechanicsService: svc})
	if err != nil {
		return fmt.Errorf("failed to create mechanics handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterMechanicsServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("gRPC server starting on port %d...", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	if watcher != nil {
		g.Go(func() error {
			log.Printf("Watching catalog file %s", cfg.Catalog.Path)
			return watcher.Watch(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()
		gracefulStop(srv)
		return nil
	})

	return g.Wait()
}

// openCatalog opens the configured catalog source. The returned watcher is non-nil when the
// file source should be kept in sync with disk.
func openCatalog(
	cfg config.CatalogConfig,
	redisClient redisclient.Client,
) (catalog.Repository, *catalog.FileRepository, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.CatalogSourceRedis:
		store, err := catalog.NewRedis(&catalog.RedisConfig{Client: redisClient})
		if err != nil {
			return nil, nil, noop, fmt.Errorf("failed to create redis catalog: %w", err)
		}
		return store, nil, noop, nil
	case config.CatalogSourceSQLite:
		store, err := catalog.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("failed to open sqlite catalog: %w", err)
		}
		return store, nil, func() { _ = store.Close() }, nil
	default:
		repo, err := catalog.NewFile(cfg.Path)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("failed to load catalog file: %w", err)
		}
		if !cfg.Watch {
			return repo, nil, noop, nil
		}
		return repo, repo, noop, nil
	}
}

func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		log.Println("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		log.Println("Server stopped gracefully")
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
