package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	enginedice "github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/logging"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

var (
	grpcPort    int
	catalogPath string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the sheet gRPC server. Settings come from SHEET_* environment variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides SHEET_GRPC_PORT)")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "content tables YAML (overrides SHEET_CATALOG_PATH)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	logger, logCloser, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		_ = logCloser.Close() // nolint:errcheck // nothing left to log to
	}()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService: deps.sheetService,
		DiceService:  deps.diceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
}

// logFunc adapts slog to the middleware logger. The middleware levels use
// the same numeric values as slog.
func logFunc(logger *slog.Logger) grpc_logging.LoggerFunc {
	return func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	}
}

// dependencies holds the services the handler needs and what must be closed
type dependencies struct {
	sheetService sheet.Service
	diceService  dicesvc.Service
	closers      []io.Closer
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			slog.Warn("Failed to close dependency", "error", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{Catalog: cat})
	if err != nil {
		return nil, err
	}

	charRepo, rollLogRepo, err := openStore(ctx, cfg, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	deps.sheetService, err = sheet.New(&sheet.Config{
		CharacterRepo: charRepo,
		Engine:        eng,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	roller, err := enginedice.NewRoller(&enginedice.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	deps.diceService, err = dicesvc.NewOrchestrator(&dicesvc.Config{
		Roller:      roller,
		RollLogRepo: rollLogRepo,
		MaxEntries:  cfg.RollLogMax,
		IdleTTL:     cfg.RollLogTTL,
		Clock:       clock.New(),
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	return deps, nil
}

// openStore builds the character repository for the configured store. The
// roll log mirror only exists on Redis.
func openStore(
	ctx context.Context,
	cfg *config.Config,
	deps *dependencies,
) (characterrepo.Repository, rolllog.Repository, error) {
	if cfg.Store == config.StoreSQLite {
		db, err := characterrepo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		deps.closers = append(deps.closers, db)

		repo, err := characterrepo.NewSQLite(ctx, &characterrepo.SQLiteConfig{DB: db, Clock: clock.New()})
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using SQLite character store", "path", cfg.SQLitePath)
		return repo, nil, nil
	}

	client, err := redis.Connect(ctx, cfg.RedisAddr, &redis.Options{DialTimeout: 5 * time.Second})
	if err != nil {
		return nil, nil, err
	}
	deps.closers = append(deps.closers, client)

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		return nil, nil, err
	}

	rollLogRepo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client:     client,
		TTL:        cfg.RollLogTTL,
		MaxEntries: cfg.RollLogMax,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Using Redis character store", "addr", cfg.RedisAddr)
	return repo, rollLogRepo, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		slog.Warn("No catalog configured, serving without content tables")
		return catalog.Empty(), nil
	}

	cat, err := catalog.LoadYAML(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}

	slog.Info("Catalog loaded", "path", path, "species", len(cat.SpeciesNames()), "skills", len(cat.Skills()))
	return cat, nil
}
