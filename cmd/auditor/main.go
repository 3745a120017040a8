package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hoopsledger/pickboard/internal/adapter"
	"github.com/hoopsledger/pickboard/internal/auditor"
	"github.com/hoopsledger/pickboard/internal/config"
	"github.com/hoopsledger/pickboard/internal/logger"
	"github.com/hoopsledger/pickboard/internal/messaging"
	"github.com/hoopsledger/pickboard/internal/providers/jetstream"
	"github.com/hoopsledger/pickboard/internal/registry"
	"github.com/hoopsledger/pickboard/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single audit and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAuditorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "auditor",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting warehouse auditor")

	// Connect to the warehouse
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Load team registry
	var teamRegistry registry.TeamRegistry
	if cfg.TeamsRegistryPath != "" {
		loader := registry.NewTeamRegistryLoader(adapter.NewFileSystem(), jsonAdapter)
		teamRegistry, err = loader.Load(cfg.TeamsRegistryPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load team registry",
				zap.Error(err),
				zap.String("path", cfg.TeamsRegistryPath))
		}
		logger.InfoCtx(ctx, "Loaded team registry", zap.String("path", cfg.TeamsRegistryPath))
	} else {
		logger.WarnCtx(ctx, "Team registry path not configured, auditing warehouse teams only")
	}

	// Connect to NATS JetStream when configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, audit reports will only be logged")
	}

	warehouseAuditor := auditor.NewWarehouseAuditor(&auditor.WarehouseAuditorConfig{
		Interval:        cfg.Audit.Interval,
		YearsAhead:      cfg.Audit.YearsAhead,
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		RetryMaxElapsed: cfg.Audit.RetryMaxElapsed,
	}, dataStore, teamRegistry, publisher, clock)

	logger.InfoCtx(ctx, "Initialized warehouse auditor",
		zap.Duration("interval", cfg.Audit.Interval),
		zap.Int("years_ahead", cfg.Audit.YearsAhead),
		zap.Int("worker_pool_size", cfg.Worker.WorkerPoolSize),
	)

	if *once {
		report, err := warehouseAuditor.RunOnce(ctx)
		if err != nil {
			logger.ErrorCtx(ctx, err)
			logger.Flush(2 * time.Second)
			os.Exit(1)
		}
		logger.InfoCtx(ctx, "Audit finished", zap.String("run_id", report.RunID), zap.String("status", string(report.Status)))
		return
	}

	// Start the auditor in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := warehouseAuditor.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the auditor
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := warehouseAuditor.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Auditor stopped")
}
