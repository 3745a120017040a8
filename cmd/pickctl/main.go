package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hoopsledger/pickboard/internal/adapter"
	"github.com/hoopsledger/pickboard/internal/api/shared/executor"
	"github.com/hoopsledger/pickboard/internal/cli"
	"github.com/hoopsledger/pickboard/internal/config"
	"github.com/hoopsledger/pickboard/internal/logger"
	"github.com/hoopsledger/pickboard/internal/registry"
	"github.com/hoopsledger/pickboard/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCommand(openExecutor, adapter.NewClock(), adapter.NewJSON())
	if err := cli.Execute(ctx, root); err != nil {
		cancel()
		os.Exit(1)
	}
}

// openExecutor wires the warehouse store and team registry behind the executor
func openExecutor(ctx context.Context, configFile, envPath string) (executor.Executor, func(), error) {
	config.ChdirRepoRoot()
	cfg, err := config.LoadCLIConfig(configFile, envPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Only log when debugging so table output stays clean
	if cfg.Debug {
		err = logger.Initialize(logger.Config{
			Debug:           true,
			SentryDSN:       cfg.SentryDSN,
			BreadcrumbLevel: zapcore.InfoLevel,
			Tags: map[string]string{
				"service": "pickctl",
			},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to reach database: %w", err)
	}

	var teams registry.TeamRegistry
	if cfg.TeamsRegistryPath != "" {
		loader := registry.NewTeamRegistryLoader(adapter.NewFileSystem(), adapter.NewJSON())
		teams, err = loader.Load(cfg.TeamsRegistryPath)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to load team registry, falling back to warehouse teams",
				zap.Error(err),
				zap.String("path", cfg.TeamsRegistryPath))
			teams = nil
		}
	}

	exec := executor.NewExecutor(store.NewPGStore(db), teams, adapter.NewClock(), executor.Config{
		DefaultDraftYear: cfg.Board.DefaultDraftYear,
		EndnoteMaxDepth:  cfg.Board.EndnoteMaxDepth,
	})

	closeFn := func() {
		_ = sqlDB.Close()
		logger.Flush(time.Second)
	}
	return exec, closeFn, nil
}
