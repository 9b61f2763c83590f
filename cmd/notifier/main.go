package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stockmarket/notifier/internal/bootstrap"
	"github.com/stockmarket/notifier/pkg/config"
	"github.com/stockmarket/notifier/pkg/logger"
	"github.com/stockmarket/notifier/pkg/postgresql"
	"github.com/stockmarket/notifier/pkg/redis"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
		logger.WithInitialFields(logger.Field{Key: "app", Value: cfg.App.Name}),
	)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	pg, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "connect_postgres"})
		os.Exit(1)
	}

	pgHealth := pg.CheckHealth(ctx)
	appLogger.Info("PostgreSQL connected",
		logger.Field{Key: "status", Value: pgHealth.Status},
		logger.Field{Key: "response_time", Value: pgHealth.ResponseTime.String()},
		logger.Field{Key: "idle_connections", Value: pgHealth.IdleConns},
	)

	rdb := redis.NewClient(appLogger, &cfg.Redis)
	if err := rdb.Connect(ctx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "connect_redis"})
		pg.Close()
		os.Exit(1)
	}

	app := &bootstrap.Bootstrap{}
	app.Init(bootstrap.BootstrapConfig{
		Config:   cfg,
		Logger:   appLogger,
		Postgres: pg,
		Redis:    rdb,
	})

	if err := app.Start(ctx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "start"})
		os.Exit(1)
	}

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down stock notifier...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := app.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "shutdown"})
	}

	appLogger.Info("Stock notifier stopped")
}
