package main

import (
	"context"
	"flag"
	"log"

	"github.com/stockmarket/notifier/internal/infrastructure/postgresql/migrations"
	"github.com/stockmarket/notifier/pkg/config"
	"github.com/stockmarket/notifier/pkg/logger"
	migrationpg "github.com/stockmarket/notifier/pkg/migration-pg"
	"github.com/stockmarket/notifier/pkg/postgresql"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 applies all pending (up) or one (down)")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	client, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer client.Close()

	runner := migrationpg.NewRunner(client, migrations.FS, appLogger, migrationpg.Config{})

	switch *direction {
	case "up":
		err = runner.MigrateUp(ctx, *steps)
	case "down":
		n := *steps
		if n == 0 {
			n = 1
		}
		err = runner.MigrateDown(ctx, n)
	default:
		log.Fatalf("Unknown direction %q", *direction)
	}
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")
}
