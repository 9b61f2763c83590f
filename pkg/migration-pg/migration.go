package migrationpg

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/stockmarket/notifier/pkg/logger"
	"github.com/stockmarket/notifier/pkg/postgresql"
)

// Migration represents a database migration
type Migration struct {
	ID      string
	Name    string
	UpSQL   string
	DownSQL string
}

// Runner applies and reverts migrations read from a file system.
type Runner struct {
	client    postgresql.PostgreSQLClient
	logger    logger.Interface
	files     fs.FS
	schema    string
	tableName string
}

// Config for migration runner
type Config struct {
	Schema    string // PostgreSQL schema name (default: "public")
	TableName string // Migration table name (default: "schema_migrations")
}

// NewRunner creates a runner for the *.up.sql and *.down.sql files at the root of files.
func NewRunner(client postgresql.PostgreSQLClient, files fs.FS, logger logger.Interface, config Config) *Runner {
	if config.Schema == "" {
		config.Schema = "public"
	}
	if config.TableName == "" {
		config.TableName = "schema_migrations"
	}

	return &Runner{
		client:    client,
		logger:    logger,
		files:     files,
		schema:    config.Schema,
		tableName: config.TableName,
	}
}

func (r *Runner) table() string {
	return r.schema + "." + r.tableName
}

// EnsureMigrationTable creates the migration table if it doesn't exist
func (r *Runner) EnsureMigrationTable(ctx context.Context) error {
	_, err := r.client.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		)`, r.table()))
	return err
}

// AppliedMigrations returns the IDs of applied migrations.
func (r *Runner) AppliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := r.client.Query(ctx, "SELECT id FROM "+r.table())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}

	return applied, rows.Err()
}

// LoadMigrations reads every migration sorted by ID. IDs follow the
// NNNN_name or YYYYMMDDHHMMSS_name file naming.
func (r *Runner) LoadMigrations() ([]Migration, error) {
	upFiles, err := fs.Glob(r.files, "*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(upFiles)

	migrations := make([]Migration, 0, len(upFiles))
	for _, upFile := range upFiles {
		upContent, err := fs.ReadFile(r.files, upFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", upFile, err)
		}

		id := strings.TrimSuffix(path.Base(upFile), ".up.sql")
		name := id
		if _, rest, ok := strings.Cut(id, "_"); ok {
			name = rest
		}

		var downSQL string
		if downContent, err := fs.ReadFile(r.files, id+".down.sql"); err == nil {
			downSQL = strings.TrimSpace(string(downContent))
		}

		migrations = append(migrations, Migration{
			ID:      id,
			Name:    name,
			UpSQL:   strings.TrimSpace(string(upContent)),
			DownSQL: downSQL,
		})
	}

	return migrations, nil
}

// MigrateUp applies up to steps pending migrations, all of them when steps is 0.
func (r *Runner) MigrateUp(ctx context.Context, steps int) error {
	if err := r.EnsureMigrationTable(ctx); err != nil {
		return err
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.AppliedMigrations(ctx)
	if err != nil {
		return err
	}

	var toApply []Migration
	for _, migration := range migrations {
		if !applied[migration.ID] {
			toApply = append(toApply, migration)
		}
	}

	if steps > 0 && len(toApply) > steps {
		toApply = toApply[:steps]
	}

	for _, migration := range toApply {
		if migration.UpSQL == "" {
			r.logger.Warn("migration has no up SQL", logger.Field{Key: "migration", Value: migration.ID})
			continue
		}

		err := postgresql.WithTx(ctx, r.client, func(txCtx context.Context) error {
			if _, err := r.client.Exec(txCtx, migration.UpSQL); err != nil {
				return err
			}

			_, err := r.client.Exec(txCtx,
				"INSERT INTO "+r.table()+" (id, name, applied_at) VALUES ($1, $2, NOW())",
				migration.ID, migration.Name,
			)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration.ID, err)
		}

		r.logger.Info("applied migration", logger.Field{Key: "migration", Value: migration.ID})
	}

	return nil
}

// MigrateDown reverts the last steps applied migrations.
func (r *Runner) MigrateDown(ctx context.Context, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be greater than 0 for down migrations")
	}

	if err := r.EnsureMigrationTable(ctx); err != nil {
		return err
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return err
	}

	applied, err := r.AppliedMigrations(ctx)
	if err != nil {
		return err
	}

	var toRevert []Migration
	for i := len(migrations) - 1; i >= 0 && len(toRevert) < steps; i-- {
		if applied[migrations[i].ID] {
			toRevert = append(toRevert, migrations[i])
		}
	}

	for _, migration := range toRevert {
		if migration.DownSQL == "" {
			return fmt.Errorf("no DOWN SQL found for migration %s - cannot revert", migration.ID)
		}

		err := postgresql.WithTx(ctx, r.client, func(txCtx context.Context) error {
			if _, err := r.client.Exec(txCtx, migration.DownSQL); err != nil {
				return err
			}

			_, err := r.client.Exec(txCtx, "DELETE FROM "+r.table()+" WHERE id = $1", migration.ID)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to revert migration %s: %w", migration.ID, err)
		}

		r.logger.Info("reverted migration", logger.Field{Key: "migration", Value: migration.ID})
	}

	return nil
}
