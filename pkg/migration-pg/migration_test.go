package migrationpg

import (
	"testing"
	"testing/fstest"

	"github.com/stockmarket/notifier/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_LoadMigrations(t *testing.T) {
	files := fstest.MapFS{
		"0002_add_index.up.sql":      {Data: []byte("CREATE INDEX i ON t (c);\n")},
		"0001_create_table.up.sql":   {Data: []byte("  CREATE TABLE t (c int);  ")},
		"0001_create_table.down.sql": {Data: []byte("DROP TABLE t;")},
		"README.md":                  {Data: []byte("ignored")},
	}

	runner := NewRunner(nil, files, logger.NewNopLogger(), Config{})
	migrations, err := runner.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, Migration{
		ID:      "0001_create_table",
		Name:    "create_table",
		UpSQL:   "CREATE TABLE t (c int);",
		DownSQL: "DROP TABLE t;",
	}, migrations[0])
	assert.Equal(t, "0002_add_index", migrations[1].ID)
	assert.Empty(t, migrations[1].DownSQL)
}

func TestNewRunner_Defaults(t *testing.T) {
	runner := NewRunner(nil, fstest.MapFS{}, logger.NewNopLogger(), Config{})
	assert.Equal(t, "public.schema_migrations", runner.table())

	runner = NewRunner(nil, fstest.MapFS{}, logger.NewNopLogger(), Config{Schema: "events", TableName: "migrations"})
	assert.Equal(t, "events.migrations", runner.table())
}
