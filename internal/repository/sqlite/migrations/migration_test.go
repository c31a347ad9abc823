package migrations

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_tasks", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE")
	assert.Contains(t, migrations[0].Down, "DROP TABLE")

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestRun(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks"))
	assert.Equal(t, 0, count)

	var applied int
	require.NoError(t, db.GetContext(ctx, &applied, "SELECT COUNT(*) FROM schema_migrations"))
	migrations, err := Load()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), applied)
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db))
	require.NoError(t, Run(ctx, db))

	var applied int
	require.NoError(t, db.GetContext(ctx, &applied, "SELECT COUNT(*) FROM schema_migrations"))
	migrations, err := Load()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), applied)
}

func TestCompletedAtConstraint(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()
	require.NoError(t, Run(ctx, db))

	_, err := db.ExecContext(ctx, `INSERT INTO tasks (id, text, completed, completed_at) VALUES ('a', 'x', 1, NULL)`)
	assert.Error(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (id, text, completed, completed_at) VALUES ('b', 'x', 0, NULL)`)
	assert.NoError(t, err)
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		filename string
		version  int
		name     string
	}{
		{"0001_create_tasks.up.sql", 1, "create_tasks"},
		{"0012_add_index.up.sql", 12, "add_index"},
		{"readme.up.sql", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			version, name := parseFilename(tt.filename)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.name, name)
		})
	}
}
