package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMigratedCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.db")
	db, err := OpenMigrated(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"users", "daily_attempts", "daily_results", "custom_games"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := OpenMigrated(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, Migrate(context.Background(), db))
}
