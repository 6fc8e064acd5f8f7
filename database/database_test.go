package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase(t *testing.T) {
	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'user_identities'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "user_identities", name)

	// Running again is a no-op.
	require.NoError(t, RunMigrations(db))
}
