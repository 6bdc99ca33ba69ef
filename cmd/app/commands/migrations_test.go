package commands

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/pfvault/internal/database"
)

func TestRunMigrations(t *testing.T) {
	logger := discardLogger()

	t.Run("sqlite", func(t *testing.T) {
		db, err := database.Connect(context.Background(), database.Config{
			Driver:             database.DriverSQLite,
			ConnectionString:   filepath.Join(t.TempDir(), "pfvault.db"),
			MaxOpenConnections: 1,
			MaxIdleConnections: 1,
			ConnMaxLifetime:    time.Minute,
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		require.NoError(t, RunMigrations(db, database.DriverSQLite, logger))
		// Already applied.
		require.NoError(t, RunMigrations(db, database.DriverSQLite, logger))

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("redis", func(t *testing.T) {
		assert.NoError(t, RunMigrations(nil, database.DriverRedis, logger))
	})

	t.Run("unknown-driver", func(t *testing.T) {
		assert.Error(t, RunMigrations(nil, "oracle", logger))
	})
}
