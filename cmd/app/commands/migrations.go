package commands

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/allisson/pfvault/internal/database"
)

// RunMigrations applies the embedded migrations for driver to db.
// The redis driver has no schema, so nothing is done.
func RunMigrations(db *sql.DB, driver string, logger *slog.Logger) error {
	if driver == database.DriverRedis {
		logger.Info("redis driver has no migrations to run")
		return nil
	}

	logger.Info("running database migrations", slog.String("driver", driver))

	if err := database.Migrate(db, driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
