// Package database provides database connection management and utilities.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	apperrors "github.com/allisson/pfvault/internal/errors"
)

// Supported SQL drivers. The values are the database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds database configuration settings.
type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// Connect establishes a database connection with the given configuration.
// Any failure is reported as ErrUnavailable.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	if !IsSQLDriver(cfg.Driver) {
		return nil, fmt.Errorf("%w: unsupported database driver %q", apperrors.ErrUnavailable, cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", apperrors.ErrUnavailable, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if cfg.Driver == DriverSQLite {
		// SQLite allows a single writer; sharing one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", apperrors.ErrUnavailable, err)
	}

	return db, nil
}

// IsSQLDriver reports whether driver is one of the supported SQL drivers.
func IsSQLDriver(driver string) bool {
	switch driver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
		return true
	default:
		return false
	}
}
