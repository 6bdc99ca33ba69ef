// Package app provides the dependency injection container that assembles the application.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/pfvault/internal/config"
	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	cryptoRepository "github.com/allisson/pfvault/internal/crypto/repository"
	cryptoService "github.com/allisson/pfvault/internal/crypto/service"
	"github.com/allisson/pfvault/internal/database"
	financeHTTP "github.com/allisson/pfvault/internal/finance/http"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
	"github.com/allisson/pfvault/internal/http"
	"github.com/allisson/pfvault/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access and cached; a failed initialization is cached too.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	redisClient     *redis.Client
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Crypto
	keyRepository *cryptoRepository.BlobKeyRepository
	keyManager    *cryptoService.KeyManagerService
	aeadManager   cryptoService.AEADManager
	codec         cryptoService.Codec

	// Finance
	transactionRepository financeUseCase.TransactionRepository
	budgetRepository      financeUseCase.BudgetRepository
	transactionUseCase    financeUseCase.TransactionUseCase
	budgetUseCase         financeUseCase.BudgetUseCase
	insightUseCase        financeUseCase.InsightUseCase
	transactionHandler    *financeHTTP.TransactionHandler
	budgetHandler         *financeHTTP.BudgetHandler
	insightHandler        *financeHTTP.InsightHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                        sync.Mutex
	loggerInit                sync.Once
	dbInit                    sync.Once
	redisInit                 sync.Once
	txManagerInit             sync.Once
	metricsProviderInit       sync.Once
	businessMetricsInit       sync.Once
	keyRepositoryInit         sync.Once
	keyManagerInit            sync.Once
	aeadManagerInit           sync.Once
	codecInit                 sync.Once
	transactionRepositoryInit sync.Once
	budgetRepositoryInit      sync.Once
	transactionUseCaseInit    sync.Once
	budgetUseCaseInit         sync.Once
	insightUseCaseInit        sync.Once
	transactionHandlerInit    sync.Once
	budgetHandlerInit         sync.Once
	insightHandlerInit        sync.Once
	httpServerInit            sync.Once
	metricsServerInit         sync.Once
	initErrors                map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the structured logger configured from LogLevel.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the SQL database connection. It fails for the redis driver.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		var err error
		c.db, err = c.initDB()
		c.setInitError("db", err)
	})
	if err := c.initError("db"); err != nil {
		return nil, err
	}
	return c.db, nil
}

// Redis returns the Redis client used by the redis driver.
func (c *Container) Redis() (*redis.Client, error) {
	c.redisInit.Do(func() {
		var err error
		c.redisClient, err = c.initRedis()
		c.setInitError("redis", err)
	})
	if err := c.initError("redis"); err != nil {
		return nil, err
	}
	return c.redisClient, nil
}

// TxManager returns the transaction manager. The redis driver gets a no-op manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		var err error
		c.txManager, err = c.initTxManager()
		c.setInitError("txManager", err)
	})
	if err := c.initError("txManager"); err != nil {
		return nil, err
	}
	return c.txManager, nil
}

// Pinger returns the readiness probe for the configured record store.
func (c *Container) Pinger() (http.Pinger, error) {
	if c.config.DBDriver == database.DriverRedis {
		client, err := c.Redis()
		if err != nil {
			return nil, err
		}
		return database.RedisPinger{Client: client}, nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, err
	}
	return db, nil
}

// MetricsProvider returns the OpenTelemetry provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		var err error
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		c.setInitError("metricsProvider", err)
	})
	if err := c.initError("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the use case metrics recorder, a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		var err error
		c.businessMetrics, err = c.initBusinessMetrics()
		c.setInitError("businessMetrics", err)
	})
	if err := c.initError("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// Shutdown releases every initialized resource.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.keyManager != nil {
		c.keyManager.Close()
	}

	if c.keyRepository != nil {
		if err := c.keyRepository.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("key store close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("redis close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

func (c *Container) setInitError(name string, err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates a JSON logger at the configured level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// initDB opens the SQL database and applies pending migrations when DBAutoMigrate is set.
func (c *Container) initDB() (*sql.DB, error) {
	if !database.IsSQLDriver(c.config.DBDriver) {
		return nil, fmt.Errorf("database driver %q is not a SQL driver", c.config.DBDriver)
	}

	if c.config.DBDriver == database.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(c.config.DBConnectionString), 0o700); err != nil {
			return nil, fmt.Errorf("%w: failed to create data directory: %w", cryptoDomain.ErrStorageUnavailable, err)
		}
	}

	db, err := database.Connect(context.Background(), database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w: %w", cryptoDomain.ErrStorageUnavailable, err)
	}

	if c.config.DBAutoMigrate {
		if err := database.Migrate(db, c.config.DBDriver); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w: %w", cryptoDomain.ErrStorageUnavailable, err)
		}
	}

	return db, nil
}

// initRedis connects to the Redis server at RedisURL.
func (c *Container) initRedis() (*redis.Client, error) {
	client, err := database.ConnectRedis(context.Background(), c.config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w: %w", cryptoDomain.ErrStorageUnavailable, err)
	}
	return client, nil
}

// initTxManager creates the transaction manager for the configured driver.
func (c *Container) initTxManager() (database.TxManager, error) {
	if c.config.DBDriver == database.DriverRedis {
		return database.NewNoopTxManager(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initBusinessMetrics creates the metrics recorder on top of the provider.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}
