package app

import (
	"fmt"

	"github.com/allisson/pfvault/internal/database"
	financeHTTP "github.com/allisson/pfvault/internal/finance/http"
	financeRepository "github.com/allisson/pfvault/internal/finance/repository"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
	"github.com/allisson/pfvault/internal/http"
)

// TransactionRepository returns the transaction store for the configured driver.
func (c *Container) TransactionRepository() (financeUseCase.TransactionRepository, error) {
	c.transactionRepositoryInit.Do(func() {
		var err error
		c.transactionRepository, err = c.initTransactionRepository()
		c.setInitError("transactionRepository", err)
	})
	if err := c.initError("transactionRepository"); err != nil {
		return nil, err
	}
	return c.transactionRepository, nil
}

// BudgetRepository returns the budget store for the configured driver.
func (c *Container) BudgetRepository() (financeUseCase.BudgetRepository, error) {
	c.budgetRepositoryInit.Do(func() {
		var err error
		c.budgetRepository, err = c.initBudgetRepository()
		c.setInitError("budgetRepository", err)
	})
	if err := c.initError("budgetRepository"); err != nil {
		return nil, err
	}
	return c.budgetRepository, nil
}

// TransactionUseCase returns the transaction use case, wrapped with metrics when enabled.
func (c *Container) TransactionUseCase() (financeUseCase.TransactionUseCase, error) {
	c.transactionUseCaseInit.Do(func() {
		var err error
		c.transactionUseCase, err = c.initTransactionUseCase()
		c.setInitError("transactionUseCase", err)
	})
	if err := c.initError("transactionUseCase"); err != nil {
		return nil, err
	}
	return c.transactionUseCase, nil
}

// BudgetUseCase returns the budget use case, wrapped with metrics when enabled.
func (c *Container) BudgetUseCase() (financeUseCase.BudgetUseCase, error) {
	c.budgetUseCaseInit.Do(func() {
		var err error
		c.budgetUseCase, err = c.initBudgetUseCase()
		c.setInitError("budgetUseCase", err)
	})
	if err := c.initError("budgetUseCase"); err != nil {
		return nil, err
	}
	return c.budgetUseCase, nil
}

// InsightUseCase returns the monthly report use case, wrapped with metrics when enabled.
func (c *Container) InsightUseCase() (financeUseCase.InsightUseCase, error) {
	c.insightUseCaseInit.Do(func() {
		var err error
		c.insightUseCase, err = c.initInsightUseCase()
		c.setInitError("insightUseCase", err)
	})
	if err := c.initError("insightUseCase"); err != nil {
		return nil, err
	}
	return c.insightUseCase, nil
}

// TransactionHandler returns the HTTP handler for transactions.
func (c *Container) TransactionHandler() (*financeHTTP.TransactionHandler, error) {
	c.transactionHandlerInit.Do(func() {
		useCase, err := c.TransactionUseCase()
		if err != nil {
			c.setInitError("transactionHandler", fmt.Errorf("failed to get transaction use case for handler: %w", err))
			return
		}
		c.transactionHandler = financeHTTP.NewTransactionHandler(useCase, c.Logger())
	})
	if err := c.initError("transactionHandler"); err != nil {
		return nil, err
	}
	return c.transactionHandler, nil
}

// BudgetHandler returns the HTTP handler for budgets.
func (c *Container) BudgetHandler() (*financeHTTP.BudgetHandler, error) {
	c.budgetHandlerInit.Do(func() {
		useCase, err := c.BudgetUseCase()
		if err != nil {
			c.setInitError("budgetHandler", fmt.Errorf("failed to get budget use case for handler: %w", err))
			return
		}
		c.budgetHandler = financeHTTP.NewBudgetHandler(useCase, c.Logger())
	})
	if err := c.initError("budgetHandler"); err != nil {
		return nil, err
	}
	return c.budgetHandler, nil
}

// InsightHandler returns the HTTP handler for the monthly report.
func (c *Container) InsightHandler() (*financeHTTP.InsightHandler, error) {
	c.insightHandlerInit.Do(func() {
		useCase, err := c.InsightUseCase()
		if err != nil {
			c.setInitError("insightHandler", fmt.Errorf("failed to get insight use case for handler: %w", err))
			return
		}
		c.insightHandler = financeHTTP.NewInsightHandler(useCase, c.Logger())
	})
	if err := c.initError("insightHandler"); err != nil {
		return nil, err
	}
	return c.insightHandler, nil
}

// HTTPServer returns the API server with its router set up.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		var err error
		c.httpServer, err = c.initHTTPServer()
		c.setInitError("httpServer", err)
	})
	if err := c.initError("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus scrape server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("metricsServer", fmt.Errorf("failed to get metrics provider for metrics server: %w", err))
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
	})
	if err := c.initError("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

func (c *Container) initTransactionRepository() (financeUseCase.TransactionRepository, error) {
	if c.config.DBDriver == database.DriverRedis {
		client, err := c.Redis()
		if err != nil {
			return nil, fmt.Errorf("failed to get redis for transaction repository: %w", err)
		}
		return financeRepository.NewRedisTransactionRepository(client), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for transaction repository: %w", err)
	}
	return financeRepository.NewSQLTransactionRepository(db, c.config.DBDriver)
}

func (c *Container) initBudgetRepository() (financeUseCase.BudgetRepository, error) {
	if c.config.DBDriver == database.DriverRedis {
		client, err := c.Redis()
		if err != nil {
			return nil, fmt.Errorf("failed to get redis for budget repository: %w", err)
		}
		return financeRepository.NewRedisBudgetRepository(client), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for budget repository: %w", err)
	}
	return financeRepository.NewSQLBudgetRepository(db, c.config.DBDriver)
}

func (c *Container) initTransactionUseCase() (financeUseCase.TransactionUseCase, error) {
	repo, err := c.TransactionRepository()
	if err != nil {
		return nil, err
	}

	codec, err := c.Codec()
	if err != nil {
		return nil, err
	}

	useCase := financeUseCase.NewTransactionUseCase(repo, codec, c.Logger())
	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	return financeUseCase.NewTransactionUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initBudgetUseCase() (financeUseCase.BudgetUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, err
	}

	repo, err := c.BudgetRepository()
	if err != nil {
		return nil, err
	}

	codec, err := c.Codec()
	if err != nil {
		return nil, err
	}

	useCase := financeUseCase.NewBudgetUseCase(txManager, repo, codec, c.Logger())
	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	return financeUseCase.NewBudgetUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initInsightUseCase() (financeUseCase.InsightUseCase, error) {
	transactionUseCase, err := c.TransactionUseCase()
	if err != nil {
		return nil, err
	}

	budgetUseCase, err := c.BudgetUseCase()
	if err != nil {
		return nil, err
	}

	useCase := financeUseCase.NewInsightUseCase(transactionUseCase, budgetUseCase)
	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	return financeUseCase.NewInsightUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	pinger, err := c.Pinger()
	if err != nil {
		return nil, err
	}

	transactionHandler, err := c.TransactionHandler()
	if err != nil {
		return nil, err
	}

	budgetHandler, err := c.BudgetHandler()
	if err != nil {
		return nil, err
	}

	insightHandler, err := c.InsightHandler()
	if err != nil {
		return nil, err
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}

	server := http.NewServer(pinger, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, transactionHandler, budgetHandler, insightHandler, provider)
	return server, nil
}
