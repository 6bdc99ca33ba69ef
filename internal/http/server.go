// Package http provides the HTTP server, its router and cross-cutting middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/pfvault/internal/config"
	financeHTTP "github.com/allisson/pfvault/internal/finance/http"
	"github.com/allisson/pfvault/internal/metrics"
)

// readinessTimeout bounds the storage ping made by /ready.
const readinessTimeout = 2 * time.Second

// Pinger reports whether the record store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server represents the HTTP server.
type Server struct {
	pinger Pinger
	server *http.Server
	logger *slog.Logger
	router *gin.Engine

	// stopBackground ends goroutines owned by the router's middleware.
	stopBackground context.CancelFunc
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(
	pinger Pinger,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		pinger: pinger,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware and every route.
func (s *Server) SetupRouter(
	cfg *config.Config,
	transactionHandler *financeHTTP.TransactionHandler,
	budgetHandler *financeHTTP.BudgetHandler,
	insightHandler *financeHTTP.InsightHandler,
	metricsProvider *metrics.Provider,
) {
	backgroundCtx, cancel := context.WithCancel(context.Background())
	s.stopBackground = cancel

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(backgroundCtx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", transactionHandler.CreateHandler)
		transactions.GET("", transactionHandler.ListHandler)
		transactions.GET("/:id", transactionHandler.GetHandler)
		transactions.PUT("/:id", transactionHandler.UpdateHandler)
		transactions.DELETE("/:id", transactionHandler.DeleteHandler)
	}

	budgets := v1.Group("/budgets")
	{
		budgets.POST("", budgetHandler.CreateHandler)
		budgets.GET("", budgetHandler.ListHandler)
		budgets.GET("/:category", budgetHandler.GetHandler)
		budgets.PUT("/:category", budgetHandler.UpdateHandler)
		budgets.DELETE("/:category", budgetHandler.DeleteHandler)
	}

	v1.GET("/insights", insightHandler.SummaryHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if s.stopBackground != nil {
		s.stopBackground()
	}
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the record store answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if s.pinger == nil || s.pinger.PingContext(ctx) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
