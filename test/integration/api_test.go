// Package integration provides end-to-end tests for the finance API.
// Every backend runs the same scenario: SQLite and Redis (miniredis) always,
// PostgreSQL and MySQL when a test server is reachable.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/pfvault/internal/app"
	"github.com/allisson/pfvault/internal/config"
	"github.com/allisson/pfvault/internal/database"
	"github.com/allisson/pfvault/internal/finance/http/dto"
	"github.com/allisson/pfvault/internal/testutil"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	server    *httptest.Server
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body any,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// setupIntegrationTest builds the container for cfg and serves its router.
func setupIntegrationTest(t *testing.T, cfg *config.Config) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg.ServerHost = "127.0.0.1"
	cfg.KeyStoreURL = t.TempDir()
	cfg.EncryptionAlgorithm = "aes-gcm"
	cfg.LogLevel = "error"
	cfg.DBMaxOpenConnections = 5
	cfg.DBMaxIdleConnections = 2
	cfg.DBConnMaxLifetime = time.Minute
	cfg.DBAutoMigrate = true

	container := app.NewContainer(cfg)
	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	server, err := container.HTTPServer()
	require.NoError(t, err, "failed to build http server")

	testServer := httptest.NewServer(server.GetHandler())
	t.Cleanup(testServer.Close)

	return &integrationTestContext{container: container, server: testServer}
}

func backends() map[string]func(t *testing.T) *config.Config {
	return map[string]func(t *testing.T) *config.Config{
		"SQLite": func(t *testing.T) *config.Config {
			return &config.Config{
				DBDriver:           database.DriverSQLite,
				DBConnectionString: testutil.SQLiteTestDSN(t),
			}
		},
		"Redis": func(t *testing.T) *config.Config {
			mr := miniredis.RunT(t)
			return &config.Config{
				DBDriver: database.DriverRedis,
				RedisURL: "redis://" + mr.Addr() + "/0",
			}
		},
		"PostgreSQL": func(t *testing.T) *config.Config {
			testutil.SkipIfNoPostgres(t)
			testutil.TeardownDB(t, testutil.SetupPostgresDB(t))
			return &config.Config{
				DBDriver:           database.DriverPostgres,
				DBConnectionString: testutil.GetPostgresTestDSN(),
			}
		},
		"MySQL": func(t *testing.T) *config.Config {
			testutil.SkipIfNoMySQL(t)
			testutil.TeardownDB(t, testutil.SetupMySQLDB(t))
			return &config.Config{
				DBDriver:           database.DriverMySQL,
				DBConnectionString: testutil.GetMySQLTestDSN(),
			}
		},
	}
}

func TestFinanceAPI(t *testing.T) {
	for name, newConfig := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, newConfig(t))
			runFinanceScenario(t, ctx)
		})
	}
}

func runFinanceScenario(t *testing.T, ctx *integrationTestContext) {
	t.Run("health and readiness", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	})

	transactions := []map[string]any{
		{"id": "salary", "amount": "3000", "type": "income", "category": "salary", "date": "2024-03-01"},
		{"id": "rent", "amount": "1200", "type": "expense", "category": "rent", "date": "2024-03-02"},
		{"id": "groceries", "amount": "450.50", "type": "expense", "category": "food", "date": "2024-03-10"},
		{"id": "feb-food", "amount": "99", "type": "expense", "category": "food", "date": "2024-02-27"},
	}

	t.Run("create transactions", func(t *testing.T) {
		for _, tx := range transactions {
			resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/transactions", tx)
			require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
		}
	})

	t.Run("get transaction round trips", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/transactions/groceries", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got dto.TransactionResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "food", got.Category)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("450.5")))
		assert.Equal(t, "2024-03-10", got.Date)
	})

	t.Run("list by month", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/transactions?month=2024-03", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list dto.ListTransactionsResponse
		require.NoError(t, json.Unmarshal(body, &list))
		require.Len(t, list.Data, 3)
		assert.Equal(t, "groceries", list.Data[0].ID)
		assert.Empty(t, list.FailedIDs)
	})

	t.Run("update moves month", func(t *testing.T) {
		moved := map[string]any{"amount": "99", "type": "expense", "category": "food", "date": "2024-04-01"}
		resp, body := ctx.makeRequest(t, http.MethodPut, "/v1/transactions/feb-food", moved)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		_, body = ctx.makeRequest(t, http.MethodGet, "/v1/transactions?month=2024-02", nil)
		var february dto.ListTransactionsResponse
		require.NoError(t, json.Unmarshal(body, &february))
		assert.Empty(t, february.Data)

		_, body = ctx.makeRequest(t, http.MethodGet, "/v1/transactions?month=2024-04", nil)
		var april dto.ListTransactionsResponse
		require.NoError(t, json.Unmarshal(body, &april))
		require.Len(t, april.Data, 1)
		assert.Equal(t, "feb-food", april.Data[0].ID)
	})

	t.Run("budgets", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/budgets",
			map[string]any{"category": "food", "limit": "500"})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/budgets",
			map[string]any{"category": "food", "limit": "900"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, string(body), "food")

		resp, body = ctx.makeRequest(t, http.MethodPut, "/v1/budgets/rent",
			map[string]any{"limit": "1000"})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		_, body = ctx.makeRequest(t, http.MethodGet, "/v1/budgets/food", nil)
		var food dto.BudgetResponse
		require.NoError(t, json.Unmarshal(body, &food))
		assert.True(t, food.Limit.Equal(decimal.NewFromInt(500)))
	})

	t.Run("insights", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/insights?month=2024-03", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var summary dto.SummaryResponse
		require.NoError(t, json.Unmarshal(body, &summary))
		assert.True(t, summary.Overview.TotalIncome.Equal(decimal.NewFromInt(3000)))
		assert.True(t, summary.Overview.TotalExpenses.Equal(decimal.RequireFromString("1650.5")))
		assert.Equal(t, int64(45), summary.Overview.SavingsRate)

		statuses := map[string]string{}
		for _, b := range summary.Budgets {
			statuses[b.Category] = string(b.Status)
		}
		assert.Equal(t, map[string]string{"food": "warning", "rent": "exceeded"}, statuses)

		require.NotEmpty(t, summary.TopCategories)
		assert.Equal(t, "rent", summary.TopCategories[0].Category)
		assert.Equal(t, summary.TopCategories, summary.CategoryBreakdown)
		assert.NotEmpty(t, summary.DailyExpenses)
	})

	t.Run("errors", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/transactions/missing", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = ctx.makeRequest(t, http.MethodGet, "/v1/transactions?month=2024-13", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		resp, _ = ctx.makeRequest(t, http.MethodPost, "/v1/transactions",
			map[string]any{"amount": "-1", "type": "expense", "category": "food", "date": "2024-03-01"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodDelete, "/v1/transactions/rent", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = ctx.makeRequest(t, http.MethodDelete, "/v1/transactions/rent", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = ctx.makeRequest(t, http.MethodDelete, "/v1/budgets/rent", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = ctx.makeRequest(t, http.MethodGet, "/v1/budgets/rent", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
