package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// createTestContext creates a gin context whose request carries body as JSON.
// A string body is sent verbatim.
func createTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		bodyReader = strings.NewReader(b)
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTransaction(id, date string) *financeDomain.Transaction {
	return &financeDomain.Transaction{
		ID:       id,
		Amount:   decimal.NewFromInt(10),
		Type:     financeDomain.Expense,
		Category: "food",
		Date:     date,
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}
