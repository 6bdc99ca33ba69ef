// Package http provides HTTP handlers for transactions, budgets and monthly insights.
// Records are decrypted by the use cases; handlers only speak plaintext JSON.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	"github.com/allisson/pfvault/internal/finance/http/dto"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
	"github.com/allisson/pfvault/internal/httputil"
	customValidation "github.com/allisson/pfvault/internal/validation"
)

// TransactionHandler handles HTTP requests for transactions.
type TransactionHandler struct {
	transactionUseCase financeUseCase.TransactionUseCase
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(
	transactionUseCase financeUseCase.TransactionUseCase,
	logger *slog.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// CreateHandler stores a new transaction.
// POST /v1/transactions
// A UUIDv7 id is generated when the body carries none. Returns 201 Created.
func (h *TransactionHandler) CreateHandler(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}

	tx := req.ToDomain(id)
	if err := h.transactionUseCase.Save(c.Request.Context(), tx); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTransactionToResponse(tx))
}

// UpdateHandler upserts the transaction named in the URL.
// PUT /v1/transactions/:id
// Returns 200 OK.
func (h *TransactionHandler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// The URL is authoritative for the key.
	req.ID = ""
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	tx := req.ToDomain(id)
	if err := h.transactionUseCase.Save(c.Request.Context(), tx); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransactionToResponse(tx))
}

// ListHandler lists transactions newest first, optionally restricted to one month.
// GET /v1/transactions?month=YYYY-MM&offset=0&limit=100
// Records that fail to decrypt are reported in failed_ids.
func (h *TransactionHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var result *financeDomain.BatchResult[*financeDomain.Transaction]
	if month := c.Query("month"); month != "" {
		result, err = h.transactionUseCase.GetByMonth(c.Request.Context(), month)
	} else {
		result, err = h.transactionUseCase.GetAll(c.Request.Context())
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	financeDomain.SortTransactionsByDateDesc(result.Items)
	page := httputil.Page(result.Items, offset, limit)

	c.JSON(http.StatusOK, dto.MapTransactionsToListResponse(page, result.FailedIDs))
}

// GetHandler returns one transaction.
// GET /v1/transactions/:id
// Returns 404 when absent and 422 when the record cannot be decrypted.
func (h *TransactionHandler) GetHandler(c *gin.Context) {
	tx, err := h.transactionUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransactionToResponse(tx))
}

// DeleteHandler removes a transaction.
// DELETE /v1/transactions/:id
// Returns 204 No Content, also when the transaction does not exist.
func (h *TransactionHandler) DeleteHandler(c *gin.Context) {
	if err := h.transactionUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
