package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/pfvault/internal/finance/http/dto"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
	"github.com/allisson/pfvault/internal/httputil"
	customValidation "github.com/allisson/pfvault/internal/validation"
)

// BudgetHandler handles HTTP requests for budgets.
type BudgetHandler struct {
	budgetUseCase financeUseCase.BudgetUseCase
	logger        *slog.Logger
}

// NewBudgetHandler creates a new budget handler.
func NewBudgetHandler(budgetUseCase financeUseCase.BudgetUseCase, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetUseCase: budgetUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a budget for a category that has none.
// POST /v1/budgets
// Returns 201 Created, or 409 Conflict when the category already has a budget.
func (h *BudgetHandler) CreateHandler(c *gin.Context) {
	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	budget := req.ToDomain()
	if err := h.budgetUseCase.Save(c.Request.Context(), budget, false); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapBudgetToResponse(budget))
}

// UpdateHandler replaces the budget of the category named in the URL.
// PUT /v1/budgets/:category
// Returns 200 OK.
func (h *BudgetHandler) UpdateHandler(c *gin.Context) {
	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	req.Category = c.Param("category")
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	budget := req.ToDomain()
	if err := h.budgetUseCase.Save(c.Request.Context(), budget, true); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBudgetToResponse(budget))
}

// ListHandler lists every budget.
// GET /v1/budgets
func (h *BudgetHandler) ListHandler(c *gin.Context) {
	result, err := h.budgetUseCase.GetAll(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBudgetsToListResponse(result.Items, result.FailedIDs))
}

// GetHandler returns the budget of one category.
// GET /v1/budgets/:category
func (h *BudgetHandler) GetHandler(c *gin.Context) {
	budget, err := h.budgetUseCase.Get(c.Request.Context(), c.Param("category"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBudgetToResponse(budget))
}

// DeleteHandler removes the budget of one category.
// DELETE /v1/budgets/:category
// Returns 204 No Content.
func (h *BudgetHandler) DeleteHandler(c *gin.Context) {
	if err := h.budgetUseCase.Delete(c.Request.Context(), c.Param("category")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
