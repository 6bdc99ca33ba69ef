package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/pfvault/internal/finance/http/dto"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
	"github.com/allisson/pfvault/internal/httputil"
	customValidation "github.com/allisson/pfvault/internal/validation"
)

// InsightHandler serves the monthly report.
type InsightHandler struct {
	insightUseCase financeUseCase.InsightUseCase
	logger         *slog.Logger
	now            func() time.Time
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(insightUseCase financeUseCase.InsightUseCase, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{
		insightUseCase: insightUseCase,
		logger:         logger,
		now:            time.Now,
	}
}

// SummaryHandler returns the overview, budget progress and top categories of a month.
// GET /v1/insights?month=YYYY-MM
// The month defaults to the current one.
func (h *InsightHandler) SummaryHandler(c *gin.Context) {
	month := c.DefaultQuery("month", h.now().Format(customValidation.MonthLayout))

	summary, err := h.insightUseCase.Summary(c.Request.Context(), month)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSummaryToResponse(summary))
}
