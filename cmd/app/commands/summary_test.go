package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/pfvault/internal/errors"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	"github.com/allisson/pfvault/internal/finance/usecase/mocks"
)

func TestRunSummary(t *testing.T) {
	ctx := context.Background()

	summary := &financeDomain.Summary{
		MonthYear: "2024-03",
		Overview: financeDomain.Overview{
			TotalIncome:   decimal.NewFromInt(3000),
			TotalExpenses: decimal.NewFromInt(1750),
			Balance:       decimal.NewFromInt(1250),
			SavingsRate:   42,
		},
		Budgets: []financeDomain.BudgetProgress{
			{
				Category:  "fun",
				Limit:     decimal.NewFromInt(100),
				Spent:     decimal.NewFromInt(150),
				Remaining: decimal.NewFromInt(-50),
				Percent:   decimal.NewFromInt(100),
				Status:    financeDomain.BudgetExceeded,
			},
		},
		TopCategories: []financeDomain.CategoryTotal{
			{Category: "rent", Amount: decimal.NewFromInt(1200)},
		},
		DailyExpenses: []financeDomain.DailyTotal{
			{Date: "2024-03-01", Amount: decimal.NewFromInt(1200)},
		},
		FailedIDs: []string{},
	}

	t.Run("text", func(t *testing.T) {
		useCase := mocks.NewMockInsightUseCase(t)
		useCase.On("Summary", ctx, "2024-03").Return(summary, nil)

		var buf bytes.Buffer
		require.NoError(t, RunSummary(ctx, useCase, &buf, "2024-03", "text"))

		out := buf.String()
		assert.Contains(t, out, "Summary for 2024-03")
		assert.Contains(t, out, "Savings rate: 42%")
		assert.Contains(t, out, "-50.00")
		assert.Contains(t, out, "exceeded")
		assert.Contains(t, out, "1. rent 1200.00")
		assert.Contains(t, out, "2024-03-01 1200.00")
	})

	t.Run("json", func(t *testing.T) {
		useCase := mocks.NewMockInsightUseCase(t)
		useCase.On("Summary", ctx, "2024-03").Return(summary, nil)

		var buf bytes.Buffer
		require.NoError(t, RunSummary(ctx, useCase, &buf, "2024-03", "json"))

		var out map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "2024-03", out["month_year"])
		assert.Len(t, out["daily_expenses"], 1)
	})

	t.Run("invalid-month", func(t *testing.T) {
		useCase := mocks.NewMockInsightUseCase(t)
		useCase.On("Summary", ctx, "March").Return(nil, apperrors.ErrInvalidInput)

		err := RunSummary(ctx, useCase, &bytes.Buffer{}, "March", "text")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
