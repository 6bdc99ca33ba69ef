package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/pfvault/internal/errors"
	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	"github.com/allisson/pfvault/internal/finance/http/dto"
	financeUseCase "github.com/allisson/pfvault/internal/finance/usecase"
)

// RunSetBudget creates the budget for category, or replaces it when edit is set.
// Without edit an existing budget is left untouched and ErrBudgetAlreadyExists is returned.
func RunSetBudget(
	ctx context.Context,
	budgetUseCase financeUseCase.BudgetUseCase,
	logger *slog.Logger,
	writer io.Writer,
	category string,
	limit string,
	spent string,
	edit bool,
) error {
	limitValue, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("%w: invalid limit %q", apperrors.ErrInvalidInput, limit)
	}

	spentValue := decimal.Zero
	if spent != "" {
		spentValue, err = decimal.NewFromString(spent)
		if err != nil {
			return fmt.Errorf("%w: invalid spent %q", apperrors.ErrInvalidInput, spent)
		}
	}

	budget := &financeDomain.Budget{
		Category: category,
		Limit:    limitValue,
		Spent:    spentValue,
	}

	if err := budgetUseCase.Save(ctx, budget, edit); err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}

	logger.Info("budget saved", slog.String("category", category), slog.Bool("overwrite", edit))
	_, _ = fmt.Fprintf(writer, "Budget for %s set to %s\n", category, limitValue.StringFixed(2))
	return nil
}

// RunListBudgets prints every budget ordered by category.
func RunListBudgets(
	ctx context.Context,
	budgetUseCase financeUseCase.BudgetUseCase,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result, err := budgetUseCase.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list budgets: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(writer, dto.MapBudgetsToListResponse(result.Items, result.FailedIDs))
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CATEGORY\tLIMIT\tSPENT")
	for _, budget := range result.Items {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n",
			budget.Category, budget.Limit.StringFixed(2), budget.Spent.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	writeFailedIDs(writer, result.FailedIDs)
	return nil
}

// RunDeleteBudget removes the budget for category. Deleting an unknown category succeeds.
func RunDeleteBudget(
	ctx context.Context,
	budgetUseCase financeUseCase.BudgetUseCase,
	logger *slog.Logger,
	writer io.Writer,
	category string,
) error {
	if err := budgetUseCase.Delete(ctx, category); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	logger.Info("budget deleted", slog.String("category", category))
	_, _ = fmt.Fprintf(writer, "Budget for %s deleted\n", category)
	return nil
}
