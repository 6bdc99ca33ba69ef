package usecase

import (
	"context"

	validation "github.com/jellydator/validation"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	customValidation "github.com/allisson/pfvault/internal/validation"
)

// insightUseCase implements the InsightUseCase interface on top of the record use cases.
type insightUseCase struct {
	transactionUseCase TransactionUseCase
	budgetUseCase      BudgetUseCase
}

// Summary builds the report for monthYear from that month's transactions and every budget.
// FailedIDs lists the transaction ids and budget categories that could not be decrypted.
func (i *insightUseCase) Summary(ctx context.Context, monthYear string) (*financeDomain.Summary, error) {
	err := validation.Validate(monthYear, validation.Required, customValidation.MonthYear)
	if err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	transactions, err := i.transactionUseCase.GetByMonth(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	budgets, err := i.budgetUseCase.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	failedIDs := make([]string, 0, len(transactions.FailedIDs)+len(budgets.FailedIDs))
	failedIDs = append(failedIDs, transactions.FailedIDs...)
	failedIDs = append(failedIDs, budgets.FailedIDs...)

	breakdown := financeDomain.ExpensesByCategory(transactions.Items)
	top := breakdown[:min(len(breakdown), financeDomain.TopCategoriesLimit)]

	return &financeDomain.Summary{
		MonthYear:         monthYear,
		Overview:          financeDomain.ComputeOverview(transactions.Items),
		Budgets:           financeDomain.ComputeBudgetProgress(budgets.Items, transactions.Items, monthYear),
		TopCategories:     top,
		CategoryBreakdown: breakdown,
		DailyExpenses:     financeDomain.DailyExpenses(transactions.Items, financeDomain.DailyExpensesLimit),
		FailedIDs:         failedIDs,
	}, nil
}

// NewInsightUseCase creates a new InsightUseCase.
func NewInsightUseCase(transactionUseCase TransactionUseCase, budgetUseCase BudgetUseCase) InsightUseCase {
	return &insightUseCase{
		transactionUseCase: transactionUseCase,
		budgetUseCase:      budgetUseCase,
	}
}
