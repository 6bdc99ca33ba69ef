package dto

import (
	"github.com/shopspring/decimal"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// MapTransactionToResponse converts a domain transaction to an API response.
func MapTransactionToResponse(tx *financeDomain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

// ListTransactionsResponse is a page of transactions plus the ids that could not be decrypted.
type ListTransactionsResponse struct {
	Data      []TransactionResponse `json:"data"`
	FailedIDs []string              `json:"failed_ids"`
}

// MapTransactionsToListResponse converts decrypted transactions to a list response.
func MapTransactionsToListResponse(txs []*financeDomain.Transaction, failedIDs []string) ListTransactionsResponse {
	data := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		data = append(data, MapTransactionToResponse(tx))
	}

	return ListTransactionsResponse{
		Data:      data,
		FailedIDs: nonNil(failedIDs),
	}
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}

// MapBudgetToResponse converts a domain budget to an API response.
func MapBudgetToResponse(budget *financeDomain.Budget) BudgetResponse {
	return BudgetResponse{
		Category: budget.Category,
		Limit:    budget.Limit,
		Spent:    budget.Spent,
	}
}

// ListBudgetsResponse lists budgets plus the categories that could not be decrypted.
type ListBudgetsResponse struct {
	Data      []BudgetResponse `json:"data"`
	FailedIDs []string         `json:"failed_ids"`
}

// MapBudgetsToListResponse converts decrypted budgets to a list response.
func MapBudgetsToListResponse(budgets []*financeDomain.Budget, failedIDs []string) ListBudgetsResponse {
	data := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, MapBudgetToResponse(budget))
	}

	return ListBudgetsResponse{
		Data:      data,
		FailedIDs: nonNil(failedIDs),
	}
}

// SummaryResponse is the monthly insight report.
type SummaryResponse struct {
	MonthYear         string                         `json:"month_year"`
	Overview          financeDomain.Overview         `json:"overview"`
	Budgets           []financeDomain.BudgetProgress `json:"budgets"`
	TopCategories     []financeDomain.CategoryTotal  `json:"top_categories"`
	CategoryBreakdown []financeDomain.CategoryTotal  `json:"category_breakdown"`
	DailyExpenses     []financeDomain.DailyTotal     `json:"daily_expenses"`
	FailedIDs         []string                       `json:"failed_ids"`
}

// MapSummaryToResponse converts a domain summary to an API response.
func MapSummaryToResponse(summary *financeDomain.Summary) SummaryResponse {
	budgets := summary.Budgets
	if budgets == nil {
		budgets = []financeDomain.BudgetProgress{}
	}
	dailyExpenses := summary.DailyExpenses
	if dailyExpenses == nil {
		dailyExpenses = []financeDomain.DailyTotal{}
	}

	return SummaryResponse{
		MonthYear:         summary.MonthYear,
		Overview:          summary.Overview,
		Budgets:           budgets,
		TopCategories:     nonNilTotals(summary.TopCategories),
		CategoryBreakdown: nonNilTotals(summary.CategoryBreakdown),
		DailyExpenses:     dailyExpenses,
		FailedIDs:         nonNil(summary.FailedIDs),
	}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func nonNilTotals(totals []financeDomain.CategoryTotal) []financeDomain.CategoryTotal {
	if totals == nil {
		return []financeDomain.CategoryTotal{}
	}
	return totals
}
