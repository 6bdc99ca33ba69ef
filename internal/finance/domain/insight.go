package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Budget progress thresholds, in percent of the limit.
const (
	BudgetWarningPercent  = 90
	BudgetExceededPercent = 100

	// TopCategoriesLimit is how many expense categories Summary reports.
	TopCategoriesLimit = 5
	// DailyExpensesLimit is how many of the latest dates the spending trend keeps.
	DailyExpensesLimit = 30
)

// BudgetStatus classifies how much of a budget has been used.
type BudgetStatus string

const (
	BudgetOK       BudgetStatus = "ok"
	BudgetWarning  BudgetStatus = "warning"
	BudgetExceeded BudgetStatus = "exceeded"
)

var hundred = decimal.NewFromInt(100)

// Overview aggregates income and expenses over a set of transactions.
type Overview struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
	// SavingsRate is the rounded percentage of income not spent, 0 without income.
	SavingsRate int64 `json:"savings_rate"`
}

// BudgetProgress reports spending against one budget.
type BudgetProgress struct {
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	// Percent is spent over limit, capped at 100.
	Percent decimal.Decimal `json:"percent"`
	Status  BudgetStatus    `json:"status"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DailyTotal is the expense total of one date.
type DailyTotal struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary is the monthly insight report.
type Summary struct {
	MonthYear         string           `json:"month_year"`
	Overview          Overview         `json:"overview"`
	Budgets           []BudgetProgress `json:"budgets"`
	TopCategories     []CategoryTotal  `json:"top_categories"`
	CategoryBreakdown []CategoryTotal  `json:"category_breakdown"`
	DailyExpenses     []DailyTotal     `json:"daily_expenses"`
	FailedIDs         []string         `json:"failed_ids"`
}

// ComputeOverview sums income and expenses and derives balance and savings rate.
func ComputeOverview(transactions []*Transaction) Overview {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, tx := range transactions {
		if tx.Type == Income {
			income = income.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount)
		}
	}

	overview := Overview{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}

	if income.IsPositive() {
		rate := overview.Balance.Div(income).Mul(hundred)
		// Half-up towards positive infinity.
		overview.SavingsRate = rate.Add(decimal.NewFromFloat(0.5)).Floor().IntPart()
	}

	return overview
}

// ComputeBudgetProgress computes spending for every budget from the expenses dated in monthYear.
// The result keeps the order of budgets.
func ComputeBudgetProgress(budgets []*Budget, transactions []*Transaction, monthYear string) []BudgetProgress {
	spending := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != Expense || !strings.HasPrefix(tx.Date, monthYear) {
			continue
		}
		spending[tx.Category] = spending[tx.Category].Add(tx.Amount)
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		spent := spending[b.Category]

		percent := decimal.Zero
		if b.Limit.IsPositive() {
			percent = decimal.Min(hundred, spent.Div(b.Limit).Mul(hundred))
		}

		progress = append(progress, BudgetProgress{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
			Percent:   percent,
			Status:    budgetStatus(percent),
		})
	}

	return progress
}

// TopExpenseCategories returns the categories with the highest expense totals, largest first.
// Ties are ordered by category name.
func TopExpenseCategories(transactions []*Transaction, limit int) []CategoryTotal {
	result := ExpensesByCategory(transactions)
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ExpensesByCategory returns the expense total of every category, largest first.
// Ties are ordered by category name.
func ExpensesByCategory(transactions []*Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type == Expense {
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		result = append(result, CategoryTotal{Category: category, Amount: amount})
	}

	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Amount.Cmp(result[j].Amount); c != 0 {
			return c > 0
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// DailyExpenses sums expenses per date, oldest first, keeping only the latest limit dates.
func DailyExpenses(transactions []*Transaction, limit int) []DailyTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type == Expense {
			totals[tx.Date] = totals[tx.Date].Add(tx.Amount)
		}
	}

	result := make([]DailyTotal, 0, len(totals))
	for date, amount := range totals {
		result = append(result, DailyTotal{Date: date, Amount: amount})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	if len(result) > limit {
		result = result[len(result)-limit:]
	}
	return result
}

// SortTransactionsByDateDesc orders transactions newest first. Equal dates are ordered by id.
func SortTransactionsByDateDesc(transactions []*Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		if transactions[i].Date != transactions[j].Date {
			return transactions[i].Date > transactions[j].Date
		}
		return transactions[i].ID < transactions[j].ID
	})
}

func budgetStatus(percent decimal.Decimal) BudgetStatus {
	switch {
	case percent.GreaterThanOrEqual(decimal.NewFromInt(BudgetExceededPercent)):
		return BudgetExceeded
	case percent.GreaterThanOrEqual(decimal.NewFromInt(BudgetWarningPercent)):
		return BudgetWarning
	default:
		return BudgetOK
	}
}
