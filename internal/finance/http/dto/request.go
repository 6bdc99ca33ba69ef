// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
	customValidation "github.com/allisson/pfvault/internal/validation"
)

// TransactionRequest contains the fields of a transaction write.
// On POST the id is optional and generated when empty; on PUT it comes from the URL.
type TransactionRequest struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// Validate checks if the transaction request is valid.
func (r *TransactionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, customValidation.NoWhitespace),
		validation.Field(&r.Amount, customValidation.PositiveDecimal),
		validation.Field(&r.Type,
			validation.Required,
			validation.In(string(financeDomain.Income), string(financeDomain.Expense)),
		),
		validation.Field(&r.Category, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Date, validation.Required, customValidation.Date),
	)
}

// ToDomain converts the request into a transaction keyed by id.
func (r *TransactionRequest) ToDomain(id string) *financeDomain.Transaction {
	return &financeDomain.Transaction{
		ID:          id,
		Amount:      r.Amount,
		Type:        financeDomain.TransactionType(r.Type),
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
	}
}

// BudgetRequest contains the fields of a budget write.
// On PUT the category comes from the URL.
type BudgetRequest struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}

// Validate checks if the budget request is valid.
func (r *BudgetRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Category, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Limit, customValidation.PositiveDecimal),
	)
}

// ToDomain converts the request into a budget.
func (r *BudgetRequest) ToDomain() *financeDomain.Budget {
	return &financeDomain.Budget{
		Category: r.Category,
		Limit:    r.Limit,
		Spent:    r.Spent,
	}
}
