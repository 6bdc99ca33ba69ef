package domain

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	customValidation "github.com/allisson/pfvault/internal/validation"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is a single income or expense entry in plaintext form.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	// Date is a calendar date in YYYY-MM-DD form.
	Date string `json:"date"`
}

// MonthYear returns the YYYY-MM bucket the transaction is indexed under.
// Only meaningful after Validate succeeded.
func (t *Transaction) MonthYear() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}

// Validate checks the transaction fields and returns an ErrInvalidInput on violation.
func (t *Transaction) Validate() error {
	err := validation.ValidateStruct(t,
		validation.Field(&t.ID, validation.Required, customValidation.NotBlank),
		validation.Field(&t.Amount, customValidation.PositiveDecimal),
		validation.Field(&t.Type, validation.Required, validation.In(Income, Expense)),
		validation.Field(&t.Category, validation.Required, customValidation.NotBlank),
		validation.Field(&t.Date, validation.Required, customValidation.Date),
	)
	return customValidation.WrapValidationError(err)
}
