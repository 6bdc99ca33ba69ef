package domain

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	customValidation "github.com/allisson/pfvault/internal/validation"
)

// Budget is a spending limit for one category. Category is the unique key.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	// Spent is stored as given; the insight calculations re-derive it from transactions.
	Spent decimal.Decimal `json:"spent"`
}

// Validate checks the budget fields and returns an ErrInvalidInput on violation.
func (b *Budget) Validate() error {
	err := validation.ValidateStruct(b,
		validation.Field(&b.Category, validation.Required, customValidation.NotBlank),
		validation.Field(&b.Limit, customValidation.PositiveDecimal),
	)
	return customValidation.WrapValidationError(err)
}
