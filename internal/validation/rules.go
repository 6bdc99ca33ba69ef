// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/pfvault/internal/errors"
)

const (
	// DateLayout is the calendar date format used by transactions.
	DateLayout = "2006-01-02"
	// MonthLayout is the month bucket format used by the by-month index.
	MonthLayout = "2006-01"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) == s
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Date validates a real calendar date in YYYY-MM-DD form.
var Date = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := time.Parse(DateLayout, s)
		return err == nil
	},
	validation.NewError("validation_date", "must be a valid date in YYYY-MM-DD format"),
)

// MonthYear validates a month bucket in YYYY-MM form.
var MonthYear = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := time.Parse(MonthLayout, s)
		return err == nil
	},
	validation.NewError("validation_month_year", "must be a valid month in YYYY-MM format"),
)

// PositiveDecimal validates that a decimal.Decimal is greater than zero.
var PositiveDecimal = validation.By(func(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_decimal_type", "must be a decimal")
	}
	if !d.IsPositive() {
		return validation.NewError("validation_positive", "must be greater than zero")
	}
	return nil
})
