// Package domain defines the core domain models and errors for the finance records.
package domain

import (
	"fmt"

	"github.com/allisson/pfvault/internal/errors"
)

// Finance-specific error definitions.
var (
	// ErrTransactionNotFound indicates no transaction exists with the requested id.
	ErrTransactionNotFound = errors.Wrap(errors.ErrNotFound, "transaction not found")

	// ErrBudgetNotFound indicates no budget exists for the requested category.
	ErrBudgetNotFound = errors.Wrap(errors.ErrNotFound, "budget not found")

	// ErrBudgetAlreadyExists indicates a create was attempted for a category that already has a budget.
	ErrBudgetAlreadyExists = errors.Wrap(errors.ErrConflict, "budget already exists")
)

// NewBudgetAlreadyExistsError returns ErrBudgetAlreadyExists naming category.
func NewBudgetAlreadyExistsError(category string) error {
	return fmt.Errorf("budget for %q already exists: %w", category, ErrBudgetAlreadyExists)
}
