// Package usecase implements the plaintext CRUD surface over the encrypted record store.
//
// Writes validate the record, encrypt it through the codec and upsert the envelope.
// Batch reads decrypt row by row: rows that fail to decrypt are logged, skipped and
// reported in BatchResult.FailedIDs, while any other error aborts the read.
package usecase

import (
	"context"

	financeDomain "github.com/allisson/pfvault/internal/finance/domain"
)

// TransactionRepository defines the interface for transaction envelope persistence.
type TransactionRepository interface {
	Put(ctx context.Context, tx *financeDomain.StoredTransaction) error
	Get(ctx context.Context, id string) (*financeDomain.StoredTransaction, error)
	GetAll(ctx context.Context) ([]*financeDomain.StoredTransaction, error)
	GetAllByMonth(ctx context.Context, monthYear string) ([]*financeDomain.StoredTransaction, error)
	Delete(ctx context.Context, id string) error
}

// BudgetRepository defines the interface for budget envelope persistence.
type BudgetRepository interface {
	Put(ctx context.Context, budget *financeDomain.StoredBudget) error
	// Create inserts only when the category is free and returns ErrBudgetAlreadyExists otherwise.
	Create(ctx context.Context, budget *financeDomain.StoredBudget) error
	Get(ctx context.Context, category string) (*financeDomain.StoredBudget, error)
	GetAll(ctx context.Context) ([]*financeDomain.StoredBudget, error)
	Delete(ctx context.Context, category string) error
}

// TransactionUseCase defines the interface for transaction business logic.
type TransactionUseCase interface {
	// Save validates, encrypts and upserts tx keyed by tx.ID.
	Save(ctx context.Context, tx *financeDomain.Transaction) error
	// GetAll returns every transaction that decrypts under the current key.
	GetAll(ctx context.Context) (*financeDomain.BatchResult[*financeDomain.Transaction], error)
	// GetByMonth returns the transactions indexed under monthYear ("YYYY-MM").
	GetByMonth(ctx context.Context, monthYear string) (*financeDomain.BatchResult[*financeDomain.Transaction], error)
	// Get returns one transaction. Decryption failures are returned to the caller.
	Get(ctx context.Context, id string) (*financeDomain.Transaction, error)
	// Delete removes a transaction. Missing ids are ignored.
	Delete(ctx context.Context, id string) error
}

// BudgetUseCase defines the interface for budget business logic.
type BudgetUseCase interface {
	// Save stores budget. Without overwrite an existing budget for the same category
	// is left untouched and ErrBudgetAlreadyExists is returned.
	Save(ctx context.Context, budget *financeDomain.Budget, overwrite bool) error
	GetAll(ctx context.Context) (*financeDomain.BatchResult[*financeDomain.Budget], error)
	Get(ctx context.Context, category string) (*financeDomain.Budget, error)
	Delete(ctx context.Context, category string) error
}

// InsightUseCase defines the interface for the monthly financial report.
type InsightUseCase interface {
	Summary(ctx context.Context, monthYear string) (*financeDomain.Summary, error)
}
