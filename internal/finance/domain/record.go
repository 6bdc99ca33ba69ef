package domain

import (
	"time"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
)

// StoredTransaction is the persisted form of a Transaction.
//
// Only ID, CreatedAt and MonthYear are stored in the clear; everything else lives in Data.
type StoredTransaction struct {
	ID        string
	Data      cryptoDomain.Envelope
	CreatedAt time.Time
	// MonthYear is the by-month index key, equal to the first 7 characters of the date.
	MonthYear string
}

// StoredBudget is the persisted form of a Budget, keyed by category.
type StoredBudget struct {
	Category string
	Data     cryptoDomain.Envelope
}

// BatchResult holds the outcome of a decrypt-tolerant batch read.
type BatchResult[T any] struct {
	// Items are the records that decrypted successfully.
	Items []T
	// FailedIDs are the primary keys of rows that could not be decrypted.
	FailedIDs []string
}
