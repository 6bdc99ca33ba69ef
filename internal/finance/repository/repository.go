// Package repository implements the encrypted record store for transactions and budgets.
//
// Records are persisted as envelopes only; nothing here sees plaintext. The SQL
// repositories serve SQLite, PostgreSQL and MySQL through database/sql and honor the
// transaction carried by the context (database.GetTx). The Redis repositories keep
// the same layout with JSON values and id sets.
package repository

import (
	"fmt"
	"time"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
)

// createdAtLayout is the text layout of transactions.created_at in every backend.
const createdAtLayout = time.RFC3339Nano

// storageError marks err as a record store failure while keeping it in the chain.
func storageError(err error, message string) error {
	return fmt.Errorf("%s: %w: %w", message, cryptoDomain.ErrStorageUnavailable, err)
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

func parseCreatedAt(s string) (time.Time, error) {
	t, err := time.Parse(createdAtLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created_at %q: %w", s, err)
	}
	return t, nil
}
