// Package errors defines the error kinds shared by every pfvault package.
//
// Domain packages wrap one of these kinds into their own sentinels, and the HTTP
// and CLI layers decide status codes and exit messages by kind alone.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the write collides with an existing record.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates invalid input, including envelopes that fail to decrypt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates the key store or record store cannot be opened or used.
	ErrUnavailable = errors.New("unavailable")
)

// Wrap prefixes err with message, keeping err in the chain. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
