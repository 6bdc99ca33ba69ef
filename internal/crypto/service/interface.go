// Package service provides the cryptographic services behind at-rest record encryption:
// AEAD ciphers, the key manager that owns the single application key, and the codec
// that turns JSON records into envelopes and back.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyRepository persists the exported application key.
type KeyRepository interface {
	// Get returns the stored key export, or apperrors.ErrNotFound when none exists.
	Get(ctx context.Context, name string) ([]byte, error)
	// Save writes the key export under name.
	Save(ctx context.Context, name string, data []byte) error
}

// KeyManager owns the lifecycle of the single application key.
type KeyManager interface {
	// GetOrCreateKey returns the application key, creating and persisting it on first use.
	GetOrCreateKey(ctx context.Context) (*cryptoDomain.EncryptionKey, error)
}

// Codec converts JSON-serializable records into envelopes and back.
type Codec interface {
	// Encrypt serializes record to JSON and encrypts it under the application key.
	Encrypt(ctx context.Context, record any) (cryptoDomain.Envelope, error)
	// Decrypt verifies and decrypts envelope and unmarshals the plaintext JSON into out.
	Decrypt(ctx context.Context, envelope cryptoDomain.Envelope, out any) error
}
