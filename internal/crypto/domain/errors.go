package domain

import (
	"github.com/allisson/pfvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// so the HTTP layer can map them to status codes without string matching.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// Keys must be exactly 32 bytes (256 bits) for both supported algorithms.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates an envelope could not be decrypted under the current key.
	//
	// This error can occur due to:
	//   - The envelope was produced by a different key
	//   - Ciphertext or nonce has been tampered with (authentication failure)
	//   - Invalid base64 or nonce length
	//   - Decrypted bytes are not valid JSON
	//
	// The specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrSerialization indicates a record could not be JSON encoded before encryption.
	ErrSerialization = errors.Wrap(errors.ErrInvalidInput, "serialization failed")

	// ErrInvalidKeyMaterial indicates the persisted key export exists but cannot be used.
	//
	// The key is never regenerated in this case, since a new key would orphan
	// every envelope written under the old one.
	ErrInvalidKeyMaterial = errors.Wrap(errors.ErrInvalidInput, "invalid key material")

	// ErrStorageUnavailable indicates the local key store or record store cannot be used.
	//
	// Encryption is mandatory, so there is no fallback and no retry.
	ErrStorageUnavailable = errors.Wrap(errors.ErrUnavailable, "storage unavailable")
)
