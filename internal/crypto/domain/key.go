package domain

import (
	"encoding/json"
	"fmt"

	"github.com/go-jose/go-jose/v4"
)

// EncryptionKey is the single symmetric key that protects every stored record.
//
// Exactly one key exists per data directory. It is created lazily on first use,
// persisted to the key store as a JSON Web Key, and never rotated or deleted by
// the application.
type EncryptionKey struct {
	// ID is the key identifier written into the JWK "kid" member.
	ID string
	// Algorithm is the AEAD algorithm the key is used with.
	Algorithm Algorithm
	// Key is the 32-byte key material. Zero it with Close when the key is discarded.
	Key []byte
}

// Close zeroes the key material.
func (k *EncryptionKey) Close() {
	if k == nil {
		return
	}
	Zero(k.Key)
}

// MarshalJWK exports the key as a JSON Web Key (kty "oct").
func (k *EncryptionKey) MarshalJWK() ([]byte, error) {
	if len(k.Key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	jwk := jose.JSONWebKey{
		Key:       k.Key,
		KeyID:     k.ID,
		Algorithm: k.Algorithm.JWKAlgorithm(),
		Use:       "enc",
	}

	data, err := json.Marshal(jwk)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jwk: %w", err)
	}
	return data, nil
}

// ParseJWK imports a key previously exported with MarshalJWK.
// Returns ErrInvalidKeyMaterial when the document is not a 256-bit symmetric JWK.
func ParseJWK(data []byte) (*EncryptionKey, error) {
	var jwk jose.JSONWebKey
	if err := json.Unmarshal(data, &jwk); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	raw, ok := jwk.Key.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: not a symmetric key", ErrInvalidKeyMaterial)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", ErrInvalidKeyMaterial, KeySize)
	}

	alg, err := ParseJWKAlgorithm(jwk.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	return &EncryptionKey{
		ID:        jwk.KeyID,
		Algorithm: alg,
		Key:       raw,
	}, nil
}
