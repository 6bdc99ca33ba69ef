package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
)

// CodecService implements the Codec interface on top of the key manager and AEAD ciphers.
// It has no knowledge of record schemas.
type CodecService struct {
	keyManager  KeyManager
	aeadManager AEADManager
}

// NewCodec creates a CodecService.
func NewCodec(keyManager KeyManager, aeadManager AEADManager) *CodecService {
	return &CodecService{
		keyManager:  keyManager,
		aeadManager: aeadManager,
	}
}

// Encrypt marshals record to JSON and seals it under the application key with a fresh nonce.
//
// Returns ErrSerialization when record cannot be marshaled. Key manager errors are
// returned unchanged.
func (c *CodecService) Encrypt(ctx context.Context, record any) (cryptoDomain.Envelope, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return cryptoDomain.Envelope{}, fmt.Errorf("%w: %v", cryptoDomain.ErrSerialization, err)
	}
	defer cryptoDomain.Zero(plaintext)

	cipher, err := c.cipher(ctx)
	if err != nil {
		return cryptoDomain.Envelope{}, err
	}

	ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
	if err != nil {
		return cryptoDomain.Envelope{}, err
	}

	return cryptoDomain.Envelope{
		IV:      base64.StdEncoding.EncodeToString(nonce),
		Content: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt opens envelope under the application key and unmarshals the JSON plaintext into out.
//
// Every failure concerning the envelope itself (bad base64, wrong nonce size, wrong key,
// tampering, non-JSON plaintext) is reported as ErrDecryptionFailed. Key manager errors
// are returned unchanged.
func (c *CodecService) Decrypt(ctx context.Context, envelope cryptoDomain.Envelope, out any) error {
	cipher, err := c.cipher(ctx)
	if err != nil {
		return err
	}

	nonce, err := base64.StdEncoding.DecodeString(envelope.IV)
	if err != nil {
		return cryptoDomain.ErrDecryptionFailed
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Content)
	if err != nil {
		return cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := cipher.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(plaintext)

	if err := json.Unmarshal(plaintext, out); err != nil {
		return cryptoDomain.ErrDecryptionFailed
	}

	return nil
}

func (c *CodecService) cipher(ctx context.Context) (AEAD, error) {
	key, err := c.keyManager.GetOrCreateKey(ctx)
	if err != nil {
		return nil, err
	}
	return c.aeadManager.CreateCipher(key.Key, key.Algorithm)
}
