package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	apperrors "github.com/allisson/pfvault/internal/errors"
)

// KeyManagerService implements the KeyManager interface.
//
// It is built once at startup and injected into the codec, so the key lifetime is
// the lifetime of this value. The first successful GetOrCreateKey caches the key;
// concurrent first callers share a single load-or-create through singleflight, so
// two different keys can never be generated for the same key store.
type KeyManagerService struct {
	keyRepo   KeyRepository
	algorithm cryptoDomain.Algorithm
	logger    *slog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	key   *cryptoDomain.EncryptionKey
}

// NewKeyManager creates a KeyManagerService that creates new keys for algorithm.
// An existing persisted key keeps the algorithm it was exported with.
func NewKeyManager(
	keyRepo KeyRepository,
	algorithm cryptoDomain.Algorithm,
	logger *slog.Logger,
) *KeyManagerService {
	return &KeyManagerService{
		keyRepo:   keyRepo,
		algorithm: algorithm,
		logger:    logger,
	}
}

// GetOrCreateKey returns the application key.
//
// The returned key is shared; callers must not modify or zero it.
// Returns ErrStorageUnavailable when the key store cannot be used and
// ErrInvalidKeyMaterial when a persisted key exists but cannot be parsed.
func (km *KeyManagerService) GetOrCreateKey(ctx context.Context) (*cryptoDomain.EncryptionKey, error) {
	if key := km.cached(); key != nil {
		return key, nil
	}

	v, err, _ := km.group.Do(cryptoDomain.KeyName, func() (any, error) {
		if key := km.cached(); key != nil {
			return key, nil
		}

		// Shared by every waiter, so one caller's cancellation must not fail the others.
		key, err := km.loadOrCreate(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		km.mu.Lock()
		km.key = key
		km.mu.Unlock()

		return key, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*cryptoDomain.EncryptionKey), nil
}

// Close drops the cached key. Subsequent calls reload it from the key store.
// The key material is not zeroed: callers may still hold the returned key.
func (km *KeyManagerService) Close() {
	km.mu.Lock()
	defer km.mu.Unlock()

	km.key = nil
}

func (km *KeyManagerService) cached() *cryptoDomain.EncryptionKey {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return km.key
}

// loadOrCreate reads the persisted key export or generates and persists a new key.
func (km *KeyManagerService) loadOrCreate(ctx context.Context) (*cryptoDomain.EncryptionKey, error) {
	data, err := km.keyRepo.Get(ctx, cryptoDomain.KeyName)
	if err == nil {
		key, err := cryptoDomain.ParseJWK(data)
		if err != nil {
			return nil, err
		}
		if key.Algorithm != km.algorithm {
			km.logger.Warn("stored encryption key uses a different algorithm than configured",
				slog.String("stored_algorithm", string(key.Algorithm)),
				slog.String("configured_algorithm", string(km.algorithm)),
			)
		}
		km.logger.Debug("encryption key loaded", slog.String("key_id", key.ID))
		return key, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	raw := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate encryption key: %w", err)
	}

	key := &cryptoDomain.EncryptionKey{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Algorithm: km.algorithm,
		Key:       raw,
	}

	exported, err := key.MarshalJWK()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(exported)

	if err := km.keyRepo.Save(ctx, cryptoDomain.KeyName, exported); err != nil {
		key.Close()
		return nil, err
	}

	km.logger.Info("encryption key created",
		slog.String("key_id", key.ID),
		slog.String("algorithm", string(key.Algorithm)),
	)

	return key, nil
}
