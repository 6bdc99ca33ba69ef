package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	cryptoRepository "github.com/allisson/pfvault/internal/crypto/repository"
	cryptoService "github.com/allisson/pfvault/internal/crypto/service"
)

// KeyRepository returns the blob-backed key store opened from KeyStoreURL.
func (c *Container) KeyRepository() (*cryptoRepository.BlobKeyRepository, error) {
	c.keyRepositoryInit.Do(func() {
		var err error
		c.keyRepository, err = cryptoRepository.OpenBlobKeyRepository(context.Background(), c.config.KeyStoreURL)
		c.setInitError("keyRepository", err)
	})
	if err := c.initError("keyRepository"); err != nil {
		return nil, err
	}
	return c.keyRepository, nil
}

// KeyManager returns the manager owning the application key.
func (c *Container) KeyManager() (*cryptoService.KeyManagerService, error) {
	c.keyManagerInit.Do(func() {
		var err error
		c.keyManager, err = c.initKeyManager()
		c.setInitError("keyManager", err)
	})
	if err := c.initError("keyManager"); err != nil {
		return nil, err
	}
	return c.keyManager, nil
}

// AEADManager returns the AEAD cipher factory.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// Codec returns the record codec.
func (c *Container) Codec() (cryptoService.Codec, error) {
	c.codecInit.Do(func() {
		keyManager, err := c.KeyManager()
		if err != nil {
			c.setInitError("codec", fmt.Errorf("failed to get key manager for codec: %w", err))
			return
		}
		c.codec = cryptoService.NewCodec(keyManager, c.AEADManager())
	})
	if err := c.initError("codec"); err != nil {
		return nil, err
	}
	return c.codec, nil
}

// initKeyManager creates the key manager for the configured algorithm.
func (c *Container) initKeyManager() (*cryptoService.KeyManagerService, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(c.config.EncryptionAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid ENCRYPTION_ALGORITHM %q: %w", c.config.EncryptionAlgorithm, err)
	}

	keyRepository, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for key manager: %w", err)
	}

	return cryptoService.NewKeyManager(keyRepository, algorithm, c.Logger()), nil
}
