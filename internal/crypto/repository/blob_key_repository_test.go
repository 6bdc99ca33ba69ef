package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	apperrors "github.com/allisson/pfvault/internal/errors"
)

func TestBlobKeyRepository_Memory(t *testing.T) {
	ctx := context.Background()
	repo := NewBlobKeyRepository(memblob.OpenBucket(nil))
	defer func() { _ = repo.Close() }()

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Get(ctx, cryptoDomain.KeyName)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("save and get", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, cryptoDomain.KeyName, []byte(`{"kty":"oct"}`)))

		data, err := repo.Get(ctx, cryptoDomain.KeyName)
		require.NoError(t, err)
		assert.JSONEq(t, `{"kty":"oct"}`, string(data))
	})
}

func TestOpenBlobKeyRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("directory is created and survives reopen", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "keys")

		repo, err := OpenBlobKeyRepository(ctx, dir)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, cryptoDomain.KeyName, []byte("material")))
		require.NoError(t, repo.Close())

		reopened, err := OpenBlobKeyRepository(ctx, dir)
		require.NoError(t, err)
		defer func() { _ = reopened.Close() }()

		data, err := reopened.Get(ctx, cryptoDomain.KeyName)
		require.NoError(t, err)
		assert.Equal(t, []byte("material"), data)
	})

	t.Run("mem url", func(t *testing.T) {
		repo, err := OpenBlobKeyRepository(ctx, "mem://")
		require.NoError(t, err)
		defer func() { _ = repo.Close() }()

		_, err = repo.Get(ctx, cryptoDomain.KeyName)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("path is a regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

		_, err := OpenBlobKeyRepository(ctx, path)
		assert.ErrorIs(t, err, cryptoDomain.ErrStorageUnavailable)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := OpenBlobKeyRepository(ctx, "nope://bucket")
		assert.ErrorIs(t, err, cryptoDomain.ErrStorageUnavailable)
	})
}

func TestBlobKeyRepository_ClosedBucket(t *testing.T) {
	ctx := context.Background()
	repo := NewBlobKeyRepository(memblob.OpenBucket(nil))
	require.NoError(t, repo.Close())

	_, err := repo.Get(ctx, cryptoDomain.KeyName)
	assert.ErrorIs(t, err, cryptoDomain.ErrStorageUnavailable)

	err = repo.Save(ctx, cryptoDomain.KeyName, []byte("x"))
	assert.ErrorIs(t, err, cryptoDomain.ErrStorageUnavailable)
}
