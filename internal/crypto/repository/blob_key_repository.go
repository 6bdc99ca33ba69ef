// Package repository persists the exported application key.
//
// The key store is a gocloud.dev blob bucket: a local directory (fileblob) in normal
// use, an in-memory bucket in tests, or any other blob URL the operator configures.
package repository

import (
	"context"
	"fmt"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	cryptoDomain "github.com/allisson/pfvault/internal/crypto/domain"
	apperrors "github.com/allisson/pfvault/internal/errors"
)

// BlobKeyRepository stores key exports as objects in a blob bucket.
type BlobKeyRepository struct {
	bucket *blob.Bucket
}

// OpenBlobKeyRepository opens the key store at location.
//
// A location containing "://" is treated as a blob URL (e.g. "mem://",
// "file:///var/lib/pfvault/keys"). Anything else is a local directory that is
// created on demand.
func OpenBlobKeyRepository(ctx context.Context, location string) (*BlobKeyRepository, error) {
	var (
		bucket *blob.Bucket
		err    error
	)

	if strings.Contains(location, "://") {
		bucket, err = blob.OpenBucket(ctx, location)
	} else {
		bucket, err = fileblob.OpenBucket(location, &fileblob.Options{CreateDir: true})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open key store: %v", cryptoDomain.ErrStorageUnavailable, err)
	}

	return NewBlobKeyRepository(bucket), nil
}

// Get returns the stored key export, or ErrNotFound when name does not exist.
func (r *BlobKeyRepository) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := r.bucket.ReadAll(ctx, name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "encryption key not found")
		}
		return nil, fmt.Errorf("%w: failed to read key: %v", cryptoDomain.ErrStorageUnavailable, err)
	}
	return data, nil
}

// Save writes the key export under name, replacing any previous object.
func (r *BlobKeyRepository) Save(ctx context.Context, name string, data []byte) error {
	err := r.bucket.WriteAll(ctx, name, data, &blob.WriterOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("%w: failed to write key: %v", cryptoDomain.ErrStorageUnavailable, err)
	}
	return nil
}

// Close releases the underlying bucket.
func (r *BlobKeyRepository) Close() error {
	return r.bucket.Close()
}

// NewBlobKeyRepository creates a BlobKeyRepository over an already opened bucket.
func NewBlobKeyRepository(bucket *blob.Bucket) *BlobKeyRepository {
	return &BlobKeyRepository{bucket: bucket}
}
