package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Delete when the blob is already gone.
var ErrNotExist = errors.New("blob does not exist")

// BlobStore persists media blobs behind a uniform store-and-expose contract.
// Store uploads the file at srcPath under key and returns the public URL and
// the storage-layer path used for later deletion.
type BlobStore interface {
	Store(ctx context.Context, key, srcPath, contentType string) (url, path string, err error)
	Delete(ctx context.Context, path string) error
}
