package cache

import (
	"context"
	"errors"
)

// BlobStore is a string-keyed JSON blob store. It backs both the catalog
// read cache and the cart/favorites/identity snapshots, which are
// fire-and-forget and last-write-wins.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrMiss = errors.New("blob not found")
