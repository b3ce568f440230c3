package repository

import "context"

// StorageRepository is the persistence substrate: a durable key-value blob
// store the saved collection is written to wholesale under a fixed key.
type StorageRepository interface {
	// Get returns the blob stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
