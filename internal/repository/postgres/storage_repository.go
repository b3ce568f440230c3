package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/route-recorder/internal/domain/repository"
	"go.uber.org/zap"
)

const blobsSchema = `
CREATE TABLE IF NOT EXISTS blobs (
    key        TEXT PRIMARY KEY,
    value      BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type storageRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStorageRepository returns a Postgres-backed persistence substrate: one
// blob row per key, upserted wholesale. The table is created on first use.
func NewStorageRepository(ctx context.Context, db *DB) (repository.StorageRepository, error) {
	if _, err := db.ExecContext(ctx, blobsSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure blobs table: %w", err)
	}

	return &storageRepository{
		db:     db,
		logger: db.logger,
	}, nil
}

func (r *storageRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.GetContext(ctx, &value, `SELECT value FROM blobs WHERE key = $1`, key)
	if err == sql.ErrNoRows {
		return nil, nil // Key absent
	}
	if err != nil {
		r.logger.Error("Failed to get from storage", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("storage get error: %w", err)
	}

	return value, nil
}

func (r *storageRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		r.logger.Error("Failed to set storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage set error: %w", err)
	}

	r.logger.Debug("Storage set", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (r *storageRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = $1`, key)
	if err != nil {
		r.logger.Error("Failed to delete storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage delete error: %w", err)
	}

	return nil
}
