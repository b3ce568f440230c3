package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/route-recorder/internal/domain/repository"
	"go.uber.org/zap"
)

type storageRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStorageRepository returns a Redis-backed persistence substrate. Values
// are written without expiry: saved routes live until overwritten or deleted.
func NewStorageRepository(redis *Redis) repository.StorageRepository {
	return &storageRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *storageRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Key absent
	}
	if err != nil {
		r.logger.Error("Failed to get from storage", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("storage get error: %w", err)
	}

	r.logger.Debug("Storage hit", zap.String("key", key))
	return val, nil
}

func (r *storageRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, key, value, 0).Err()
	if err != nil {
		r.logger.Error("Failed to set storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage set error: %w", err)
	}

	r.logger.Debug("Storage set", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (r *storageRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage delete error: %w", err)
	}

	r.logger.Debug("Storage key deleted", zap.String("key", key))
	return nil
}
