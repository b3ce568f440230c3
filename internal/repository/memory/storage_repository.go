package memory

import (
	"context"
	"sync"

	"github.com/route-recorder/internal/domain/repository"
)

type storageRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStorageRepository returns a map-backed persistence substrate. Data lives
// for the process lifetime only; it is the default backend for development and
// the fixture for tests.
func NewStorageRepository() repository.StorageRepository {
	return &storageRepository{
		data: make(map[string][]byte),
	}
}

func (r *storageRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.data[key]
	if !ok {
		return nil, nil // Key absent
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (r *storageRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	r.data[key] = stored
	return nil
}

func (r *storageRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
