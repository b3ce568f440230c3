package memory_test

import (
	"context"
	"testing"

	"github.com/route-recorder/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStorageRepository()

	t.Run("absent key returns nil without error", func(t *testing.T) {
		value, err := repo.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("set overwrites wholesale", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "routes:saved", []byte(`[{"id":1}]`)))
		require.NoError(t, repo.Set(ctx, "routes:saved", []byte(`[{"id":1},{"id":2}]`)))

		value, err := repo.Get(ctx, "routes:saved")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"id":1},{"id":2}]`), value)
	})

	t.Run("stored value is not aliased by caller mutations", func(t *testing.T) {
		blob := []byte("original")
		require.NoError(t, repo.Set(ctx, "blob", blob))
		blob[0] = 'X'

		value, err := repo.Get(ctx, "blob")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), value)
	})

	t.Run("delete removes the key and tolerates missing keys", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "gone", []byte("x")))
		require.NoError(t, repo.Delete(ctx, "gone"))
		require.NoError(t, repo.Delete(ctx, "gone"))

		value, err := repo.Get(ctx, "gone")
		assert.NoError(t, err)
		assert.Nil(t, value)
	})
}
