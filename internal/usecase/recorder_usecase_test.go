package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-recorder/internal/domain"
	"github.com/route-recorder/internal/pkg/errors"
	"github.com/route-recorder/internal/repository/memory"
	"github.com/route-recorder/internal/usecase"
	"github.com/route-recorder/internal/usecase/dto"
)

// MockStorageRepository is a mock of StorageRepository
type MockStorageRepository struct {
	mock.Mock
}

func (m *MockStorageRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorageRepository) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStorageRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func recordTwoWaypoints(uc *usecase.RecorderUseCase) {
	uc.ToggleRecording()
	uc.AddWaypoint(dto.AddWaypointRequest{Lat: 47.90, Lon: -91.80})
	uc.AddWaypoint(dto.AddWaypointRequest{Lat: 47.91, Lon: -91.81})
}

func TestRecorderUseCase_SaveRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("save persists the whole collection under the fixed key", func(t *testing.T) {
		storage := &MockStorageRepository{}
		uc := usecase.NewRecorderUseCase(storage, logger)
		recordTwoWaypoints(uc)

		storage.On("Set", ctx, domain.StorageKey, mock.MatchedBy(func(data []byte) bool {
			routes, err := domain.UnmarshalRoutes(data)
			return err == nil && len(routes) == 1 && routes[0].ID == 1 && len(routes[0].Waypoints) == 2
		})).Return(nil)

		resp, err := uc.SaveRoute(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Saved.ID)
		assert.Equal(t, 2, resp.Saved.WaypointCount)
		assert.Equal(t, int64(2), resp.Next.ID)
		assert.Equal(t, 0, resp.Next.WaypointCount)
		assert.False(t, uc.State().Recording)

		storage.AssertExpectations(t)
	})

	t.Run("too few waypoints is rejected without touching storage", func(t *testing.T) {
		storage := &MockStorageRepository{}
		uc := usecase.NewRecorderUseCase(storage, logger)
		uc.ToggleRecording()
		uc.AddWaypoint(dto.AddWaypointRequest{Lat: 47.90, Lon: -91.80})

		resp, err := uc.SaveRoute(ctx)

		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrRouteTooShort, err)
		assert.Empty(t, uc.ListRoutes().Routes)
		storage.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("immediate second save fails on the fresh route", func(t *testing.T) {
		storage := &MockStorageRepository{}
		storage.On("Set", ctx, domain.StorageKey, mock.Anything).Return(nil)
		uc := usecase.NewRecorderUseCase(storage, logger)
		recordTwoWaypoints(uc)

		_, err := uc.SaveRoute(ctx)
		require.NoError(t, err)

		_, err = uc.SaveRoute(ctx)
		assert.Equal(t, errors.ErrRouteTooShort, err)
	})

	t.Run("a failed persistence write does not roll back the save", func(t *testing.T) {
		storage := &MockStorageRepository{}
		storage.On("Set", ctx, domain.StorageKey, mock.Anything).Return(assert.AnError)
		uc := usecase.NewRecorderUseCase(storage, logger)
		recordTwoWaypoints(uc)

		resp, err := uc.SaveRoute(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Saved.ID)
		assert.Len(t, uc.ListRoutes().Routes, 1)
	})
}

func TestRecorderUseCase_AddWaypoint(t *testing.T) {
	logger := zap.NewNop()
	storage := &MockStorageRepository{}
	uc := usecase.NewRecorderUseCase(storage, logger)

	t.Run("clicks while idle are ignored", func(t *testing.T) {
		resp := uc.AddWaypoint(dto.AddWaypointRequest{Lat: 47.90, Lon: -91.80})
		assert.False(t, resp.Accepted)
		assert.Equal(t, 0, resp.WaypointCount)
	})

	t.Run("clicks while recording are counted", func(t *testing.T) {
		uc.ToggleRecording()
		resp := uc.AddWaypoint(dto.AddWaypointRequest{Lat: 47.90, Lon: -91.80})
		assert.True(t, resp.Accepted)
		assert.Equal(t, 1, resp.WaypointCount)
	})
}

func TestRecorderUseCase_UpdateRouteInfo(t *testing.T) {
	logger := zap.NewNop()
	uc := usecase.NewRecorderUseCase(&MockStorageRepository{}, logger)

	view, err := uc.UpdateRouteInfo(dto.UpdateRouteInfoRequest{Field: "name", Value: "Shore run"})
	require.NoError(t, err)
	assert.Equal(t, "Shore run", view.Name)

	view, err = uc.UpdateRouteInfo(dto.UpdateRouteInfoRequest{Field: "description", Value: "windy"})
	require.NoError(t, err)
	assert.Equal(t, "windy", view.Description)

	_, err = uc.UpdateRouteInfo(dto.UpdateRouteInfoRequest{Field: "color", Value: "#FFFFFF"})
	assert.Equal(t, errors.ErrInvalidRequest, err)
}

func TestRecorderUseCase_DeleteRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("delete persists and clears a matching selection", func(t *testing.T) {
		storage := &MockStorageRepository{}
		storage.On("Set", ctx, domain.StorageKey, mock.Anything).Return(nil)
		uc := usecase.NewRecorderUseCase(storage, logger)

		for i := 0; i < 2; i++ {
			recordTwoWaypoints(uc)
			_, err := uc.SaveRoute(ctx)
			require.NoError(t, err)
		}

		_, err := uc.SelectRoute(1)
		require.NoError(t, err)

		resp := uc.DeleteRoute(ctx, 1)
		assert.True(t, resp.Deleted)

		routes := uc.ListRoutes().Routes
		require.Len(t, routes, 1)
		assert.Equal(t, int64(2), routes[0].ID)
		assert.Nil(t, uc.State().SelectedID)

		// 2 saves + 1 delete
		storage.AssertNumberOfCalls(t, "Set", 3)
	})

	t.Run("missing id is a no-op with no storage write", func(t *testing.T) {
		storage := &MockStorageRepository{}
		uc := usecase.NewRecorderUseCase(storage, logger)

		resp := uc.DeleteRoute(ctx, 99)
		assert.False(t, resp.Deleted)
		storage.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRecorderUseCase_Selection(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	storage := &MockStorageRepository{}
	storage.On("Set", ctx, domain.StorageKey, mock.Anything).Return(nil)
	uc := usecase.NewRecorderUseCase(storage, logger)

	recordTwoWaypoints(uc)
	_, err := uc.SaveRoute(ctx)
	require.NoError(t, err)

	_, err = uc.SelectRoute(42)
	assert.Equal(t, errors.ErrRouteNotFound, err)

	sel, err := uc.SelectRoute(1)
	require.NoError(t, err)
	require.NotNil(t, sel.SelectedID)
	assert.Equal(t, int64(1), *sel.SelectedID)

	sel = uc.ClearSelection()
	assert.Nil(t, sel.SelectedID)
}

func TestRecorderUseCase_Load(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("absent key starts empty", func(t *testing.T) {
		storage := &MockStorageRepository{}
		storage.On("Get", ctx, domain.StorageKey).Return(nil, nil)
		uc := usecase.NewRecorderUseCase(storage, logger)

		require.NoError(t, uc.Load(ctx))
		assert.Empty(t, uc.ListRoutes().Routes)
		assert.Equal(t, int64(1), uc.State().Current.ID)
	})

	t.Run("malformed blob starts empty without failing", func(t *testing.T) {
		storage := &MockStorageRepository{}
		storage.On("Get", ctx, domain.StorageKey).Return([]byte("{not json"), nil)
		uc := usecase.NewRecorderUseCase(storage, logger)

		require.NoError(t, uc.Load(ctx))
		assert.Empty(t, uc.ListRoutes().Routes)
	})

	t.Run("storage read failure starts empty without failing", func(t *testing.T) {
		storage := &MockStorageRepository{}
		storage.On("Get", ctx, domain.StorageKey).Return(nil, assert.AnError)
		uc := usecase.NewRecorderUseCase(storage, logger)

		require.NoError(t, uc.Load(ctx))
		assert.Empty(t, uc.ListRoutes().Routes)
	})

	t.Run("round-trip through a real substrate restores the collection", func(t *testing.T) {
		storage := memory.NewStorageRepository()

		first := usecase.NewRecorderUseCase(storage, logger)
		recordTwoWaypoints(first)
		_, err := first.UpdateRouteInfo(dto.UpdateRouteInfoRequest{Field: "name", Value: "Echo Trail"})
		require.NoError(t, err)
		saved, err := first.SaveRoute(ctx)
		require.NoError(t, err)

		// a fresh process loads the same substrate
		second := usecase.NewRecorderUseCase(storage, logger)
		require.NoError(t, second.Load(ctx))

		routes := second.ListRoutes().Routes
		require.Len(t, routes, 1)
		assert.Equal(t, saved.Saved, routes[0])

		// recording state and selection are never persisted
		state := second.State()
		assert.False(t, state.Recording)
		assert.Nil(t, state.SelectedID)
		assert.Equal(t, int64(2), state.Current.ID, "ids continue past the restored maximum")
	})
}
