package usecase

import (
	"context"
	"sync"

	"github.com/route-recorder/internal/domain"
	"github.com/route-recorder/internal/domain/repository"
	"github.com/route-recorder/internal/pkg/errors"
	"github.com/route-recorder/internal/usecase/dto"
	"go.uber.org/zap"
)

// RecorderUseCase drives the route-recording state machine and its
// persistence contract. The domain Recorder is single-actor by design, so all
// operations are serialized behind one mutex; handlers never touch the
// recorder directly.
type RecorderUseCase struct {
	mu       sync.Mutex
	recorder *domain.Recorder
	storage  repository.StorageRepository
	logger   *zap.Logger
}

func NewRecorderUseCase(
	storage repository.StorageRepository,
	logger *zap.Logger,
) *RecorderUseCase {
	return &RecorderUseCase{
		recorder: domain.NewRecorder(),
		storage:  storage,
		logger:   logger,
	}
}

// Load reads the saved collection from the persistence substrate once, at
// startup. An absent key or malformed blob degrades to an empty collection and
// is never fatal.
func (uc *RecorderUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	data, err := uc.storage.Get(ctx, domain.StorageKey)
	if err != nil {
		uc.logger.Warn("Failed to read saved routes, starting empty", zap.Error(err))
		return nil
	}
	if data == nil {
		uc.logger.Info("No saved routes found")
		return nil
	}

	routes, err := domain.UnmarshalRoutes(data)
	if err != nil {
		uc.logger.Warn("Malformed saved routes blob, starting empty", zap.Error(err))
		return nil
	}

	uc.recorder.Restore(routes)
	uc.logger.Info("Saved routes loaded", zap.Int("count", len(routes)))
	return nil
}

// State returns the recorder state for the viewer.
func (uc *RecorderUseCase) State() *dto.RecorderStateResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stateLocked()
}

// ToggleRecording flips between recording and idle. Stopping keeps any
// waypoints already captured on the in-progress route.
func (uc *RecorderUseCase) ToggleRecording() *dto.RecorderStateResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	recording := uc.recorder.ToggleRecording()
	uc.logger.Debug("Recording toggled", zap.Bool("recording", recording))
	return uc.stateLocked()
}

// AddWaypoint appends a clicked coordinate to the in-progress route. Clicks
// while idle are silently ignored, not an error.
func (uc *RecorderUseCase) AddWaypoint(req dto.AddWaypointRequest) *dto.AddWaypointResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	accepted := uc.recorder.AddWaypoint(req.Lat, req.Lon)
	return &dto.AddWaypointResponse{
		Accepted:      accepted,
		WaypointCount: len(uc.recorder.Current().Waypoints),
	}
}

// UpdateRouteInfo sets the in-progress route's name or description.
func (uc *RecorderUseCase) UpdateRouteInfo(req dto.UpdateRouteInfoRequest) (*dto.RouteView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	switch req.Field {
	case "name":
		uc.recorder.SetName(req.Value)
	case "description":
		uc.recorder.SetDescription(req.Value)
	default:
		return nil, errors.ErrInvalidRequest
	}

	view := dto.ConvertRoute(uc.recorder.Current())
	return &view, nil
}

// SaveRoute moves the in-progress route into the saved collection and writes
// the collection to the persistence substrate. Fewer than 2 waypoints is a
// validation failure with no state change. Persistence is best-effort: a
// failed write is logged and the in-memory state stands.
func (uc *RecorderUseCase) SaveRoute(ctx context.Context) (*dto.SaveRouteResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	saved, ok := uc.recorder.Save()
	if !ok {
		return nil, errors.ErrRouteTooShort
	}

	uc.logger.Info("Route saved",
		zap.Int64("id", saved.ID),
		zap.String("name", saved.Name),
		zap.Int("waypoints", len(saved.Waypoints)),
	)
	uc.persistLocked(ctx)

	return &dto.SaveRouteResponse{
		Saved: dto.ConvertRoute(saved),
		Next:  dto.ConvertRoute(uc.recorder.Current()),
	}, nil
}

// DeleteRoute removes a saved route. A missing id is a no-op and does not
// trigger a persistence write.
func (uc *RecorderUseCase) DeleteRoute(ctx context.Context, id int64) *dto.DeleteRouteResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	deleted := uc.recorder.Delete(id)
	if deleted {
		uc.logger.Info("Route deleted", zap.Int64("id", id))
		uc.persistLocked(ctx)
	}

	return &dto.DeleteRouteResponse{Deleted: deleted}
}

// ListRoutes returns the saved collection in insertion order.
func (uc *RecorderUseCase) ListRoutes() *dto.RouteListResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return &dto.RouteListResponse{
		Routes: dto.ConvertRoutes(uc.recorder.Routes()),
	}
}

// SelectRoute points the selection at a saved route.
func (uc *RecorderUseCase) SelectRoute(id int64) (*dto.SelectionResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.recorder.Select(id) {
		return nil, errors.ErrRouteNotFound
	}
	return uc.selectionLocked(), nil
}

// ClearSelection drops the selection pointer.
func (uc *RecorderUseCase) ClearSelection() *dto.SelectionResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.recorder.ClearSelection()
	return uc.selectionLocked()
}

func (uc *RecorderUseCase) stateLocked() *dto.RecorderStateResponse {
	resp := &dto.RecorderStateResponse{
		Recording: uc.recorder.Recording(),
		Current:   dto.ConvertRoute(uc.recorder.Current()),
	}
	if id, ok := uc.recorder.Selected(); ok {
		resp.SelectedID = &id
	}
	return resp
}

func (uc *RecorderUseCase) selectionLocked() *dto.SelectionResponse {
	resp := &dto.SelectionResponse{}
	if id, ok := uc.recorder.Selected(); ok {
		resp.SelectedID = &id
	}
	return resp
}

// persistLocked writes the whole saved collection under the fixed key,
// overwriting the prior value. Fire-and-forget: failures are logged only.
func (uc *RecorderUseCase) persistLocked(ctx context.Context) {
	data, err := domain.MarshalRoutes(uc.recorder.Routes())
	if err != nil {
		uc.logger.Error("Failed to marshal saved routes", zap.Error(err))
		return
	}

	if err := uc.storage.Set(ctx, domain.StorageKey, data); err != nil {
		uc.logger.Error("Failed to persist saved routes", zap.Error(err))
	}
}
