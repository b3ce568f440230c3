package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/route-recorder/internal/pkg/errors"
	"github.com/route-recorder/internal/pkg/utils"
	"github.com/route-recorder/internal/usecase"
	"go.uber.org/zap"
)

// RouteHandler exposes the saved collection: listing, deletion, and the
// selection pointer.
type RouteHandler struct {
	recorderUC *usecase.RecorderUseCase
	logger     *zap.Logger
}

func NewRouteHandler(recorderUC *usecase.RecorderUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		recorderUC: recorderUC,
		logger:     logger,
	}
}

// ListRoutes returns the saved collection in insertion order.
func (h *RouteHandler) ListRoutes(c *fiber.Ctx) error {
	result := h.recorderUC.ListRoutes()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Routes),
	})
}

// DeleteRoute removes a saved route. Deleting an unknown id succeeds with
// deleted:false.
func (h *RouteHandler) DeleteRoute(c *fiber.Ctx) error {
	id, err := parseRouteID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, h.recorderUC.DeleteRoute(c.Context(), id), nil)
}

// SelectRoute points the selection at a saved route. The viewer calls this
// when a rendered polyline is clicked.
func (h *RouteHandler) SelectRoute(c *fiber.Ctx) error {
	id, err := parseRouteID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.recorderUC.SelectRoute(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ClearSelection drops the selection pointer.
func (h *RouteHandler) ClearSelection(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.recorderUC.ClearSelection(), nil)
}

func parseRouteID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidRouteID
	}
	return id, nil
}
