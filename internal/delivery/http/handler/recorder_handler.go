package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-recorder/internal/pkg/utils"
	"github.com/route-recorder/internal/pkg/validator"
	"github.com/route-recorder/internal/usecase"
	"github.com/route-recorder/internal/usecase/dto"
	"go.uber.org/zap"
)

// RecorderHandler exposes the recording state machine: toggle, map clicks,
// metadata edits, and save.
type RecorderHandler struct {
	recorderUC *usecase.RecorderUseCase
	logger     *zap.Logger
}

func NewRecorderHandler(recorderUC *usecase.RecorderUseCase, logger *zap.Logger) *RecorderHandler {
	return &RecorderHandler{
		recorderUC: recorderUC,
		logger:     logger,
	}
}

// GetState returns the full recorder state for the viewer.
func (h *RecorderHandler) GetState(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.recorderUC.State(), nil)
}

// ToggleRecording flips between recording and idle.
func (h *RecorderHandler) ToggleRecording(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.recorderUC.ToggleRecording(), nil)
}

// AddWaypoint receives a map click. While idle the click is acknowledged but
// not recorded.
func (h *RecorderHandler) AddWaypoint(c *fiber.Ctx) error {
	var req dto.AddWaypointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	return utils.SendSuccess(c, h.recorderUC.AddWaypoint(req), nil)
}

// UpdateRouteInfo edits the in-progress route's name or description.
func (h *RecorderHandler) UpdateRouteInfo(c *fiber.Ctx) error {
	var req dto.UpdateRouteInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.recorderUC.UpdateRouteInfo(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// SaveRoute moves the in-progress route into the saved collection.
func (h *RecorderHandler) SaveRoute(c *fiber.Ctx) error {
	result, err := h.recorderUC.SaveRoute(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
