package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-recorder/internal/config"
	"github.com/route-recorder/internal/domain"
	"github.com/route-recorder/internal/pkg/utils"
	"github.com/route-recorder/internal/usecase/dto"
)

// MapHandler hands the viewer its map surface constants: tile source,
// attribution, and the initial viewport.
type MapHandler struct {
	cfg *config.MapConfig
}

func NewMapHandler(cfg *config.MapConfig) *MapHandler {
	return &MapHandler{cfg: cfg}
}

// GetConfig returns the map initialization parameters.
func (h *MapHandler) GetConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.MapConfigResponse{
		Center:      domain.Waypoint{Lat: h.cfg.CenterLat, Lon: h.cfg.CenterLon},
		Zoom:        h.cfg.Zoom,
		TileURL:     h.cfg.TileURL,
		Attribution: h.cfg.Attribution,
		LineWeight:  domain.DefaultLineWeight,
	}, nil)
}
