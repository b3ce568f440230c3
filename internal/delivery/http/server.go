package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/route-recorder/internal/config"
	"github.com/route-recorder/internal/delivery/http/handler"
	"github.com/route-recorder/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server for the route recorder.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	recorderHandler *handler.RecorderHandler
	routeHandler    *handler.RouteHandler
	mapHandler      *handler.MapHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	recorderHandler *handler.RecorderHandler,
	routeHandler *handler.RouteHandler,
	mapHandler *handler.MapHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Route Recorder",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		recorderHandler: recorderHandler,
		routeHandler:    routeHandler,
		mapHandler:      mapHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// The map viewer UI
	s.app.Static("/static", "./static")
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html")
	})

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Recorder state machine
	api.Get("/recorder", s.recorderHandler.GetState)
	api.Post("/recorder/toggle", s.recorderHandler.ToggleRecording)
	api.Post("/recorder/waypoints", s.recorderHandler.AddWaypoint)
	api.Patch("/recorder", s.recorderHandler.UpdateRouteInfo)
	api.Post("/recorder/save", s.recorderHandler.SaveRoute)

	// Saved collection
	api.Get("/routes", s.routeHandler.ListRoutes)
	api.Delete("/routes/:id", s.routeHandler.DeleteRoute)
	api.Post("/routes/:id/select", s.routeHandler.SelectRoute)
	api.Delete("/selection", s.routeHandler.ClearSelection)

	// Map surface constants for the viewer
	api.Get("/config/map", s.mapHandler.GetConfig)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
