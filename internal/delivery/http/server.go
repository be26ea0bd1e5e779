package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/spot-rally/internal/config"
	"github.com/spot-rally/internal/delivery/http/handler"
	"github.com/spot-rally/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	spotHandler      *handler.SpotHandler
	geoHandler       *handler.GeoHandler
	selectionHandler *handler.SelectionHandler
	tierHandler      *handler.TierHandler
	rallyHandler     *handler.RallyHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	spotHandler *handler.SpotHandler,
	geoHandler *handler.GeoHandler,
	selectionHandler *handler.SelectionHandler,
	tierHandler *handler.TierHandler,
	rallyHandler *handler.RallyHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Spot Rally Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		spotHandler:      spotHandler,
		geoHandler:       geoHandler,
		selectionHandler: selectionHandler,
		tierHandler:      tierHandler,
		rallyHandler:     rallyHandler,
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

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Candidate resolution
	api.Get("/spots", s.spotHandler.GetSpots)

	// Provider passthrough
	api.Get("/geocode", s.geoHandler.Geocode)
	api.Get("/places/search", s.geoHandler.SearchPlaces)

	// Draft selections
	api.Post("/selections", s.selectionHandler.Create)
	api.Get("/selections/:id", s.selectionHandler.Get)
	api.Post("/selections/:id/toggle", s.selectionHandler.Toggle)
	api.Post("/selections/:id/reorder", s.selectionHandler.Reorder)
	api.Post("/selections/:id/submit", s.selectionHandler.Submit)

	// Tier board
	api.Post("/tiers/group", s.tierHandler.Group)
	api.Post("/tiers/reorder", s.tierHandler.Reorder)

	// Public share view
	api.Get("/rallies/:id/board", s.rallyHandler.ShareBoard)
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
