package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/AmoghShukla/VisionID/internal/api/docs"
	"github.com/AmoghShukla/VisionID/internal/api/handler"
	"github.com/AmoghShukla/VisionID/internal/api/middleware"
	"github.com/AmoghShukla/VisionID/internal/config"
	"github.com/AmoghShukla/VisionID/internal/provider"
	"github.com/AmoghShukla/VisionID/internal/service"
)

type Router struct {
	app      *fiber.App
	logger   *slog.Logger
	cfg      *config.Config
	provider provider.FaceProvider
}

func NewRouter(logger *slog.Logger, cfg *config.Config, p provider.FaceProvider) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "VisionID Proxy",
		// Inline payloads may reach 6 MB decoded, ~8 MB as base64 text.
		BodyLimit: 10 * 1024 * 1024,
	})

	return &Router{
		app:      app,
		logger:   logger,
		cfg:      cfg,
		provider: p,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	detectionService := service.NewDetectionService(r.provider, r.cfg.SampleImageURL, r.logger)

	detectHandler := handler.NewDetectHandler(detectionService, r.logger)
	healthHandler := handler.NewHealthHandler(r.cfg)
	diagHandler := handler.NewDiagnosticsHandler(detectionService, r.logger)

	api := r.app.Group("/api")
	api.Post("/detect-faces", detectHandler.Detect)
	api.Get("/health", healthHandler.Health)
	api.Get("/test-azure", diagHandler.TestVision)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
