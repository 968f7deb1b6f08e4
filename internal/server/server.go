package server

import (
	"course-mentor-be/internal/bootstrap"
	"course-mentor-be/internal/config"
	"course-mentor-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName: "course-mentor-be",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(otelfiber.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", nil))
	})

	api := app.Group("/api")
	container.ChatController.RegisterRoutes(api)

	return &Server{app: app, cfg: cfg}
}

func (s *Server) Run() error {
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}
