package route

import (
	"github.com/francolab/franco-be/internal/delivery/http/handler"
	"github.com/francolab/franco-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api             *fiber.App
	Middleware      *middleware.Middleware
	ExerciseHandler handler.ExerciseHandler
	DialogueHandler handler.DialogueHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	api := c.Api.Group("/api")
	{
		api.Get("/health", handler.Health)
		api.Options("/health", handler.Health)
	}

	SetupExerciseRoute(api, c.ExerciseHandler)
	SetupDialogueRoute(api, c.DialogueHandler)
}
