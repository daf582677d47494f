package handler

import (
	"github.com/francolab/franco-be/internal/delivery/http/entity"
	"github.com/gofiber/fiber/v2"
)

// GET|OPTIONS /api/health
func Health(ctx *fiber.Ctx) error {
	return ctx.JSON(entity.HealthResponse{
		Status:  "healthy",
		Message: "Server is running",
	})
}
