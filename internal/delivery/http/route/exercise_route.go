package route

import (
	"github.com/francolab/franco-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupExerciseRoute(api fiber.Router, h handler.ExerciseHandler) {
	api.Post("/generate-exercise", h.Generate)
	api.Post("/analyze-performance", h.AnalyzePerformance)
	api.Post("/save-exercise-attempt", h.SaveAttempt)
}
