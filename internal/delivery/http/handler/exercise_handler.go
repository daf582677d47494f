package handler

import (
	"github.com/francolab/franco-be/internal/delivery/http/entity"
	"github.com/francolab/franco-be/internal/delivery/http/usecase"
	"github.com/francolab/franco-be/internal/pkg/response"
	"github.com/francolab/franco-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ExerciseHandler interface {
		Generate(ctx *fiber.Ctx) error
		AnalyzePerformance(ctx *fiber.Ctx) error
		SaveAttempt(ctx *fiber.Ctx) error
	}

	exerciseHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ExerciseUsecase
	}
)

func NewExerciseHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ExerciseUsecase) ExerciseHandler {
	return &exerciseHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /api/generate-exercise
func (h *exerciseHandler) Generate(ctx *fiber.Ctx) error {
	var req entity.GenerateExerciseRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(err, h.logger).Send(ctx)
	}

	exercise := h.usecase.Generate(ctx.UserContext(), req)

	return ctx.JSON(entity.GenerateExerciseResponse{
		Success:        true,
		Content:        exercise.Content,
		CorrectAnswers: exercise.CorrectAnswers,
		Explanation:    exercise.Explanation,
		Usage:          exercise.Usage,
		Source:         exercise.Source,
	})
}

// POST /api/analyze-performance
func (h *exerciseHandler) AnalyzePerformance(ctx *fiber.Ctx) error {
	var req entity.AnalyzePerformanceRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(err, h.logger).Send(ctx)
	}

	analytics, suggestions := h.usecase.AnalyzePerformance(req.UserID, req.SkillCategory, req.Level)

	return ctx.JSON(entity.AnalyzePerformanceResponse{
		Success:                true,
		Analytics:              analytics,
		ImprovementSuggestions: suggestions,
	})
}

// POST /api/save-exercise-attempt
func (h *exerciseHandler) SaveAttempt(ctx *fiber.Ctx) error {
	var req entity.SaveAttemptRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(err, h.logger).Send(ctx)
	}

	result := h.usecase.ScoreAttempt(req)

	return ctx.JSON(entity.SaveAttemptResponse{
		Success: true,
		Result:  result,
	})
}
