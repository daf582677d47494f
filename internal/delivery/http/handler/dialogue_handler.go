package handler

import (
	"errors"
	"io/fs"

	"github.com/francolab/franco-be/internal/delivery/http/entity"
	"github.com/francolab/franco-be/internal/delivery/http/repository"
	"github.com/francolab/franco-be/internal/delivery/http/usecase"
	"github.com/francolab/franco-be/internal/pkg/response"
	"github.com/francolab/franco-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	DialogueHandler interface {
		CreateDialogue(ctx *fiber.Ctx) error
		GetAudio(ctx *fiber.Ctx) error
	}

	dialogueHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.DialogueUsecase
		audio     repository.AudioRepository
	}
)

func NewDialogueHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.DialogueUsecase, audio repository.AudioRepository) DialogueHandler {
	return &dialogueHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
		audio:     audio,
	}
}

// POST /api/create-dialogue
func (h *dialogueHandler) CreateDialogue(ctx *fiber.Ctx) error {
	var req entity.CreateDialogueRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(err, h.logger).Send(ctx)
	}

	topic := req.Topic
	if topic == "" {
		topic = "שיחה כללית"
	}

	dialogue := h.usecase.GenerateDialogue(ctx.UserContext(), req.Words, topic)

	audioURL, err := h.usecase.GenerateAudio(ctx.UserContext(), dialogue)
	if err != nil {
		return response.NewFailed(err, h.logger).Send(ctx)
	}

	return ctx.JSON(entity.CreateDialogueResponse{
		Success:  true,
		Dialogue: dialogue,
		AudioURL: audioURL,
	})
}

// GET /api/audio/:filename
func (h *dialogueHandler) GetAudio(ctx *fiber.Ctx) error {
	filename := ctx.Params("filename")

	path, err := h.audio.Path(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return response.NewFailed(fiber.NewError(fiber.StatusNotFound, "audio file not found"), h.logger).Send(ctx)
		}
		return response.NewFailed(fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return ctx.SendFile(path)
}
