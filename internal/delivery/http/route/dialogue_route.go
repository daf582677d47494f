package route

import (
	"github.com/francolab/franco-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupDialogueRoute(api fiber.Router, h handler.DialogueHandler) {
	api.Post("/create-dialogue", h.CreateDialogue)
	api.Get("/audio/:filename", h.GetAudio)
}
