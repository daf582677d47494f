package config

import (
	"github.com/francolab/franco-be/internal/delivery/http/handler"
	"github.com/francolab/franco-be/internal/delivery/http/middleware"
	"github.com/francolab/franco-be/internal/delivery/http/repository"
	"github.com/francolab/franco-be/internal/delivery/http/route"
	"github.com/francolab/franco-be/internal/delivery/http/usecase"
	"github.com/francolab/franco-be/internal/pkg/llm"
	"github.com/francolab/franco-be/internal/pkg/tts"
	"github.com/francolab/franco-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	llmClient := llm.NewClient(
		config.Config.GetString("llm.openai.api_key"),
		config.Config.GetString("llm.openai.base_url"),
		config.Config.GetString("llm.openai.exercise_model"),
		config.Config.GetString("llm.openai.dialogue_model"),
	)
	ttsClient := tts.NewClient(
		config.Config.GetString("tts.openai.api_key"),
		config.Config.GetString("tts.openai.base_url"),
		config.Config.GetString("tts.openai.model"),
	)

	audioRepo := repository.NewAudioRepository(config.Config.GetString("audio.dir"))

	exerciseUsecase := usecase.NewExerciseUsecase(usecase.ExerciseConfig{
		LLM: llmClient,
		Log: config.Log,
	})
	dialogueUsecase := usecase.NewDialogueUsecase(usecase.DialogueConfig{
		LLM:    llmClient,
		TTS:    ttsClient,
		Audio:  audioRepo,
		Log:    config.Log,
		VoiceA: config.Config.GetString("tts.openai.voice_a"),
		VoiceB: config.Config.GetString("tts.openai.voice_b"),
	})

	exerciseHandler := handler.NewExerciseHandler(config.Validator, config.Log, exerciseUsecase)
	dialogueHandler := handler.NewDialogueHandler(config.Validator, config.Log, dialogueUsecase, audioRepo)

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		ExerciseHandler: exerciseHandler,
		DialogueHandler: dialogueHandler,
	})

}
