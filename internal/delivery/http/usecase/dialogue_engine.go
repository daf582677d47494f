package usecase

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/francolab/franco-be/internal/delivery/http/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DialogueUsecase interface {
	// GenerateDialogue returns the dialogue text, or a fixed Hebrew error
	// sentinel when the provider fails. It never returns an error.
	GenerateDialogue(ctx context.Context, words []string, topic string) string

	// GenerateAudio synthesizes every dialogue line, concatenates the
	// audio, and returns the serving URL of the written file.
	GenerateAudio(ctx context.Context, dialogue string) (string, error)
}

// Synthesizer is the TTS surface the audio pipeline needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// DialogueFailedSentinel is returned as dialogue text when the LLM call
// fails, matching the degraded-but-successful contract of the endpoint.
const DialogueFailedSentinel = "שגיאה ביצירת דיאלוג."

const dialogueSystemPrompt = "אתה כותב שיחות בצרפתית ללימוד"

type DialogueConfig struct {
	LLM    ChatCompleter
	TTS    Synthesizer
	Audio  repository.AudioRepository
	Log    *logrus.Logger
	VoiceA string
	VoiceB string
}

type dialogueUsecase struct {
	cfg DialogueConfig
}

func NewDialogueUsecase(cfg DialogueConfig) DialogueUsecase {
	if cfg.VoiceA == "" {
		cfg.VoiceA = "alloy"
	}
	if cfg.VoiceB == "" {
		cfg.VoiceB = "onyx"
	}
	return &dialogueUsecase{cfg: cfg}
}

// AudioError reports a failed synthesis for one dialogue line. A single
// failed line aborts the whole dialogue's audio.
type AudioError struct {
	Line int
	Err  error
}

func (e *AudioError) Error() string {
	return fmt.Sprintf("audio generation failed at line %d: %v", e.Line, e.Err)
}

func (e *AudioError) Unwrap() error {
	return e.Err
}

func (u *dialogueUsecase) GenerateDialogue(ctx context.Context, words []string, topic string) string {
	prompt := fmt.Sprintf(`
כתוב דיאלוג טבעי וזורם בצרפתית בנושא "%s" בין שני דוברים, באורך של כ-5 דקות דיבור (כ-30-40 שורות).

אל תכתוב שמות או תיאורים לפני השורות.
כתוב כל שורה של דובר חדשה בשורה נפרדת, כך שכל השיחה תיראה כמו דיאלוג אמיתי וטבעי בלבד.

השתמש במילים הבאות בדיאלוג בצורה טבעית, מבלי להציג רשימות או משפטים מלאים במילים בלבד: %s.

השיחה צריכה להישמע יומיומית, טבעית ונעימה להאזנה, כאילו זו שיחה אמיתית בין שני אנשים בפודקאסט.

דוגמה קצרה:
– Bonjour! Tu veux aller au restaurant ce soir?
– Oui, pourquoi pas. Tu as une idée d'endroit?
`, topic, strings.Join(words, ", "))

	u.cfg.Log.WithFields(logrus.Fields{
		"topic": topic,
		"words": len(words),
	}).Info("generating dialogue")

	text, err := u.cfg.LLM.Complete(ctx, dialogueSystemPrompt, prompt)
	if err != nil {
		u.cfg.Log.WithError(err).Error("dialogue generation failed")
		return DialogueFailedSentinel
	}

	return text
}

func (u *dialogueUsecase) GenerateAudio(ctx context.Context, dialogue string) (string, error) {
	lines := strings.Split(strings.TrimSpace(dialogue), "\n")

	var merged bytes.Buffer
	for i, line := range lines {
		voice := u.cfg.VoiceA
		if i%2 == 1 {
			voice = u.cfg.VoiceB
		}

		chunk, err := u.cfg.TTS.Synthesize(ctx, strings.TrimSpace(line), voice)
		if err != nil {
			return "", &AudioError{Line: i, Err: err}
		}
		merged.Write(chunk)
	}

	id := uuid.New()
	filename := fmt.Sprintf("dialogue_%s.mp3", hex.EncodeToString(id[:]))

	if err := u.cfg.Audio.Save(filename, merged.Bytes()); err != nil {
		return "", fmt.Errorf("saving merged audio: %w", err)
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"filename": filename,
		"lines":    len(lines),
		"bytes":    merged.Len(),
	}).Info("dialogue audio written")

	return "/api/audio/" + filename, nil
}
