package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
)

type ttsCall struct {
	text  string
	voice string
}

// mockTTS records synthesis calls and can be set to fail from a given call
// index onward.
type mockTTS struct {
	calls   []ttsCall
	failAt  int
	failErr error
}

func (m *mockTTS) Synthesize(_ context.Context, text, voice string) ([]byte, error) {
	idx := len(m.calls)
	m.calls = append(m.calls, ttsCall{text: text, voice: voice})
	if m.failErr != nil && idx >= m.failAt {
		return nil, m.failErr
	}
	return []byte("audio:" + text + ";"), nil
}

type mockAudioRepo struct {
	saved map[string][]byte
}

func (m *mockAudioRepo) Save(filename string, data []byte) error {
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[filename] = data
	return nil
}

func (m *mockAudioRepo) Path(filename string) (string, error) {
	return "", errors.New("not implemented")
}

func newTestDialogueUsecase(llm *mockLLM, tts *mockTTS, repo *mockAudioRepo) DialogueUsecase {
	return NewDialogueUsecase(DialogueConfig{
		LLM:   llm,
		TTS:   tts,
		Audio: repo,
		Log:   testLogger(),
	})
}

func TestGenerateDialogue(t *testing.T) {
	mock := &mockLLM{responses: []mockCompletion{{
		text: "– Bonjour!\n– Salut, ça va?",
	}}}
	uc := newTestDialogueUsecase(mock, &mockTTS{}, &mockAudioRepo{})

	dialogue := uc.GenerateDialogue(context.Background(), []string{"bonjour", "restaurant"}, "au café")

	if dialogue != "– Bonjour!\n– Salut, ça va?" {
		t.Errorf("dialogue: got %q", dialogue)
	}
	if len(mock.prompts) != 1 {
		t.Fatalf("expected one LLM call, got %d", len(mock.prompts))
	}
	if !strings.Contains(mock.prompts[0], "au café") {
		t.Errorf("topic missing from prompt")
	}
	if !strings.Contains(mock.prompts[0], "bonjour, restaurant") {
		t.Errorf("word list missing from prompt:\n%s", mock.prompts[0])
	}
}

func TestGenerateDialogue_SentinelOnFailure(t *testing.T) {
	mock := &mockLLM{responses: []mockCompletion{{err: errors.New("quota exceeded")}}}
	uc := newTestDialogueUsecase(mock, &mockTTS{}, &mockAudioRepo{})

	dialogue := uc.GenerateDialogue(context.Background(), nil, "météo")

	if dialogue != DialogueFailedSentinel {
		t.Errorf("got %q, want the error sentinel", dialogue)
	}
}

func TestGenerateAudio_AlternatesVoices(t *testing.T) {
	tts := &mockTTS{}
	repo := &mockAudioRepo{}
	uc := newTestDialogueUsecase(&mockLLM{}, tts, repo)

	dialogue := "– Bonjour!\n– Salut!\n– Tu vas bien?\n– Oui, merci."
	url, err := uc.GenerateAudio(context.Background(), dialogue)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tts.calls) != 4 {
		t.Fatalf("expected one synthesis per line, got %d", len(tts.calls))
	}
	wantVoices := []string{"alloy", "onyx", "alloy", "onyx"}
	for i, call := range tts.calls {
		if call.voice != wantVoices[i] {
			t.Errorf("line %d voice: got %q, want %q", i, call.voice, wantVoices[i])
		}
	}
	if tts.calls[0].text != "– Bonjour!" {
		t.Errorf("line text should be trimmed, got %q", tts.calls[0].text)
	}

	if !regexp.MustCompile(`^/api/audio/dialogue_[0-9a-f]{32}\.mp3$`).MatchString(url) {
		t.Errorf("audio url: got %q", url)
	}
}

func TestGenerateAudio_ConcatenatesInOrder(t *testing.T) {
	repo := &mockAudioRepo{}
	uc := newTestDialogueUsecase(&mockLLM{}, &mockTTS{}, repo)

	_, err := uc.GenerateAudio(context.Background(), "Un\nDeux\nTrois")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected one saved file, got %d", len(repo.saved))
	}
	for _, data := range repo.saved {
		if string(data) != "audio:Un;audio:Deux;audio:Trois;" {
			t.Errorf("merged audio out of order: %q", data)
		}
	}
}

func TestGenerateAudio_AbortsOnSynthesisFailure(t *testing.T) {
	tts := &mockTTS{failAt: 2, failErr: errors.New("voice unavailable")}
	repo := &mockAudioRepo{}
	uc := newTestDialogueUsecase(&mockLLM{}, tts, repo)

	_, err := uc.GenerateAudio(context.Background(), "Un\nDeux\nTrois\nQuatre")

	var audioErr *AudioError
	if !errors.As(err, &audioErr) {
		t.Fatalf("got %v, want AudioError", err)
	}
	if audioErr.Line != 2 {
		t.Errorf("failed line: got %d, want 2", audioErr.Line)
	}
	if len(tts.calls) != 3 {
		t.Errorf("synthesis should stop at the failed line, got %d calls", len(tts.calls))
	}
	if len(repo.saved) != 0 {
		t.Error("no file may be written after a synthesis failure")
	}
}

func TestGenerateAudio_CustomVoices(t *testing.T) {
	tts := &mockTTS{}
	uc := NewDialogueUsecase(DialogueConfig{
		LLM:    &mockLLM{},
		TTS:    tts,
		Audio:  &mockAudioRepo{},
		Log:    testLogger(),
		VoiceA: "nova",
		VoiceB: "echo",
	})

	_, err := uc.GenerateAudio(context.Background(), "Un\nDeux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tts.calls[0].voice != "nova" || tts.calls[1].voice != "echo" {
		t.Errorf("configured voices not used: %+v", tts.calls)
	}
}
