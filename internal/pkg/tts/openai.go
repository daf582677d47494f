package tts

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// Client synthesizes speech through an OpenAI-compatible audio endpoint.
// One call produces the MP3 bytes for one piece of text in one voice.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	if model == "" {
		model = "tts-1"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		client:  openai.NewClientWithConfig(config),
	}
}

func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis error: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("reading synthesized audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("speech endpoint returned empty audio")
	}

	return data, nil
}
