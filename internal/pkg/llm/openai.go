package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is one chat-completion result with its token accounting.
type Completion struct {
	Text  string
	Usage Usage
}

type Client struct {
	APIKey        string
	BaseURL       string
	ExerciseModel string
	DialogueModel string
	client        *openai.Client
}

func NewClient(apiKey, baseURL, exerciseModel, dialogueModel string) *Client {
	if exerciseModel == "" {
		exerciseModel = "gpt-3.5-turbo"
	}
	if dialogueModel == "" {
		dialogueModel = "gpt-4"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		APIKey:        apiKey,
		BaseURL:       baseURL,
		ExerciseModel: exerciseModel,
		DialogueModel: dialogueModel,
		client:        openai.NewClientWithConfig(config),
	}
}

// CompleteJSON requests a strict JSON object response from the exercise model.
func (c *Client) CompleteJSON(ctx context.Context, system, prompt string) (Completion, error) {
	if c.client == nil {
		return Completion{}, fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.ExerciseModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
			MaxTokens:   1500,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return Completion{}, fmt.Errorf("openai generate error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Completion{}, fmt.Errorf("openai returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return Completion{}, fmt.Errorf("openai returned empty response")
	}

	return Completion{
		Text: text,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Complete generates a plain text response from the dialogue model
// (no JSON formatting).
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.DialogueModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("openai returned empty response")
	}

	return text, nil
}
