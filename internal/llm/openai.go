package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/shtym/shtym/internal/profile"
)

// OpenAIClient talks to any OpenAI-compatible chat endpoint. Ollama exposes
// one under /v1, which is what the default settings point at.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a client for the given settings.
func NewOpenAIClient(settings profile.LLMSettings, opts ...option.RequestOption) *OpenAIClient {
	baseURL := strings.TrimSuffix(settings.BaseURL, "/") + "/v1"
	opts = append([]option.RequestOption{
		option.WithBaseURL(baseURL),
		// Ollama ignores the key but the client wants one set.
		option.WithAPIKey("shtym"),
	}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{client: &client, model: settings.ModelName}
}

// Chat performs a non-streaming chat completion.
func (c *OpenAIClient) Chat(ctx context.Context, systemPrompt, userPrompt, errorMessage string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(userPrompt),
	}
	if errorMessage != "" {
		messages = append(messages, openai.UserMessage(errorMessage))
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response from %q", c.model)
	}
	return resp.Choices[0].Message.Content, nil
}

// IsAvailable probes the backend for the configured model.
func (c *OpenAIClient) IsAvailable(ctx context.Context) bool {
	_, err := c.client.Models.Get(ctx, c.model)
	return err == nil
}
