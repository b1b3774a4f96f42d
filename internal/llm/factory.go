package llm

import (
	"context"
	"errors"

	"github.com/shtym/shtym/internal/profile"
)

// ClientFactory builds a Client from LLM settings. The indirection keeps the
// processor factory open to future backend types.
type ClientFactory interface {
	Create(settings profile.LLMSettings) (Client, error)
}

// OpenAIClientFactory is the production factory.
type OpenAIClientFactory struct{}

func (OpenAIClientFactory) Create(settings profile.LLMSettings) (Client, error) {
	return NewOpenAIClient(settings), nil
}

// NullClientFactory builds clients that always report unavailable. It stands
// in for the real backend in builds or environments without one.
type NullClientFactory struct{}

func (NullClientFactory) Create(settings profile.LLMSettings) (Client, error) {
	return nullClient{}, nil
}

type nullClient struct{}

func (nullClient) Chat(ctx context.Context, systemPrompt, userPrompt, errorMessage string) (string, error) {
	return "", errors.New("no llm backend configured")
}

func (nullClient) IsAvailable(ctx context.Context) bool { return false }
