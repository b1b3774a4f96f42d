// Package llm provides the chat client capability behind the LLM processor.
package llm

import "context"

// Client is the single LLM capability the pipeline depends on.
type Client interface {
	// Chat sends a system and user prompt and returns the model's reply.
	// errorMessage, when non-empty, is delivered as an additional user
	// message carrying the wrapped command's stderr.
	Chat(ctx context.Context, systemPrompt, userPrompt, errorMessage string) (string, error)

	// IsAvailable reports whether the backend is reachable and the
	// configured model is present. It never returns an error; connectivity
	// failures read as false.
	IsAvailable(ctx context.Context) bool
}
