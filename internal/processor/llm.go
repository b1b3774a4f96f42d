package processor

import (
	"context"

	"github.com/shtym/shtym/internal/llm"
)

// LLMProcessor sends the captured output through a chat backend using the
// profile's prompt templates.
type LLMProcessor struct {
	client               llm.Client
	systemPromptTemplate string
	userPromptTemplate   string
}

// NewLLMProcessor binds a client to a pair of prompt templates.
func NewLLMProcessor(client llm.Client, systemPromptTemplate, userPromptTemplate string) *LLMProcessor {
	return &LLMProcessor{
		client:               client,
		systemPromptTemplate: systemPromptTemplate,
		userPromptTemplate:   userPromptTemplate,
	}
}

// Process renders both templates against the execution and asks the backend
// for a reply. Any client failure comes back as a *ProcessingError.
func (p *LLMProcessor) Process(ctx context.Context, execution CommandExecution) (string, error) {
	systemPrompt := RenderTemplate(p.systemPromptTemplate, execution)
	userPrompt := RenderTemplate(p.userPromptTemplate, execution)

	reply, err := p.client.Chat(ctx, systemPrompt, userPrompt, execution.Stderr)
	if err != nil {
		return "", &ProcessingError{Execution: execution, Err: err}
	}
	return reply, nil
}

// IsAvailable defers to the backend.
func (p *LLMProcessor) IsAvailable(ctx context.Context) bool {
	return p.client.IsAvailable(ctx)
}
