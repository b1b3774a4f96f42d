package processor

import (
	"context"
	"fmt"

	"github.com/shtym/shtym/internal/llm"
	"github.com/shtym/shtym/internal/profile"
)

// Factory builds a Processor from a resolved profile.
type Factory interface {
	// Create fails with *CreationError when the profile type has no
	// implementation or the backend reports itself unavailable.
	Create(ctx context.Context, p profile.Profile) (Processor, error)
}

// ClientBackedFactory builds processors whose LLM clients come from a
// ClientFactory.
type ClientBackedFactory struct {
	clients llm.ClientFactory
}

// NewFactory builds the production processor factory.
func NewFactory(clients llm.ClientFactory) *ClientBackedFactory {
	return &ClientBackedFactory{clients: clients}
}

// Create dispatches on the profile variant.
func (f *ClientBackedFactory) Create(ctx context.Context, p profile.Profile) (Processor, error) {
	switch p := p.(type) {
	case profile.Passthrough:
		return PassThrough{}, nil
	case profile.LLM:
		return f.createLLM(ctx, p)
	default:
		return nil, &CreationError{Reason: fmt.Sprintf("unsupported profile type %q", p.Kind())}
	}
}

func (f *ClientBackedFactory) createLLM(ctx context.Context, p profile.LLM) (Processor, error) {
	client, err := f.clients.Create(p.Settings)
	if err != nil {
		return nil, &CreationError{Reason: "building llm client", Err: err}
	}
	if !client.IsAvailable(ctx) {
		return nil, &CreationError{
			Reason: fmt.Sprintf("model %q not available at %s", p.Settings.ModelName, p.Settings.BaseURL),
		}
	}
	return NewLLMProcessor(client, p.SystemPromptTemplate, p.UserPromptTemplate), nil
}
