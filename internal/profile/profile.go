// Package profile defines the output-transformation profiles and the layered
// sources that resolve a profile name for a single invocation.
package profile

// DefaultName is the profile used when the caller does not pick one.
const DefaultName = "default"

const (
	// DefaultModelName is used when neither the environment nor a profile
	// file names a model.
	DefaultModelName = "gpt-oss:20b"
	// DefaultBaseURL points at a local Ollama instance.
	DefaultBaseURL = "http://localhost:11434"
)

// DefaultSystemPromptTemplate is the generic summarization instruction used
// when a profile does not define its own. $command is replaced with the
// wrapped command line before the prompt is sent.
const DefaultSystemPromptTemplate = "Your task is to summarize and distill the essential information" +
	" from the command $command:\n\n" +
	"The provided user message is the raw output of the command so it may" +
	" contain extraneous information, errors, or formatting artifacts." +
	" Your goal is to extract the most relevant and accurate information." +
	" Also, error will be provided if any as a separate user message."

// DefaultUserPromptTemplate sends the captured stdout as the user message.
const DefaultUserPromptTemplate = "$stdout"

// Profile describes one output transformation strategy. Profiles are plain
// values: once returned from a Source they are never mutated.
type Profile interface {
	// Kind returns the profile type discriminator ("passthrough" or "llm").
	Kind() string
}

// Passthrough emits the wrapped command's stdout unchanged.
type Passthrough struct{}

func (Passthrough) Kind() string { return "passthrough" }

// LLMSettings configure the backend the LLM profile talks to.
type LLMSettings struct {
	ModelName string
	BaseURL   string
}

// LLM transforms output by sending it to an LLM backend with a pair of
// prompt templates.
type LLM struct {
	SystemPromptTemplate string
	UserPromptTemplate   string
	Settings             LLMSettings
}

func (LLM) Kind() string { return "llm" }

// DefaultSettings returns the hardcoded fallback LLM settings.
func DefaultSettings() LLMSettings {
	return LLMSettings{
		ModelName: DefaultModelName,
		BaseURL:   DefaultBaseURL,
	}
}

// NewLLM builds an LLM profile, filling empty fields with the documented
// defaults.
func NewLLM(systemTemplate, userTemplate string, settings LLMSettings) LLM {
	if systemTemplate == "" {
		systemTemplate = DefaultSystemPromptTemplate
	}
	if userTemplate == "" {
		userTemplate = DefaultUserPromptTemplate
	}
	if settings.ModelName == "" {
		settings.ModelName = DefaultModelName
	}
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	return LLM{
		SystemPromptTemplate: systemTemplate,
		UserPromptTemplate:   userTemplate,
		Settings:             settings,
	}
}
