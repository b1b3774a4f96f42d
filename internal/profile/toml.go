package profile

import (
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"
)

// tomlProfile mirrors one [profiles.<name>] table. prompt_template is the
// legacy single-template form and maps to the system template.
type tomlProfile struct {
	Type                 string       `toml:"type"`
	PromptTemplate       string       `toml:"prompt_template"`
	SystemPromptTemplate string       `toml:"system_prompt_template"`
	UserPromptTemplate   string       `toml:"user_prompt_template"`
	LLMSettings          tomlSettings `toml:"llm_settings"`
}

type tomlSettings struct {
	ModelName string `toml:"model_name"`
	BaseURL   string `toml:"base_url"`
}

// ParseTOML parses a profiles file into a name -> Profile mapping. An empty
// [profiles] table parses to an empty map. Every failure mode — TOML syntax,
// missing or non-table profiles section, schema or URL validation, unknown
// type discriminator — comes back as a *ParseError.
func ParseTOML(content string) (map[string]Profile, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(content, &raw)
	if err != nil {
		return nil, &ParseError{Reason: "invalid TOML", Err: err}
	}

	section, ok := raw["profiles"]
	if !ok {
		return nil, &ParseError{Reason: "missing 'profiles' table"}
	}

	var entries map[string]toml.Primitive
	if err := md.PrimitiveDecode(section, &entries); err != nil {
		return nil, &ParseError{Reason: "'profiles' must be a table", Err: err}
	}

	profiles := make(map[string]Profile, len(entries))
	for name, entry := range entries {
		var tp tomlProfile
		if err := md.PrimitiveDecode(entry, &tp); err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("profile %q", name), Err: err}
		}
		p, err := tp.toProfile(name)
		if err != nil {
			return nil, err
		}
		profiles[name] = p
	}
	return profiles, nil
}

func (tp tomlProfile) toProfile(name string) (Profile, error) {
	if tp.Type != "llm" {
		return nil, &ParseError{Reason: fmt.Sprintf("profile %q: unsupported type %q", name, tp.Type)}
	}

	if tp.LLMSettings.BaseURL != "" {
		if err := validateBaseURL(tp.LLMSettings.BaseURL); err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("profile %q: invalid base_url %q", name, tp.LLMSettings.BaseURL), Err: err}
		}
	}

	systemTemplate := tp.SystemPromptTemplate
	if systemTemplate == "" {
		systemTemplate = tp.PromptTemplate
	}

	return NewLLM(systemTemplate, tp.UserPromptTemplate, LLMSettings{
		ModelName: tp.LLMSettings.ModelName,
		BaseURL:   tp.LLMSettings.BaseURL,
	}), nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("not an absolute http(s) URL")
	}
	return nil
}
