package profile

import "github.com/shtym/shtym/internal/config"

// BuiltinSource guarantees that "default" always resolves to something, even
// with zero configuration present. Settings come from the SHTYM_LLM_SETTINGS__*
// environment overrides, falling back to the hardcoded defaults.
type BuiltinSource struct {
	settings LLMSettings
}

// NewBuiltinSource snapshots the environment overrides at construction time.
func NewBuiltinSource() *BuiltinSource {
	e := config.LLMFromEnv()
	settings := DefaultSettings()
	if e.ModelName != "" {
		settings.ModelName = e.ModelName
	}
	if e.BaseURL != "" {
		settings.BaseURL = e.BaseURL
	}
	return &BuiltinSource{settings: settings}
}

// Get recognizes exactly DefaultName; every other name is not found.
func (s *BuiltinSource) Get(name string) (Profile, error) {
	if name != DefaultName {
		return nil, &NotFoundError{Name: name}
	}
	return NewLLM("", "", s.settings), nil
}
