// Package config reads the environment overrides shtym understands.
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// LLMEnv carries the environment overrides for the built-in default profile.
// Both are optional; blank or whitespace-only values count as unset.
type LLMEnv struct {
	ModelName string `env:"SHTYM_LLM_SETTINGS__MODEL"`
	BaseURL   string `env:"SHTYM_LLM_SETTINGS__BASE_URL"`
}

// LLMFromEnv resolves the LLM overrides from the process environment.
func LLMFromEnv() LLMEnv {
	var e LLMEnv
	// Both fields are plain strings, so parsing cannot fail.
	_ = env.Parse(&e)
	e.ModelName = strings.TrimSpace(e.ModelName)
	e.BaseURL = strings.TrimSpace(e.BaseURL)
	return e
}
