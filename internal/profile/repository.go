package profile

import (
	"log/slog"
	"os"
	"path/filepath"
)

// ProjectProfilesPath is the project-local profiles file, relative to the
// current working directory.
const ProjectProfilesPath = ".shtym/profiles.toml"

// DefaultRepository wires the standard resolution chain: project-local file,
// then user config file, then the built-in default. A project profile
// overrides a user profile of the same name, which overrides the hardcoded
// fallback.
func DefaultRepository(logger *slog.Logger) Source {
	parser := TOMLParser{}
	return NewMultiSource(
		NewFileSource(PathReader{Path: filepath.FromSlash(ProjectProfilesPath)}, parser, logger),
		NewFileSource(PathReader{Path: UserProfilesPath()}, parser, logger),
		NewBuiltinSource(),
	)
}

// UserProfilesPath returns the path to the per-user profiles file.
func UserProfilesPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "shtym", "profiles.toml")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "shtym", "profiles.toml")
}
