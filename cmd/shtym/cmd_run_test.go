package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestRunCmd_FlagParsingStopsAtCommand(t *testing.T) {
	var code int
	cmd := newRunCmd(testLogger(), &code)

	require.NoError(t, cmd.Flags().Parse([]string{"--profile", "p", "echo", "--help"}))

	// --help belongs to echo, not to shtym.
	assert.Equal(t, []string{"echo", "--help"}, cmd.Flags().Args())
	profileName, err := cmd.Flags().GetString("profile")
	require.NoError(t, err)
	assert.Equal(t, "p", profileName)
}

func TestRunCmd_ProfileDefaultsToDefault(t *testing.T) {
	var code int
	cmd := newRunCmd(testLogger(), &code)

	require.NoError(t, cmd.Flags().Parse([]string{"echo", "hi"}))

	profileName, err := cmd.Flags().GetString("profile")
	require.NoError(t, err)
	assert.Equal(t, "default", profileName)
}
