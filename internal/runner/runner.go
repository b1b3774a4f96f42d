// Package runner executes the wrapped child process.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Result records a finished child process. Launch failures are folded into
// the exit code rather than returned as errors.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// launchFailureExitCode mirrors the shell's "command not found" convention.
const launchFailureExitCode = 127

// Runner runs one command to completion, capturing its output. The child
// inherits stdin and is waited on unconditionally; there is no timeout.
type Runner struct {
	logger *slog.Logger

	// commandContext is overridable for testing.
	commandContext func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// New creates a Runner.
func New(logger *slog.Logger) *Runner {
	return &Runner{
		logger:         logger,
		commandContext: exec.CommandContext,
	}
}

// Run executes argv and blocks until it exits. It never returns an error:
// a process that could not be launched reads as exit code 127 with the
// failure on stderr.
func (r *Runner) Run(ctx context.Context, argv []string) Result {
	if len(argv) == 0 {
		return Result{Stderr: "no command given\n", ExitCode: launchFailureExitCode}
	}

	r.logger.Debug("running command", "argv", argv)

	cmd := r.commandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Stdin = os.Stdin

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = launchFailureExitCode
			fmt.Fprintf(&stderr, "%s: %v\n", argv[0], err)
		}
	}

	r.logger.Debug("command finished", "exit_code", exitCode)

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
