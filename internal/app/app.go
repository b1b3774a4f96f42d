// Package app wires profile resolution, processor construction, and command
// execution into the shtym run flow.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shtym/shtym/internal/llm"
	"github.com/shtym/shtym/internal/processor"
	"github.com/shtym/shtym/internal/profile"
	"github.com/shtym/shtym/internal/runner"
)

// ProcessorResolver turns a profile name into a processor. The returned
// processor is expected to be total (see processor.FromProfileName).
type ProcessorResolver func(ctx context.Context, name string) processor.Processor

// CommandRunner executes the wrapped command.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) runner.Result
}

// Application runs one wrapped command per process invocation.
type Application struct {
	resolve ProcessorResolver
	runner  CommandRunner
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
}

// New assembles an Application from its collaborators.
func New(resolve ProcessorResolver, run CommandRunner, stdout, stderr io.Writer, logger *slog.Logger) *Application {
	return &Application{
		resolve: resolve,
		runner:  run,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
	}
}

// Default wires the production chain: project/user/builtin profile
// resolution, the OpenAI-compatible client factory, and a real subprocess
// runner writing to the process streams.
func Default(logger *slog.Logger) *Application {
	repository := profile.DefaultRepository(logger)
	factory := processor.NewFactory(llm.OpenAIClientFactory{})
	resolve := func(ctx context.Context, name string) processor.Processor {
		return processor.FromProfileName(ctx, name, repository, factory, logger)
	}
	return New(resolve, runner.New(logger), os.Stdout, os.Stderr, logger)
}

// Run executes argv, processes its stdout with the processor resolved for
// profileName, emits the processed output and the child's stderr, and
// returns the child's exit code. Transformation failures never change the
// exit code; they only mean the raw output is emitted instead.
func (a *Application) Run(ctx context.Context, profileName string, argv []string) int {
	proc := a.resolve(ctx, profileName)

	result := a.runner.Run(ctx, argv)

	execution := processor.CommandExecution{
		Command: argv,
		Stdout:  result.Stdout,
		Stderr:  result.Stderr,
	}

	out, err := proc.Process(ctx, execution)
	if err != nil {
		// Resolved processors are total; honor the contract anyway.
		a.logger.Debug("processor error, emitting raw output", "error", err)
		out = result.Stdout
	}

	if _, err := io.WriteString(a.stdout, out); err != nil {
		a.logger.Warn("writing stdout", "error", err)
	}
	if _, err := io.WriteString(a.stderr, result.Stderr); err != nil {
		a.logger.Warn("writing stderr", "error", err)
	}

	return result.ExitCode
}
