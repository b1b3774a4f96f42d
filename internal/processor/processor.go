// Package processor turns a resolved profile into an executable output
// transformation, with uniform fallback to passthrough on every failure mode.
package processor

import (
	"context"
	"strings"
)

// CommandExecution records one completed child process run. It is built
// immediately after the child exits and passed by value.
type CommandExecution struct {
	Command []string
	Stdout  string
	Stderr  string
}

// CommandLine renders the argv as a single space-joined string, the form the
// $command placeholder substitutes to.
func (e CommandExecution) CommandLine() string {
	return strings.Join(e.Command, " ")
}

// Processor transforms a completed command's output.
type Processor interface {
	// Process produces the transformed output for an execution.
	Process(ctx context.Context, execution CommandExecution) (string, error)

	// IsAvailable reports whether the processor can be used.
	IsAvailable(ctx context.Context) bool
}

// PassThrough returns stdout unchanged. It is the terminal fallback for the
// whole pipeline and is always available.
type PassThrough struct{}

func (PassThrough) Process(ctx context.Context, execution CommandExecution) (string, error) {
	return execution.Stdout, nil
}

func (PassThrough) IsAvailable(ctx context.Context) bool { return true }
