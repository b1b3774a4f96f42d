package processor

import (
	"context"
	"log/slog"
)

// Fallback decorates a processor so that run-time failures degrade to the
// raw stdout instead of surfacing as errors. This is the third fallback
// layer, after name resolution and processor construction.
type Fallback struct {
	wrapped Processor
	logger  *slog.Logger
}

// NewFallback wraps a processor.
func NewFallback(wrapped Processor, logger *slog.Logger) *Fallback {
	return &Fallback{wrapped: wrapped, logger: logger}
}

// Process delegates to the wrapped processor and substitutes the raw stdout
// when it fails.
func (f *Fallback) Process(ctx context.Context, execution CommandExecution) (string, error) {
	out, err := f.wrapped.Process(ctx, execution)
	if err != nil {
		f.logger.Debug("processor failed, emitting raw output", "error", err)
		return execution.Stdout, nil
	}
	return out, nil
}

// IsAvailable defers to the wrapped processor.
func (f *Fallback) IsAvailable(ctx context.Context) bool {
	return f.wrapped.IsAvailable(ctx)
}
