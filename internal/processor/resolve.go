package processor

import (
	"context"
	"log/slog"

	"github.com/shtym/shtym/internal/profile"
)

// WithFallback builds a processor from a resolved profile and never fails:
// a creation error or an unavailable processor degrades to PassThrough, and
// a usable processor is wrapped so its run-time failures degrade too.
func WithFallback(ctx context.Context, p profile.Profile, factory Factory, logger *slog.Logger) Processor {
	built, err := factory.Create(ctx, p)
	if err != nil {
		logger.Debug("falling back to passthrough", "error", err)
		return PassThrough{}
	}
	if !built.IsAvailable(ctx) {
		logger.Debug("processor unavailable, falling back to passthrough")
		return PassThrough{}
	}
	return NewFallback(built, logger)
}

// FromProfileName is the pipeline's externally consumed entry point: resolve
// a profile name and build a processor that is guaranteed never to fail
// outward. An unknown name short-circuits to PassThrough without invoking
// the factory.
func FromProfileName(ctx context.Context, name string, repository profile.Source, factory Factory, logger *slog.Logger) Processor {
	p, err := repository.Get(name)
	if err != nil {
		logger.Debug("profile not found, using passthrough", "profile", name, "error", err)
		return PassThrough{}
	}
	return WithFallback(ctx, p, factory, logger)
}
