package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyProcessor fails Process with a fixed error and counts invocations.
type flakyProcessor struct {
	out   string
	err   error
	calls int
}

func (p *flakyProcessor) Process(ctx context.Context, execution CommandExecution) (string, error) {
	p.calls++
	return p.out, p.err
}

func (p *flakyProcessor) IsAvailable(ctx context.Context) bool { return true }

func TestFallback_PassesThroughSuccess(t *testing.T) {
	inner := &flakyProcessor{out: "processed"}
	f := NewFallback(inner, testLogger())

	out, err := f.Process(context.Background(), CommandExecution{Stdout: "raw"})
	require.NoError(t, err)
	assert.Equal(t, "processed", out)
}

func TestFallback_SubstitutesRawStdoutOnFailure(t *testing.T) {
	execution := CommandExecution{Command: []string{"echo", "hi"}, Stdout: "raw output\n"}
	inner := &flakyProcessor{err: &ProcessingError{Execution: execution, Err: errors.New("network blip")}}
	f := NewFallback(inner, testLogger())

	out, err := f.Process(context.Background(), execution)
	require.NoError(t, err)
	assert.Equal(t, "raw output\n", out)
	assert.Equal(t, 1, inner.calls)
}

func TestFallback_AvailabilityDefersToWrapped(t *testing.T) {
	f := NewFallback(PassThrough{}, testLogger())
	assert.True(t, f.IsAvailable(context.Background()))
}
