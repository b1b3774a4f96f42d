package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient records chat calls and returns canned results.
type stubClient struct {
	reply     string
	err       error
	available bool

	chatCalls  int
	lastSystem string
	lastUser   string
	lastError  string
}

func (c *stubClient) Chat(ctx context.Context, systemPrompt, userPrompt, errorMessage string) (string, error) {
	c.chatCalls++
	c.lastSystem = systemPrompt
	c.lastUser = userPrompt
	c.lastError = errorMessage
	return c.reply, c.err
}

func (c *stubClient) IsAvailable(ctx context.Context) bool { return c.available }

func TestLLMProcessor_RendersTemplatesAndReturnsReply(t *testing.T) {
	client := &stubClient{reply: "summary", available: true}
	p := NewLLMProcessor(client, "Summarize the command $command", "$stdout")

	out, err := p.Process(context.Background(), CommandExecution{
		Command: []string{"echo", "test"},
		Stdout:  "test output",
		Stderr:  "",
	})
	require.NoError(t, err)

	assert.Equal(t, "summary", out)
	assert.Equal(t, 1, client.chatCalls)
	assert.Contains(t, client.lastSystem, "echo test")
	assert.Equal(t, "test output", client.lastUser)
	assert.Equal(t, "", client.lastError)
}

func TestLLMProcessor_PassesStderrAsErrorMessage(t *testing.T) {
	client := &stubClient{reply: "summary", available: true}
	p := NewLLMProcessor(client, "system", "$stdout")

	_, err := p.Process(context.Background(), CommandExecution{
		Command: []string{"make"},
		Stdout:  "ok",
		Stderr:  "warning: deprecated\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "warning: deprecated\n", client.lastError)
}

func TestLLMProcessor_WrapsClientFailureAsProcessingError(t *testing.T) {
	cause := errors.New("connection refused")
	client := &stubClient{err: cause, available: true}
	p := NewLLMProcessor(client, "system", "$stdout")

	execution := CommandExecution{Command: []string{"echo", "test"}, Stdout: "test output"}
	_, err := p.Process(context.Background(), execution)

	var procErr *ProcessingError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, execution, procErr.Execution)
	assert.ErrorIs(t, err, cause)
}

func TestLLMProcessor_AvailabilityDefersToClient(t *testing.T) {
	assert.True(t, NewLLMProcessor(&stubClient{available: true}, "s", "u").IsAvailable(context.Background()))
	assert.False(t, NewLLMProcessor(&stubClient{}, "s", "u").IsAvailable(context.Background()))
}
