package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shtym/shtym/internal/profile"
)

func TestOpenAIClientFactory_BuildsClient(t *testing.T) {
	c, err := OpenAIClientFactory{}.Create(profile.DefaultSettings())
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)
}

func TestNullClientFactory_ClientIsNeverAvailable(t *testing.T) {
	c, err := NullClientFactory{}.Create(profile.DefaultSettings())
	require.NoError(t, err)

	assert.False(t, c.IsAvailable(context.Background()))
	_, chatErr := c.Chat(context.Background(), "s", "u", "")
	assert.Error(t, chatErr)
}
