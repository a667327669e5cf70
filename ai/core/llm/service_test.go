package llm

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceDefaults(t *testing.T) {
	svc, err := NewService(&Config{Provider: "groq", APIKey: "test", Model: "llama-3.3-70b-versatile"})
	require.NoError(t, err)

	impl, ok := svc.(*service)
	require.True(t, ok)
	assert.Equal(t, 120, impl.timeout)
	assert.Equal(t, 2048, impl.maxTokens)
	assert.Nil(t, impl.limiter)
}

func TestNewServiceRateLimiter(t *testing.T) {
	svc, err := NewService(&Config{Provider: "openai", APIKey: "test", Model: "gpt-4o", RequestsPerMinute: 30})
	require.NoError(t, err)

	impl := svc.(*service)
	require.NotNil(t, impl.limiter)
	assert.InDelta(t, 0.5, float64(impl.limiter.Limit()), 0.001)
	assert.Equal(t, 30, impl.limiter.Burst())
}

func TestConvertMessages(t *testing.T) {
	msgs := convertMessages([]Message{
		SystemPrompt("be helpful"),
		UserMessage("hello"),
		AssistantMessage("hi"),
		{Role: "tool", Content: "unknown role becomes user"},
	})

	require.Len(t, msgs, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, msgs[2].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[3].Role)
}
