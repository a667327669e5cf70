package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulnsecc/agenthub/ai/core/llm"
	"github.com/rahulnsecc/agenthub/ai/review"
)

// stubLLM replies with a fixed string, or fails every call.
type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubLLM) Warmup(context.Context) {}

func TestContentResponderReturnsDraft(t *testing.T) {
	r := NewContentResponder(review.NewPipeline(&stubLLM{reply: "the draft"}))

	text, err := r.Run(context.Background(), "write about energy")
	require.NoError(t, err)
	assert.Equal(t, "the draft", text)
}

func TestContentResponderConvertsStageFailure(t *testing.T) {
	r := NewContentResponder(review.NewPipeline(&stubLLM{err: errors.New("boom")}))

	text, err := r.Run(context.Background(), "write about energy")
	require.NoError(t, err, "pipeline failure must not escape as a Go error")
	assert.True(t, strings.HasPrefix(text, "Content error:"), "got %q", text)
}

func TestLLMResponderNames(t *testing.T) {
	svc := &stubLLM{reply: "ok"}
	assert.Equal(t, "Web Search Agent", NewSearchResponder(svc).Name())
	assert.Equal(t, "Finance Agent", NewFinanceResponder(svc).Name())
}

func TestLLMResponderPropagatesError(t *testing.T) {
	svc := &stubLLM{err: errors.New("offline")}
	_, err := NewSearchResponder(svc).Run(context.Background(), "ctx")
	assert.Error(t, err)
}
