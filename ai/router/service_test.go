package router

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// fakeClassifier returns a scripted reply or error.
type fakeClassifier struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeClassifier) Classify(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestRouteSelectsRole(t *testing.T) {
	svc := NewService(&fakeClassifier{reply: "Content Agent|90%|Blog request"})
	dec := svc.Route(context.Background(), Request{Message: "Write a blog post about renewable energy"})
	assert.Equal(t, RoleContent, dec.Role)
	assert.Equal(t, 90, dec.Confidence)
}

func TestRouteFallsBackOnClassifierError(t *testing.T) {
	svc := NewService(&fakeClassifier{err: errors.New("service unavailable")})
	dec := svc.Route(context.Background(), Request{Message: "anything"})
	assert.Equal(t, DefaultRole, dec.Role)
}

func TestRouteFallsBackOnMalformedReply(t *testing.T) {
	for _, reply := range []string{"garbage", "a|b", "a|b|c|d", ""} {
		svc := NewService(&fakeClassifier{reply: reply})
		dec := svc.Route(context.Background(), Request{Message: "anything"})
		assert.Equal(t, DefaultRole, dec.Role, "reply=%q", reply)
	}
}

func TestRouteEmbedsContextSummaries(t *testing.T) {
	fc := &fakeClassifier{reply: "Finance Agent|80%|ok"}
	svc := NewService(fc)
	svc.Route(context.Background(), Request{
		Message:            "what about its P/E ratio",
		FinanceContext:     "AAPL up 3%",
		LastAssistantReply: "AAPL up 3%",
		LongTermContext:    "tracking AAPL",
	})

	assert.True(t, strings.Contains(fc.lastPrompt, "AAPL up 3%"))
	assert.True(t, strings.Contains(fc.lastPrompt, "tracking AAPL"))
	// Unset slots are rendered as the literal absence marker.
	assert.True(t, strings.Contains(fc.lastPrompt, "Content - blog/article/edit, context: None"))
}
