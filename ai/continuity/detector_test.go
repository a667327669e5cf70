package continuity

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeClassifier struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeClassifier) Classify(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestCheckShortCircuitsOnEmptyContext(t *testing.T) {
	fc := &fakeClassifier{reply: "continue 12 would be true"}
	d := NewDetector(fc)

	assert.False(t, d.Check(context.Background(), "hello", ""))
	assert.False(t, d.Check(context.Background(), "hello", "None"))
	assert.Equal(t, 0, fc.calls, "classifier must not be invoked without previous context")
}

func TestDecisionTable(t *testing.T) {
	// Exhaustive (action, score) grid against the decision table, including
	// out-of-table combinations which must all resolve to false.
	for _, action := range []string{"continue", "clarify", "new", "unknown"} {
		for score := 0; score <= 12; score++ {
			want := false
			switch action {
			case "continue":
				want = score >= 9
			case "clarify":
				want = score >= 5
			}

			fc := &fakeClassifier{reply: fmt.Sprintf("%s %d some reason", action, score)}
			d := NewDetector(fc)
			got := d.Check(context.Background(), "follow-up question", "previous answer")
			assert.Equal(t, want, got, "action=%s score=%d", action, score)
		}
	}
}

func TestCheckContinuationExample(t *testing.T) {
	fc := &fakeClassifier{reply: "continue 10 same ticker"}
	d := NewDetector(fc)
	assert.True(t, d.Check(context.Background(), "what about its P/E ratio", "AAPL up 3%"))
}

func TestCheckFalseOnClassifierError(t *testing.T) {
	d := NewDetector(&fakeClassifier{err: errors.New("timeout")})
	assert.False(t, d.Check(context.Background(), "hello", "something prior"))
}

func TestCheckFalseOnMalformedReply(t *testing.T) {
	for _, reply := range []string{"", "continue", "nonsense", "   "} {
		d := NewDetector(&fakeClassifier{reply: reply})
		assert.False(t, d.Check(context.Background(), "hello", "something prior"), "reply=%q", reply)
	}
}

func TestCheckNonNumericScoreIsZero(t *testing.T) {
	// "continue abc" parses with score 0, which the table resolves to false.
	d := NewDetector(&fakeClassifier{reply: "continue abc reason"})
	assert.False(t, d.Check(context.Background(), "hello", "something prior"))
}

func TestCheckClipsInputs(t *testing.T) {
	fc := &fakeClassifier{reply: "new 1 changed"}
	d := NewDetector(fc)

	longPrev := strings.Repeat("p", MaxPreviousContextLen+500)
	longMsg := strings.Repeat("m", MaxMessageLen+200)
	d.Check(context.Background(), longMsg, longPrev)

	assert.NotContains(t, fc.lastPrompt, strings.Repeat("p", MaxPreviousContextLen+1))
	assert.NotContains(t, fc.lastPrompt, strings.Repeat("m", MaxMessageLen+1))
	assert.Contains(t, fc.lastPrompt, strings.Repeat("p", MaxPreviousContextLen))
	assert.Contains(t, fc.lastPrompt, strings.Repeat("m", MaxMessageLen))
}
