package review

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulnsecc/agenthub/ai/core/llm"
)

// scriptedLLM answers based on the system prompt of each call and records
// the call sequence. failAt makes the n-th call (1-based) fail.
type scriptedLLM struct {
	calls  []string
	failAt int
}

func (s *scriptedLLM) Chat(_ context.Context, messages []llm.Message) (string, error) {
	system := ""
	if len(messages) > 0 && messages[0].Role == "system" {
		system = messages[0].Content
	}

	var kind string
	switch {
	case strings.Contains(system, "SEO-optimized content"):
		if len(messages) > 2 {
			kind = "writer_revision"
		} else {
			kind = "writer_draft"
		}
	case strings.Contains(system, "Clarity, structure, grammar"):
		kind = "critic"
	case strings.Contains(system, "SEO audit"):
		kind = "seo"
	case strings.Contains(system, "Defamation/liability"):
		kind = "legal"
	case strings.Contains(system, "ethical issues"):
		kind = "ethics"
	case strings.Contains(system, `{"Reviewer": "", "Review": ""}`):
		kind = "summary"
	case strings.Contains(system, "Aggregate feedback"):
		kind = "meta"
	default:
		kind = "unknown"
	}
	s.calls = append(s.calls, kind)

	if s.failAt > 0 && len(s.calls) == s.failAt {
		return "", errors.New("service unavailable")
	}

	switch kind {
	case "writer_draft":
		return "initial draft", nil
	case "writer_revision":
		return "frozen draft", nil
	case "critic":
		return "needs better transitions", nil
	case "summary":
		return `{"Reviewer": "Reviewer", "Review": "compressed review"}`, nil
	case "meta":
		return `{"summary": "key issues", "priority_fixes": ["add keywords", "add disclaimer", "inclusive language"], "notes": "add internal links"}`, nil
	default:
		return "free-form critique", nil
	}
}

func TestRunInvokesEveryStageExactlyOnce(t *testing.T) {
	fake := &scriptedLLM{}
	p := NewPipeline(fake)

	result, err := p.Run(context.Background(), "User Request: write a post")
	require.NoError(t, err)

	// 2-turn draft exchange, then one critique + one summary per reviewer,
	// then one meta call.
	assert.Equal(t, []string{
		"writer_draft", "critic", "writer_revision",
		"seo", "summary",
		"legal", "summary",
		"ethics", "summary",
		"meta",
	}, fake.calls)

	assert.Equal(t, "frozen draft", result.Draft, "returned text is the frozen draft, not the aggregate")
	require.Len(t, result.Reviews, 3)
	require.NotNil(t, result.Aggregate)
	assert.Equal(t, "key issues", result.Aggregate.Summary)
	assert.Len(t, result.Aggregate.PriorityFixes, 3)
}

func TestRunAbortsOnStageFailureWithoutRetry(t *testing.T) {
	tests := []struct {
		name      string
		failAt    int
		wantStage Stage
		wantCalls int
	}{
		{"writer draft fails", 1, StageDraft, 1},
		{"critic fails", 2, StageDraft, 2},
		{"writer revision fails", 3, StageDraft, 3},
		{"seo critique fails", 4, StageSEOReview, 4},
		{"seo summary fails", 5, StageSEOReview, 5},
		{"legal critique fails", 6, StageLegalReview, 6},
		{"ethics critique fails", 8, StageEthicsReview, 8},
		{"meta fails", 10, StageMetaAggregate, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &scriptedLLM{failAt: tt.failAt}
			p := NewPipeline(fake)

			_, err := p.Run(context.Background(), "context")
			require.Error(t, err)

			var stageErr *StageError
			require.ErrorAs(t, err, &stageErr)
			assert.Equal(t, tt.wantStage, stageErr.Stage)
			assert.Len(t, fake.calls, tt.wantCalls, "no retries after a failed stage")
		})
	}
}

// jsonlessLLM never honors the JSON shapes; the pipeline keeps raw text
// instead of failing.
type jsonlessLLM struct{ scriptedLLM }

func (s *jsonlessLLM) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	reply, err := s.scriptedLLM.Chat(ctx, messages)
	if err != nil {
		return "", err
	}
	last := s.calls[len(s.calls)-1]
	if last == "summary" || last == "meta" {
		return "not json at all", nil
	}
	return reply, nil
}

func TestRunTolerantOfNonJSONSummaries(t *testing.T) {
	fake := &jsonlessLLM{}
	p := NewPipeline(fake)

	result, err := p.Run(context.Background(), "context")
	require.NoError(t, err)

	require.Len(t, result.Reviews, 3)
	assert.Equal(t, "SEO Reviewer", result.Reviews[0].Reviewer)
	assert.Equal(t, "not json at all", result.Reviews[0].Review)
	assert.Equal(t, "not json at all", result.Aggregate.Summary)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractJSON("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, extractJSON(`here you go: {"a": 1}`))
	assert.Equal(t, "no braces", extractJSON("no braces"))
}

func (s *scriptedLLM) Warmup(context.Context) {}
