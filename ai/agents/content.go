package agents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rahulnsecc/agenthub/ai/review"
)

// ContentResponder runs the Content role through the review pipeline. A
// pipeline stage failure becomes an inline "Content error: ..." string, not
// a Go error: the orchestrator must still complete the turn.
type ContentResponder struct {
	pipeline *review.Pipeline
}

// NewContentResponder creates the content role responder.
func NewContentResponder(pipeline *review.Pipeline) *ContentResponder {
	return &ContentResponder{pipeline: pipeline}
}

func (r *ContentResponder) Name() string {
	return "Content Agent"
}

// Run executes the review pipeline and returns the frozen draft. The
// aggregated meta-review is metadata only: it is logged but never folded
// back into the returned text.
func (r *ContentResponder) Run(ctx context.Context, contextText string) (string, error) {
	result, err := r.pipeline.Run(ctx, contextText)
	if err != nil {
		slog.Error("content generation failed", "error", err)
		return fmt.Sprintf("Content error: %v", err), nil
	}

	if result.Aggregate != nil {
		slog.Info("content review aggregate",
			"summary", result.Aggregate.Summary,
			"priority_fixes", result.Aggregate.PriorityFixes,
			"notes", result.Aggregate.Notes)
	}

	return result.Draft, nil
}
