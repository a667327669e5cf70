// Package review implements the peer-review pipeline backing the Content
// role: a critiqued draft followed by three independent reviews and one
// meta aggregation.
package review

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rahulnsecc/agenthub/ai/core/llm"
	"github.com/rahulnsecc/agenthub/ai/metrics"
)

// Pipeline runs the fixed stage sequence
// DRAFT -> SEO_REVIEW -> LEGAL_REVIEW -> ETHICS_REVIEW -> META_AGGREGATE.
// Each reviewer receives the same frozen draft; reviews are independent,
// not sequential refinements.
type Pipeline struct {
	llm llm.Service
}

// NewPipeline creates a review pipeline on top of the given LLM service.
func NewPipeline(svc llm.Service) *Pipeline {
	return &Pipeline{llm: svc}
}

type reviewerSpec struct {
	stage  Stage
	name   string
	system string
}

var reviewers = []reviewerSpec{
	{StageSEOReview, "SEO Reviewer", seoReviewerSystemPrompt},
	{StageLegalReview, "Legal Reviewer", legalReviewerSystemPrompt},
	{StageEthicsReview, "Ethics Reviewer", ethicsReviewerSystemPrompt},
}

// Run executes the full pipeline for one Content turn. On any stage failure
// it aborts immediately with a StageError; it never retries a stage.
func (p *Pipeline) Run(ctx context.Context, contextBundle string) (*Result, error) {
	draft, err := p.draft(ctx, contextBundle)
	if err != nil {
		metrics.ReviewStageFailures.WithLabelValues(string(StageDraft)).Inc()
		return nil, &StageError{Stage: StageDraft, Err: err}
	}

	result := &Result{Draft: draft}
	for _, spec := range reviewers {
		rev, err := p.review(ctx, spec, draft)
		if err != nil {
			metrics.ReviewStageFailures.WithLabelValues(string(spec.stage)).Inc()
			return nil, &StageError{Stage: spec.stage, Err: err}
		}
		result.Reviews = append(result.Reviews, rev)
	}

	aggregate, err := p.aggregate(ctx, result.Reviews)
	if err != nil {
		metrics.ReviewStageFailures.WithLabelValues(string(StageMetaAggregate)).Inc()
		return nil, &StageError{Stage: StageMetaAggregate, Err: err}
	}
	result.Aggregate = aggregate

	slog.Info("review pipeline completed",
		"draft_length", len(result.Draft),
		"reviews", len(result.Reviews),
		"priority_fixes", len(aggregate.PriorityFixes))

	return result, nil
}

// draft runs the writer/critic exchange: initial draft, one critique, one
// revision, then the draft is frozen.
func (p *Pipeline) draft(ctx context.Context, contextBundle string) (string, error) {
	initial, err := p.llm.Chat(ctx, []llm.Message{
		llm.SystemPrompt(writerSystemPrompt),
		llm.UserMessage(contextBundle),
	})
	if err != nil {
		return "", fmt.Errorf("writer draft: %w", err)
	}

	critique, err := p.llm.Chat(ctx, []llm.Message{
		llm.SystemPrompt(criticSystemPrompt),
		llm.UserMessage("Review the following content:\n\n" + initial),
	})
	if err != nil {
		return "", fmt.Errorf("critic exchange: %w", err)
	}

	revised, err := p.llm.Chat(ctx, []llm.Message{
		llm.SystemPrompt(writerSystemPrompt),
		llm.UserMessage(contextBundle),
		llm.AssistantMessage(initial),
		llm.UserMessage("Revise the content addressing this feedback:\n\n" + critique),
	})
	if err != nil {
		return "", fmt.Errorf("writer revision: %w", err)
	}

	return revised, nil
}

// review hands the frozen draft to one reviewer and compresses the critique
// into the fixed {Reviewer, Review} structure via a secondary summarization
// call.
func (p *Pipeline) review(ctx context.Context, spec reviewerSpec, draft string) (StageReview, error) {
	critique, err := p.llm.Chat(ctx, []llm.Message{
		llm.SystemPrompt(spec.system),
		llm.UserMessage("Review the following content:\n\n" + draft),
	})
	if err != nil {
		return StageReview{}, fmt.Errorf("%s critique: %w", spec.name, err)
	}

	summary, err := p.llm.Chat(ctx, []llm.Message{
		llm.SystemPrompt(reviewSummarySystemPrompt),
		llm.UserMessage(critique),
	})
	if err != nil {
		return StageReview{}, fmt.Errorf("%s summary: %w", spec.name, err)
	}

	rev := StageReview{}
	if err := json.Unmarshal([]byte(extractJSON(summary)), &rev); err != nil || rev.Review == "" {
		// The summarizer did not honor the JSON shape; keep the raw summary
		// rather than failing the stage.
		slog.Warn("review summary not valid JSON, keeping raw text",
			"reviewer", spec.name)
		rev = StageReview{Reviewer: spec.name, Review: strings.TrimSpace(summary)}
	}
	if rev.Reviewer == "" {
		rev.Reviewer = spec.name
	}

	return rev, nil
}

// aggregate runs the meta reviewer over the three structured reviews.
func (p *Pipeline) aggregate(ctx context.Context, reviews []StageReview) (*Aggregate, error) {
	var b strings.Builder
	b.WriteString("Aggregate feedback from all reviewers and give final suggestions on the writing.\n\n")
	for _, rev := range reviews {
		fmt.Fprintf(&b, "%s:\n%s\n\n", rev.Reviewer, rev.Review)
	}

	reply, err := p.llm.Chat(ctx, []llm.Message{
		llm.SystemPrompt(metaReviewerSystemPrompt),
		llm.UserMessage(b.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("meta reviewer: %w", err)
	}

	agg := &Aggregate{}
	if err := json.Unmarshal([]byte(extractJSON(reply)), agg); err != nil || agg.Summary == "" {
		slog.Warn("meta review not valid JSON, keeping raw text as summary")
		agg = &Aggregate{Summary: strings.TrimSpace(reply)}
	}

	return agg, nil
}

// extractJSON returns the outermost {...} span of s, tolerating prose or
// code fences around the JSON object.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}
