// Package continuity decides whether a new user message extends the prior
// topic for a role or should start fresh.
package continuity

import (
	"context"
	"log/slog"

	"github.com/rahulnsecc/agenthub/internal/strutil"
	"github.com/rahulnsecc/agenthub/ai/metrics"
)

// Wire-contract bounds for classifier inputs.
const (
	MaxPreviousContextLen = 2000
	MaxMessageLen         = 500
)

// AbsenceMarker is the literal rendered for an empty context slot. A
// previous context equal to it short-circuits to "not a continuation".
const AbsenceMarker = "None"

// Classifier is the text-in/text-out classification call the detector depends on.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Detector checks topic continuity against a role's previous context.
type Detector struct {
	classifier Classifier
}

// NewDetector creates a new continuity detector.
func NewDetector(classifier Classifier) *Detector {
	return &Detector{classifier: classifier}
}

// Check reports whether userMessage continues the topic held in
// previousContext. Empty or absent previous context short-circuits to false
// without a classifier call. Any classifier failure or unparseable reply is
// treated as a topic change: continuity defaults to the conservative reset.
func (d *Detector) Check(ctx context.Context, userMessage, previousContext string) bool {
	if previousContext == "" || previousContext == AbsenceMarker {
		return false
	}

	prompt := buildContinuityPrompt(
		strutil.Clip(previousContext, MaxPreviousContextLen),
		strutil.Clip(userMessage, MaxMessageLen),
	)

	raw, err := d.classifier.Classify(ctx, prompt)
	if err != nil {
		slog.Error("continuity check failed, treating as topic change",
			"error", err,
			"input", strutil.Truncate(userMessage, 50))
		metrics.ContinuityDecisions.WithLabelValues("reset").Inc()
		return false
	}

	verdict, err := parseVerdict(raw)
	if err != nil {
		slog.Warn("invalid continuity reply, treating as topic change",
			"error", err,
			"reply", strutil.Truncate(raw, 80))
		metrics.ContinuityDecisions.WithLabelValues("reset").Inc()
		return false
	}

	cont := verdict.Continuation()
	slog.Info("continuity decision",
		"action", verdict.Action,
		"score", verdict.Score,
		"continuation", cont)
	if cont {
		metrics.ContinuityDecisions.WithLabelValues("continue").Inc()
	} else {
		metrics.ContinuityDecisions.WithLabelValues("reset").Inc()
	}
	return cont
}
