// Package router maps a user message plus context summaries to one of the
// responder roles via a classifier call with a parse-and-fallback policy.
package router

import (
	"context"
	"log/slog"

	"github.com/rahulnsecc/agenthub/internal/strutil"
	"github.com/rahulnsecc/agenthub/ai/metrics"
)

// Classifier is the text-in/text-out classification call the router depends on.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Request carries the user message and per-role context summaries embedded
// into the routing prompt.
type Request struct {
	Message            string
	History            string
	LastAssistantReply string
	ContentContext     string
	FinanceContext     string
	SearchContext      string
	LongTermContext    string
}

// Service selects the responder role for a turn.
type Service struct {
	classifier Classifier
}

// NewService creates a new router service.
func NewService(classifier Classifier) *Service {
	return &Service{classifier: classifier}
}

// Route invokes the classifier and parses its reply. It never fails: any
// classifier error or malformed reply falls back to the default role, so
// routing is never fatal to the turn.
func (s *Service) Route(ctx context.Context, req Request) Decision {
	raw, err := s.classifier.Classify(ctx, buildRoutingPrompt(req))
	if err != nil {
		slog.Error("routing classifier failed, using default role",
			"error", err,
			"input", strutil.Truncate(req.Message, 50))
		metrics.RoutingFallbacks.Inc()
		return Decision{Role: DefaultRole, Reason: "routing failure fallback"}
	}

	decision, err := ParseDecision(raw)
	if err != nil {
		slog.Error("invalid routing reply, using default role",
			"error", err,
			"reply", strutil.Truncate(raw, 80))
		metrics.RoutingFallbacks.Inc()
		return Decision{Role: DefaultRole, Reason: "routing parse fallback"}
	}

	if decision.Unrecognized {
		slog.Warn("unrecognized agent in routing reply, using default role",
			"reply", strutil.Truncate(raw, 80))
	}

	slog.Info("routing decision",
		"role", decision.Role,
		"confidence", decision.Confidence,
		"reason", strutil.Truncate(decision.Reason, 80))
	metrics.RoutingDecisions.WithLabelValues(decision.Role.String()).Inc()

	return decision
}
