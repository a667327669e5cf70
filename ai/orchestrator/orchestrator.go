// Package orchestrator implements the per-turn loop: route the message to a
// responder role, check topic continuity, assemble role context, dispatch,
// stream the result as growing prefixes, and persist the completed turn.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rahulnsecc/agenthub/ai/agents"
	"github.com/rahulnsecc/agenthub/ai/continuity"
	"github.com/rahulnsecc/agenthub/internal/strutil"
	"github.com/rahulnsecc/agenthub/ai/metrics"
	"github.com/rahulnsecc/agenthub/ai/router"
	"github.com/rahulnsecc/agenthub/ai/session"
	"github.com/rahulnsecc/agenthub/store"
)

// Greeting is returned for a blank message without invoking any service.
const Greeting = "How can I help you today?"

const persistTimeout = 5 * time.Second

// Config wires the orchestrator's collaborators. All service handles are
// constructed once at process start and passed in here; the orchestrator
// holds no hidden global state, so tests can inject independent doubles.
type Config struct {
	Router     *router.Service
	Continuity *continuity.Detector
	Responders map[router.Role]agents.Responder
	Store      *store.Store
}

// Orchestrator runs the turn loop. It is safe for concurrent use across
// sessions: each turn mutates only a clone of the caller's session state,
// and the store serializes appends.
type Orchestrator struct {
	router     *router.Service
	continuity *continuity.Detector
	responders map[router.Role]agents.Responder
	store      *store.Store
}

// New creates a new orchestrator.
func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		router:     cfg.Router,
		continuity: cfg.Continuity,
		responders: cfg.Responders,
		store:      cfg.Store,
	}
}

// ProcessTurn runs one turn and returns its update stream. The stream emits
// a strictly increasing sequence of response prefixes and terminates with
// the final update carrying the committed state; it is closed when the turn
// ends or ctx is cancelled. Every internal step owns its own recovery: the
// turn always completes with some response and updated state.
func (o *Orchestrator) ProcessTurn(ctx context.Context, userMessage string, history []Exchange, state *session.State) <-chan Update {
	updates := make(chan Update, 8)
	go func() {
		defer close(updates)
		o.runTurn(ctx, userMessage, history, state, updates)
	}()
	return updates
}

func (o *Orchestrator) runTurn(ctx context.Context, userMessage string, history []Exchange, state *session.State, updates chan<- Update) {
	start := time.Now()

	if state == nil {
		state = &session.State{}
	}
	newState := state.Clone()

	// Catch-all so a turn can never take the process down: the caller
	// receives one error-marked final chunk instead of silence.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("turn processing panicked", "panic", r)
			errText := fmt.Sprintf("Critical error: %v", r)
			o.emit(ctx, updates, Update{
				History: append(copyHistory(history), Exchange{User: userMessage, Assistant: errText}),
				State:   newState,
				Final:   true,
			})
		}
	}()

	if strings.TrimSpace(userMessage) == "" {
		o.emit(ctx, updates, Update{
			History: append(copyHistory(history), Exchange{User: userMessage, Assistant: Greeting}),
			State:   newState,
			Final:   true,
		})
		return
	}

	slog.Info("processing turn", "input", strutil.Truncate(userMessage, 100))

	// LOAD_SESSION: seed empty in-memory slots from the most recent
	// persisted record. A store read failure is logged only and never
	// blocks the turn.
	if newState.SlotsEmpty() && o.store != nil {
		rec, err := o.store.MostRecentTurnRecord(ctx)
		if err != nil {
			slog.Error("failed to load most recent turn record", "error", err)
		} else if rec != nil {
			newState.Seed(rec)
			slog.Info("session state seeded from store", "role", rec.Role)
		}
	}

	formattedHistory := formatHistory(history)
	lastReply := lastAssistantReply(history)

	// ROUTE: never fatal, falls back to the default role internally.
	decision := o.router.Route(ctx, router.Request{
		Message:            userMessage,
		History:            formattedHistory,
		LastAssistantReply: lastReply,
		ContentContext:     newState.Content,
		FinanceContext:     newState.Finance,
		SearchContext:      newState.Search,
		LongTermContext:    newState.LongTerm,
	})

	// CONTINUITY_CHECK: any failure resolves to "topic change".
	isContinuation := o.continuity.Check(ctx, userMessage, newState.Slot(decision.Role))
	newState.ApplyContinuity(decision.Role, isContinuation)

	// CONTEXT_RESOLVE
	bundle := newState.Resolve(decision.Role, session.ResolveRequest{
		History:            formattedHistory,
		Message:            userMessage,
		LastAssistantReply: lastReply,
		RoutingReason:      decision.Reason,
	})

	// DISPATCH
	agentName := "System"
	responseText := ""
	responder, ok := o.responders[decision.Role]
	if !ok {
		slog.Error("no responder registered for role", "role", decision.Role)
		responseText = fmt.Sprintf("System error: no responder for role %s", decision.Role)
	} else {
		agentName = responder.Name()
		text, err := responder.Run(ctx, bundle)
		if err != nil {
			slog.Error("responder execution failed",
				"role", decision.Role,
				"error", err)
			metrics.ResponderFailures.WithLabelValues(decision.Role.String()).Inc()
			responseText = fmt.Sprintf("%s error: %v", agentName, err)
		} else {
			responseText = text
		}
	}
	if responseText == "" {
		responseText = "No response generated."
	}

	// STREAM: strictly increasing prefixes, one rune at a time. delivered
	// tracks the longest prefix actually handed to the caller so the
	// persisted record never says more than was delivered.
	delivered := ""
	runes := []rune(responseText)
	for i := range runes {
		prefix := string(runes[:i+1])
		if !o.emit(ctx, updates, Update{
			History: append(copyHistory(history), Exchange{User: userMessage, Assistant: prefix}),
			State:   newState,
		}) {
			slog.Warn("turn stream abandoned mid-response",
				"delivered_runes", len([]rune(delivered)),
				"total_runes", len(runes))
			break
		}
		delivered = prefix
	}

	// Context Store update and persistence reflect exactly what was
	// delivered, never more.
	newState.Commit(decision.Role, delivered)

	if o.store != nil && delivered != "" {
		persistCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if _, err := o.store.AppendTurnRecord(persistCtx, &store.TurnRecord{
			UserInput: userMessage,
			Role:      agentName,
			Response:  delivered,
		}); err != nil {
			// Logged only: persistence failures never surface to the caller.
			slog.Error("failed to persist turn record", "error", err)
			metrics.PersistFailures.Inc()
		}
	}

	metrics.TurnsTotal.WithLabelValues(decision.Role.String()).Inc()
	metrics.TurnDuration.Observe(time.Since(start).Seconds())

	o.emit(ctx, updates, Update{
		History: append(copyHistory(history), Exchange{User: userMessage, Assistant: delivered}),
		State:   newState,
		Final:   true,
	})
}

// emit sends one update unless the caller has gone away. Returns false on
// cancellation.
func (o *Orchestrator) emit(ctx context.Context, updates chan<- Update, u Update) bool {
	select {
	case updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}

// copyHistory snapshots the history slice so emitted updates never alias
// the caller's backing array.
func copyHistory(history []Exchange) []Exchange {
	out := make([]Exchange, len(history), len(history)+1)
	copy(out, history)
	return out
}
