// Package agents defines the responder roles the orchestrator dispatches
// turns to.
package agents

import "context"

// Responder is one of the interchangeable roles handling a turn. The actual
// capability behind a responder (text generation, web search, financial
// data) is an external service invoked through this one contract.
type Responder interface {
	// Name is the human-facing agent name, persisted in turn records.
	Name() string

	// Run executes the role against the assembled context bundle and
	// returns the response text. A failure is translated to an inline error
	// string by the caller and never crashes the turn loop.
	Run(ctx context.Context, contextText string) (string, error)
}
