// Package session holds per-conversation context state: one slot per
// responder role plus a single long-term carry-over slot.
package session

import (
	"fmt"
	"strings"

	"github.com/rahulnsecc/agenthub/ai/router"
	"github.com/rahulnsecc/agenthub/store"
)

// absence is the literal rendered for an empty slot in prompt templates.
const absence = "None"

// State is the per-conversation mutable session state. Each named field
// holds the last response produced under that role; LongTerm is populated
// only when the most recent continuity decision was "continue".
//
// A State is owned by exactly one session. The orchestrator mutates a clone
// during a turn and hands the updated copy back, so no locking is needed.
type State struct {
	Search   string
	Finance  string
	Content  string
	LongTerm string
}

// Clone returns a copy of the state for the orchestrator to mutate.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// SlotsEmpty reports whether all three role slots are empty. Used to decide
// whether to seed from the most recent persisted record.
func (s *State) SlotsEmpty() bool {
	return s.Search == "" && s.Finance == "" && s.Content == ""
}

// Slot returns the context slot for the given role.
func (s *State) Slot(role router.Role) string {
	switch role {
	case router.RoleContent:
		return s.Content
	case router.RoleFinance:
		return s.Finance
	default:
		return s.Search
	}
}

// Seed populates state from the most recent persisted turn record: the slot
// whose role label matches gets the record's response, and LongTerm is set
// unconditionally from the response when it is non-empty.
func (s *State) Seed(rec *store.TurnRecord) {
	if rec == nil {
		return
	}
	if role, ok := router.RoleFromLabel(rec.Role); ok {
		s.setSlot(role, rec.Response)
	}
	if rec.Response != "" {
		s.LongTerm = rec.Response
	}
}

// ApplyContinuity applies the continuity decision for a role. On
// continuation the role's prior slot value is copied into LongTerm; on a
// topic change both the role's slot and LongTerm are cleared.
func (s *State) ApplyContinuity(role router.Role, isContinuation bool) {
	if isContinuation {
		s.LongTerm = s.Slot(role)
		return
	}
	s.setSlot(role, "")
	s.LongTerm = ""
}

// Commit records a responder's output into the slot for its role. Within a
// turn Commit always follows ApplyContinuity.
func (s *State) Commit(role router.Role, responseText string) {
	s.setSlot(role, responseText)
}

func (s *State) setSlot(role router.Role, text string) {
	switch role {
	case router.RoleContent:
		s.Content = text
	case router.RoleFinance:
		s.Finance = text
	case router.RoleSearch:
		s.Search = text
	}
}

// ResolveRequest carries the turn inputs embedded in the context bundle
// alongside the slots.
type ResolveRequest struct {
	History            string
	Message            string
	LastAssistantReply string

	// RoutingReason is forwarded into the Content bundle for transparency.
	RoutingReason string
}

// Resolve assembles the role-specific prompt context. Content consumes all
// three slots plus long-term; Finance consumes its own slot, Content's slot,
// and long-term; Search consumes its own slot and long-term.
func (s *State) Resolve(role router.Role, req ResolveRequest) string {
	components := []string{
		fmt.Sprintf("Conversation History:\n%s", orAbsent(req.History)),
		fmt.Sprintf("Current Request: %s", req.Message),
		fmt.Sprintf("Last Assistant Response: %s", orAbsent(req.LastAssistantReply)),
	}

	switch role {
	case router.RoleContent:
		components = append(components,
			fmt.Sprintf("Previous Content:\n%s", orAbsent(s.Content)),
			fmt.Sprintf("Web Search Results:\n%s", orAbsent(s.Search)),
			fmt.Sprintf("Financial Data:\n%s", orAbsent(s.Finance)),
			fmt.Sprintf("Long-Term Context:\n%s", orAbsent(s.LongTerm)),
		)
		if req.RoutingReason != "" {
			components = append(components, fmt.Sprintf("Routing Decision: %s", req.RoutingReason))
		}
	case router.RoleFinance:
		components = append(components,
			fmt.Sprintf("Market Context:\n%s", orAbsent(s.Finance)),
			fmt.Sprintf("Related Content:\n%s", orAbsent(s.Content)),
			fmt.Sprintf("Long-Term Context:\n%s", orAbsent(s.LongTerm)),
		)
	default:
		components = append(components,
			fmt.Sprintf("Search History:\n%s", orAbsent(s.Search)),
			fmt.Sprintf("Long-Term Context:\n%s", orAbsent(s.LongTerm)),
		)
	}

	return strings.Join(components, "\n")
}

func orAbsent(s string) string {
	if s == "" {
		return absence
	}
	return s
}
