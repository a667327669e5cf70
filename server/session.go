package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rahulnsecc/agenthub/ai/orchestrator"
	"github.com/rahulnsecc/agenthub/ai/session"
)

// conversation is the server-held state of one chat session: the exchange
// history plus the per-role context slots. Each conversation is mutated by
// at most one in-flight turn; turnMu enforces that, so concurrent requests
// for one session queue up instead of interleaving.
type conversation struct {
	turnMu sync.Mutex

	mu      sync.Mutex
	history []orchestrator.Exchange
	state   *session.State
}

func (c *conversation) snapshot() ([]orchestrator.Exchange, *session.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	history := make([]orchestrator.Exchange, len(c.history))
	copy(history, c.history)
	return history, c.state.Clone()
}

func (c *conversation) commit(history []orchestrator.Exchange, state *session.State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = history
	if state != nil {
		c.state = state
	}
}

// sessionManager tracks chat sessions in memory. Sessions are identified by
// server-issued UUIDs; an unknown or blank ID starts a fresh session.
type sessionManager struct {
	mu            sync.Mutex
	conversations map[string]*conversation
}

func newSessionManager() *sessionManager {
	return &sessionManager{conversations: make(map[string]*conversation)}
}

// acquire returns the conversation for id, creating one under a fresh ID
// when id is blank or unknown.
func (m *sessionManager) acquire(id string) (string, *conversation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != "" {
		if conv, ok := m.conversations[id]; ok {
			return id, conv
		}
	}
	id = uuid.NewString()
	conv := &conversation{state: &session.State{}}
	m.conversations[id] = conv
	return id, conv
}
