package orchestrator

import (
	"strings"

	"github.com/rahulnsecc/agenthub/ai/session"
)

// Exchange is one user/assistant pair in the conversation history.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// Update is one emission of the turn stream: the conversation history with
// the in-progress response appended, plus the session state as of this
// point in the turn. The stream is finite and non-restartable; the terminal
// update has Final set and carries the fully committed state.
type Update struct {
	History []Exchange
	State   *session.State
	Final   bool
}

// formatHistory renders prior exchanges for embedding into prompts.
func formatHistory(history []Exchange) string {
	parts := make([]string, 0, len(history))
	for _, ex := range history {
		parts = append(parts, "User: "+ex.User+"\nAssistant: "+ex.Assistant)
	}
	return strings.Join(parts, "\n")
}

// lastAssistantReply returns the most recent assistant response, or "".
func lastAssistantReply(history []Exchange) string {
	if len(history) == 0 {
		return ""
	}
	return history[len(history)-1].Assistant
}
