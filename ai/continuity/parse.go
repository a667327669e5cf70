package continuity

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Verdict is the parsed continuity reply: an action plus a 0-12 score.
type Verdict struct {
	Action string // continue, clarify, new
	Score  int
}

// Continuation maps the verdict to the boolean continuation decision.
// First matching rule wins; no match means false.
//
//	continue + score >= 9 -> true
//	clarify  + score >= 5 -> true
//	new      + score <= 4 -> false
func (v Verdict) Continuation() bool {
	switch v.Action {
	case "continue":
		return v.Score >= 9
	case "clarify":
		return v.Score >= 5
	default:
		return false
	}
}

// parseVerdict parses a reply of the form "<action> <score> <reason...>".
// The reason tail is ignored. A non-numeric score is treated as 0, matching
// the conservative decision table.
func parseVerdict(raw string) (Verdict, error) {
	parts := strings.Fields(strings.TrimSpace(raw))
	if len(parts) < 2 {
		return Verdict{}, errors.Errorf("invalid continuity reply format: %q", raw)
	}

	action := strings.ToLower(parts[0])
	score := 0
	if v, err := strconv.Atoi(parts[1]); err == nil {
		score = v
	}

	return Verdict{Action: action, Score: score}, nil
}
