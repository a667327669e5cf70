package router

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Decision is the parsed routing reply. Confidence and Reason are logged
// for transparency but only Role feeds back into the turn loop.
type Decision struct {
	Role       Role
	Confidence int // percent, 0-100
	Reason     string

	// Unrecognized is true when the reply was well-formed but its role token
	// matched no known agent, so Role holds the default.
	Unrecognized bool
}

// ParseDecision parses a classifier reply of the form
// "<role-token>|<confidence>%|<reason>". The reply must split into exactly
// three parts on '|'; anything else is a malformed reply. A well-formed
// reply with an unknown role token is not an error: it yields the default
// role with Unrecognized set, so the caller can log a single warning.
func ParseDecision(raw string) (Decision, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "|") {
		return Decision{}, errors.Errorf("invalid routing reply format: %q", raw)
	}

	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		return Decision{}, errors.Errorf("invalid routing reply format: %q", raw)
	}

	role, recognized := RoleFromToken(strings.TrimSpace(parts[0]))

	confidence := 0
	confPart := strings.TrimSuffix(strings.TrimSpace(parts[1]), "%")
	if v, err := strconv.Atoi(confPart); err == nil {
		confidence = v
	}

	return Decision{
		Role:         role,
		Confidence:   confidence,
		Reason:       strings.TrimSpace(parts[2]),
		Unrecognized: !recognized,
	}, nil
}
