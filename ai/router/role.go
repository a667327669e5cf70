package router

import "strings"

// Role is the responder category a turn is dispatched to.
type Role string

const (
	RoleSearch  Role = "search"
	RoleFinance Role = "finance"
	RoleContent Role = "content"
)

// DefaultRole is substituted whenever routing cannot produce a usable
// decision. Routing must never be fatal to a turn.
const DefaultRole = RoleSearch

func (r Role) String() string {
	return string(r)
}

// DisplayName returns the human-facing agent name persisted in turn records.
func (r Role) DisplayName() string {
	switch r {
	case RoleContent:
		return "Content Agent"
	case RoleFinance:
		return "Finance Agent"
	default:
		return "Web Search Agent"
	}
}

// RoleFromToken maps a classifier role token to a Role. Matching is
// case-insensitive containment: "content" -> Content, "finance" -> Finance,
// "web" or "search" -> Search. The second return is false for tokens that
// matched nothing and fell back to the default.
func RoleFromToken(token string) (Role, bool) {
	t := strings.ToLower(token)
	switch {
	case strings.Contains(t, "content"):
		return RoleContent, true
	case strings.Contains(t, "finance"):
		return RoleFinance, true
	case strings.Contains(t, "web"), strings.Contains(t, "search"):
		return RoleSearch, true
	default:
		return DefaultRole, false
	}
}

// RoleFromLabel maps a persisted role label (e.g. "Content Agent",
// "finance") back to a Role. Used when seeding session state from the most
// recent turn record. The second return is false when no role matched.
func RoleFromLabel(label string) (Role, bool) {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "content"):
		return RoleContent, true
	case strings.Contains(l, "search"):
		return RoleSearch, true
	case strings.Contains(l, "finance"):
		return RoleFinance, true
	default:
		return "", false
	}
}
