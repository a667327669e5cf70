// Package strutil provides string utility functions for the ai package.
package strutil

// Truncate truncates a string to a maximum length and appends "..." when
// anything was cut. Uses rune-level truncation to ensure Unicode safety.
// Intended for log previews, not for wire bounds.
// Returns empty string if maxLen <= 0 to prevent slice bounds panic.
func Truncate(s string, maxLen int) string {
	if s == "" || maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// Clip bounds a string to at most maxLen runes without any ellipsis marker.
// Used to enforce wire-contract limits (stored input/response, classifier
// prompt inputs), where the bound must hold exactly.
func Clip(s string, maxLen int) string {
	if s == "" || maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
