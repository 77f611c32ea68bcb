package core

import "strings"

// CleanString trims surrounding whitespace; pass true to also lowercase
// (emails are stored and compared lowercased).
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) == 0 || !lower[0] {
		return s
	}
	return strings.ToLower(s)
}
