// Package sanitizer normalizes caller-supplied free text before it is
// validated or persisted.
package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizePassengerName collapses whitespace; passenger names are kept
// as supplied otherwise since they must match travel documents.
func NormalizePassengerName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeSeatLabel upper-cases a seat label so "12a" and "12A" refer
// to the same seat-map entry.
func NormalizeSeatLabel(label string) string {
	return strings.ToUpper(TrimAndNormalize(label))
}
