package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	head, truncated := Excerpt(strings.TrimSpace(s), limit)
	if truncated {
		return head + "..."
	}
	return head
}

// Excerpt returns at most limit runes from the start of s and whether s was cut.
// Only the returned prefix is scanned, so the cost does not depend on len(s).
func Excerpt(s string, limit int) (string, bool) {
	if limit <= 0 {
		return "", s != ""
	}

	end := 0
	for count := 0; count < limit; count++ {
		if end >= len(s) {
			return s, false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}

	if end >= len(s) {
		return s, false
	}
	return s[:end], true
}
