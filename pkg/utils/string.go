// Package utils provides common utility functions.
package utils

import "strings"

// CleanText trims a scraped string and collapses internal whitespace runs
// into single spaces. Catalog markup tends to pad text nodes with newlines
// and tabs.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max runes, appending an ellipsis when the
// string was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	if max <= 3 {
		return string(runes[:max])
	}

	return string(runes[:max-3]) + "..."
}
