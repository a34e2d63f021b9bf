// Package util provides small string helpers shared by the alignment and
// input packages.
package util

import (
	"strconv"
	"strings"
)

// PadToWidth pads s on the right with spaces until measure(s) reaches width.
// Strings already at or past width are returned unchanged. A nil measure
// counts bytes.
func PadToWidth(s string, width int, measure func(string) int) string {
	current := len(s)
	if measure != nil {
		current = measure(s)
	}
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}

// TruncateString truncates a string to maxLen runes, adding "..." if truncated.
// It does not account for ANSI escape codes or wide characters.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// QuotePreview renders raw, which may hold invalid UTF-8, as a Go-quoted
// string of at most maxLen runes, for log messages.
func QuotePreview(raw string, maxLen int) string {
	return TruncateString(strconv.Quote(raw), maxLen)
}
