package align

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// WidthFunc returns the column width of s.
type WidthFunc func(s string) int

// WidthUnit names a way of measuring left segments.
type WidthUnit int

const (
	// WidthBytes counts bytes. Multi-byte and wide characters are not
	// specially handled; this is the default.
	WidthBytes WidthUnit = iota
	// WidthRunes counts Unicode code points.
	WidthRunes
	// WidthCells counts terminal cells, treating East Asian wide characters
	// as two cells and combining marks as zero.
	WidthCells
	// WidthANSI counts terminal cells after skipping ANSI escape sequences.
	WidthANSI
)

var widthNames = map[WidthUnit]string{
	WidthBytes: "bytes",
	WidthRunes: "runes",
	WidthCells: "cells",
	WidthANSI:  "ansi",
}

// String returns the configuration name of the unit.
func (u WidthUnit) String() string {
	if name, ok := widthNames[u]; ok {
		return name
	}
	return fmt.Sprintf("WidthUnit(%d)", int(u))
}

// Func returns the measuring function for the unit. Unknown units measure
// bytes.
func (u WidthUnit) Func() WidthFunc {
	switch u {
	case WidthRunes:
		return RuneWidth
	case WidthCells:
		return CellWidth
	case WidthANSI:
		return ANSIWidth
	default:
		return ByteWidth
	}
}

// ValidWidths returns the accepted unit names in declaration order.
func ValidWidths() []string {
	return []string{"bytes", "runes", "cells", "ansi"}
}

// ParseWidth converts a configuration name into a WidthUnit.
func ParseWidth(s string) (WidthUnit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return WidthBytes, nil
	}
	for unit, n := range widthNames {
		if n == name {
			return unit, nil
		}
	}
	return WidthBytes, fmt.Errorf("unknown width unit %q (want one of: %s)", s, strings.Join(ValidWidths(), ", "))
}

// ByteWidth is len(s).
func ByteWidth(s string) int {
	return len(s)
}

// RuneWidth is the number of code points in s.
func RuneWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// CellWidth is the terminal cell width of s.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ANSIWidth is the terminal cell width of s with escape sequences removed.
func ANSIWidth(s string) int {
	return ansi.StringWidth(s)
}
