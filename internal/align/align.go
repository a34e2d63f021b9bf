// Package align splits lines on a delimiter word and pads the left segments
// so the delimiter lines up in a single column.
//
// Alignment is two-pass: an Aligner consumes every line, recording a Pair per
// line and the widest left segment, and a Writer then emits the pairs. The
// column cannot be known before the last line is seen, so the whole input is
// held in memory.
package align

import (
	"fmt"
	"iter"
	"strings"
)

// Mode selects which occurrence of the delimiter a line is split at.
type Mode int

const (
	// ModeHead splits at the first occurrence.
	ModeHead Mode = iota
	// ModeTail splits at the last occurrence.
	ModeTail
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHead:
		return "head"
	case ModeTail:
		return "tail"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ValidModes returns the accepted mode names.
func ValidModes() []string {
	return []string{ModeHead.String(), ModeTail.String()}
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "head":
		return ModeHead, nil
	case "tail":
		return ModeTail, nil
	default:
		return ModeHead, fmt.Errorf("unknown mode %q (want one of: %s)", s, strings.Join(ValidModes(), ", "))
	}
}

// Pair is a line divided at the delimiter. When the delimiter was found,
// Left + delimiter + Right is the original line; otherwise Left is the whole
// line and Right is empty.
type Pair struct {
	Left  string
	Right string
}

// Split divides line at the first (ModeHead) or last (ModeTail) occurrence of
// delimiter.
func Split(line, delimiter string, mode Mode) Pair {
	if mode == ModeTail {
		i := strings.LastIndex(line, delimiter)
		if i < 0 {
			return Pair{Left: line}
		}
		return Pair{Left: line[:i], Right: line[i+len(delimiter):]}
	}

	left, right, found := strings.Cut(line, delimiter)
	if !found {
		return Pair{Left: line}
	}
	return Pair{Left: left, Right: right}
}

// Result is the output of the measuring pass.
type Result struct {
	// Pairs in input order.
	Pairs []Pair
	// MaxWidth is the widest Left across Pairs, 0 when there are none.
	MaxWidth int
}

// Options configures an Aligner.
type Options struct {
	Delimiter string
	Mode      Mode
	// Width measures left segments. Nil means byte length.
	Width WidthFunc
}

// Aligner runs the fused split and measure pass. The zero value is not
// usable; create one with New.
type Aligner struct {
	opts   Options
	width  WidthFunc
	result Result
}

// New returns an Aligner for opts.
func New(opts Options) *Aligner {
	width := opts.Width
	if width == nil {
		width = ByteWidth
	}
	return &Aligner{opts: opts, width: width}
}

// Add splits line and folds its left segment into the running maximum.
func (a *Aligner) Add(line string) Pair {
	p := Split(line, a.opts.Delimiter, a.opts.Mode)
	if w := a.width(p.Left); w > a.result.MaxWidth {
		a.result.MaxWidth = w
	}
	a.result.Pairs = append(a.result.Pairs, p)
	return p
}

// Result returns the pairs and width collected so far. The returned slice
// is shared with the Aligner.
func (a *Aligner) Result() Result {
	return a.result
}

// Measure consumes lines and returns every pair together with the widest
// left segment.
func Measure(lines iter.Seq[string], opts Options) Result {
	a := New(opts)
	for line := range lines {
		a.Add(line)
	}
	return a.Result()
}
