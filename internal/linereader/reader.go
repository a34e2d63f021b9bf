// Package linereader reads an input stream as text lines for alignment.
//
// Lines end at "\n" or "\r\n". A final line without a terminator is still
// returned, and a trailing terminator does not produce an extra empty line.
// Lines that are not valid UTF-8 are skipped.
package linereader

import (
	"bufio"
	"context"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/Iron-Ham/alignby/internal/errors"
)

// SkipFunc is called for every line dropped because it is not valid text.
// lineNumber is 1-based and counts every physical line, skipped or not.
type SkipFunc func(lineNumber int, raw string)

// Reader yields the valid text lines of an io.Reader.
type Reader struct {
	br     *bufio.Reader
	onSkip SkipFunc

	lineNumber int
	skipped    int
	err        error
}

// New returns a Reader over r. onSkip may be nil.
func New(r io.Reader, onSkip SkipFunc) *Reader {
	return &Reader{br: bufio.NewReader(r), onSkip: onSkip}
}

// Next returns the next valid line. ok is false at end of input or after a
// read failure; Err distinguishes the two.
func (r *Reader) Next() (line string, ok bool) {
	for r.err == nil {
		raw, err := r.br.ReadString('\n')
		if err != nil && err != io.EOF {
			r.err = errors.NewReadError(err).WithLine(r.lineNumber + 1)
			return "", false
		}
		if raw == "" {
			// io.EOF with nothing pending.
			return "", false
		}

		r.lineNumber++
		raw = trimTerminator(raw)

		if !utf8.ValidString(raw) {
			r.skipped++
			if r.onSkip != nil {
				r.onSkip(r.lineNumber, raw)
			}
			if err == io.EOF {
				return "", false
			}
			continue
		}
		return raw, true
	}
	return "", false
}

// Lines returns an iterator over the remaining valid lines. Iteration stops
// early when ctx is canceled; the cause is then reported by Err.
func (r *Reader) Lines(ctx context.Context) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if err := ctx.Err(); err != nil {
				if r.err == nil {
					r.err = context.Cause(ctx)
				}
				return
			}
			line, ok := r.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

// Err returns the read failure or cancellation that ended iteration, or nil
// after a clean end of input.
func (r *Reader) Err() error {
	return r.err
}

// Skipped returns how many lines were dropped as invalid text.
func (r *Reader) Skipped() int {
	return r.skipped
}

// LineCount returns how many physical lines have been consumed.
func (r *Reader) LineCount() int {
	return r.lineNumber
}

// trimTerminator strips "\n" or "\r\n". A bare trailing "\r" is content.
func trimTerminator(s string) string {
	if s, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(s, "\r")
	}
	return s
}
