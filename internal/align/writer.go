package align

import (
	"bufio"
	"io"
	"strings"

	"github.com/Iron-Ham/alignby/internal/errors"
	"github.com/Iron-Ham/alignby/internal/util"
)

// Writer emits aligned lines. Each pair becomes Left padded to the result's
// MaxWidth, then the delimiter, then Right, then a newline.
type Writer struct {
	out       io.Writer
	delimiter string
	width     WidthFunc
}

// NewWriter returns a Writer over out. A nil width measures bytes and must
// match the WidthFunc the Result was measured with.
func NewWriter(out io.Writer, delimiter string, width WidthFunc) *Writer {
	if width == nil {
		width = ByteWidth
	}
	return &Writer{out: out, delimiter: delimiter, width: width}
}

// Write emits every pair of r in order. The first failing write aborts
// output and is returned as an *errors.WriteError; nothing is retried.
func (w *Writer) Write(r Result) error {
	bw := bufio.NewWriter(w.out)

	for i, p := range r.Pairs {
		if err := w.writePair(bw, p, r.MaxWidth); err != nil {
			return errors.NewWriteError(err).WithPairIndex(i)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.NewWriteError(err).WithPairIndex(len(r.Pairs) - 1)
	}
	return nil
}

func (w *Writer) writePair(bw *bufio.Writer, p Pair, maxWidth int) error {
	bw.WriteString(util.PadToWidth(p.Left, maxWidth, w.width))
	bw.WriteString(w.delimiter)
	bw.WriteString(p.Right)
	// bufio.Writer errors are sticky; checking the last call is enough.
	return bw.WriteByte('\n')
}

// Render returns the aligned text for r as a string.
func Render(r Result, delimiter string, width WidthFunc) string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = NewWriter(&sb, delimiter, width).Write(r)
	return sb.String()
}
