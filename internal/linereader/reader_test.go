package linereader

import (
	"context"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/alignby/internal/errors"
	"github.com/Iron-Ham/alignby/internal/testutil"
)

func TestReader_Lines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single line no terminator", "a=1", []string{"a=1"}},
		{"trailing newline adds no line", "a=1\nb=2\n", []string{"a=1", "b=2"}},
		{"crlf stripped", "a=1\r\nb=2\r\n", []string{"a=1", "b=2"}},
		{"bare cr kept", "a=1\r", []string{"a=1\r"}},
		{"blank lines kept", "\n\nx\n", []string{"", "", "x"}},
		{"mixed terminators", "a\r\nb\nc", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(strings.NewReader(tt.input), nil)
			got := slices.Collect(r.Lines(context.Background()))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines mismatch (-want +got):\n%s", diff)
			}
			if r.Err() != nil {
				t.Errorf("Err() = %v, want nil", r.Err())
			}
		})
	}
}

func TestReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20) + "=" + "y"
	r := New(strings.NewReader(long+"\nshort\n"), nil)

	got := slices.Collect(r.Lines(context.Background()))
	if len(got) != 2 || got[0] != long || got[1] != "short" {
		t.Errorf("long line not read intact: %d lines", len(got))
	}
}

func TestReader_SkipsInvalidUTF8(t *testing.T) {
	type skip struct {
		Line int
		Raw  string
	}
	var skipped []skip

	input := "ok=1\nbad\xff=2\r\nok=3\n\xc3\x28"
	r := New(strings.NewReader(input), func(n int, raw string) {
		skipped = append(skipped, skip{n, raw})
	})

	got := slices.Collect(r.Lines(context.Background()))

	if diff := cmp.Diff([]string{"ok=1", "ok=3"}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	wantSkipped := []skip{{2, "bad\xff=2"}, {4, "\xc3\x28"}}
	if diff := cmp.Diff(wantSkipped, skipped); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
	if r.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", r.Skipped())
	}
	if r.LineCount() != 4 {
		t.Errorf("LineCount() = %d, want 4", r.LineCount())
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestReader_ReadFailure(t *testing.T) {
	src := &testutil.ErrReader{Data: []byte("a=1\nb=2\npartial"), Err: io.ErrUnexpectedEOF}
	r := New(src, nil)

	got := slices.Collect(r.Lines(context.Background()))
	if diff := cmp.Diff([]string{"a=1", "b=2"}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}

	err := r.Err()
	if !errors.Is(err, errors.ErrReadFailed) {
		t.Fatalf("Err() = %v, want ErrReadFailed", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Err() = %v, want it to wrap io.ErrUnexpectedEOF", err)
	}

	var readErr *errors.ReadError
	if !errors.As(err, &readErr) || readErr.Line != 3 {
		t.Errorf("expected ReadError at line 3, got %v", err)
	}

	// Reader stays failed.
	if _, ok := r.Next(); ok {
		t.Error("Next() after failure should return ok=false")
	}
}

func TestReader_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := New(strings.NewReader("a\nb\nc\n"), nil)
	var got []string
	for line := range r.Lines(ctx) {
		got = append(got, line)
		cancel()
	}

	if diff := cmp.Diff([]string{"a"}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(r.Err(), context.Canceled) {
		t.Errorf("Err() = %v, want context.Canceled", r.Err())
	}
}

func TestReader_StopEarly(t *testing.T) {
	r := New(strings.NewReader("a\nb\nc\n"), nil)
	for range r.Lines(context.Background()) {
		break
	}

	line, ok := r.Next()
	if !ok || line != "b" {
		t.Errorf("Next() = %q, %v; want \"b\", true", line, ok)
	}
}
