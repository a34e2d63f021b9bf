// Package testutil provides testing utilities for alignby tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/viper"
)

// FailingWriter accepts FailAfter bytes and then rejects every write with
// Err (EPIPE when Err is nil), the way a closed pipe does.
type FailingWriter struct {
	FailAfter int
	Err       error

	Written []byte
	Calls   int
}

// Write implements io.Writer.
func (w *FailingWriter) Write(p []byte) (int, error) {
	w.Calls++

	room := w.FailAfter - len(w.Written)
	if room >= len(p) {
		w.Written = append(w.Written, p...)
		return len(p), nil
	}
	if room > 0 {
		w.Written = append(w.Written, p[:room]...)
	} else {
		room = 0
	}

	err := w.Err
	if err == nil {
		err = syscall.EPIPE
	}
	return room, err
}

// ErrReader returns data and then fails with err instead of io.EOF.
type ErrReader struct {
	Data []byte
	Err  error

	off int
}

// Read implements io.Reader.
func (r *ErrReader) Read(p []byte) (int, error) {
	if r.off >= len(r.Data) {
		if r.Err == nil {
			return 0, errors.New("read failed")
		}
		return 0, r.Err
	}
	n := copy(p, r.Data[r.off:])
	r.off += n
	return n, nil
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ResetViper clears global viper state now and again when the test ends,
// so configuration from one test cannot leak into another.
func ResetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// IsolateConfigHome points XDG_CONFIG_HOME and HOME at an empty temporary
// directory so a developer's real config file is never picked up.
func IsolateConfigHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}
