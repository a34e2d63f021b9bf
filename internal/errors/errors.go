// Package errors provides centralized error definitions and error handling utilities
// for alignby. It defines sentinel errors, typed errors for each failure the
// filter can hit, and classification helpers used by the CLI to pick a message
// and an exit status.
//
// # Error Types
//
//   - UsageError: the command line is missing the alignment word
//   - ReadError: the input stream failed with something other than EOF
//   - WriteError: the output sink rejected a write
//   - ConfigError: the configuration did not validate
//
// Lines that are not valid UTF-8 are not errors. They are dropped by the
// line reader and only reported through the log, tagged with ErrInvalidUTF8.
//
// # Usage
//
//	err := errors.NewWriteError(cause).WithPairIndex(3)
//
//	if errors.Is(err, errors.ErrWriteFailed) { ... }
//
//	var usage *errors.UsageError
//	if errors.As(err, &usage) { ... }
//
//	os.Exit(errors.ExitCode(err))
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that abort the run.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Exit statuses returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Usage-related sentinel errors
var (
	// ErrMissingDelimiter indicates that no alignment word was given.
	ErrMissingDelimiter = New("missing alignment word")
	// ErrEmptyDelimiter indicates that the alignment word was the empty string.
	ErrEmptyDelimiter = New("alignment word is empty")
)

// I/O sentinel errors
var (
	// ErrReadFailed indicates that reading the input stream failed.
	ErrReadFailed = New("read failed")
	// ErrWriteFailed indicates that writing to the output stream failed.
	ErrWriteFailed = New("write failed")
	// ErrInvalidUTF8 tags input lines dropped because they are not valid text.
	ErrInvalidUTF8 = New("line is not valid UTF-8")
)

// ErrInvalidConfig indicates that the configuration did not validate. It is
// matched through the validation failures a ConfigError wraps, not by every
// ConfigError.
var ErrInvalidConfig = New("invalid configuration")

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// AlignError is the base interface for all alignby errors.
type AlignError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users without further context.
	IsUserFacing() bool

	// ExitCode returns the process exit status for this error.
	ExitCode() int
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
	exitCode   int
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// ExitCode returns the exit status for the error.
func (e *baseError) ExitCode() int {
	return e.exitCode
}

// -----------------------------------------------------------------------------
// UsageError
// -----------------------------------------------------------------------------

// UsageError reports a malformed command line. Its message is printed to the
// error stream followed by the usage line.
//
// Example:
//
//	err := errors.NewUsageError(errors.ErrMissingDelimiter, "alignby [-t] <word>")
//	fmt.Println(err) // "Please provide an alignment word!"
type UsageError struct {
	baseError
	Usage string
}

// NewUsageError creates a new UsageError for the given cause and usage line.
// A missing or empty word gets the fixed prompt; any other cause, such as a
// malformed flag, is shown as is.
func NewUsageError(cause error, usage string) *UsageError {
	message := "Please provide an alignment word!"
	if cause != nil && !Is(cause, ErrMissingDelimiter) && !Is(cause, ErrEmptyDelimiter) {
		message = cause.Error()
	}
	return &UsageError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityCritical,
			userFacing: true,
			exitCode:   ExitFailure,
		},
		Usage: usage,
	}
}

// Error returns the user-facing message. The cause is deliberately left out;
// it is available through Unwrap.
func (e *UsageError) Error() string {
	return e.message
}

// Is checks if this error matches the target.
func (e *UsageError) Is(target error) bool {
	if _, ok := target.(*UsageError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// ReadError
// -----------------------------------------------------------------------------

// ReadError reports a failure of the input stream.
//
// Example:
//
//	err := errors.NewReadError(io.ErrUnexpectedEOF).WithLine(12)
//	fmt.Println(err) // "read error [line=12]: error reading input: unexpected EOF"
type ReadError struct {
	baseError
	Line int
}

// NewReadError creates a new ReadError wrapping cause.
func NewReadError(cause error) *ReadError {
	return &ReadError{
		baseError: baseError{
			message:    "error reading input",
			cause:      cause,
			severity:   SeverityCritical,
			userFacing: true,
			exitCode:   ExitFailure,
		},
	}
}

// WithLine records the 1-based input line at which reading failed.
func (e *ReadError) WithLine(line int) *ReadError {
	e.Line = line
	return e
}

// Error returns the formatted error message.
func (e *ReadError) Error() string {
	prefix := "read error"
	if e.Line > 0 {
		prefix = fmt.Sprintf("read error [line=%d]", e.Line)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ReadError) Is(target error) bool {
	if _, ok := target.(*ReadError); ok {
		return true
	}
	if target == ErrReadFailed {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// WriteError
// -----------------------------------------------------------------------------

// WriteError reports that the output sink rejected a write. Output stops at
// the first failure; PairIndex is the 0-based index of the pair being written.
//
// Example:
//
//	err := errors.NewWriteError(syscall.EPIPE).WithPairIndex(4)
//	fmt.Println(err) // "write error [pair=4]: broken pipe"
type WriteError struct {
	baseError
	PairIndex int
}

// NewWriteError creates a new WriteError wrapping cause.
func NewWriteError(cause error) *WriteError {
	return &WriteError{
		baseError: baseError{
			message:    "error writing output",
			cause:      cause,
			severity:   SeverityCritical,
			userFacing: true,
			exitCode:   ExitFailure,
		},
		PairIndex: -1,
	}
}

// WithPairIndex records which pair was being written when the sink failed.
func (e *WriteError) WithPairIndex(idx int) *WriteError {
	e.PairIndex = idx
	return e
}

// Error returns the formatted error message.
func (e *WriteError) Error() string {
	prefix := "write error"
	if e.PairIndex >= 0 {
		prefix = fmt.Sprintf("write error [pair=%d]", e.PairIndex)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *WriteError) Is(target error) bool {
	if _, ok := target.(*WriteError); ok {
		return true
	}
	if target == ErrWriteFailed {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// ConfigError
// -----------------------------------------------------------------------------

// ConfigError reports configuration that could not be loaded or validated.
//
// Example:
//
//	err := errors.NewConfigError("invalid config", validationErrs).WithFile("/etc/alignby.yaml")
type ConfigError struct {
	baseError
	File string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
			exitCode:   ExitFailure,
		},
	}
}

// WithFile records the config file that was in use.
func (e *ConfigError) WithFile(path string) *ConfigError {
	e.File = path
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	var parts []string
	if e.File != "" {
		parts = append(parts, fmt.Sprintf("file=%s", e.File))
	}

	prefix := "config error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("config error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// ExitCode returns the process exit status for err: ExitOK for nil, the
// error's own code for AlignError values and ExitFailure for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var alignErr AlignError
	if As(err, &alignErr) {
		return alignErr.ExitCode()
	}

	return ExitFailure
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var alignErr AlignError
	if As(err, &alignErr) {
		return alignErr.IsUserFacing()
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement AlignError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var alignErr AlignError
	if As(err, &alignErr) {
		return alignErr.Severity()
	}

	return SeverityError
}

// Wrap wraps an error with additional context message.
// Unlike building a new typed error, this preserves the AlignError in the chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
