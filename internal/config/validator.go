package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/alignby/internal/align"
	"github.com/Iron-Ham/alignby/internal/errors"
	"github.com/Iron-Ham/alignby/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "align.width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrInvalidConfig on any validation failure.
func (e ValidationErrors) Unwrap() error {
	return errors.ErrInvalidConfig
}

// ValidLogLevels returns the log levels the logger accepts, in lower case
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	for i, level := range levels {
		levels[i] = strings.ToLower(level)
	}
	return levels
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, c.validateAlign()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

func (c *Config) validateAlign() []ValidationError {
	var errs []ValidationError

	if _, err := align.ParseMode(c.Align.Mode); err != nil {
		errs = append(errs, ValidationError{
			Field:   "align.mode",
			Value:   c.Align.Mode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(align.ValidModes(), ", ")),
		})
	}

	if _, err := align.ParseWidth(c.Align.Width); err != nil {
		errs = append(errs, ValidationError{
			Field:   "align.width",
			Value:   c.Align.Width,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(align.ValidWidths(), ", ")),
		})
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// 0 disables rotation
	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %d", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errs
}
