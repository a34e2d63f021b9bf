// Package logging provides structured logging for alignby runs.
//
// This package wraps Go's log/slog to emit JSON entries. alignby is a
// filter, so stdout carries only aligned text; log entries go to stderr or
// to a log file, and logging is off unless the configuration enables it.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(logging.Options{
//	    Level: "DEBUG",
//	    File:  "/tmp/alignby.log",
//	    Rotation: logging.DefaultRotationConfig(),
//	})
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("aligned input", "lines", 42, "max_width", 13)
//
// Child loggers carry persistent attributes:
//
//	runLogger := logger.With("mode", "tail", "width", "bytes")
//	runLogger.Warn("dropped line", "line", 7)
//
// # Log Rotation
//
// When a file is configured, writes go through a [RotatingWriter], which
// renames the file to file.1 once it would exceed RotationConfig.MaxSizeMB and
// keeps RotationConfig.MaxBackups numbered backups, gzipped when
// RotationConfig.Compress is set.
//
// # Disabled Logging
//
// [NopLogger] discards everything and is what the CLI uses by default and
// what tests pass to code that needs a *Logger.
package logging
