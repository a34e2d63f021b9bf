package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/alignby/internal/align"
	"github.com/Iron-Ham/alignby/internal/config"
	"github.com/Iron-Ham/alignby/internal/errors"
	"github.com/Iron-Ham/alignby/internal/linereader"
	"github.com/Iron-Ham/alignby/internal/logging"
	"github.com/Iron-Ham/alignby/internal/util"
)

// previewLen bounds how much of a skipped line ends up in the log.
const previewLen = 60

func runAlign(cmd *cobra.Command, args []string, opts *rootOptions) error {
	if opts.printConfig {
		cfg, err := initConfig()
		if err != nil {
			return err
		}
		return printConfig(cmd, cfg)
	}

	// Checked before config is read.
	if len(args) == 0 {
		return errors.NewUsageError(errors.ErrMissingDelimiter, usageLine(cmd))
	}
	delimiter := args[0]
	if delimiter == "" {
		return errors.NewUsageError(errors.ErrEmptyDelimiter, usageLine(cmd))
	}

	cfg, err := initConfig()
	if err != nil {
		return err
	}

	mode, err := align.ParseMode(cfg.Align.Mode)
	if err != nil {
		return errors.NewConfigError("invalid configuration", err)
	}
	if opts.tail {
		mode = align.ModeTail
	}
	unit, err := align.ParseWidth(cfg.Align.Width)
	if err != nil {
		return errors.NewConfigError("invalid configuration", err)
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger = logger.With("mode", mode.String(), "width", unit.String())
	logger.Debug("starting alignment", "delimiter_len", len(delimiter), "ignored_args", len(args)-1)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(f.Fd()) {
		logger.Debug("reading from a terminal; finish input with EOF")
	}

	var onSkip linereader.SkipFunc
	if cfg.Input.WarnOnInvalid {
		onSkip = func(line int, raw string) {
			logger.Warn("dropped input line",
				"line", line,
				"reason", errors.ErrInvalidUTF8.Error(),
				"preview", util.QuotePreview(raw, previewLen))
		}
	}

	started := time.Now()
	reader := linereader.New(cmd.InOrStdin(), onSkip)
	result := align.Measure(reader.Lines(cmd.Context()), align.Options{
		Delimiter: delimiter,
		Mode:      mode,
		Width:     unit.Func(),
	})
	if err := reader.Err(); err != nil {
		logFailure(logger, "input failed", err, "lines", reader.LineCount())
		return err
	}

	if err := align.NewWriter(cmd.OutOrStdout(), delimiter, unit.Func()).Write(result); err != nil {
		logFailure(logger, "output failed", err)
		return err
	}

	logger.Info("aligned input",
		"lines", len(result.Pairs),
		"skipped", reader.Skipped(),
		"max_width", result.MaxWidth,
		"duration_ms", time.Since(started).Milliseconds())
	return nil
}

// logFailure logs err at the level matching its severity.
func logFailure(logger *logging.Logger, msg string, err error, args ...any) {
	severity := errors.GetSeverity(err)
	args = append([]any{"error", err.Error(), "severity", severity.String()}, args...)

	switch severity {
	case errors.SeverityCritical, errors.SeverityError:
		logger.Error(msg, args...)
	case errors.SeverityWarning:
		logger.Warn(msg, args...)
	case errors.SeverityInfo:
		logger.Info(msg, args...)
	default:
		logger.Debug(msg, args...)
	}
}

// newLogger returns a NopLogger unless logging is enabled in the config or
// one of the --log-* flags was given.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	enabled := cfg.Logging.Enabled ||
		cmd.Flags().Changed("log-level") ||
		cmd.Flags().Changed("log-file")
	if !enabled {
		return logging.NopLogger(), nil
	}

	logger, err := logging.NewLogger(logging.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
		Rotation: logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			Compress:   cfg.Logging.Compress,
		},
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, errors.NewConfigError("failed to set up logging", err).WithFile(cfg.Logging.File)
	}
	return logger, nil
}

func printConfig(cmd *cobra.Command, cfg *config.Config) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.NewWriteError(errors.Wrap(err, "encoding config"))
	}
	if err := enc.Close(); err != nil {
		return errors.NewWriteError(err)
	}
	return nil
}

func usageLine(cmd *cobra.Command) string {
	return fmt.Sprintf("Usage: %s [-t] <word>", cmd.Root().Name())
}
