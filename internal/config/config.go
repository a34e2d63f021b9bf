package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/alignby/internal/errors"
	"github.com/Iron-Ham/alignby/internal/logging"
)

// Config represents the complete alignby configuration
type Config struct {
	Align   AlignConfig   `mapstructure:"align" yaml:"align"`
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// AlignConfig controls how lines are split and measured
type AlignConfig struct {
	// Mode selects the delimiter occurrence: "head" (first) or "tail" (last).
	// The -t flag always forces "tail".
	Mode string `mapstructure:"mode" yaml:"mode"`
	// Width is the unit used to measure left segments
	// Options: "bytes", "runes", "cells", "ansi" (default: "bytes")
	Width string `mapstructure:"width" yaml:"width"`
}

// InputConfig controls input handling
type InputConfig struct {
	// WarnOnInvalid logs a warning for every line dropped because it is not
	// valid UTF-8 (default: true). Only visible when logging is enabled.
	WarnOnInvalid bool `mapstructure:"warn_on_invalid" yaml:"warn_on_invalid"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Enabled turns on logging (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// File is the log file path. Empty logs to stderr.
	File string `mapstructure:"file" yaml:"file"`
	// MaxSizeMB rotates the log file at this size (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	rotation := logging.DefaultRotationConfig()
	return &Config{
		Align: AlignConfig{
			Mode:  "head",
			Width: "bytes",
		},
		Input: InputConfig{
			WarnOnInvalid: true,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			File:       "",
			MaxSizeMB:  rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			Compress:   rotation.Compress,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("align.mode", defaults.Align.Mode)
	viper.SetDefault("align.width", defaults.Align.Width)

	viper.SetDefault("input.warn_on_invalid", defaults.Input.WarnOnInvalid)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "alignby")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".alignby"
	}
	return filepath.Join(home, ".config", "alignby")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
