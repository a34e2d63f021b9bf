package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/alignby/internal/errors"
	"github.com/Iron-Ham/alignby/internal/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Align.Mode != "head" {
		t.Errorf("Align.Mode = %q, want %q", cfg.Align.Mode, "head")
	}
	if cfg.Align.Width != "bytes" {
		t.Errorf("Align.Width = %q, want %q", cfg.Align.Width, "bytes")
	}
	if !cfg.Input.WarnOnInvalid {
		t.Error("Input.WarnOnInvalid should be true by default")
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Logging.MaxSizeMB = %d, want 10", cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want 3", cfg.Logging.MaxBackups)
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() should validate, got %v", errs)
	}
}

func TestSetDefaultsAndLoad(t *testing.T) {
	testutil.ResetViper(t)

	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() with only defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FromFile(t *testing.T) {
	testutil.ResetViper(t)

	path := testutil.WriteFile(t, "config.yaml", `
align:
  mode: tail
  width: cells
logging:
  enabled: true
  level: debug
`)

	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Align.Mode != "tail" || cfg.Align.Width != "cells" {
		t.Errorf("Align = %+v, want tail/cells", cfg.Align)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v, want enabled debug", cfg.Logging)
	}
	// Untouched keys keep defaults.
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("Logging.MaxBackups = %d, want 3", cfg.Logging.MaxBackups)
	}
}

func TestLoad_Invalid(t *testing.T) {
	testutil.ResetViper(t)

	SetDefaults()
	viper.Set("align.width", "graphemes")
	viper.Set("logging.level", "chatty")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail for invalid values")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("got %d validation errors, want 2: %v", len(verrs), verrs)
	}
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Error("validation failure should match ErrInvalidConfig")
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		if got, want := ConfigDir(), filepath.Join(xdg, "alignby"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
		if got, want := ConfigFile(), filepath.Join(xdg, "alignby", "config.yaml"); got != want {
			t.Errorf("ConfigFile() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)

		if got, want := ConfigDir(), filepath.Join(home, ".config", "alignby"); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}
