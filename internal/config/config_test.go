package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
log:
  level: "debug"
  format: "json"
output:
  locale: "en"
packages:
  - type: RUN
    data: [15000, 1, 75]
  - type: SWM
    data: [720, 1.5, 80, 25, 40]
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Output.Locale != "en" {
		t.Errorf("output.locale = %q, want %q", cfg.Output.Locale, "en")
	}
	if len(cfg.Packages) != 2 {
		t.Fatalf("packages = %d, want 2", len(cfg.Packages))
	}
	if cfg.Packages[0].Type != "RUN" || len(cfg.Packages[0].Data) != 3 {
		t.Errorf("packages[0] = %+v", cfg.Packages[0])
	}
	if got := cfg.Packages[1].Data[1]; got != 1.5 {
		t.Errorf("packages[1].data[1] = %v, want 1.5", got)
	}
}

// TestLoadKeepsDefaults verifies that omitted sections fall back to the
// defaults, including the demo package list.
func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "log:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Output.Locale != "ru" {
		t.Errorf("output.locale = %q, want %q", cfg.Output.Locale, "ru")
	}
	if len(cfg.Packages) != 3 {
		t.Errorf("packages = %d, want the 3 demo packages", len(cfg.Packages))
	}
	if cfg.Log.SlogLevel() != slog.LevelWarn {
		t.Errorf("SlogLevel() = %v, want %v", cfg.Log.SlogLevel(), slog.LevelWarn)
	}
}

// TestEnvOverride verifies that FITTRACK_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("FITTRACK_LOG_LEVEL", "error")
	t.Setenv("FITTRACK_LOCALE", "ru")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "error")
	}
	if cfg.Output.Locale != "ru" {
		t.Errorf("output.locale = %q, want %q", cfg.Output.Locale, "ru")
	}
	// Unchanged fields should keep YAML values
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
}

// TestLoadDefaultEnvOverride verifies that overrides also apply without a file.
func TestLoadDefaultEnvOverride(t *testing.T) {
	t.Setenv("FITTRACK_LOG_FORMAT", "json")

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
	if len(cfg.Packages) != 3 {
		t.Errorf("packages = %d, want 3", len(cfg.Packages))
	}
}

// TestValidationErrors verifies that bad option values are rejected.
func TestValidationErrors(t *testing.T) {
	cases := map[string]string{
		"level":    "log:\n  level: verbose\n",
		"format":   "log:\n  format: xml\n",
		"locale":   "output:\n  locale: fr\n",
		"packages": "packages: []\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, content)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// TestInvalidEnvLocale verifies that env overrides are validated too.
func TestInvalidEnvLocale(t *testing.T) {
	t.Setenv("FITTRACK_LOCALE", "de")
	if _, err := LoadDefault(); err == nil {
		t.Fatal("expected validation error for unsupported locale")
	}
}

// TestLoadBadData verifies that non-numeric package data fails to parse.
func TestLoadBadData(t *testing.T) {
	_, err := Load(writeTemp(t, "packages:\n  - type: RUN\n    data: [a, 1, 75]\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
