package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/training"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      LogConfig        `yaml:"log"`
	Output   OutputConfig     `yaml:"output"`
	Packages []models.Package `yaml:"packages"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type OutputConfig struct {
	Locale string `yaml:"locale"`
}

// Default returns the configuration used when no config file is given:
// info-level text logs, Russian summaries and the demo packages.
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Output:   OutputConfig{Locale: training.LocaleRU},
		Packages: models.DemoPackages(),
	}
}

// SlogLevel maps the configured level name to a slog level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides:
//
//	FITTRACK_LOG_LEVEL, FITTRACK_LOG_FORMAT, FITTRACK_LOCALE
//
// A file without a packages list keeps the demo packages.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// LoadDefault returns Default with environment overrides applied.
func LoadDefault() (*Config, error) {
	cfg := Default()
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITTRACK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FITTRACK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FITTRACK_LOCALE"); v != "" {
		cfg.Output.Locale = v
	}
}

// Validate checks option values. Package contents are not validated here;
// each package is checked when it is processed.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	if !training.IsSupportedLocale(c.Output.Locale) {
		return fmt.Errorf("output.locale %q is not one of %s, %s", c.Output.Locale, training.LocaleRU, training.LocaleEN)
	}
	if len(c.Packages) == 0 {
		return fmt.Errorf("packages must not be empty")
	}
	return nil
}
