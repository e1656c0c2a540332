package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/meltforce/fittrack/internal/config"
	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/tracker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (default: built-in demo packages)")
	envPath := flag.String("env", ".env", "optional dotenv file with FITTRACK_ overrides")
	workoutType := flag.String("type", "", "workout code of a single package: SWM, RUN or WLK")
	data := flag.String("data", "", "comma-separated readings of the -type package")
	locale := flag.String("locale", "", "summary locale: ru or en (overrides config)")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading %s: %v\n", *envPath, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *locale != "" {
		cfg.Output.Locale = *locale
	}

	log := newLogger(cfg.Log)
	log.Debug("fittrack starting", "version", Version, "config", *configPath)

	if *workoutType != "" {
		values, err := parseData(*data)
		if err != nil {
			log.Error("invalid -data", "error", err)
			os.Exit(1)
		}
		cfg.Packages = []models.Package{{Type: *workoutType, Data: values}}
	} else if *data != "" {
		fmt.Fprintf(os.Stderr, "Usage: fittrack -type RUN -data 15000,1,75\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	stats, err := tracker.New(os.Stdout, log, cfg.Output.Locale).Run(cfg.Packages)
	if err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}

	log.Debug("run stats",
		"received", stats.Received,
		"processed", stats.Processed,
		"errored", stats.Errored,
	)
	if stats.Errored > 0 {
		log.Error("some packages were skipped", "errored", stats.Errored)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// parseData splits "15000,1,75" into readings.
func parseData(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no readings given")
	}
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("reading %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}
