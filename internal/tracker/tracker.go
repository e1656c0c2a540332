package tracker

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meltforce/fittrack/internal/models"
	"github.com/meltforce/fittrack/internal/training"
)

// Stats tracks processing progress.
type Stats struct {
	Received  int
	Processed int
	Errored   int

	// Failures maps a package index to the reason it was skipped.
	Failures map[int]error
}

// Tracker turns sensor packages into workout summaries, one line each.
type Tracker struct {
	out    io.Writer
	log    *slog.Logger
	locale string
	stats  Stats
}

// New creates a Tracker writing summaries in locale to out.
func New(out io.Writer, log *slog.Logger, locale string) *Tracker {
	return &Tracker{out: out, log: log, locale: locale}
}

// Run processes packages in order. A package that cannot be read or computed
// is logged, counted and skipped; the rest are still written. The returned
// error is set only when writing to the output fails.
func (tr *Tracker) Run(packages []models.Package) (*Stats, error) {
	for i, pkg := range packages {
		tr.stats.Received++
		id := uuid.New()

		line, err := tr.summarize(pkg)
		if err != nil {
			tr.log.Warn("skipping package", "package_id", id, "index", i, "type", pkg.Type, "error", err)
			tr.stats.Errored++
			if tr.stats.Failures == nil {
				tr.stats.Failures = map[int]error{}
			}
			tr.stats.Failures[i] = err
			continue
		}

		if _, err := fmt.Fprintln(tr.out, line); err != nil {
			return &tr.stats, fmt.Errorf("writing summary %d: %w", i, err)
		}
		tr.stats.Processed++
		tr.log.Debug("package processed", "package_id", id, "index", i, "type", pkg.Type)
	}
	return &tr.stats, nil
}

func (tr *Tracker) summarize(pkg models.Package) (string, error) {
	w, err := training.ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return "", fmt.Errorf("reading package: %w", err)
	}
	info, err := training.ShowTrainingInfo(w)
	if err != nil {
		return "", err
	}
	return info.Localized(tr.locale), nil
}
