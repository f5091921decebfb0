// Package fixdate backfills capture dates on scanned legacy photos. The
// scans carry no metadata of their own; the date is inferred from the folder
// layout and written into the image so every later flow can trust it.
package fixdate

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photokeep/internal/config"
	"photokeep/internal/logging"
	"photokeep/internal/pathdate"
	"photokeep/internal/report"
	"photokeep/internal/scan"
)

// fixDay and fixClock are the fixed day-of-month and time-of-day stamped on
// every backfilled date. The folder layout only dates to month precision;
// the rest is an arbitrary but stable marker that makes backfilled dates
// recognizable.
const (
	fixDay  = 26
	fixHour = 12
)

// Fixer walks the scan archive and stamps inferred dates into image metadata.
type Fixer struct {
	cfg    *config.Config
	logger *slog.Logger
	writer MetadataWriter
}

// New constructs the fix flow around the given metadata writer.
func New(cfg *config.Config, logger *slog.Logger, writer MetadataWriter) *Fixer {
	return &Fixer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "fixdate"),
		writer: writer,
	}
}

// InferredDate turns a parsed (year, month) pair into the timestamp written
// to the file.
func InferredDate(year, month int) time.Time {
	return time.Date(year, time.Month(month), fixDay, fixHour, 0, 0, 0, time.Local)
}

// Run walks the fix root and backfills every JPEG whose folder layout yields
// a plausible date. Files without a parseable or plausible date are skipped
// quietly: the archive mixes dated and undated folders and only the former
// are actionable.
func (f *Fixer) Run(ctx context.Context, dryRun bool) (*report.Summary, error) {
	summary := report.NewSummary()
	logger := f.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	root := f.cfg.Paths.FixDir
	if err := scan.CheckRoot("fixdate", root); err != nil {
		return summary, err
	}

	logger.Info("scan started",
		logging.String("root", root),
		logging.Bool("dry_run", dryRun),
	)

	err := scan.Walk(root, nil, func(path string, _ fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		f.processFile(logger, summary, path, dryRun)
		return nil
	})
	if err != nil {
		return summary, err
	}

	logger.Info("scan finished",
		logging.Int("success", summary.Success),
		logging.Int("skipped", summary.Skipped),
		logging.Int("errors", summary.Failed()),
	)
	return summary, nil
}

// fixable reports whether the file is a JPEG. Metadata writes are restricted
// to the one container the archive actually holds.
func fixable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

func (f *Fixer) processFile(logger *slog.Logger, summary *report.Summary, path string, dryRun bool) {
	if !fixable(path) {
		summary.RecordSkip()
		return
	}

	year, month, ok := pathdate.Parse(path)
	if !ok {
		logger.Debug("no date in folder layout", logging.String("file", path))
		summary.RecordSkip()
		return
	}
	if !pathdate.Valid(year, month) {
		logger.Debug("implausible folder date",
			logging.String("file", path),
			logging.Int("year", year),
			logging.Int("month", month),
		)
		summary.RecordSkip()
		return
	}

	at := InferredDate(year, month)

	if dryRun {
		logger.Info("would stamp",
			logging.String("file", path),
			logging.String("date", at.Format(time.DateOnly)),
		)
		summary.RecordSuccess()
		return
	}

	if err := f.writer.WriteCaptureDate(path, at); err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "fixdate", "write metadata", path, err))
		return
	}
	if err := os.Chtimes(path, at, at); err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "fixdate", "set file times", path, err))
		return
	}

	logger.Info("stamped",
		logging.String("file", path),
		logging.String("date", at.Format(time.DateOnly)),
	)
	summary.RecordSuccess()
}
