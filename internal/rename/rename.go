// Package rename prefixes organized media files with their capture timestamp
// so that lexical order matches chronological order inside each folder.
package rename

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"photokeep/internal/capture"
	"photokeep/internal/config"
	"photokeep/internal/fileutil"
	"photokeep/internal/logging"
	"photokeep/internal/media"
	"photokeep/internal/report"
	"photokeep/internal/scan"
)

// stampLayout is the filename prefix format derived from the capture date.
const stampLayout = "20060102_150405"

// Renamer walks the library and rewrites file names in place.
type Renamer struct {
	cfg        *config.Config
	logger     *slog.Logger
	resolver   *capture.Resolver
	classifier media.Classifier
}

// New constructs the rename flow using the real EXIF-backed date resolver.
func New(cfg *config.Config, logger *slog.Logger) *Renamer {
	return NewWithResolver(cfg, logger, capture.NewResolver())
}

// NewWithResolver allows injecting the date resolver (used in tests).
func NewWithResolver(cfg *config.Config, logger *slog.Logger, resolver *capture.Resolver) *Renamer {
	return &Renamer{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "rename"),
		resolver:   resolver,
		classifier: media.NewClassifier(cfg.Extensions.Image, cfg.Extensions.Video),
	}
}

// Stamped reports whether name already carries a timestamp prefix. Files that
// do are left alone so repeated runs never stack prefixes.
func Stamped(name string) bool {
	if len(name) < 9 || name[8] != '_' {
		return false
	}
	for _, r := range name[:8] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewName derives the stamped file name for the given capture date. The
// provenance tag survives the rename so a later pass can still tell guessed
// dates from authoritative ones.
func NewName(original string, date capture.Resolved) string {
	return date.Time.Format(stampLayout) + "_" + date.Provenance.Tag() + original
}

// Run walks the library root and renames every recognized media file that is
// not already stamped. Per-file failures are recorded and never abort the
// scan.
func (r *Renamer) Run(ctx context.Context, dryRun bool) (*report.Summary, error) {
	summary := report.NewSummary()
	logger := r.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	root := r.cfg.Paths.TargetDir
	if err := scan.CheckRoot("rename", root); err != nil {
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
		r.processFile(logger, summary, path, dryRun)
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

func (r *Renamer) processFile(logger *slog.Logger, summary *report.Summary, path string, dryRun bool) {
	name := filepath.Base(path)

	if !r.classifier.IsMedia(path) {
		logger.Warn("unsupported format",
			logging.String("file", name),
			logging.String("folder", filepath.Base(filepath.Dir(path))),
		)
		summary.RecordSkip()
		return
	}

	if Stamped(name) {
		logger.Debug("already stamped", logging.String("file", name))
		summary.RecordSkip()
		return
	}

	date, err := r.resolver.Resolve(path, r.classifier.Image)
	if err != nil {
		logger.Warn("date unresolved",
			logging.String("file", path),
			logging.Error(report.Wrap(report.ErrUnresolvedDate, "rename", "resolve date", "", err)),
		)
		summary.RecordSkip()
		return
	}

	newName := NewName(name, date)
	if newName == name {
		summary.RecordSkip()
		return
	}

	target, err := fileutil.UniquePath(filepath.Join(filepath.Dir(path), newName))
	if err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "rename", "resolve collision", newName, err))
		return
	}

	if dryRun {
		logger.Info("would rename",
			logging.String("from", name),
			logging.String("to", filepath.Base(target)),
			logging.String("date_source", date.Provenance.String()),
		)
		summary.RecordSuccess()
		return
	}

	if err := os.Rename(path, target); err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "rename", "rename file", target, err))
		return
	}
	logger.Info("renamed",
		logging.String("from", name),
		logging.String("to", filepath.Base(target)),
		logging.String("date_source", date.Provenance.String()),
	)
	summary.RecordSuccess()
}
