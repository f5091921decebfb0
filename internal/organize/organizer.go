package organize

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"photokeep/internal/capture"
	"photokeep/internal/config"
	"photokeep/internal/fileutil"
	"photokeep/internal/logging"
	"photokeep/internal/media"
	"photokeep/internal/report"
	"photokeep/internal/scan"
)

// Organizer moves media files from the source root into the library layout.
type Organizer struct {
	cfg        *config.Config
	logger     *slog.Logger
	resolver   *capture.Resolver
	classifier media.Classifier
}

// New constructs the organize flow using the real EXIF-backed date resolver.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	return NewWithResolver(cfg, logger, capture.NewResolver())
}

// NewWithResolver allows injecting the date resolver (used in tests).
func NewWithResolver(cfg *config.Config, logger *slog.Logger, resolver *capture.Resolver) *Organizer {
	return &Organizer{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "organize"),
		resolver:   resolver,
		classifier: media.NewClassifier(cfg.Extensions.Image, cfg.Extensions.Video),
	}
}

// Run scans the source root and relocates every recognized media file. In
// dry-run mode the plan is logged without touching the filesystem. Per-file
// failures are recorded and never abort the scan; only a missing source root
// fails the run outright.
func (o *Organizer) Run(ctx context.Context, dryRun bool) (*report.Summary, error) {
	summary := report.NewSummary()
	logger := o.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	source := o.cfg.Paths.SourceDir
	if err := scan.CheckRoot("organize", source); err != nil {
		return summary, err
	}

	logger.Info("scan started",
		logging.String("source", source),
		logging.String("target", o.cfg.Paths.TargetDir),
		logging.Bool("dry_run", dryRun),
	)

	err := scan.Walk(source, nil, func(path string, _ fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		o.processFile(logger, summary, path, dryRun)
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

func (o *Organizer) processFile(logger *slog.Logger, summary *report.Summary, path string, dryRun bool) {
	if !o.classifier.IsMedia(path) {
		// Always reported: an unrecognized extension usually means the
		// configured sets are incomplete.
		logger.Warn("unsupported format",
			logging.String("file", filepath.Base(path)),
			logging.String("folder", filepath.Base(filepath.Dir(path))),
		)
		summary.RecordSkip()
		return
	}

	date, err := o.resolver.Resolve(path, o.classifier.Image)
	if err != nil {
		logger.Warn("date unresolved",
			logging.String("file", path),
			logging.Error(report.Wrap(report.ErrUnresolvedDate, "organize", "resolve date", "", err)),
		)
		summary.RecordSkip()
		return
	}

	plan := planFor(o.cfg.Paths.TargetDir, path, date)

	exists, err := fileutil.Exists(plan.Target)
	if err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "organize", "probe target", plan.Target, err))
		return
	}
	if exists && fileutil.SamePath(path, plan.Target) {
		logger.Debug("already in place", logging.String("file", path))
		summary.RecordSkip()
		return
	}

	target, err := fileutil.UniquePath(plan.Target)
	if err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "organize", "resolve collision", plan.Target, err))
		return
	}

	if dryRun {
		logger.Info("would move",
			logging.String("from", path),
			logging.String("to", target),
			logging.String("date_source", plan.Date.Provenance.String()),
		)
		summary.RecordSuccess()
		return
	}

	if err := fileutil.MoveFile(path, target); err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "organize", "move file", target, err))
		return
	}
	logger.Info("moved",
		logging.String("from", path),
		logging.String("to", target),
		logging.String("date_source", plan.Date.Provenance.String()),
	)
	summary.RecordSuccess()
}
