// Package junk quarantines thumbnail-sized files out of the library. Sync
// tools and old cameras litter archives with tiny preview copies; anything at
// or below the configured size moves into a junk folder for manual review
// instead of being deleted outright.
package junk

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"photokeep/internal/config"
	"photokeep/internal/fileutil"
	"photokeep/internal/logging"
	"photokeep/internal/report"
	"photokeep/internal/scan"
)

// FolderName is the quarantine directory created under the scanned root.
const FolderName = "junk"

// Cleaner walks the library root and moves small files into quarantine.
type Cleaner struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// New constructs the junk-cleanup flow.
func New(cfg *config.Config, logger *slog.Logger) *Cleaner {
	return &Cleaner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "junk"),
		now:    time.Now,
	}
}

// thresholdBytes converts the configured megabyte cutoff to bytes.
func thresholdBytes(mb float64) int64 {
	return int64(mb * 1024 * 1024)
}

// Run scans the root and quarantines every file at or below the size
// threshold. The quarantine folder itself is excluded from the scan so a
// rerun never reshuffles already-quarantined files.
func (c *Cleaner) Run(ctx context.Context, dryRun bool) (*report.Summary, error) {
	summary := report.NewSummary()
	logger := c.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	root := c.cfg.Paths.RootDir
	if err := scan.CheckRoot("junk", root); err != nil {
		return summary, err
	}

	quarantine := filepath.Join(root, FolderName)
	cutoff := thresholdBytes(c.cfg.Settings.SizeThresholdMB)

	logger.Info("scan started",
		logging.String("root", root),
		logging.String("threshold", humanize.Bytes(uint64(cutoff))),
		logging.Bool("dry_run", dryRun),
	)

	err := scan.Walk(root, []string{quarantine}, func(path string, entry fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.processFile(logger, summary, quarantine, cutoff, path, entry, dryRun)
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

func (c *Cleaner) processFile(logger *slog.Logger, summary *report.Summary, quarantine string, cutoff int64, path string, entry fs.DirEntry, dryRun bool) {
	info, err := entry.Info()
	if err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "junk", "stat file", path, err))
		return
	}
	if info.Size() > cutoff {
		summary.RecordSkip()
		return
	}

	size := humanize.Bytes(uint64(info.Size()))
	target, err := fileutil.UniquePathTimestamp(filepath.Join(quarantine, filepath.Base(path)), c.now())
	if err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "junk", "resolve collision", path, err))
		return
	}

	if dryRun {
		logger.Info("would quarantine",
			logging.String("from", path),
			logging.String("to", target),
			logging.String("size", size),
		)
		summary.RecordSuccess()
		return
	}

	if err := fileutil.MoveFile(path, target); err != nil {
		summary.RecordError(path, report.Wrap(report.ErrFilesystem, "junk", "move file", target, err))
		return
	}
	logger.Info("quarantined",
		logging.String("from", path),
		logging.String("to", target),
		logging.String("size", size),
	)
	summary.RecordSuccess()
}
