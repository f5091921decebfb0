package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"photokeep/internal/config"
	"photokeep/internal/fixdate"
	"photokeep/internal/junk"
	"photokeep/internal/organize"
	"photokeep/internal/rename"
	"photokeep/internal/report"
	"photokeep/internal/runlock"
)

// flowFunc runs one archive flow to completion and reports its summary.
type flowFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger, dryRun bool) (*report.Summary, error)

type flow struct {
	run  flowFunc
	root func(cfg *config.Config) string
}

var flows = map[string]flow{
	"organize": {
		run: func(ctx context.Context, cfg *config.Config, logger *slog.Logger, dryRun bool) (*report.Summary, error) {
			return organize.New(cfg, logger).Run(ctx, dryRun)
		},
		root: func(cfg *config.Config) string { return cfg.Paths.SourceDir },
	},
	"rename": {
		run: func(ctx context.Context, cfg *config.Config, logger *slog.Logger, dryRun bool) (*report.Summary, error) {
			return rename.New(cfg, logger).Run(ctx, dryRun)
		},
		root: func(cfg *config.Config) string { return cfg.Paths.TargetDir },
	},
	"fix-dates": {
		run:  runFixDates,
		root: func(cfg *config.Config) string { return cfg.Paths.FixDir },
	},
	"clean-junk": {
		run: func(ctx context.Context, cfg *config.Config, logger *slog.Logger, dryRun bool) (*report.Summary, error) {
			return junk.New(cfg, logger).Run(ctx, dryRun)
		},
		root: func(cfg *config.Config) string { return cfg.Paths.RootDir },
	},
}

func flowNames() []string {
	names := make([]string, 0, len(flows))
	for name := range flows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// runFixDates spawns the exiftool sidecar only for live runs; a dry run never
// writes metadata.
func runFixDates(ctx context.Context, cfg *config.Config, logger *slog.Logger, dryRun bool) (*report.Summary, error) {
	var writer fixdate.MetadataWriter
	if !dryRun {
		w, err := fixdate.NewExiftoolWriter()
		if err != nil {
			return report.NewSummary(), err
		}
		defer w.Close()
		writer = w
	}
	return fixdate.New(cfg, logger, writer).Run(ctx, dryRun)
}

// runFlow drives one named flow: config, logger, single-instance lock for
// live runs, then the scan itself. The summary is rendered even when the run
// errors out so a failed run still shows zero progress explicitly.
func runFlow(cmd *cobra.Command, cctx *commandContext, name string) error {
	fl, ok := flows[name]
	if !ok {
		return fmt.Errorf("unknown flow %q (expected one of %s)", name, strings.Join(flowNames(), ", "))
	}

	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cctx.ensureLogger()
	if err != nil {
		return err
	}

	dryRun := cctx.dryRun(cfg)
	if !dryRun {
		lock := runlock.ForRoot(fl.root(cfg))
		if err := lock.Acquire(); err != nil {
			return err
		}
		defer lock.Release()
	}

	summary, runErr := fl.run(cmd.Context(), cfg, logger, dryRun)
	renderSummary(cmd.OutOrStdout(), name, dryRun, summary)
	return runErr
}

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "organize",
		Short: "File incoming media into the date-bucketed library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(cmd, ctx, "organize")
		},
	}
}

func newRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename",
		Short: "Prefix library files with their capture timestamp",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(cmd, ctx, "rename")
		},
	}
}

func newFixDatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fix-dates",
		Short: "Backfill capture dates on scanned photos from folder names",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(cmd, ctx, "fix-dates")
		},
	}
}

func newCleanJunkCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clean-junk",
		Short: "Quarantine thumbnail-sized files out of the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(cmd, ctx, "clean-junk")
		},
	}
}
