package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"photokeep/internal/config"
	"photokeep/internal/runlock"
)

// taskRequest is the machine-facing run description, for driving photokeep
// from schedulers and scripts without flag plumbing.
type taskRequest struct {
	Task            string   `json:"task"`
	DryRun          *bool    `json:"dry_run,omitempty"`
	SizeThresholdMB *float64 `json:"size_threshold_mb,omitempty"`
	SourceDir       string   `json:"source_dir,omitempty"`
	TargetDir       string   `json:"target_dir,omitempty"`
}

type taskResult struct {
	Task    string   `json:"task"`
	RunID   string   `json:"run_id"`
	DryRun  bool     `json:"dry_run"`
	Success int      `json:"success"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

func newRunTaskCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run-task <request.json>",
		Short: "Run a flow described by a JSON request file and emit a JSON result",
		Long: `Run a flow described by a JSON request file and emit a JSON result.

The request names the flow and may override the dry-run default:

  {"task": "organize", "dry_run": false}

Pass "-" to read the request from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readTaskRequest(cmd, args[0])
			if err != nil {
				return err
			}

			fl, ok := flows[request.Task]
			if !ok {
				return fmt.Errorf("unknown task %q (expected one of %s)", request.Task, strings.Join(flowNames(), ", "))
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			// Request-scoped overrides never touch the shared config.
			runCfg := *cfg
			if request.SizeThresholdMB != nil {
				runCfg.Settings.SizeThresholdMB = *request.SizeThresholdMB
			}
			if request.SourceDir != "" {
				if runCfg.Paths.SourceDir, err = config.ExpandPath(request.SourceDir); err != nil {
					return fmt.Errorf("resolve source_dir: %w", err)
				}
			}
			if request.TargetDir != "" {
				expanded, err := config.ExpandPath(request.TargetDir)
				if err != nil {
					return fmt.Errorf("resolve target_dir: %w", err)
				}
				runCfg.Paths.TargetDir = expanded
				runCfg.Paths.RootDir = expanded
			}

			dryRun := ctx.dryRun(&runCfg)
			if request.DryRun != nil {
				dryRun = *request.DryRun
			}

			if !dryRun {
				lock := runlock.ForRoot(fl.root(&runCfg))
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer lock.Release()
			}

			summary, runErr := fl.run(cmd.Context(), &runCfg, logger, dryRun)
			result := taskResult{
				Task:    request.Task,
				RunID:   summary.RunID,
				DryRun:  dryRun,
				Success: summary.Success,
				Skipped: summary.Skipped,
				Errors:  summary.Errors,
			}
			if err := writeJSON(cmd, result); err != nil {
				return err
			}
			return runErr
		},
	}
}

func readTaskRequest(cmd *cobra.Command, arg string) (taskRequest, error) {
	var reader io.Reader
	if arg == "-" {
		reader = cmd.InOrStdin()
	} else {
		file, err := os.Open(arg)
		if err != nil {
			return taskRequest{}, fmt.Errorf("open task request: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var request taskRequest
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		return taskRequest{}, fmt.Errorf("parse task request: %w", err)
	}
	request.Task = strings.TrimSpace(request.Task)
	if request.Task == "" {
		return taskRequest{}, fmt.Errorf("task request missing %q field", "task")
	}
	return request, nil
}
