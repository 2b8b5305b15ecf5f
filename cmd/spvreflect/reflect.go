// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/shade"
)

var reflectCmd = &cobra.Command{
	Use:   "reflect [flags] <file.spv>...",
	Short: "Print the pipeline layout and interface of SPIR-V files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReflect,
}

func init() {
	addReflectFlags(reflectCmd)
	reflectCmd.Flags().Bool("compute", false, "reflect as compute shaders (no stage interface)")
	reflectCmd.Flags().String("entry", "", "entry point name (default: first entry point)")
}

// addReflectFlags registers the flags shared by reflect and manifest.
func addReflectFlags(cmd *cobra.Command) {
	cmd.Flags().String("stage-masks", "fixed", "stage visibility of bindings (fixed|derive)")
	cmd.Flags().Bool("derive-readonly", false, "derive read-only from NonWritable decorations")
	cmd.Flags().String("format", "text", "output format (text|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
}

// shaderJob is one file to reflect.
type shaderJob struct {
	Path    string
	Compute bool
	Entry   string
}

// reflectConfig holds the flag values shared by every job.
type reflectConfig struct {
	StagesFromEntryPoint bool
	DeriveReadOnly       bool
	Format               string
	Jobs                 int
	Output               string
}

func reflectConfigFromFlags(cmd *cobra.Command) (reflectConfig, error) {
	var cfg reflectConfig

	masks, err := cmd.Flags().GetString("stage-masks")
	if err != nil {
		return cfg, fmt.Errorf("failed to get stage-masks flag: %w", err)
	}
	switch masks {
	case "fixed":
	case "derive":
		cfg.StagesFromEntryPoint = true
	default:
		return cfg, fmt.Errorf("unknown stage-masks mode %q (want fixed or derive)", masks)
	}

	if cfg.DeriveReadOnly, err = cmd.Flags().GetBool("derive-readonly"); err != nil {
		return cfg, fmt.Errorf("failed to get derive-readonly flag: %w", err)
	}
	if cfg.Format, err = cmd.Flags().GetString("format"); err != nil {
		return cfg, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch cfg.Format {
	case "text", "json", "msgpack":
	default:
		return cfg, fmt.Errorf("unknown format %q (want text, json or msgpack)", cfg.Format)
	}
	if cfg.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return cfg, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if cfg.Output, err = cmd.Flags().GetString("output"); err != nil {
		return cfg, fmt.Errorf("failed to get output flag: %w", err)
	}
	return cfg, nil
}

func runReflect(cmd *cobra.Command, args []string) error {
	cfg, err := reflectConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	compute, err := cmd.Flags().GetBool("compute")
	if err != nil {
		return fmt.Errorf("failed to get compute flag: %w", err)
	}
	entry, err := cmd.Flags().GetString("entry")
	if err != nil {
		return fmt.Errorf("failed to get entry flag: %w", err)
	}

	jobs := make([]shaderJob, len(args))
	for i, path := range args {
		jobs[i] = shaderJob{Path: path, Compute: compute, Entry: entry}
	}
	return runJobs(cmd.Context(), cmd.OutOrStdout(), jobs, cfg)
}

// errShadersFailed reports that at least one shader could not be reflected
// after every report was written.
var errShadersFailed = errors.New("one or more shaders failed to reflect")

// runJobs reflects jobs, writes their reports in job order and fails if any
// job failed.
func runJobs(ctx context.Context, stdout io.Writer, jobs []shaderJob, cfg reflectConfig) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports, err := reflectAll(ctx, jobs, cfg)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.Output != "" {
		f, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return fmt.Errorf("failed to create output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		w = f
	}
	if werr := writeReports(w, cfg.Format, reports); werr != nil {
		return fmt.Errorf("failed to write reports: %w", werr)
	}

	failed := 0
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		slog.Warn("reflection finished with errors", "files", len(reports), "failed", failed)
		return errShadersFailed
	}
	slog.Info("reflection finished", "files", len(reports))
	return nil
}

// reflectAll reflects every job concurrently. A file that fails to load or
// reflect gets a report carrying its error; only cancellation fails the call.
func reflectAll(ctx context.Context, jobs []shaderJob, cfg reflectConfig) ([]Report, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	workers := cfg.Jobs
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own index.
	reports := make([]Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(jobs)))

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			entry, err := reflectFile(job, cfg)
			if err != nil {
				slog.Debug("reflect failed", "path", job.Path, "err", err)
			}
			reports[i] = newReport(job.Path, entry, err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func reflectFile(job shaderJob, cfg reflectConfig) (*shade.Entry, error) {
	data, err := os.ReadFile(job.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader: %w", err)
	}

	opts := shade.DefaultOptions()
	opts.EntryPoint = job.Entry
	opts.StagesFromEntryPoint = cfg.StagesFromEntryPoint
	opts.DeriveReadOnly = cfg.DeriveReadOnly

	if job.Compute {
		return shade.ParseComputeBytes(data, opts)
	}
	return shade.ParseBytes(data, opts)
}
