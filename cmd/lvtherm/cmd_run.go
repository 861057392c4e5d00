// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvtherm/config"
	"github.com/katalvlaran/lvtherm/metrics"
	"github.com/katalvlaran/lvtherm/sim"
	"golang.org/x/sync/errgroup"
)

func cmdRun(ctx context.Context, env *environment, args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	configPath := fs.String("config", "", "YAML config file (default $LVTHERM_CONFIG)")
	outDir := fs.String("out", "", "directory for <name>.out.json results (default stdout)")
	workers := fs.Int("workers", 0, "concurrent runs (overrides config)")
	timeout := fs.Duration("timeout", 0, "per-model timeout (overrides config)")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(env.stderr, "lvtherm run: at least one model file is required")
		return exitError
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(env.stderr, "lvtherm run: %v\n", err)
		return exitError
	}
	if *workers > 0 {
		cfg.Run.Workers = *workers
	}
	if *timeout > 0 {
		cfg.Run.Timeout = config.Duration(*timeout)
	}
	cfg.Run.Pretty = cfg.Run.Pretty || *pretty
	logger := env.newLogger(cfg)
	registry := metrics.NewRegistry()

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			logger.Error("failed to create output directory", "dir", *outDir, "error", err)
			return exitError
		}
	}

	results := make([]sim.ModelOutput, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Run.Workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			in, err := env.readModel(name)
			if err != nil {
				return err
			}
			runCtx := gctx
			if d := cfg.Run.Timeout.Duration(); d > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(gctx, d)
				defer cancel()
			}
			out, err := sim.RunContext(runCtx, in,
				sim.WithLogger(logger.With(slog.String("model", name))),
				sim.WithRecorder(registry))
			if err != nil {
				return fmt.Errorf("run %s: %w", name, err)
			}
			logger.Info("model simulated",
				"model", name,
				"steps", out.NumTimeSteps,
				"errors", len(out.Errors),
				"compute_time_s", out.ComputeTimeS)
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("run aborted", "error", err)
		return exitError
	}

	code := exitOK
	for i, name := range files {
		if len(results[i].Errors) > 0 {
			code = exitInvalid
		}
		if err := emit(env, *outDir, name, results[i], cfg.Run.Pretty); err != nil {
			logger.Error("failed to write result", "model", name, "error", err)
			return exitError
		}
	}

	if path := cfg.Metrics.Textfile; path != "" {
		if err := registry.WriteTextfile(path); err != nil {
			logger.Error("failed to write metrics", "path", path, "error", err)
			return exitError
		}
	}

	return code
}

// emit writes one result to stdout or to its file under dir.
func emit(env *environment, dir, name string, out sim.ModelOutput, pretty bool) error {
	if dir == "" {
		return writeJSON(env.stdout, out, pretty)
	}
	f, err := os.Create(outputPath(dir, name))
	if err != nil {
		return err
	}
	if err := writeJSON(f, out, pretty); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
