// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvtherm/config"
	"github.com/katalvlaran/lvtherm/core"
)

// environment carries the standard streams so commands stay testable.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// loadConfig reads path, or falls back to config.Load when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, _, err := config.LoadFromPath(path)
		return cfg, err
	}
	cfg, _, err := config.Load()
	return cfg, err
}

// newLogger builds the command logger on stderr.
func (e *environment) newLogger(cfg *config.Config) *slog.Logger {
	return cfg.Log.NewLogger(e.stderr).With(slog.String("app", "lvtherm"))
}

// readModel decodes a ModelInput from name, or stdin for "-".
func (e *environment) readModel(name string) (core.ModelInput, error) {
	var r io.Reader = e.stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return core.ModelInput{}, fmt.Errorf("open model: %w", err)
		}
		defer f.Close()
		r = f
	}
	var in core.ModelInput
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return core.ModelInput{}, fmt.Errorf("decode model %s: %w", name, err)
	}

	return in, nil
}

// writeJSON encodes v to w, indented when pretty.
func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// outputPath maps an input file to its result file inside dir; stdin
// becomes "stdin.out.json".
func outputPath(dir, name string) string {
	base := "stdin"
	if name != "-" {
		base = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	return filepath.Join(dir, base+".out.json")
}
