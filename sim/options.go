// SPDX-License-Identifier: MIT

package sim

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvtherm/validation"
)

// Run outcome labels passed to Recorder.ObserveRun.
const (
	StatusOK       = "ok"
	StatusInvalid  = "invalid"
	StatusCanceled = "canceled"
	StatusFailed   = "failed"
)

// Recorder receives run telemetry. Implementations must be safe for
// concurrent use when runs execute in parallel.
type Recorder interface {
	// ObserveRun is called once per run with its outcome, wall-clock
	// duration and the number of integration steps performed.
	ObserveRun(status string, elapsed time.Duration, steps int)

	// ObserveValidationErrors is called for each rejected input.
	ObserveValidationErrors(errs validation.Errors)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRun(string, time.Duration, int)     {}
func (nopRecorder) ObserveValidationErrors(validation.Errors) {}

// Option configures a run.
type Option func(*runConfig)

type runConfig struct {
	logger   *slog.Logger
	recorder Recorder
	clock    func() time.Time
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: nopRecorder{},
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger for run diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder sets the telemetry sink. Nil is ignored.
func WithRecorder(r Recorder) Option {
	return func(c *runConfig) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithClock replaces time.Now for ComputeTimeS. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(c *runConfig) {
		if now != nil {
			c.clock = now
		}
	}
}
