// SPDX-License-Identifier: MIT

package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/matrix"
	"github.com/katalvlaran/lvtherm/topology"
	"github.com/katalvlaran/lvtherm/validation"
)

// ErrInternal marks a failure that validated input must never produce,
// such as a matrix shape mismatch inside the integrator.
var ErrInternal = errors.New("sim: internal error")

// ValidateInputs returns every validation error of in.
func ValidateInputs(in core.ModelInput) validation.Errors {
	return validation.Validate(in)
}

// Run validates and simulates in. Invalid input yields EmptyOutput with
// Errors set; it is never reported through a Go error. Internal failures
// are logged and yield EmptyOutput without Errors.
func Run(in core.ModelInput, opts ...Option) ModelOutput {
	out, _ := RunContext(context.Background(), in, opts...)

	return out
}

// RunContext is Run with cancellation checked between steps. On
// cancellation it returns EmptyOutput and ctx.Err(); no partial series is
// returned. An internal failure returns EmptyOutput and an error wrapping
// ErrInternal.
func RunContext(ctx context.Context, in core.ModelInput, opts ...Option) (ModelOutput, error) {
	cfg := newRunConfig(opts...)
	log := cfg.logger
	start := cfg.clock()

	if errs := validation.Validate(in); len(errs) > 0 {
		log.Debug("model rejected", slog.Int("errors", len(errs)))
		cfg.recorder.ObserveValidationErrors(errs)
		cfg.recorder.ObserveRun(StatusInvalid, cfg.clock().Sub(start), 0)
		out := EmptyOutput()
		out.Errors = errs.Sorted()

		return out, nil
	}

	fail := func(steps int, err error) (ModelOutput, error) {
		status := StatusFailed
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			status = StatusCanceled
			log.Info("run canceled", slog.Int("step", steps), slog.Any("err", err))
		} else {
			err = fmt.Errorf("%w: %w", ErrInternal, err)
			log.Error("run failed", slog.Int("step", steps), slog.Any("err", err))
		}
		cfg.recorder.ObserveRun(status, cfg.clock().Sub(start), steps)

		return EmptyOutput(), err
	}

	it, err := NewIntegrator(in)
	if err != nil {
		return fail(0, err)
	}
	n := NumTimeSteps(in.TimeStepS, in.TotalTimeS)
	if n > validation.MaxTimeSteps {
		return fail(0, fmt.Errorf("%d time steps exceed the limit of %d", n, validation.MaxTimeSteps))
	}
	log.Debug("system built",
		slog.Int("nodes", len(in.Nodes)),
		slog.Int("connections", len(in.Connections)),
		slog.Int("steps", n),
		slog.Float64("dt", in.TimeStepS))
	diagnose(log, in, it)

	temps := make([]matrix.Vector, 0, n+1)
	heat := make([]matrix.Vector, 0, n+1)
	temps = append(temps, it.Temperatures())
	heat = append(heat, it.HeatTransfer())
	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return fail(k, err)
		}
		if err := it.Step(); err != nil {
			return fail(k, err)
		}
		temps = append(temps, it.t)
		heat = append(heat, it.q)
	}

	if bad := nonFinite(it.t); bad >= 0 {
		log.Warn("non-finite temperature after run",
			slog.String("node", in.Nodes[bad].ID),
			slog.Float64("dt", in.TimeStepS),
			slog.Float64("maxStableStep", it.sys.MaxStableStep()))
	}

	out := ShapeOutput(in, TimeSeries(in.TimeStepS, n), temps, heat)
	elapsed := cfg.clock().Sub(start)
	out.ComputeTimeS = elapsed.Seconds()
	cfg.recorder.ObserveRun(StatusOK, elapsed, n)

	return out, nil
}

// diagnose logs conditions that make results physically doubtful but are
// not validation errors.
func diagnose(log *slog.Logger, in core.ModelInput, it *Integrator) {
	if limit := it.sys.MaxStableStep(); in.TimeStepS > limit {
		log.Warn("time step exceeds explicit Euler stability bound",
			slog.Float64("dt", in.TimeStepS),
			slog.Float64("maxStableStep", limit))
	}
	for _, c := range topology.NewGraph(in.Nodes, in.Connections).Floating() {
		if c.NetPowerW == 0 {
			continue
		}
		log.Warn("component without boundary node has net power; temperatures drift without bound",
			slog.Any("nodes", c.Nodes),
			slog.Float64("netPowerW", c.NetPowerW))
	}
}

// nonFinite returns the first index of t holding NaN or ±Inf, or -1.
func nonFinite(t matrix.Vector) int {
	for i, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}

	return -1
}
