// SPDX-License-Identifier: MIT

// Package sim integrates a thermal network forward in time with explicit
// Euler steps and shapes the result for consumers.
//
// Pipeline:
//
//	ModelInput → validation.Validate → system.Build → Integrator.Step × N → ShapeOutput
//
// Run never returns partial results. An input that fails validation yields
// EmptyOutput with Errors populated (sorted by name) and no integration.
//
// State machine
//
//	Step 0:   T = ToKelvin(node temperatures), Q = HeatTransfer(T).
//	Step k+1: T' = T + Δt·(A·T + A4·T⁴ + B); boundary entries of T' are
//	          reset to their value in T; Q' = HeatTransfer(T').
//
// The step count is NumTimeSteps(Δt, total): ceil(total/Δt) after round-off
// cleanup, so the last sample may overshoot the requested total by less
// than one step.
//
// Explicit Euler is only conditionally stable. No error is raised for an
// oversized Δt; a warning is logged when Δt exceeds 1/max|A_ii| and when a
// run ends with non-finite temperatures.
//
// Concurrency: a run shares no state with any other. Integrator values are
// not safe for concurrent use.
package sim
