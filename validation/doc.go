// SPDX-License-Identifier: MIT

// Package validation checks a core.ModelInput for structural and physical
// well-formedness.
//
// Validate never fails and never stops early: every check runs on every
// input and each violated rule yields its own *Error, so a caller can show
// all problems at once. An empty result means the model may be simulated.
//
// Checks:
//
//   - time step: finite and > 0;
//   - total time: finite, > 0 and ≥ time step;
//   - node ids are unique;
//   - every connection endpoint names a node (one error per bad endpoint);
//   - node temperature is finite and ≥ -273.15 °C;
//   - node capacitance is finite and ≥ 0, and > 0 unless the node is a
//     boundary node;
//   - connection resistance is finite and > 0;
//   - a connection's source and target differ;
//   - between one unordered pair of nodes at most one non-radiative
//     connection exists; any number of radiative ones may sit alongside it.
//
// Each Error carries a Kind; Error.Unwrap yields the kind's sentinel so
// errors.Is(err, ErrResistance) selects by kind.
package validation
