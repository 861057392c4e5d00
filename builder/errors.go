// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach their method tag with
// fmt.Errorf("%s: ...: %w", method, ..., ErrX).

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic option (temperature jitter) was
// requested without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateNode indicates a constructor produced an id already present in
// the draft, e.g. two Grid constructors in one build.
var ErrDuplicateNode = errors.New("builder: duplicate node id")

// ErrUnknownNode indicates an edit (Heat, Fix) named an id the draft lacks.
var ErrUnknownNode = errors.New("builder: unknown node id")

// ErrConstructFailed indicates a nil constructor was passed to BuildModel.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidParameter indicates a non-size constructor argument out of its
// domain, e.g. a non-positive resistance passed to Space.
var ErrInvalidParameter = errors.New("builder: invalid parameter")
