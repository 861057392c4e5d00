// SPDX-License-Identifier: MIT

package sim

import (
	"math"

	"github.com/katalvlaran/lvtherm/matrix"
)

// NumTimeSteps returns how many steps of size step cover total.
//
//   - step > total: 0 (only the initial sample);
//   - step == total: 1;
//   - otherwise ceil(total/step), with the ratio cleaned of round-off first
//     so that 0.3/0.1 counts 3 steps.
//
// Non-positive or non-finite inputs yield 0. Ratios beyond the int range
// saturate at math.MaxInt; validation caps real runs at
// validation.MaxTimeSteps.
func NumTimeSteps(step, total float64) int {
	if !(step > 0) || !(total > 0) || math.IsInf(step, 0) || math.IsInf(total, 0) {
		return 0
	}
	switch {
	case step > total:
		return 0
	case step == total:
		return 1
	}

	n := math.Ceil(matrix.RoundOff(total / step))
	if n >= math.MaxInt {
		return math.MaxInt
	}

	return int(n)
}

// TimeSeries returns the n+1 sample times 0, dt, …, n·dt, each cleaned of
// round-off.
func TimeSeries(dt float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	ts := make([]float64, n+1)
	for k := range ts {
		ts[k] = matrix.RoundOff(float64(k) * dt)
	}

	return ts
}
