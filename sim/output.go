// SPDX-License-Identifier: MIT

package sim

import (
	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/matrix"
	"github.com/katalvlaran/lvtherm/validation"
)

// ModelOutput is the result of a run.
type ModelOutput struct {
	TimeSeriesS       []float64          `json:"timeSeriesS"`
	TimeStepS         float64            `json:"timeStepS"`
	TotalTimeS        float64            `json:"totalTimeS"`
	NumTimeSteps      int                `json:"numTimeSteps"`
	NodeResults       []NodeResult       `json:"nodeResults"`
	ConnectionResults []ConnectionResult `json:"connectionResults"`

	// Errors is non-empty only when validation failed; all series are then empty.
	Errors validation.Errors `json:"errors,omitempty"`

	// ComputeTimeS is the wall-clock run duration, informational only.
	ComputeTimeS float64 `json:"computeTimeS"`
}

// NodeResult is one node's temperature series, aligned to TimeSeriesS.
type NodeResult struct {
	Node     core.Node `json:"node"`
	TempDegC []float64 `json:"tempDegC"`
}

// ConnectionResult is one connection's heat-flow series, aligned to TimeSeriesS.
type ConnectionResult struct {
	Connection    core.Connection `json:"connection"`
	HeatTransferW []float64       `json:"heatTransferW"`
}

// EmptyOutput returns the canonical empty result: empty non-nil slices and
// zero scalars.
func EmptyOutput() ModelOutput {
	return ModelOutput{
		TimeSeriesS:       []float64{},
		NodeResults:       []NodeResult{},
		ConnectionResults: []ConnectionResult{},
	}
}

// ShapeOutput transposes time-major histories into per-node and
// per-connection series in input order. tempsK[k] and heat[k] are the node
// temperatures (kelvin) and connection flows (watts) at timeSeriesS[k].
//
// TimeStepS and TotalTimeS are read from timeSeriesS (second and last
// sample); a single-sample series reports 0 for both.
func ShapeOutput(in core.ModelInput, timeSeriesS []float64, tempsK, heat []matrix.Vector) ModelOutput {
	out := EmptyOutput()
	out.TimeSeriesS = append(out.TimeSeriesS, timeSeriesS...)
	if n := len(timeSeriesS); n > 0 {
		out.NumTimeSteps = n - 1
		out.TotalTimeS = timeSeriesS[n-1]
		if n > 1 {
			out.TimeStepS = timeSeriesS[1]
		}
	}

	samples := len(tempsK)
	celsius := make([]matrix.Vector, samples)
	for k, t := range tempsK {
		celsius[k] = core.ToCelsius(t)
	}
	for i, n := range in.Nodes {
		series := make([]float64, samples)
		for k := range celsius {
			series[k] = celsius[k][i]
		}
		out.NodeResults = append(out.NodeResults, NodeResult{Node: n, TempDegC: series})
	}

	for j, c := range in.Connections {
		series := make([]float64, len(heat))
		for k := range heat {
			series[k] = heat[k][j]
		}
		out.ConnectionResults = append(out.ConnectionResults, ConnectionResult{Connection: c, HeatTransferW: series})
	}

	return out
}
