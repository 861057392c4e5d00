// SPDX-License-Identifier: MIT

// Package core: node, connection and model input records.
//
// JSON field names follow the wire contract shared with UI collaborators
// (camelCase with unit suffixes).
package core

// Node is a lumped thermal mass with uniform internal temperature.
type Node struct {
	// ID uniquely identifies the node within a model.
	ID string `json:"id"`

	// Name is a display label; it need not be unique.
	Name string `json:"name"`

	// TemperatureDegC is the initial temperature, ≥ AbsoluteZeroC.
	TemperatureDegC float64 `json:"temperatureDegC"`

	// CapacitanceJPerDegK is the thermal mass, ≥ 0.
	CapacitanceJPerDegK float64 `json:"capacitanceJPerDegK"`

	// PowerGenW is the net generation (positive) or consumption (negative).
	PowerGenW float64 `json:"powerGenW"`

	// IsBoundary fixes the node temperature across all time steps.
	IsBoundary bool `json:"isBoundary"`
}

// Connection is a thermal link between two nodes.
//
// Source and Target carry the referenced nodes by value. Matrix indexing
// uses only their IDs; the authoritative node data is the model's node list.
type Connection struct {
	ID                 string  `json:"id"`
	Source             Node    `json:"source"`
	Target             Node    `json:"target"`
	ResistanceDegKPerW float64 `json:"resistanceDegKPerW"`
	Kind               Kind    `json:"kind"`
}

// ModelInput is everything a run needs.
type ModelInput struct {
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
	TimeStepS   float64      `json:"timeStepS"`
	TotalTimeS  float64      `json:"totalTimeS"`
}
