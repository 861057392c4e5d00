// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: constructors assigning fresh identities to nodes and connections.

package core

import "github.com/google/uuid"

// NodeParams carries the caller-supplied fields of a new Node.
type NodeParams struct {
	Name                string
	TemperatureDegC     float64
	CapacitanceJPerDegK float64
	PowerGenW           float64
	IsBoundary          bool
}

// ConnectionParams carries the caller-supplied fields of a new Connection.
type ConnectionParams struct {
	Source             Node
	Target             Node
	ResistanceDegKPerW float64
	Kind               Kind
}

// NewID returns a fresh random (v4) UUID string.
func NewID() string {
	return uuid.NewString()
}

// NewNode returns a Node built from p with a fresh unique ID.
// No validation is performed here; see package validation.
func NewNode(p NodeParams) Node {
	return Node{
		ID:                  NewID(),
		Name:                p.Name,
		TemperatureDegC:     p.TemperatureDegC,
		CapacitanceJPerDegK: p.CapacitanceJPerDegK,
		PowerGenW:           p.PowerGenW,
		IsBoundary:          p.IsBoundary,
	}
}

// NewConnection returns a Connection built from p with a fresh unique ID.
func NewConnection(p ConnectionParams) Connection {
	return Connection{
		ID:                 NewID(),
		Source:             p.Source,
		Target:             p.Target,
		ResistanceDegKPerW: p.ResistanceDegKPerW,
		Kind:               p.Kind,
	}
}
