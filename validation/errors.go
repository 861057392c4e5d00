// SPDX-License-Identifier: MIT
// Package validation: error kinds and sentinels.

package validation

import "errors"

// Kind classifies a validation failure.
type Kind uint8

const (
	KindTimeStep Kind = iota + 1
	KindTotalTime
	KindNodeIDUniqueness
	KindNodeNotFound
	KindTemperature
	KindCapacitance
	KindResistance
	KindCircularConnection
	KindConflictingConnection
)

// Sentinels, one per Kind.
var (
	ErrTimeStep              = errors.New("validation: invalid time step")
	ErrTotalTime             = errors.New("validation: invalid total time")
	ErrNodeIDUniqueness      = errors.New("validation: duplicate node id")
	ErrNodeNotFound          = errors.New("validation: node not found")
	ErrTemperature           = errors.New("validation: temperature out of range")
	ErrCapacitance           = errors.New("validation: capacitance out of range")
	ErrResistance            = errors.New("validation: resistance out of range")
	ErrCircularConnection    = errors.New("validation: connection to itself")
	ErrConflictingConnection = errors.New("validation: conflicting connections")
)

var kindInfo = map[Kind]struct {
	name     string
	sentinel error
}{
	KindTimeStep:              {"TimeStepValidationError", ErrTimeStep},
	KindTotalTime:             {"TotalTimeValidationError", ErrTotalTime},
	KindNodeIDUniqueness:      {"NodeIdUniquenessValidationError", ErrNodeIDUniqueness},
	KindNodeNotFound:          {"NodeNotFoundValidationError", ErrNodeNotFound},
	KindTemperature:           {"TemperatureValidationError", ErrTemperature},
	KindCapacitance:           {"CapacitanceValidationError", ErrCapacitance},
	KindResistance:            {"ResistanceValidationError", ErrResistance},
	KindCircularConnection:    {"CircularConnectionValidationError", ErrCircularConnection},
	KindConflictingConnection: {"ConflictingConnectionValidationError", ErrConflictingConnection},
}

// String returns the error name of k, e.g. "TimeStepValidationError".
func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}

	return "UnknownValidationError"
}

// Sentinel returns the sentinel error matching k, or nil for an unknown kind.
func (k Kind) Sentinel() error {
	return kindInfo[k].sentinel
}
