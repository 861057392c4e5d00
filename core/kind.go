// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a connection kind string is not one of
// "bi", "uni" or "rad".
var ErrUnknownKind = errors.New("core: unknown connection kind")

// Kind is the heat-transfer mode of a Connection. It is a closed set;
// behaviour is dispatched with a switch in the system builder and in the
// heat-transfer computation.
type Kind uint8

const (
	// KindBi is bidirectional conduction/convection.
	KindBi Kind = iota

	// KindUni is unidirectional: source→target only, no back-influence.
	KindUni

	// KindRad is radiative (T⁴ law); only the source is affected.
	KindRad
)

// Wire names of each Kind.
const (
	kindBiName  = "bi"
	kindUniName = "uni"
	kindRadName = "rad"
)

// String returns the wire name of k.
func (k Kind) String() string {
	switch k {
	case KindBi:
		return kindBiName
	case KindUni:
		return kindUniName
	case KindRad:
		return kindRadName
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsRadiative reports whether k is KindRad.
func (k Kind) IsRadiative() bool { return k == KindRad }

// ParseKind maps a wire name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case kindBiName:
		return KindBi, nil
	case kindUniName:
		return KindUni, nil
	case kindRadName:
		return KindRad, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler (JSON and YAML use it).
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindBi, KindUni, KindRad:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
