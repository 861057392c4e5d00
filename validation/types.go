// SPDX-License-Identifier: MIT
// Package validation: Error and Errors.

package validation

import (
	"encoding/json"
	"errors"
	"sort"
)

// Error is one violated rule.
//
// NodeID and ConnectionID name the offending record where one exists;
// ConnectionIDs lists every connection of a conflicting group.
type Error struct {
	Kind          Kind     `json:"-"`
	Message       string   `json:"message"`
	NodeID        string   `json:"nodeId,omitempty"`
	ConnectionID  string   `json:"connectionId,omitempty"`
	ConnectionIDs []string `json:"connectionIds,omitempty"`
}

// Name returns the taxonomic name of the error's kind.
func (e *Error) Name() string { return e.Kind.String() }

// Error implements error.
func (e *Error) Error() string { return e.Name() + ": " + e.Message }

// Unwrap returns the kind's sentinel so errors.Is matches by kind.
func (e *Error) Unwrap() error { return e.Kind.Sentinel() }

// MarshalJSON adds the name field to the wire form.
func (e *Error) MarshalJSON() ([]byte, error) {
	type plain Error
	return json.Marshal(struct {
		Name string `json:"name"`
		*plain
	}{e.Name(), (*plain)(e)})
}

// UnmarshalJSON restores Kind from the name field.
func (e *Error) UnmarshalJSON(data []byte) error {
	type plain Error
	aux := struct {
		Name string `json:"name"`
		*plain
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Kind = 0
	for k, info := range kindInfo {
		if info.name == aux.Name {
			e.Kind = k
			break
		}
	}

	return nil
}

// Errors is the result of Validate, in check order.
type Errors []*Error

// Sorted returns a copy ordered by Name; errors of equal name keep their
// relative order.
func (es Errors) Sorted() Errors {
	out := make(Errors, len(es))
	copy(out, es)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// Has reports whether any error is of kind k.
func (es Errors) Has(k Kind) bool {
	for _, e := range es {
		if e.Kind == k {
			return true
		}
	}

	return false
}

// Count returns the number of errors of kind k.
func (es Errors) Count(k Kind) int {
	n := 0
	for _, e := range es {
		if e.Kind == k {
			n++
		}
	}

	return n
}

// Err joins the errors into a single error, or returns nil when es is empty.
// The result matches every contained kind with errors.Is.
func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}

	return errors.Join(errs...)
}
