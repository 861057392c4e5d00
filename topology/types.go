// SPDX-License-Identifier: MIT

package topology

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
)

// Sentinel errors.
var (
	// ErrStartNodeNotFound is returned when the BFS start id is absent.
	ErrStartNodeNotFound = errors.New("topology: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("topology: invalid option supplied")
)

// Option configures BFS.
type Option func(*Options)

// Options holds BFS parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Kinds, when non-empty, restricts traversal to connections of these kinds.
	Kinds map[core.Kind]bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and every kind allowed.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context checked once per dequeued node.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at depth d (d > 0); d == 0 disables the
// limit and d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithKinds restricts traversal to connections of the given kinds.
func WithKinds(kinds ...core.Kind) Option {
	return func(o *Options) {
		o.Kinds = make(map[core.Kind]bool, len(kinds))
		for _, k := range kinds {
			o.Kinds[k] = true
		}
	}
}

// Result holds a BFS outcome.
type Result struct {
	// Order lists node ids in visit sequence.
	Order []string

	// Depth maps node id to its hop distance from the start.
	Depth map[string]int

	// Parent maps node id to its predecessor in the BFS tree.
	Parent map[string]string
}

// PathTo reconstructs the hop path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("topology: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Component is a maximal set of nodes joined by connections.
type Component struct {
	// Nodes lists member ids in BFS order from the first member in input order.
	Nodes []string `json:"nodes"`

	// HasBoundary reports whether any member is a boundary node.
	HasBoundary bool `json:"hasBoundary"`

	// NetPowerW is the summed power generation of the members.
	NetPowerW float64 `json:"netPowerW"`
}
