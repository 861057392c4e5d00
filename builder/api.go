// SPDX-License-Identifier: MIT
// Package: lvtherm/builder
//
// api.go - BuildModel and the draft constructors mutate.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
)

// Constructor applies a deterministic edit to the draft using the resolved
// builderConfig. Constructors return wrapped sentinels and never panic.
type Constructor func(d *draft, cfg builderConfig) error

// BuildModel resolves bopts, applies cons in order and returns the model.
// Any constructor error is wrapped with "BuildModel: %w" and returned
// immediately.
//
// Complexity: Σ cost of constructors plus O(N+E) to finalize.
func BuildModel(bopts []BuilderOption, cons ...Constructor) (core.ModelInput, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return core.ModelInput{}, fmt.Errorf("BuildModel: temperature jitter: %w", ErrNeedRandSource)
	}
	d := newDraft()
	for i, fn := range cons {
		if fn == nil {
			return core.ModelInput{}, fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return core.ModelInput{}, fmt.Errorf("BuildModel: %w", err)
		}
	}

	return d.model(cfg), nil
}

// draft accumulates nodes and links in insertion order.
type draft struct {
	nodes []core.Node
	pos   map[string]int
	links []link
	seq   int
}

// link refers to endpoints by position so later edits reach the final copy.
type link struct {
	src, dst int
	r        float64
	kind     core.Kind
}

func newDraft() *draft {
	return &draft{pos: make(map[string]int)}
}

// nextID returns cfg.idFn over the shared counter.
func (d *draft) nextID(cfg builderConfig) string {
	id := cfg.idFn(d.seq)
	d.seq++

	return id
}

// addNode appends a free node with id and returns its position.
func (d *draft) addNode(method, id string, cfg builderConfig) (int, error) {
	if _, ok := d.pos[id]; ok {
		return 0, fmt.Errorf("%s: node %q: %w", method, id, ErrDuplicateNode)
	}
	temp := cfg.temperature
	if cfg.jitter > 0 {
		temp += cfg.rng.NormFloat64() * cfg.jitter
		if temp < core.AbsoluteZeroC {
			temp = core.AbsoluteZeroC
		}
	}
	d.pos[id] = len(d.nodes)
	d.nodes = append(d.nodes, core.Node{
		ID:                  id,
		Name:                id,
		TemperatureDegC:     temp,
		CapacitanceJPerDegK: cfg.capacitance,
		PowerGenW:           cfg.power,
	})

	return len(d.nodes) - 1, nil
}

// addBoundary appends a boundary node held at tempC.
func (d *draft) addBoundary(method, id string, tempC float64) (int, error) {
	if _, ok := d.pos[id]; ok {
		return 0, fmt.Errorf("%s: node %q: %w", method, id, ErrDuplicateNode)
	}
	d.pos[id] = len(d.nodes)
	d.nodes = append(d.nodes, core.Node{ID: id, Name: id, TemperatureDegC: tempC, IsBoundary: true})

	return len(d.nodes) - 1, nil
}

func (d *draft) connect(src, dst int, r float64, kind core.Kind) {
	d.links = append(d.links, link{src: src, dst: dst, r: r, kind: kind})
}

// lookup returns the position of id.
func (d *draft) lookup(method, id string) (int, error) {
	i, ok := d.pos[id]
	if !ok {
		return 0, fmt.Errorf("%s: node %q: %w", method, id, ErrUnknownNode)
	}

	return i, nil
}

// model freezes the draft, embedding final node copies into connections.
func (d *draft) model(cfg builderConfig) core.ModelInput {
	nodes := make([]core.Node, len(d.nodes))
	copy(nodes, d.nodes)
	conns := make([]core.Connection, len(d.links))
	for i, l := range d.links {
		s, t := nodes[l.src], nodes[l.dst]
		conns[i] = core.Connection{
			ID:                 fmt.Sprintf(connIDFmt, l.kind, s.ID, t.ID),
			Source:             s,
			Target:             t,
			ResistanceDegKPerW: l.r,
			Kind:               l.kind,
		}
	}

	return core.ModelInput{
		Nodes:       nodes,
		Connections: conns,
		TimeStepS:   cfg.timeStep,
		TotalTimeS:  cfg.totalTime,
	}
}

const connIDFmt = "%s:%s-%s"
