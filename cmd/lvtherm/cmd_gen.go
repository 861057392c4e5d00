// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtherm/builder"
	"github.com/katalvlaran/lvtherm/core"
)

// pairFlag collects repeated id=value flags as per-node constructors.
type pairFlag struct {
	build func(id string, v float64) builder.Constructor
	cons  []builder.Constructor
}

func (f *pairFlag) String() string {
	if f == nil {
		return "0"
	}
	return strconv.Itoa(len(f.cons))
}

func (f *pairFlag) Set(s string) error {
	id, raw, ok := strings.Cut(s, "=")
	if !ok || id == "" {
		return fmt.Errorf("want id=value, got %q", s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("value for %q: %w", id, err)
	}
	f.cons = append(f.cons, f.build(id, v))
	return nil
}

func cmdGen(env *environment, args []string) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	var (
		topo    = fs.String("topology", "chain", "chain, ring, star, grid or complete")
		n       = fs.Int("n", 3, "node count (chain, ring, star, complete)")
		rows    = fs.Int("rows", 2, "grid rows")
		cols    = fs.Int("cols", 2, "grid columns")
		ids     = fs.String("ids", "decimal", "node id scheme: decimal, excel or uuid")
		c       = fs.Float64("capacitance", 1000, "node capacitance in J/K")
		tempC   = fs.Float64("temp", 20, "initial node temperature in °C")
		jitter  = fs.Float64("jitter", 0, "stddev of initial temperature jitter in K")
		seed    = fs.Int64("seed", 1, "random seed for jitter")
		power   = fs.Float64("power", 0, "power per node in W")
		r       = fs.Float64("resistance", 1, "link resistance in K/W")
		kind    = fs.String("kind", "bi", "link kind: bi, uni or rad")
		dt      = fs.Float64("dt", 1, "time step in s")
		total   = fs.Float64("total", 60, "total time in s")
		ambient = fs.Float64("ambient", math.NaN(), "attach an ambient boundary at this °C")
		spaceC  = fs.Float64("space", math.NaN(), "attach a radiative space boundary at this °C")
		spaceR  = fs.Float64("space-resistance", 1e8, "radiative resistance to space in K⁴/W")
		outPath = fs.String("o", "", "output file (default stdout)")
		pretty  = fs.Bool("pretty", true, "indent JSON output")
		heat    = &pairFlag{build: builder.Heat}
		fix     = &pairFlag{build: builder.Fix}
	)
	fs.Var(heat, "heat", "set power of node id=W (repeatable)")
	fs.Var(fix, "fix", "hold node id=°C as a boundary (repeatable)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	model, err := generate(genParams{
		topology: *topo, n: *n, rows: *rows, cols: *cols, ids: *ids,
		capacitance: *c, tempC: *tempC, jitter: *jitter, seed: *seed,
		power: *power, resistance: *r, kind: *kind, dt: *dt, total: *total,
		ambientC: *ambient, spaceC: *spaceC, spaceR: *spaceR, edits: append(heat.cons, fix.cons...),
	})
	if err != nil {
		fmt.Fprintf(env.stderr, "lvtherm gen: %v\n", err)
		return exitError
	}

	w := env.stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(env.stderr, "lvtherm gen: %v\n", err)
			return exitError
		}
		defer f.Close()
		w = f
	}
	if err := writeJSON(w, model, *pretty); err != nil {
		fmt.Fprintf(env.stderr, "lvtherm gen: %v\n", err)
		return exitError
	}

	return exitOK
}

type genParams struct {
	topology           string
	n, rows, cols      int
	ids                string
	capacitance, tempC float64
	jitter             float64
	seed               int64
	power, resistance  float64
	kind               string
	dt, total          float64
	ambientC           float64
	spaceC, spaceR     float64
	edits              []builder.Constructor
}

// generate turns flag values into builder options and constructors.
// Option values the builder rejects by panicking are screened here first.
func generate(p genParams) (core.ModelInput, error) {
	k, err := core.ParseKind(p.kind)
	if err != nil {
		return core.ModelInput{}, err
	}
	switch {
	case !positive(p.capacitance):
		return core.ModelInput{}, fmt.Errorf("capacitance must be finite and > 0, got %v", p.capacitance)
	case !positive(p.resistance):
		return core.ModelInput{}, fmt.Errorf("resistance must be finite and > 0, got %v", p.resistance)
	case !(p.tempC >= core.AbsoluteZeroC) || math.IsInf(p.tempC, 0):
		return core.ModelInput{}, fmt.Errorf("temperature out of range: %v", p.tempC)
	case !(p.jitter >= 0):
		return core.ModelInput{}, fmt.Errorf("jitter must be ≥ 0, got %v", p.jitter)
	case !(p.dt > 0) || !(p.total > 0):
		return core.ModelInput{}, fmt.Errorf("dt and total must be > 0")
	}

	opts := []builder.BuilderOption{
		builder.WithCapacitance(p.capacitance),
		builder.WithTemperature(p.tempC),
		builder.WithPower(p.power),
		builder.WithResistance(p.resistance),
		builder.WithKind(k),
		builder.WithTimeStep(p.dt),
		builder.WithTotalTime(p.total),
	}
	switch p.ids {
	case "decimal":
	case "excel":
		opts = append(opts, builder.WithIDScheme(builder.ExcelColumnIDFn))
	case "uuid":
		opts = append(opts, builder.WithIDScheme(builder.UUIDIDFn))
	default:
		return core.ModelInput{}, fmt.Errorf("unknown id scheme %q", p.ids)
	}
	if p.jitter > 0 {
		opts = append(opts, builder.WithSeed(p.seed), builder.WithTemperatureJitter(p.jitter))
	}

	var shape builder.Constructor
	switch p.topology {
	case "chain":
		shape = builder.Chain(p.n)
	case "ring":
		shape = builder.Ring(p.n)
	case "star":
		shape = builder.Star(p.n)
	case "grid":
		shape = builder.Grid(p.rows, p.cols)
	case "complete":
		shape = builder.Complete(p.n)
	default:
		return core.ModelInput{}, fmt.Errorf("unknown topology %q", p.topology)
	}

	cons := []builder.Constructor{shape}
	cons = append(cons, p.edits...)
	if !math.IsNaN(p.ambientC) {
		cons = append(cons, builder.Ambient(p.ambientC))
	}
	if !math.IsNaN(p.spaceC) {
		cons = append(cons, builder.Space(p.spaceC, p.spaceR))
	}

	return builder.BuildModel(opts, cons...)
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }
