// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/sim"
	"github.com/katalvlaran/lvtherm/topology"
)

// validateReport is the JSON document printed per model by validate.
type validateReport struct {
	Model      string               `json:"model"`
	Valid      bool                 `json:"valid"`
	Errors     any                  `json:"errors"`
	Components []topology.Component `json:"components"`
	Floating   []topology.Component `json:"floating"`

	// CoolingPaths lists, per powered free node, its lowest-resistance
	// conductive route to a boundary.
	CoolingPaths []topology.CoolingPath `json:"coolingPaths"`
}

func cmdValidate(env *environment, args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	configPath := fs.String("config", "", "YAML config file (default $LVTHERM_CONFIG)")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(env.stderr, "lvtherm validate: at least one model file is required")
		return exitError
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(env.stderr, "lvtherm validate: %v\n", err)
		return exitError
	}
	logger := env.newLogger(cfg)

	code := exitOK
	for _, name := range files {
		in, err := env.readModel(name)
		if err != nil {
			logger.Error("failed to read model", "model", name, "error", err)
			return exitError
		}
		errs := sim.ValidateInputs(in).Sorted()
		g := topology.NewGraph(in.Nodes, in.Connections)
		report := validateReport{
			Model:      name,
			Valid:      len(errs) == 0,
			Errors:     errs,
			Components: g.Components(),
			Floating:   g.Floating(),
		}
		report.CoolingPaths = coolingPaths(g, in.Nodes)
		if len(errs) > 0 {
			code = exitInvalid
			logger.Warn("model is invalid", "model", name, "errors", len(errs))
		}
		for _, c := range report.Floating {
			logger.Warn("component has no boundary node",
				"model", name, "nodes", len(c.Nodes), "net_power_w", c.NetPowerW)
		}
		if err := writeJSON(env.stdout, report, *pretty || cfg.Run.Pretty); err != nil {
			logger.Error("failed to write report", "model", name, "error", err)
			return exitError
		}
	}

	return code
}

// coolingPaths collects the cooling route of every free node with non-zero
// power that can reach a boundary.
func coolingPaths(g *topology.Graph, nodes []core.Node) []topology.CoolingPath {
	paths := []topology.CoolingPath{}
	for _, n := range nodes {
		if n.IsBoundary || n.PowerGenW == 0 {
			continue
		}
		cp, ok, err := g.CoolingPath(n.ID)
		if err != nil || !ok {
			continue
		}
		paths = append(paths, cp)
	}

	return paths
}
