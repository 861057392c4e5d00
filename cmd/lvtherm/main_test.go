// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtherm/config"
	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/sim"
)

// invoke runs the command line with stdin and captures both output streams.
func invoke(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeModel(t *testing.T, dir, name string, in core.ModelInput) string {
	t.Helper()
	data, err := json.Marshal(in)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := invoke(t, "")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "usage: lvtherm")

	code, _, stderr = invoke(t, "", "melt")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, `unknown command "melt"`)

	code, stdout, _ := invoke(t, "", "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "commands:")
}

func TestGen_Chain(t *testing.T) {
	code, stdout, stderr := invoke(t, "", "gen", "-n", "2", "-ambient", "20", "-heat", "1=5", "-total", "10")
	require.Equal(t, exitOK, code, stderr)

	var in core.ModelInput
	require.NoError(t, json.Unmarshal([]byte(stdout), &in))
	require.Len(t, in.Nodes, 3)
	assert.Len(t, in.Connections, 3)
	assert.Equal(t, 5.0, in.Nodes[1].PowerGenW)
	assert.True(t, in.Nodes[2].IsBoundary)
	assert.Equal(t, 10.0, in.TotalTimeS)
}

func TestGen_Rejects(t *testing.T) {
	cases := map[string][]string{
		"topology":    {"gen", "-topology", "torus"},
		"kind":        {"gen", "-kind", "laser"},
		"ids":         {"gen", "-ids", "roman"},
		"capacitance": {"gen", "-capacitance", "0"},
		"resistance":  {"gen", "-resistance", "-1"},
		"heat":        {"gen", "-heat", "nope"},
		"unknown id":  {"gen", "-heat", "99=1"},
		"too few":     {"gen", "-topology", "ring", "-n", "2"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, _, _ := invoke(t, "", args...)
			assert.Equal(t, exitError, code)
		})
	}
}

func TestRun_Stdin(t *testing.T) {
	code, model, _ := invoke(t, "", "gen", "-n", "2", "-ambient", "20", "-heat", "0=5", "-total", "10")
	require.Equal(t, exitOK, code)

	code, stdout, stderr := invoke(t, model, "run", "-")
	require.Equal(t, exitOK, code, stderr)

	var out sim.ModelOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 10, out.NumTimeSteps)
	assert.Len(t, out.TimeSeriesS, 11)
	require.Len(t, out.NodeResults, 3)
	assert.Greater(t, out.NodeResults[0].TempDegC[10], 20.0)
	assert.Empty(t, out.Errors)
}

func TestRun_InvalidModel(t *testing.T) {
	dir := t.TempDir()
	path := writeModel(t, dir, "empty.json", core.ModelInput{})

	code, stdout, _ := invoke(t, "", "run", path)
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, stdout, "TimeStepValidationError")
	assert.Contains(t, stdout, "TotalTimeValidationError")
}

func TestRun_OutDirAndMetrics(t *testing.T) {
	dir := t.TempDir()
	good, err := generate(genParams{
		topology: "chain", n: 3, ids: "decimal", capacitance: 1000, tempC: 20,
		resistance: 1, kind: "bi", dt: 1, total: 5, ambientC: 0, spaceC: nanValue(),
	})
	require.NoError(t, err)
	a := writeModel(t, dir, "a.json", good)
	b := writeModel(t, dir, "b.json", core.ModelInput{})

	prom := filepath.Join(dir, "lvtherm.prom")
	cfgPath := filepath.Join(dir, "lvtherm.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("run:\n  workers: 2\n  timeout: 5s\nmetrics:\n  textfile: "+prom+"\n"), 0644))

	out := filepath.Join(dir, "out")
	code, stdout, stderr := invoke(t, "", "run", "-config", cfgPath, "-out", out, a, b)
	assert.Equal(t, exitInvalid, code, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(filepath.Join(out, "a.out.json"))
	require.NoError(t, err)
	var res sim.ModelOutput
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, 5, res.NumTimeSteps)
	assert.FileExists(t, filepath.Join(out, "b.out.json"))

	text, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(text), `lvtherm_runs_total{status="ok"} 1`)
	assert.Contains(t, string(text), `lvtherm_runs_total{status="invalid"} 1`)
}

func TestRun_BadInputs(t *testing.T) {
	code, _, _ := invoke(t, "", "run")
	assert.Equal(t, exitError, code)

	code, _, _ = invoke(t, "not json", "run", "-")
	assert.Equal(t, exitError, code)

	code, _, _ = invoke(t, "", "run", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitError, code)

	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: loud\n"), 0644))
	code, _, stderr := invoke(t, "{}", "run", "-config", cfgPath, "-")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "Log.Level")
}

func TestValidate_Report(t *testing.T) {
	a := core.Node{ID: "a", TemperatureDegC: 20, CapacitanceJPerDegK: 10, PowerGenW: 5}
	b := core.Node{ID: "b", TemperatureDegC: 20, CapacitanceJPerDegK: 10}
	in := core.ModelInput{
		Nodes:       []core.Node{a, b},
		Connections: []core.Connection{{ID: "ab", Source: a, Target: b, ResistanceDegKPerW: 1, Kind: core.KindBi}},
		TimeStepS:   1,
		TotalTimeS:  10,
	}
	path := writeModel(t, t.TempDir(), "floating.json", in)

	code, stdout, stderr := invoke(t, "", "validate", path)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "component has no boundary node")

	var report validateReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.True(t, report.Valid)
	require.Len(t, report.Floating, 1)
	assert.Equal(t, []string{"a", "b"}, report.Floating[0].Nodes)
	assert.Equal(t, 5.0, report.Floating[0].NetPowerW)
}

func TestValidate_Invalid(t *testing.T) {
	code, stdout, _ := invoke(t, `{"nodes":[],"connections":[],"timeStepS":0,"totalTimeS":0}`, "validate", "-")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, stdout, `"valid":false`)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "rod.out.json"), outputPath("out", "models/rod.json"))
	assert.Equal(t, filepath.Join("out", "stdin.out.json"), outputPath("out", "-"))
}

func nanValue() float64 { return math.NaN() }

func TestValidate_CoolingPaths(t *testing.T) {
	code, model, _ := invoke(t, "", "gen", "-n", "3", "-resistance", "2", "-heat", "0=1", "-fix", "2=20")
	require.Equal(t, exitOK, code)

	code, stdout, _ := invoke(t, model, "validate", "-")
	require.Equal(t, exitOK, code)
	var report validateReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.CoolingPaths, 1)
	assert.Equal(t, "2", report.CoolingPaths[0].BoundaryID)
	assert.Equal(t, 4.0, report.CoolingPaths[0].ResistanceDegKPerW)
	assert.Equal(t, []string{"0", "1", "2"}, report.CoolingPaths[0].Path)
}
