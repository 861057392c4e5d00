package topology_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvtherm/builder"
	"github.com/katalvlaran/lvtherm/core"
	"github.com/katalvlaran/lvtherm/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents_Islands(t *testing.T) {
	a := core.Node{ID: "a", PowerGenW: 2}
	b := core.Node{ID: "b", PowerGenW: 3}
	c := core.Node{ID: "c", IsBoundary: true}
	d := core.Node{ID: "d"}
	g := topology.NewGraph([]core.Node{a, b, c, d}, []core.Connection{
		{ID: "ab", Source: a, Target: b},
		{ID: "dc", Source: d, Target: c, Kind: core.KindRad},
		{ID: "ghost", Source: a, Target: core.Node{ID: "zz"}},
		{ID: "loop", Source: a, Target: a},
	})

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []string{"a", "b"}, comps[0].Nodes)
	assert.False(t, comps[0].HasBoundary)
	assert.Equal(t, 5.0, comps[0].NetPowerW)
	assert.Equal(t, []string{"c", "d"}, comps[1].Nodes)
	assert.True(t, comps[1].HasBoundary)

	floating := g.Floating()
	require.Len(t, floating, 1)
	assert.Equal(t, []string{"a", "b"}, floating[0].Nodes)

	assert.Equal(t, 1, g.Degree("a"))
	assert.Equal(t, -1, g.Degree("zz"))
	assert.Equal(t, 4, g.Len())
}

func TestComponents_Empty(t *testing.T) {
	assert.Empty(t, topology.NewGraph(nil, nil).Components())
}

func TestComponents_DuplicateIDsCountedOnce(t *testing.T) {
	g := topology.NewGraph([]core.Node{{ID: "x"}, {ID: "x"}}, nil)
	assert.Len(t, g.Components(), 1)
}

func TestBFS_GridDepths(t *testing.T) {
	in, err := builder.BuildModel(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	g := topology.NewGraph(in.Nodes, in.Connections)

	res, err := g.BFS("0,0")
	require.NoError(t, err)
	assert.Len(t, res.Order, 9)
	assert.Equal(t, 4, res.Depth["2,2"])
	path, err := res.PathTo("0,2")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "0,2"}, path)

	limited, err := g.BFS("0,0", topology.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0,0", "0,1", "1,0"}, limited.Order)
	_, err = limited.PathTo("2,2")
	assert.Error(t, err)
}

func TestBFS_KindFilter(t *testing.T) {
	in, err := builder.BuildModel(nil, builder.Chain(2), builder.Space(-270, 1e9))
	require.NoError(t, err)
	g := topology.NewGraph(in.Nodes, in.Connections)

	res, err := g.BFS("0", topology.WithKinds(core.KindBi))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, res.Order)

	res, err = g.BFS("0", topology.WithKinds(core.KindBi, core.KindRad))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", builder.SpaceNodeID}, res.Order)
}

func TestBFS_Errors(t *testing.T) {
	g := topology.NewGraph([]core.Node{{ID: "a"}}, nil)
	_, err := g.BFS("nope")
	require.ErrorIs(t, err, topology.ErrStartNodeNotFound)
	_, err = g.BFS("a", topology.WithMaxDepth(-1))
	require.ErrorIs(t, err, topology.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.BFS("a", topology.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestResistanceFrom_SeriesAndParallel(t *testing.T) {
	// a -2- b -3- c and a -10- c; rad a-c ignored.
	a, b, c := core.Node{ID: "a"}, core.Node{ID: "b"}, core.Node{ID: "c", IsBoundary: true}
	g := topology.NewGraph([]core.Node{a, b, c}, []core.Connection{
		{ID: "ab", Source: a, Target: b, ResistanceDegKPerW: 2},
		{ID: "bc", Source: b, Target: c, ResistanceDegKPerW: 3, Kind: core.KindUni},
		{ID: "ac", Source: a, Target: c, ResistanceDegKPerW: 10},
		{ID: "rad", Source: a, Target: c, ResistanceDegKPerW: 0.1, Kind: core.KindRad},
	})

	p, err := g.ResistanceFrom("a")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Resistance["a"])
	assert.Equal(t, 2.0, p.Resistance["b"])
	assert.Equal(t, 5.0, p.Resistance["c"])
	path, err := p.PathTo("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)

	cp, ok, err := g.CoolingPath("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "c", cp.BoundaryID)
	assert.Equal(t, 5.0, cp.ResistanceDegKPerW)
	assert.Equal(t, []string{"a", "b", "c"}, cp.Path)
}

func TestResistanceFrom_Unreachable(t *testing.T) {
	a, b := core.Node{ID: "a"}, core.Node{ID: "b", IsBoundary: true}
	g := topology.NewGraph([]core.Node{a, b}, []core.Connection{
		{ID: "rad", Source: a, Target: b, ResistanceDegKPerW: 1, Kind: core.KindRad},
	})

	p, err := g.ResistanceFrom("a")
	require.NoError(t, err)
	assert.True(t, math.IsInf(p.Resistance["b"], 1))
	_, err = p.PathTo("b")
	assert.Error(t, err)

	_, ok, err := g.CoolingPath("a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.ResistanceFrom("zz")
	assert.ErrorIs(t, err, topology.ErrStartNodeNotFound)
}

func TestCoolingPath_Grid(t *testing.T) {
	in, err := builder.BuildModel([]builder.BuilderOption{builder.WithResistance(2)},
		builder.Grid(3, 3), builder.Fix(builder.GridID(0, 0), 20))
	require.NoError(t, err)
	g := topology.NewGraph(in.Nodes, in.Connections)

	cp, ok, err := g.CoolingPath(builder.GridID(2, 2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, builder.GridID(0, 0), cp.BoundaryID)
	assert.Equal(t, 8.0, cp.ResistanceDegKPerW)
	assert.Len(t, cp.Path, 5)
}
