package statespace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rollingdie/dice"
	"github.com/katalvlaran/rollingdie/grid"
	"github.com/katalvlaran/rollingdie/statespace"
)

func mustGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// ValidNeighbors
//----------------------------------------------------------------------------//

func TestValidNeighbors_OrderAndOrientation(t *testing.T) {
	g := mustGrid(t,
		"...",
		".S.",
		"..G",
	)
	d := dice.Default()
	got := statespace.ValidNeighbors(g, g.Start(), d)

	want := []statespace.State{
		{Cell: grid.Cell{X: 0, Y: 1}, Dice: d.RollLeft()},
		{Cell: grid.Cell{X: 2, Y: 1}, Dice: d.RollRight()},
		{Cell: grid.Cell{X: 1, Y: 0}, Dice: d.RollSouth()},
		{Cell: grid.Cell{X: 1, Y: 2}, Dice: d.RollNorth()},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, dice.Default(), d, "caller orientation must not change")
}

func TestValidNeighbors_SkipsWallsAndEdges(t *testing.T) {
	g := mustGrid(t,
		"*G",
		"S.",
	)
	got := statespace.ValidNeighbors(g, g.Start(), dice.Default())
	require.Len(t, got, 1)
	assert.Equal(t, grid.Cell{X: 1, Y: 0}, got[0].Cell)
}

//----------------------------------------------------------------------------//
// Graph cache
//----------------------------------------------------------------------------//

func TestGraph_ObtainDeduplicates(t *testing.T) {
	g := mustGrid(t, "SG")
	gr := statespace.NewGraph(g)

	s := statespace.State{Cell: g.Start(), Dice: dice.Default()}
	a := gr.Obtain(s)
	b := gr.Obtain(s)
	assert.Same(t, a, b)
	assert.Equal(t, 1, gr.Len())
	assert.False(t, a.HasParent())
	assert.Equal(t, -1, a.G)
	assert.True(t, math.IsInf(a.F, 1))

	// same cell, different orientation is a different node
	c := gr.Obtain(statespace.State{Cell: g.Start(), Dice: dice.Default().RollLeft()})
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, gr.Len())
}

func TestGraph_ParentAndPath(t *testing.T) {
	g := mustGrid(t, "S.G")
	gr := statespace.NewGraph(g)

	d0 := dice.Default()
	n0 := gr.Obtain(statespace.State{Cell: grid.Cell{X: 0, Y: 0}, Dice: d0})
	n1 := gr.Obtain(statespace.State{Cell: grid.Cell{X: 1, Y: 0}, Dice: d0.RollRight()})
	n2 := gr.Obtain(statespace.State{Cell: grid.Cell{X: 2, Y: 0}, Dice: d0.RollRight().RollRight()})
	require.NoError(t, gr.SetParent(n1, n0))
	require.NoError(t, gr.SetParent(n2, n1))

	p, ok := gr.Parent(n2)
	require.True(t, ok)
	assert.Same(t, n1, p)

	path := gr.Path(n2)
	require.Len(t, path, 3)
	assert.Equal(t, n0.State, path[0])
	assert.Equal(t, n2.State, path[2])

	require.NoError(t, gr.SetParent(n2, nil))
	assert.False(t, n2.HasParent())
	assert.Len(t, gr.Path(n2), 1)
	assert.Nil(t, gr.Path(nil))
}

func TestGraph_SetParentRejectsForeignNodes(t *testing.T) {
	g := mustGrid(t, "SG")
	a := statespace.NewGraph(g)
	b := statespace.NewGraph(g)

	s := statespace.State{Cell: g.Start(), Dice: dice.Default()}
	na := a.Obtain(s)
	nb := b.Obtain(statespace.State{Cell: g.Goal(), Dice: dice.Default()})
	nb2 := b.Obtain(s)

	assert.ErrorIs(t, a.SetParent(na, nb2), statespace.ErrForeignNode)
	assert.ErrorIs(t, a.SetParent(nb, na), statespace.ErrForeignNode)
}

//----------------------------------------------------------------------------//
// Expand
//----------------------------------------------------------------------------//

// TestExpand_PrunesDeadFace checks that a roll showing 6 is never created.
func TestExpand_PrunesDeadFace(t *testing.T) {
	g := mustGrid(t, "..S", "G..")
	gr := statespace.NewGraph(g)

	// rolling left shows the east face: 6
	d := dice.Dice{Top: 2, Right: 6, North: 3}
	require.True(t, d.Valid())

	root := gr.Obtain(statespace.State{Cell: grid.Cell{X: 1, Y: 1}, Dice: d})
	succ := gr.Expand(root)
	for _, n := range succ {
		assert.NotEqual(t, statespace.DeadFace, n.State.Dice.Top, "%v", n)
	}
	// left is dropped, right and south remain, north is off-board.
	require.Len(t, succ, 2)
	assert.Equal(t, grid.Cell{X: 2, Y: 1}, succ[0].State.Cell)
	assert.Equal(t, grid.Cell{X: 1, Y: 0}, succ[1].State.Cell)
	_, cached := gr.Lookup(statespace.State{Cell: grid.Cell{X: 0, Y: 1}, Dice: d.RollLeft()})
	assert.False(t, cached)
}

// TestExpand_GoalCellRequiresFaceOne checks that a wrong-face arrival at the
// goal cell is never materialised.
func TestExpand_GoalCellRequiresFaceOne(t *testing.T) {
	g := mustGrid(t, "SG")
	gr := statespace.NewGraph(g)

	start := gr.Obtain(statespace.State{Cell: g.Start(), Dice: dice.Default()})
	succ := gr.Expand(start)

	// rolling right from 1/3/2 shows 4: dropped
	assert.Empty(t, succ)
	assert.Equal(t, 1, gr.Len())

	// with 6 facing east a right roll lands 1 on top
	d := dice.Dice{Top: 2, Right: 6, North: 3}
	require.True(t, d.Valid())
	other := gr.Obtain(statespace.State{Cell: g.Start(), Dice: d})
	succ = gr.Expand(other)
	require.Len(t, succ, 1)
	assert.Equal(t, g.Goal(), succ[0].State.Cell)
	assert.Equal(t, statespace.GoalFace, succ[0].State.Dice.Top)
	assert.True(t, gr.IsGoal(succ[0].State))
}

func TestExpand_ReusesCachedNodes(t *testing.T) {
	g := mustGrid(t, "S..", "..G")
	gr := statespace.NewGraph(g)

	root := gr.Obtain(statespace.State{Cell: g.Start(), Dice: dice.Default()})
	first := gr.Expand(root)
	size := gr.Len()
	second := gr.Expand(root)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
	assert.Equal(t, size, gr.Len())
}

// TestExpand_SeededGoalAdoptsFirstParent covers the placeholder rule: the
// first node that actually rolls onto a seeded goal becomes its parent.
func TestExpand_SeededGoalAdoptsFirstParent(t *testing.T) {
	g := mustGrid(t,
		"S.",
		".G",
	)
	gr := statespace.NewGraph(g)

	goalState := statespace.State{Cell: g.Goal(), Dice: dice.Dice{Top: 1, Right: 2, North: 3}}
	seeded := gr.Seed(goalState)
	assert.False(t, seeded.HasParent())

	// (0,0) rolling right and (1,1) rolling south both arrive as 1/2/3.
	a := gr.Obtain(statespace.State{Cell: grid.Cell{X: 0, Y: 0}, Dice: dice.Dice{Top: 2, Right: 6, North: 3}})
	b := gr.Obtain(statespace.State{Cell: grid.Cell{X: 1, Y: 1}, Dice: dice.Dice{Top: 4, Right: 2, North: 1}})

	assert.Contains(t, gr.Expand(a), seeded)
	p, ok := gr.Parent(seeded)
	require.True(t, ok)
	assert.Same(t, a, p)

	// a later discovery does not steal the parent
	assert.Contains(t, gr.Expand(b), seeded)
	p, _ = gr.Parent(seeded)
	assert.Same(t, a, p)
}
