package aco

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/costfield"
	"github.com/katalvlaran/evacroute/gridgraph"
)

type noFire struct{}

func (noFire) At(gridgraph.Cell) float64 { return 0 }
func (noFire) Threshold() float64        { return 0.5 }

func testColony(t *testing.T, rows, cols int, exit gridgraph.Cell, opts Options) *Colony {
	t.Helper()
	layout := make([][]int, rows)
	for r := range layout {
		layout[r] = make([]int, cols)
	}
	b, err := gridgraph.NewBuilding(layout)
	require.NoError(t, err)
	f, err := costfield.Build(b, noFire{}, gridgraph.Cell{}, []gridgraph.Cell{exit}, costfield.DefaultOptions())
	require.NoError(t, err)
	c, err := New(f, opts)
	require.NoError(t, err)
	return c
}

// TestConstruct_Bound walks a 1×5 corridor, where the only unvisited move
// is always east, so each step costs exactly 1.
func TestConstruct_Bound(t *testing.T) {
	c := testColony(t, 1, 5, gridgraph.Cell{Col: 4}, DefaultOptions())
	walkWith := func(bound float64) walk {
		return construct(c.field, c.pher.View(), c.goal, &c.opts, c.maxSteps, bound, rand.New(rand.NewSource(1)))
	}

	w := walkWith(math.Inf(1))
	assert.True(t, w.reached)
	assert.Equal(t, 4.0, w.cost)

	w = walkWith(4)
	assert.True(t, w.reached, "a walk costing exactly the bound survives")

	w = walkWith(2.5)
	assert.False(t, w.reached)
	assert.Equal(t, 3, w.steps, "abandoned on the first step past the bound")
	assert.Equal(t, []int{0, 1, 2, 3}, w.cells)
}

// TestUpdate_EliteDeposit settles two walks on a 3×3 floor from (0,0) to
// (0,2): A goes straight east (cost 2), B dips through the centre (cost 2√2).
func TestUpdate_EliteDeposit(t *testing.T) {
	a := walk{cells: []int{0, 1, 2}, dirs: []gridgraph.Direction{gridgraph.East, gridgraph.East}, cost: 2, steps: 2, reached: true}
	b := walk{cells: []int{0, 4, 2}, dirs: []gridgraph.Direction{gridgraph.SouthEast, gridgraph.NorthEast}, cost: 2 * math.Sqrt2, steps: 2, reached: true}
	failed := walk{cells: []int{0, 3}, dirs: []gridgraph.Direction{gridgraph.South}, cost: 1, steps: 1}

	t.Run("BestWalkBoosted", func(t *testing.T) {
		c := testColony(t, 3, 3, gridgraph.Cell{Col: 2}, DefaultOptions())
		res := Result{Cost: math.Inf(1), BestIteration: -1}
		var best []int

		stats := c.update(0, []walk{b, a, failed}, &res, &best)
		assert.Equal(t, 2, stats.Successes)
		assert.Equal(t, 2.0, stats.IterBestCost)
		assert.InDelta(t, 2*math.Sqrt2, stats.IterWorstCost, 1e-12)
		assert.Equal(t, 2.0, res.Cost)
		assert.Equal(t, a.cells, best)

		p := c.Pheromones()
		assert.InDelta(t, 0.05+3*15.0/2, p.At(0, gridgraph.East), 1e-12)
		assert.InDelta(t, 0.05+3*15.0/2, p.At(1, gridgraph.East), 1e-12)
		assert.InDelta(t, 0.05+15/(2*math.Sqrt2), p.At(0, gridgraph.SouthEast), 1e-12)
		assert.InDelta(t, 0.05, p.At(0, gridgraph.South), 1e-12, "failed walks deposit nothing")

		// Next iteration: only B succeeds, so nobody retraces the best.
		c.update(1, []walk{b}, &res, &best)
		assert.InDelta(t, (0.05+3*15.0/2)/2, p.At(0, gridgraph.East), 1e-12)
		assert.InDelta(t, (0.05+15/(2*math.Sqrt2))/2+15/(2*math.Sqrt2), p.At(0, gridgraph.SouthEast), 1e-12)

		// A later retrace of the best path gets the boost again.
		retrace := a
		retrace.cells = append([]int(nil), a.cells...)
		before := p.At(0, gridgraph.East)
		c.update(2, []walk{retrace}, &res, &best)
		assert.InDelta(t, before/2+3*15.0/2, p.At(0, gridgraph.East), 1e-12)
		assert.Equal(t, 0, res.BestIteration)
	})

	t.Run("FactorOneDisables", func(t *testing.T) {
		opts := DefaultOptions()
		opts.EliteFactor = 1
		c := testColony(t, 3, 3, gridgraph.Cell{Col: 2}, opts)
		res := Result{Cost: math.Inf(1), BestIteration: -1}
		var best []int

		c.update(0, []walk{b, a}, &res, &best)
		assert.InDelta(t, 0.05+15.0/2, c.Pheromones().At(0, gridgraph.East), 1e-12)
	})
}
