package aco

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/evacroute/costfield"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// walk is one ant's path construction state and outcome.
type walk struct {
	cells   []int                 // visited cells in order, start first
	dirs    []gridgraph.Direction // dirs[k] leads from cells[k] to cells[k+1]
	cost    float64
	steps   int
	reached bool
}

// construct lets one ant walk from start until it stands on an exit, runs
// out of unvisited moves, exhausts maxSteps or its cost passes bound. It
// only reads field, view and goal, so many ants may run it concurrently.
func construct(field *costfield.Field, view View, goal []float64, opts *Options, maxSteps int, bound float64, rng *rand.Rand) walk {
	cur := field.Start()
	w := walk{cells: []int{cur}}
	visited := make([]bool, field.Size())
	visited[cur] = true

	cand := make([]costfield.Move, 0, gridgraph.NumDirections)
	moves := make([]costfield.Move, 0, gridgraph.NumDirections)
	weights := make([]float64, 0, gridgraph.NumDirections)

	for {
		if field.IsExit(cur) {
			w.reached = true
			return w
		}
		if w.steps >= maxSteps {
			return w
		}

		cand = field.AppendMoves(cand[:0], cur)
		moves = moves[:0]
		weights = weights[:0]
		var sum float64
		for _, m := range cand {
			if visited[m.To] {
				continue
			}
			eta := 1 / (m.Cost + goal[m.To])
			v := pow(view.At(cur, m.Dir), opts.Alpha) * pow(eta, opts.Beta)
			if !(v > 0) || math.IsInf(v, 1) {
				v = math.SmallestNonzeroFloat64
			}
			moves = append(moves, m)
			weights = append(weights, v)
			sum += v
		}
		if len(moves) == 0 {
			return w // dead end
		}

		next := moves[roulette(weights, sum, rng)]
		visited[next.To] = true
		w.cells = append(w.cells, next.To)
		w.dirs = append(w.dirs, next.Dir)
		w.cost += next.Cost
		w.steps++
		cur = next.To
		if w.cost > bound {
			return w // pruned
		}
	}
}

// roulette picks index i with probability weights[i]/sum.
func roulette(weights []float64, sum float64, rng *rand.Rand) int {
	r := rng.Float64() * sum
	var acc float64
	for i, v := range weights {
		acc += v
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

// pow skips math.Pow for the common exponents.
func pow(x, y float64) float64 {
	switch y {
	case 0:
		return 1
	case 1:
		return x
	}
	return math.Pow(x, y)
}
