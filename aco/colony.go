// SPDX-License-Identifier: MIT

package aco

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evacroute/costfield"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// Colony is one request-scoped ant colony over a cost field.
// Its pheromone map is created in New and dropped with the Colony.
type Colony struct {
	field    *costfield.Field
	opts     Options
	pher     *PheromoneMap
	goal     []float64 // octile distance to the nearest exit, per cell
	maxSteps int
	workers  int
}

// New validates opts and prepares a colony on field.
// Complexity: O(R·C·X) for X exits.
func New(field *costfield.Field, opts Options) (*Colony, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	c := &Colony{
		field:    field,
		opts:     opts,
		pher:     NewPheromoneMap(field.Size(), opts.Tau0, opts.TauMin, opts.TauMax),
		goal:     make([]float64, field.Size()),
		maxSteps: opts.MaxSteps,
		workers:  opts.Workers,
	}
	if c.maxSteps == 0 {
		c.maxSteps = field.Size()
	}
	if c.workers == 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	for i := range c.goal {
		d := math.Inf(1)
		for _, e := range field.Exits() {
			d = math.Min(d, field.Octile(i, e))
		}
		c.goal[i] = d
	}
	return c, nil
}

// Run is New followed by Colony.Run.
func Run(ctx context.Context, field *costfield.Field, opts Options) (Result, error) {
	c, err := New(field, opts)
	if err != nil {
		return Result{BestIteration: -1}, err
	}
	return c.Run(ctx)
}

// Pheromones exposes the colony's pheromone map for inspection between runs.
func (c *Colony) Pheromones() *PheromoneMap { return c.pher }

// Run executes up to MaxIter iterations. Each iteration has two phases:
//
//  1. Construction: every ant walks concurrently (at most Workers at a
//     time) on the same read-only pheromone View, with its own RNG stream.
//     A walk whose cost passes PruneFactor times the best cost known when
//     the iteration began is abandoned.
//  2. Update: after all walks finish, every edge evaporates by (1-ρ) and
//     each successful walk deposits Q/cost on its edges, EliteFactor times
//     as much when it retraces the best path so far.
//
// ctx is checked only before an iteration starts; an ended context yields
// ErrTimeout together with the best result found so far.
// ErrNoSolution is returned when no ant ever reached an exit.
func (c *Colony) Run(ctx context.Context) (Result, error) {
	res := Result{Cost: math.Inf(1), BestIteration: -1}
	var bestCells []int

	walks := make([]walk, c.opts.Ants)
	for it := 0; it < c.opts.MaxIter; it++ {
		if err := ctx.Err(); err != nil {
			c.finish(&res, bestCells)
			return res, fmt.Errorf("%w: %d of %d iterations done: %v", ErrTimeout, it, c.opts.MaxIter, err)
		}

		// Construction phase.
		view := c.pher.View()
		bound := math.Inf(1)
		if c.opts.PruneFactor > 0 {
			bound = res.Cost * c.opts.PruneFactor
		}
		var g errgroup.Group
		g.SetLimit(c.workers)
		for k := 0; k < c.opts.Ants; k++ {
			rng := antRNG(c.opts.Seed, it, k, c.opts.Ants)
			g.Go(func() error {
				walks[k] = construct(c.field, view, c.goal, &c.opts, c.maxSteps, bound, rng)
				return nil
			})
		}
		// Barrier: no ant is running past this point.
		if err := g.Wait(); err != nil {
			c.finish(&res, bestCells)
			return res, fmt.Errorf("aco: iteration %d: %w", it, err)
		}

		// Update phase.
		stats := c.update(it, walks, &res, &bestCells)
		if c.opts.Observer != nil {
			stats.MinPheromone, stats.MaxPheromone = c.pher.Bounds()
			c.opts.Observer(stats)
		}
	}

	c.finish(&res, bestCells)
	if res.Path == nil {
		return res, fmt.Errorf("%w: %d ants × %d iterations", ErrNoSolution, c.opts.Ants, c.opts.MaxIter)
	}
	return res, nil
}

// update settles the global best from walks, then evaporates and deposits.
// The best is settled first so the walk that sets it gets the elite boost.
func (c *Colony) update(it int, walks []walk, res *Result, best *[]int) IterationStats {
	stats := IterationStats{Iteration: it, IterBestCost: math.Inf(1)}
	for k := range walks {
		w := &walks[k]
		if !w.reached {
			continue
		}
		stats.Successes++
		stats.IterBestCost = math.Min(stats.IterBestCost, w.cost)
		stats.IterWorstCost = math.Max(stats.IterWorstCost, w.cost)
		if w.cost < res.Cost {
			res.Cost = w.cost
			res.BestIteration = it
			*best = w.cells
		}
	}
	res.Successes += stats.Successes
	res.Iterations = it + 1
	stats.BestCost = res.Cost

	c.pher.Evaporate(c.opts.Rho)
	for k := range walks {
		w := &walks[k]
		if !w.reached || !(w.cost > 0) {
			continue
		}
		amount := c.opts.Q / w.cost
		if c.opts.EliteFactor > 1 && slices.Equal(w.cells, *best) {
			amount *= c.opts.EliteFactor
		}
		c.pher.Deposit(w.cells, w.dirs, amount)
	}
	return stats
}

// finish converts the best walk into cells.
func (c *Colony) finish(res *Result, cells []int) {
	if cells == nil {
		return
	}
	res.Path = make([]gridgraph.Cell, len(cells))
	for i, idx := range cells {
		res.Path[i] = c.field.Cell(idx)
	}
}
