// SPDX-License-Identifier: MIT

// Package astar implements optimal-cost route search over a costfield.Field.
//
// A* orders the frontier by f = g + h, where g is the cost so far and h is
// the Chebyshev distance to the nearest traversable exit scaled by the
// field's cheapest possible step. Every step costs at least that much and
// changes the Chebyshev distance by at most one, so h never overestimates
// and never drops by more than a step's cost: the first exit popped is
// optimal and a finalized cell never needs reopening.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with V = R·C cells and E ≤ 8V moves.
//   - Space: O(V + E) for g-scores, predecessors and the lazy heap.
//
// Notes on implementation choices:
//
//   - Impassable cells are never pushed, hence never expanded.
//   - Ties on f are broken by the lower cell index, so the search order and
//     the returned path are fully deterministic.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/costfield"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// Search finds the cost-optimal path from field.Start() to the nearest (by
// cost) traversable exit.
//
// Returns:
//
//   - Result with Path, Cost and the number of expanded cells.
//   - ErrNoPath if no exit can be reached.
//   - ErrTimeout if ctx ends first (checked every Options.CheckEvery expansions).
func Search(ctx context.Context, field *costfield.Field, opts Options) (Result, error) {
	// 1) Validate options.
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	// 2) Prepare per-cell state.
	n := field.Size()
	r := &runner{
		field:   field,
		options: opts,
		g:       make([]float64, n),
		prev:    make([]int, n),
		closed:  make([]bool, n),
		pq:      make(nodePQ, 0, 64),
		minStep: field.MinStepCost(),
	}
	for i := range r.g {
		r.g[i] = math.Inf(1)
		r.prev[i] = -1
	}

	// 3) Seed the heap with the start and run the main loop.
	r.g[field.Start()] = 0
	heap.Push(&r.pq, &nodeItem{idx: field.Start(), f: r.h(field.Start())})
	goal, err := r.process(ctx)
	if err != nil {
		return Result{Expanded: r.expanded}, err
	}

	// 4) Reconstruct the path from the predecessor chain.
	var rev []int
	for at := goal; at >= 0; at = r.prev[at] {
		rev = append(rev, at)
	}
	path := make([]gridgraph.Cell, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = field.Cell(idx)
	}

	return Result{Path: path, Cost: r.g[goal], Expanded: r.expanded}, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	field    *costfield.Field // read-only within Search
	options  Options
	g        []float64 // best known cost from the start
	prev     []int     // predecessor on the best known path, -1 for none
	closed   []bool    // finalized cells
	pq       nodePQ
	minStep  float64
	expanded int
	moves    []costfield.Move
}

// h is the admissible estimate from i to the nearest exit.
func (r *runner) h(i int) float64 {
	best := math.Inf(1)
	for _, e := range r.field.Exits() {
		best = math.Min(best, r.field.Chebyshev(i, e))
	}
	return best * r.minStep
}

// process pops cells in (f, index) order until an exit is finalized.
func (r *runner) process(ctx context.Context) (int, error) {
	for r.pq.Len() > 0 {
		if r.expanded%r.options.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return -1, fmt.Errorf("%w: after %d expansions: %v", ErrTimeout, r.expanded, err)
			}
		}

		// 1) Pop the lowest-f item; skip stale duplicates.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		if r.closed[u] {
			continue
		}

		// 2) Finalize u; the first exit finalized is optimal.
		r.closed[u] = true
		r.expanded++
		if r.field.IsExit(u) {
			return u, nil
		}

		// 3) Relax all traversable moves out of u.
		r.relax(u)
	}

	return -1, fmt.Errorf("%w: %d cells explored from %v", ErrNoPath, r.expanded, r.field.Cell(r.field.Start()))
}

// relax improves g for every open neighbour of u reachable more cheaply via u.
func (r *runner) relax(u int) {
	r.moves = r.field.AppendMoves(r.moves[:0], u)
	for _, m := range r.moves {
		v := m.To
		if r.closed[v] {
			continue
		}
		// Use “<” rather than “≤” so the first-discovered equal-cost
		// predecessor is kept.
		newG := r.g[u] + m.Cost
		if newG >= r.g[v] {
			continue
		}
		r.g[v] = newG
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, f: newG + r.h(v)})
	}
}

// nodeItem is a frontier entry.
type nodeItem struct {
	idx int     // cell index
	f   float64 // g + h at push time
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by cell index.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f ascending and breaks ties by the lower cell index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
