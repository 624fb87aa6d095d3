package aco

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// PheromoneMap holds one non-negative weight per directed edge, addressed
// as (source cell, direction). It has two access modes:
//
//   - View: read-only, shared by all ants of an iteration.
//   - Evaporate/Deposit: exclusive, called only after every ant of the
//     iteration has finished.
//
// The colony enforces the split with a barrier; PheromoneMap itself does
// no locking.
type PheromoneMap struct {
	tau    []float64
	lo, hi float64 // hi==+Inf when unbounded
}

// NewPheromoneMap returns a map for cells cells, every edge set to tau0.
// tauMax==0 leaves the upper bound open.
func NewPheromoneMap(cells int, tau0, tauMin, tauMax float64) *PheromoneMap {
	hi := tauMax
	if hi == 0 {
		hi = math.Inf(1)
	}
	p := &PheromoneMap{
		tau: make([]float64, cells*gridgraph.NumDirections),
		lo:  tauMin,
		hi:  hi,
	}
	for i := range p.tau {
		p.tau[i] = tau0
	}
	return p
}

// View returns the read-only mode used during path construction.
func (p *PheromoneMap) View() View { return View{tau: p.tau} }

// At returns the weight of the edge leaving cell in direction d.
func (p *PheromoneMap) At(cell int, d gridgraph.Direction) float64 {
	return p.tau[cell*gridgraph.NumDirections+int(d)]
}

// Evaporate scales every edge by (1-rho), then applies the clamp.
// Complexity: O(E).
func (p *PheromoneMap) Evaporate(rho float64) {
	keep := 1 - rho
	for i, v := range p.tau {
		p.tau[i] = p.clamp(v * keep)
	}
}

// Deposit adds amount to every edge of a walk. Negative or non-finite
// amounts are ignored so weights never drop below zero.
func (p *PheromoneMap) Deposit(cells []int, dirs []gridgraph.Direction, amount float64) {
	if !(amount > 0) || math.IsInf(amount, 1) {
		return
	}
	for k, d := range dirs {
		i := cells[k]*gridgraph.NumDirections + int(d)
		p.tau[i] = p.clamp(p.tau[i] + amount)
	}
}

// Bounds returns the smallest and largest edge weight.
func (p *PheromoneMap) Bounds() (lo, hi float64) {
	return floats.Min(p.tau), floats.Max(p.tau)
}

func (p *PheromoneMap) clamp(v float64) float64 {
	return math.Min(math.Max(v, p.lo), p.hi)
}

// View is the read-only pheromone snapshot handed to ants.
type View struct {
	tau []float64
}

// At returns the weight of the edge leaving cell in direction d.
func (v View) At(cell int, d gridgraph.Direction) float64 {
	return v.tau[cell*gridgraph.NumDirections+int(d)]
}
