// SPDX-License-Identifier: MIT

package aco

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// Sentinel errors.
var (
	// ErrNoSolution indicates no ant reached an exit in any iteration.
	ErrNoSolution = errors.New("aco: no ant reached an exit")
	// ErrTimeout indicates the context ended between iterations.
	ErrTimeout = errors.New("aco: deadline reached between iterations")
	// ErrBadOptions indicates invalid colony parameters.
	ErrBadOptions = errors.New("aco: invalid options")
)

// Options configures a colony run.
type Options struct {
	Ants    int     // m: ants per iteration (≥1)
	Alpha   float64 // α: pheromone weight (≥0)
	Beta    float64 // β: heuristic weight (≥0)
	Rho     float64 // ρ: evaporation rate in [0,1]
	Q       float64 // deposit constant (>0)
	MaxIter int     // iterations (≥1)

	// MaxSteps bounds a single ant's walk; 0 means rows×cols.
	MaxSteps int
	// Tau0 is the uniform initial pheromone (>0).
	Tau0 float64
	// TauMin/TauMax clamp pheromone after each update; TauMax==0 disables
	// the upper bound.
	TauMin, TauMax float64
	// EliteFactor multiplies the deposit of a walk that retraces the best
	// path found so far; 0 and 1 both disable the boost.
	EliteFactor float64
	// PruneFactor abandons a walk once its cost exceeds PruneFactor times
	// the best cost known when the iteration began; 0 disables pruning.
	PruneFactor float64
	// Workers bounds concurrent ant constructions; 0 means GOMAXPROCS.
	Workers int
	// Seed selects the random streams; 0 uses a fixed default seed.
	Seed int64
	// Observer, when set, is called after each update phase.
	Observer func(IterationStats)
}

// DefaultOptions returns m=30, α=1, β=5, ρ=0.5, Q=15, 50 iterations,
// τ0=0.1, a ×3 elite deposit, pruning at 1.5× the best cost and no
// pheromone clamp.
func DefaultOptions() Options {
	return Options{
		Ants:    30,
		Alpha:   1.0,
		Beta:    5.0,
		Rho:     0.5,
		Q:       15.0,
		MaxIter: 50,
		Tau0:    0.1,

		EliteFactor: 3.0,
		PruneFactor: 1.5,
	}
}

// Validate reports ErrBadOptions for out-of-range parameters.
func (o Options) Validate() error {
	switch {
	case o.Ants < 1:
		return fmt.Errorf("%w: ants %d < 1", ErrBadOptions, o.Ants)
	case o.Alpha < 0 || o.Beta < 0:
		return fmt.Errorf("%w: alpha %v and beta %v must be non-negative", ErrBadOptions, o.Alpha, o.Beta)
	case o.Rho < 0 || o.Rho > 1:
		return fmt.Errorf("%w: rho %v not in [0,1]", ErrBadOptions, o.Rho)
	case !(o.Q > 0):
		return fmt.Errorf("%w: Q %v must be positive", ErrBadOptions, o.Q)
	case o.MaxIter < 1:
		return fmt.Errorf("%w: max iterations %d < 1", ErrBadOptions, o.MaxIter)
	case o.MaxSteps < 0:
		return fmt.Errorf("%w: max steps %d < 0", ErrBadOptions, o.MaxSteps)
	case !(o.Tau0 > 0):
		return fmt.Errorf("%w: tau0 %v must be positive", ErrBadOptions, o.Tau0)
	case o.TauMin < 0:
		return fmt.Errorf("%w: tau min %v < 0", ErrBadOptions, o.TauMin)
	case o.TauMax != 0 && o.TauMax < o.TauMin:
		return fmt.Errorf("%w: tau max %v < tau min %v", ErrBadOptions, o.TauMax, o.TauMin)
	case o.EliteFactor < 0 || math.IsNaN(o.EliteFactor):
		return fmt.Errorf("%w: elite factor %v < 0", ErrBadOptions, o.EliteFactor)
	case o.PruneFactor != 0 && !(o.PruneFactor >= 1):
		return fmt.Errorf("%w: prune factor %v must be 0 or ≥1", ErrBadOptions, o.PruneFactor)
	case o.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrBadOptions, o.Workers)
	}
	return nil
}

// IterationStats summarises one finished iteration.
type IterationStats struct {
	Iteration     int
	Successes     int     // ants that reached an exit this iteration
	IterBestCost  float64 // +Inf when no ant succeeded
	IterWorstCost float64 // 0 when no ant succeeded
	BestCost      float64 // global best so far, +Inf when none
	MinPheromone  float64
	MaxPheromone  float64
}

// Result is the outcome of a colony run.
type Result struct {
	// Path runs from the start to an exit; nil when no ant succeeded.
	Path []gridgraph.Cell
	// Cost is the cost-field cost of Path.
	Cost float64
	// Iterations is the number of completed iterations.
	Iterations int
	// Successes counts successful ant walks over all iterations.
	Successes int
	// BestIteration is the iteration that found Path (-1 if none).
	BestIteration int
}
