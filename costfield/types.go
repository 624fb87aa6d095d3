// SPDX-License-Identifier: MIT

package costfield

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// Sentinel errors.
var (
	// ErrStartOrExitUnsafe indicates the start or every exit is a wall or
	// above the safety threshold.
	ErrStartOrExitUnsafe = errors.New("costfield: start or exit unsafe")
	// ErrBadOptions indicates invalid cost parameters.
	ErrBadOptions = errors.New("costfield: invalid options")
	// ErrNoExits indicates Build was called without exits.
	ErrNoExits = errors.New("costfield: no exits given")
	// ErrInvalidPath indicates a path with non-adjacent or impassable cells.
	ErrInvalidPath = errors.New("costfield: invalid path")
)

// DefaultPenaltyWeight scales intensity into the cost multiplier.
const DefaultPenaltyWeight = 20.0

// Options configures cost fusion.
type Options struct {
	// PenaltyWeight multiplies intensity in 1 + I·PenaltyWeight; must be > 0.
	PenaltyWeight float64
}

// DefaultOptions returns Options{PenaltyWeight: DefaultPenaltyWeight}.
func DefaultOptions() Options {
	return Options{PenaltyWeight: DefaultPenaltyWeight}
}

// Validate reports ErrBadOptions for a non-positive weight.
func (o Options) Validate() error {
	if !(o.PenaltyWeight > 0) {
		return fmt.Errorf("%w: penalty weight %v must be positive", ErrBadOptions, o.PenaltyWeight)
	}
	return nil
}

// Hazard is the fire information a cost field needs.
// *firefield.Field implements it.
type Hazard interface {
	// At returns the intensity of c in [0,1].
	At(c gridgraph.Cell) float64
	// Threshold returns the highest tolerable intensity.
	Threshold() float64
}

// Move is a traversable step out of a cell.
type Move struct {
	To   int // floor-local index of the target cell
	Dir  gridgraph.Direction
	Cost float64
}
