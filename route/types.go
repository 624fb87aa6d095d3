package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// ErrEmptyPath is returned by Summarize for a path without cells.
var ErrEmptyPath = errors.New("route: empty path")

// ErrBadOptions indicates a non-positive cell size or an angle tolerance
// outside [0, π).
var ErrBadOptions = errors.New("route: invalid options")

// DefaultAngleTolerance is 10 degrees, in radians.
const DefaultAngleTolerance = 10 * math.Pi / 180

// Options configures Summarize.
type Options struct {
	// AngleTolerance is the largest direction change, in radians, that is
	// still considered straight.
	AngleTolerance float64
	// CellSize is the distance between neighbouring cell centres, in metres.
	CellSize float64
}

// DefaultOptions returns a 10° tolerance on 1 m cells.
func DefaultOptions() Options {
	return Options{AngleTolerance: DefaultAngleTolerance, CellSize: 1}
}

// Validate reports ErrBadOptions for unusable values.
func (o Options) Validate() error {
	if !(o.CellSize > 0) || math.IsInf(o.CellSize, 1) {
		return fmt.Errorf("%w: cell size %v", ErrBadOptions, o.CellSize)
	}
	if !(o.AngleTolerance >= 0) || o.AngleTolerance >= math.Pi {
		return fmt.Errorf("%w: angle tolerance %v rad", ErrBadOptions, o.AngleTolerance)
	}
	return nil
}

// Turn labels a direction change.
type Turn string

// Turn labels.
const (
	BearLeft  Turn = "bear-left"
	BearRight Turn = "bear-right"
	Left      Turn = "left"
	Right     Turn = "right"
	UTurn     Turn = "u-turn"
)

// Action is the kind of an Instruction.
type Action string

// Instruction actions.
const (
	Head     Action = "head"
	Continue Action = "continue" // turn at a turning point, then walk on
	Arrive   Action = "arrive"
)

// TurningPoint is a path cell where the direction of travel changes.
type TurningPoint struct {
	Cell gridgraph.Cell `json:"cell"`
	// Step is the index of Cell in the path.
	Step int  `json:"step"`
	Turn Turn `json:"turn"`
	// Angle is the direction change in degrees, in (tolerance, 180].
	Angle float64 `json:"angle"`
	// Distance is the path length from the start to Cell, in metres.
	Distance float64 `json:"distance"`
}

// Instruction is one navigation step.
type Instruction struct {
	Action Action `json:"action"`
	// Turn is set for Continue instructions.
	Turn Turn `json:"turn,omitempty"`
	// Heading is the compass heading of the segment, empty for Arrive.
	Heading string `json:"heading,omitempty"`
	// Distance to walk after the manoeuvre, in metres.
	Distance float64 `json:"distance"`
	Text     string  `json:"text"`
}

// Summary is the post-processed form of a path.
type Summary struct {
	Length        float64        `json:"length"`
	TurningPoints []TurningPoint `json:"turning_points"`
	Instructions  []Instruction  `json:"instructions"`
}
