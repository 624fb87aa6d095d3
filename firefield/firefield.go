// SPDX-License-Identifier: MIT

package firefield

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// Field is one fire-intensity snapshot. Only the fire floor carries
// intensity; every other floor reads as 0. A Field is read-only after Build.
type Field struct {
	stage     Stage
	profile   Profile
	floor     int
	floors    int
	intensity *mat.Dense
}

// Build computes the snapshot for seeds on floor under stage.
//
// Validation order:
//  1. opts must hold a valid profile for stage (ErrUnknownStage, ErrBadProfile).
//  2. floor and every seed must be inside b (gridgraph.ErrInvalidCoordinate).
//
// Seeds on other floors, or on walls, do not ignite.
func Build(b *gridgraph.Building, seeds []gridgraph.Cell, floor int, stage Stage, opts Options) (*Field, error) {
	p, err := opts.Profile(stage)
	if err != nil {
		return nil, err
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if floor < 0 || floor >= b.Floors() {
		return nil, fmt.Errorf("%w: fire floor %d of %d", gridgraph.ErrInvalidCoordinate, floor, b.Floors())
	}

	f := &Field{
		stage:     stage,
		profile:   p,
		floor:     floor,
		floors:    b.Floors(),
		intensity: mat.NewDense(b.Rows(), b.Cols(), nil),
	}
	ignited := 0
	for _, s := range seeds {
		if err = b.Validate(s); err != nil {
			return nil, fmt.Errorf("fire seed: %w", err)
		}
		if s.Floor != floor {
			continue
		}
		if ok, _ := b.IsWalkable(s.Floor, s.Row, s.Col); !ok {
			continue
		}
		f.intensity.Set(s.Row, s.Col, 1)
		ignited++
	}
	if ignited == 0 {
		return f, nil
	}

	f.diffuse(b)
	f.intensity.Scale(p.Amplification, f.intensity)
	f.intensity.Apply(func(_, _ int, v float64) float64 {
		return clip01(v)
	}, f.intensity)

	return f, nil
}

// Zero returns an all-zero snapshot for floor, used when fire is not
// considered. The stage still selects the safety threshold.
func Zero(b *gridgraph.Building, floor int, stage Stage, opts Options) (*Field, error) {
	return Build(b, nil, floor, stage, opts)
}

// diffuse runs Profile.Passes blending rounds with a double buffer so every
// cell of a round reads the previous round's values.
func (f *Field) diffuse(b *gridgraph.Building) {
	rows, cols := f.intensity.Dims()
	rate := f.profile.DiffusionRate
	next := mat.NewDense(rows, cols, nil)
	nbrs := make([]gridgraph.Neighbor, 0, gridgraph.NumDirections)

	for pass := 0; pass < f.profile.Passes; pass++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := gridgraph.Cell{Floor: f.floor, Row: r, Col: c}
				if ok, _ := b.IsWalkable(f.floor, r, c); !ok {
					next.Set(r, c, 0)
					continue
				}
				cur := f.intensity.At(r, c)
				nbrs = b.AppendNeighbors(nbrs[:0], cell)
				if len(nbrs) == 0 {
					next.Set(r, c, cur)
					continue
				}
				var sum float64
				for _, n := range nbrs {
					sum += f.intensity.At(n.Cell.Row, n.Cell.Col)
				}
				mean := sum / float64(len(nbrs))
				next.Set(r, c, (1-rate)*cur+rate*mean)
			}
		}
		f.intensity, next = next, f.intensity
	}
}

// Intensity returns the fire intensity of (floor,row,col), 0 off the fire
// floor or out of range.
func (f *Field) Intensity(floor, row, col int) float64 {
	if floor != f.floor || floor < 0 || floor >= f.floors {
		return 0
	}
	rows, cols := f.intensity.Dims()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0
	}
	return f.intensity.At(row, col)
}

// At is Intensity for a Cell.
func (f *Field) At(c gridgraph.Cell) float64 {
	return f.Intensity(c.Floor, c.Row, c.Col)
}

// Max returns the highest intensity of the snapshot.
func (f *Field) Max() float64 {
	return floats.Max(f.intensity.RawMatrix().Data)
}

// Stage returns the stage the snapshot was built for.
func (f *Field) Stage() Stage { return f.stage }

// Floor returns the fire floor.
func (f *Field) Floor() int { return f.floor }

// Threshold returns the stage's safety threshold.
func (f *Field) Threshold() float64 { return f.profile.SafetyThreshold }

// Unsafe reports whether c's intensity exceeds the safety threshold.
func (f *Field) Unsafe(c gridgraph.Cell) bool {
	return f.At(c) > f.profile.SafetyThreshold
}

// Matrix returns a copy of the fire floor's intensities.
func (f *Field) Matrix() *mat.Dense {
	return mat.DenseCopyOf(f.intensity)
}

func clip01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
