// SPDX-License-Identifier: MIT

package costfield

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// Field holds per-cell cost multipliers and impassable flags for one floor.
type Field struct {
	floor, rows, cols int
	threshold         float64
	intensity         []float64
	multiplier        []float64 // 1 + I·PenaltyWeight
	blocked           []bool
	exit              []bool
	start             int
	exits             []int // traversable exits, in request order
	minStep           float64
}

// Build fuses b, hazard and opts into a Field for the floor of start.
//
// Validation order:
//  1. opts (ErrBadOptions), exits non-empty (ErrNoExits).
//  2. start and exits inside b and on start's floor (gridgraph.ErrInvalidCoordinate).
//  3. start traversable, at least one exit traversable (ErrStartOrExitUnsafe).
//
// Complexity: O(R·C) time and memory.
func Build(b *gridgraph.Building, hazard Hazard, start gridgraph.Cell, exits []gridgraph.Cell, opts Options) (*Field, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(exits) == 0 {
		return nil, ErrNoExits
	}
	if err := b.Validate(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	for _, e := range exits {
		if err := b.Validate(e); err != nil {
			return nil, fmt.Errorf("exit: %w", err)
		}
		if e.Floor != start.Floor {
			return nil, fmt.Errorf("%w: exit %v is not on start floor %d", gridgraph.ErrInvalidCoordinate, e, start.Floor)
		}
	}

	n := b.CellsPerFloor()
	f := &Field{
		floor:      start.Floor,
		rows:       b.Rows(),
		cols:       b.Cols(),
		threshold:  hazard.Threshold(),
		intensity:  make([]float64, n),
		multiplier: make([]float64, n),
		blocked:    make([]bool, n),
		exit:       make([]bool, n),
		start:      b.Index(start.Row, start.Col),
	}
	passable := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		c := b.Coordinate(f.floor, i)
		v := hazard.At(c)
		f.intensity[i] = v
		f.multiplier[i] = 1 + v*opts.PenaltyWeight
		walk, _ := b.IsWalkable(c.Floor, c.Row, c.Col)
		f.blocked[i] = !walk || v > f.threshold
		if !f.blocked[i] {
			passable = append(passable, f.multiplier[i])
		}
	}

	if f.blocked[f.start] {
		return nil, fmt.Errorf("%w: start %v (%s)", ErrStartOrExitUnsafe, start, f.describe(f.start))
	}
	var unsafe []string
	for _, e := range exits {
		i := b.Index(e.Row, e.Col)
		if f.blocked[i] {
			unsafe = append(unsafe, fmt.Sprintf("%v (%s)", e, f.describe(i)))
			continue
		}
		if !f.exit[i] {
			f.exit[i] = true
			f.exits = append(f.exits, i)
		}
	}
	if len(f.exits) == 0 {
		return nil, fmt.Errorf("%w: every exit blocked: %s", ErrStartOrExitUnsafe, strings.Join(unsafe, ", "))
	}
	f.minStep = floats.Min(passable)

	return f, nil
}

func (f *Field) describe(i int) string {
	if f.intensity[i] > f.threshold {
		return fmt.Sprintf("intensity %.3f > threshold %.3f", f.intensity[i], f.threshold)
	}
	return "wall"
}

// Floor returns the floor the field covers.
func (f *Field) Floor() int { return f.floor }

// Rows returns the number of rows.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Field) Cols() int { return f.cols }

// Size returns Rows()*Cols().
func (f *Field) Size() int { return f.rows * f.cols }

// Threshold returns the safety threshold the field was built with.
func (f *Field) Threshold() float64 { return f.threshold }

// Start returns the index of the start cell.
func (f *Field) Start() int { return f.start }

// Exits returns the indices of the traversable exits.
func (f *Field) Exits() []int { return f.exits }

// IsExit reports whether i is a traversable exit.
func (f *Field) IsExit(i int) bool { return f.exit[i] }

// Impassable reports whether cell i may not be entered.
func (f *Field) Impassable(i int) bool { return f.blocked[i] }

// Intensity returns the fire intensity of cell i.
func (f *Field) Intensity(i int) float64 { return f.intensity[i] }

// MinStepCost is the cheapest possible single step on this field: an
// orthogonal move into the least-penalised traversable cell.
func (f *Field) MinStepCost() float64 { return f.minStep }

// Index maps a Cell on the field's floor to its index.
func (f *Field) Index(c gridgraph.Cell) int { return c.Row*f.cols + c.Col }

// Cell maps an index back to a Cell.
func (f *Field) Cell(i int) gridgraph.Cell {
	return gridgraph.Cell{Floor: f.floor, Row: i / f.cols, Col: i % f.cols}
}

// AppendMoves appends the traversable moves out of cell i to dst.
// Complexity: O(8).
func (f *Field) AppendMoves(dst []Move, i int) []Move {
	r, c := i/f.cols, i%f.cols
	for d := gridgraph.Direction(0); d < gridgraph.NumDirections; d++ {
		dr, dc := d.Delta()
		nr, nc := r+dr, c+dc
		if !f.passable(nr, nc) {
			continue
		}
		if d.Diagonal() && (!f.passable(r, nc) || !f.passable(nr, c)) {
			continue
		}
		to := nr*f.cols + nc
		dst = append(dst, Move{To: to, Dir: d, Cost: d.StepCost() * f.multiplier[to]})
	}

	return dst
}

// EdgeCost returns the cost of stepping from cell i to cell j, and false
// when the step is not a traversable move.
func (f *Field) EdgeCost(i, j int) (float64, bool) {
	d, ok := gridgraph.DirectionBetween(f.Cell(i), f.Cell(j))
	if !ok {
		return math.Inf(1), false
	}
	r, c := i/f.cols, i%f.cols
	dr, dc := d.Delta()
	if f.blocked[i] || !f.passable(r+dr, c+dc) {
		return math.Inf(1), false
	}
	if d.Diagonal() && (!f.passable(r, c+dc) || !f.passable(r+dr, c)) {
		return math.Inf(1), false
	}
	return d.StepCost() * f.multiplier[j], true
}

// PathCost sums the edge costs along path. It returns ErrInvalidPath if two
// consecutive cells are not a traversable move or a cell is off the field.
func (f *Field) PathCost(path []gridgraph.Cell) (float64, error) {
	var total float64
	for k := 1; k < len(path); k++ {
		a, b := path[k-1], path[k]
		if !f.contains(a) || !f.contains(b) {
			return 0, fmt.Errorf("%w: step %d %v→%v leaves floor %d", ErrInvalidPath, k, a, b, f.floor)
		}
		w, ok := f.EdgeCost(f.Index(a), f.Index(b))
		if !ok {
			return 0, fmt.Errorf("%w: step %d %v→%v is not traversable", ErrInvalidPath, k, a, b)
		}
		total += w
	}
	return total, nil
}

// Octile returns the octile distance between cells i and j: the base
// length of the shortest 8-connected walk ignoring obstacles.
func (f *Field) Octile(i, j int) float64 {
	dr := math.Abs(float64(i/f.cols - j/f.cols))
	dc := math.Abs(float64(i%f.cols - j%f.cols))
	return math.Max(dr, dc) + (math.Sqrt2-1)*math.Min(dr, dc)
}

// Chebyshev returns max(|Δrow|, |Δcol|) between cells i and j.
func (f *Field) Chebyshev(i, j int) float64 {
	dr := math.Abs(float64(i/f.cols - j/f.cols))
	dc := math.Abs(float64(i%f.cols - j%f.cols))
	return math.Max(dr, dc)
}

func (f *Field) passable(r, c int) bool {
	return r >= 0 && r < f.rows && c >= 0 && c < f.cols && !f.blocked[r*f.cols+c]
}

func (f *Field) contains(c gridgraph.Cell) bool {
	return c.Floor == f.floor && c.Row >= 0 && c.Row < f.rows && c.Col >= 0 && c.Col < f.cols
}
