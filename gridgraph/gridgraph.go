// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"
)

// CellCode is the value stored for one cell of a floor layout.
type CellCode uint8

const (
	// Free is an open, walkable cell.
	Free CellCode = 0
	// Wall is a static obstacle.
	Wall CellCode = 1
	// FireAffected marks a cell the layout flags as exposed to fire products.
	// It stays walkable; the fire field decides whether it is safe.
	FireAffected CellCode = 2
	// ExitMarker marks an exit cell in the layout.
	ExitMarker CellCode = 3
	// StartMarker marks a start cell in the layout.
	StartMarker CellCode = 4
)

// Walkable reports whether the code describes a cell an evacuee may enter.
func (c CellCode) Walkable() bool { return c != Wall }

// Cell addresses one cell of the building.
type Cell struct {
	Floor int `json:"floor"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

// String formats the cell as "f<floor>(<row>,<col>)".
func (c Cell) String() string {
	return fmt.Sprintf("f%d(%d,%d)", c.Floor, c.Row, c.Col)
}

// Direction enumerates the eight compass moves, clockwise from north.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	// NumDirections is the number of moves out of a cell.
	NumDirections = 8
)

// offsets holds (dRow, dCol) per Direction. Rows grow southwards.
var offsets = [NumDirections][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

var directionNames = [NumDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the (dRow, dCol) offset of d.
func (d Direction) Delta() (int, int) { return offsets[d][0], offsets[d][1] }

// Diagonal reports whether d is a diagonal move.
func (d Direction) Diagonal() bool { return d%2 == 1 }

// StepCost is the base length of a move in direction d: 1 or √2.
func (d Direction) StepCost() float64 {
	if d.Diagonal() {
		return math.Sqrt2
	}
	return 1
}

func (d Direction) String() string {
	if d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// DirectionBetween returns the direction of a single step from a to b.
// ok is false when b is not one of a's eight neighbours on the same floor.
func DirectionBetween(a, b Cell) (d Direction, ok bool) {
	if a.Floor != b.Floor {
		return 0, false
	}
	dr, dc := b.Row-a.Row, b.Col-a.Col
	for i, off := range offsets {
		if off[0] == dr && off[1] == dc {
			return Direction(i), true
		}
	}
	return 0, false
}

// Neighbor is a move out of a cell.
type Neighbor struct {
	Cell     Cell
	Dir      Direction
	StepCost float64
}

// Building is an immutable multi-floor occupancy grid.
// Codes are stored floor-major: codes[floor*rows*cols + row*cols + col].
type Building struct {
	floors, rows, cols int
	codes              []CellCode
}

// NewBuilding constructs a Building from per-floor integer matrices.
// Every floor must be non-empty, rectangular, and share floor 0's dimensions.
// The input is copied.
// Complexity: O(F×R×C) time and memory.
func NewBuilding(floors ...[][]int) (*Building, error) {
	if len(floors) == 0 || len(floors[0]) == 0 || len(floors[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(floors[0]), len(floors[0][0])
	b := &Building{
		floors: len(floors),
		rows:   rows,
		cols:   cols,
		codes:  make([]CellCode, len(floors)*rows*cols),
	}
	for f, layout := range floors {
		if len(layout) != rows {
			return nil, fmt.Errorf("%w: floor %d has %d rows, want %d", ErrNonRectangular, f, len(layout), rows)
		}
		for r, row := range layout {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: floor %d row %d has %d columns, want %d", ErrNonRectangular, f, r, len(row), cols)
			}
			for c, v := range row {
				if v < int(Free) || v > int(StartMarker) {
					return nil, fmt.Errorf("%w: %d at %v", ErrUnknownCellCode, v, Cell{f, r, c})
				}
				b.codes[b.offset(f, r, c)] = CellCode(v)
			}
		}
	}

	return b, nil
}

// Floors returns the number of floors.
func (b *Building) Floors() int { return b.floors }

// Rows returns the number of rows per floor.
func (b *Building) Rows() int { return b.rows }

// Cols returns the number of columns per floor.
func (b *Building) Cols() int { return b.cols }

// CellsPerFloor returns Rows()*Cols().
func (b *Building) CellsPerFloor() int { return b.rows * b.cols }

// InBounds reports whether c lies inside the building.
// Complexity: O(1).
func (b *Building) InBounds(c Cell) bool {
	return c.Floor >= 0 && c.Floor < b.floors &&
		c.Row >= 0 && c.Row < b.rows &&
		c.Col >= 0 && c.Col < b.cols
}

// Validate returns ErrInvalidCoordinate, annotated with c and the building
// dimensions, when c lies outside the building.
func (b *Building) Validate(c Cell) error {
	if b.InBounds(c) {
		return nil
	}
	return fmt.Errorf("%w: %v outside %d floors of %dx%d", ErrInvalidCoordinate, c, b.floors, b.rows, b.cols)
}

// Code returns the layout code of c.
func (b *Building) Code(c Cell) (CellCode, error) {
	if err := b.Validate(c); err != nil {
		return 0, err
	}
	return b.codes[b.offset(c.Floor, c.Row, c.Col)], nil
}

// IsWalkable reports whether (floor,row,col) is not a wall.
func (b *Building) IsWalkable(floor, row, col int) (bool, error) {
	code, err := b.Code(Cell{floor, row, col})
	if err != nil {
		return false, err
	}
	return code.Walkable(), nil
}

// Neighbors returns the walkable moves out of (floor,row,col).
// Diagonal moves whose orthogonal intermediates include a wall are omitted.
// Complexity: O(8).
func (b *Building) Neighbors(floor, row, col int) ([]Neighbor, error) {
	c := Cell{floor, row, col}
	if err := b.Validate(c); err != nil {
		return nil, err
	}
	return b.AppendNeighbors(nil, c), nil
}

// AppendNeighbors appends the walkable moves out of c to dst. c must be in
// bounds; it is the allocation-free variant used inside search loops.
func (b *Building) AppendNeighbors(dst []Neighbor, c Cell) []Neighbor {
	for i := Direction(0); i < NumDirections; i++ {
		dr, dc := i.Delta()
		n := Cell{c.Floor, c.Row + dr, c.Col + dc}
		if !b.InBounds(n) || !b.walkable(n) {
			continue
		}
		if i.Diagonal() && (!b.walkable(Cell{c.Floor, c.Row, c.Col + dc}) || !b.walkable(Cell{c.Floor, c.Row + dr, c.Col})) {
			continue
		}
		dst = append(dst, Neighbor{Cell: n, Dir: i, StepCost: i.StepCost()})
	}

	return dst
}

// CellsWithCode lists the cells of floor carrying code, in row-major order.
func (b *Building) CellsWithCode(floor int, code CellCode) ([]Cell, error) {
	if floor < 0 || floor >= b.floors {
		return nil, fmt.Errorf("%w: floor %d of %d", ErrInvalidCoordinate, floor, b.floors)
	}
	var out []Cell
	base := floor * b.rows * b.cols
	for i := 0; i < b.rows*b.cols; i++ {
		if b.codes[base+i] == code {
			out = append(out, b.Coordinate(floor, i))
		}
	}
	return out, nil
}

// Index maps (row,col) to a floor-local row-major index: row*Cols + col.
// Complexity: O(1).
func (b *Building) Index(row, col int) int {
	return row*b.cols + col
}

// Coordinate converts a floor-local row-major index back to a Cell.
// Complexity: O(1).
func (b *Building) Coordinate(floor, idx int) Cell {
	return Cell{Floor: floor, Row: idx / b.cols, Col: idx % b.cols}
}

func (b *Building) offset(floor, row, col int) int {
	return (floor*b.rows+row)*b.cols + col
}

func (b *Building) walkable(c Cell) bool {
	return b.codes[b.offset(c.Floor, c.Row, c.Col)].Walkable()
}
