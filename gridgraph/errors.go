package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the layout has no floors, rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: layout must have at least one floor, row and column")
	// ErrNonRectangular indicates ragged rows or floors of differing dimensions.
	ErrNonRectangular = errors.New("gridgraph: all floors must share identical row/column dimensions")
	// ErrUnknownCellCode indicates a layout value that is not a known cell code.
	ErrUnknownCellCode = errors.New("gridgraph: unknown cell code")
	// ErrInvalidCoordinate indicates a floor, row or column outside the building.
	ErrInvalidCoordinate = errors.New("gridgraph: coordinate out of range")
	// ErrMalformedLayout indicates a floor file that cannot be parsed.
	ErrMalformedLayout = errors.New("gridgraph: malformed floor layout")
)
