// Package gridgraph treats a multi-floor building layout as a grid graph
// and answers the walkability and adjacency queries every route search
// in this module is built on.
//
// What:
//
//   - Building wraps floors×rows×cols cell codes in one floor-major slice.
//   - All floors share the same row/column dimensions.
//   - Movement is 8-directional: orthogonal steps cost 1, diagonal steps √2.
//   - A diagonal step is rejected when either orthogonal intermediate cell
//     is a wall (no cutting corners).
//   - ComponentLabels labels structurally connected regions of a floor.
//   - LoadCSV / LoadText / LoadFloorFiles read exported floor layouts.
//
// Cell codes:
//
//   - 0 Free, 2 FireAffected, 3 ExitMarker, 4 StartMarker: walkable.
//   - 1 Wall: never walkable.
//
// Complexity:
//
//   - IsWalkable, InBounds, Index, Coordinate: O(1).
//   - Neighbors: O(8).
//   - ComponentLabels: O(R×C×8), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: a floor has no rows or no columns, or no floors given.
//   - ErrNonRectangular: ragged rows, or floors with differing dimensions.
//   - ErrUnknownCellCode: a layout value outside the known cell codes.
//   - ErrInvalidCoordinate: floor/row/col out of range.
//
// A Building is immutable after construction and safe for concurrent use.
package gridgraph
