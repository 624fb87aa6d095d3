// Package costfield fuses building walkability, a fire-intensity snapshot
// and the stage safety threshold into the traversal costs both route
// searches run on.
//
// Rules:
//
//   - A cell is impassable when it is a wall or its intensity exceeds the
//     threshold (strictly greater).
//   - Entering cell v by a step of base length s (1 or √2) costs
//     s·(1 + I(v)·PenaltyWeight). PenaltyWeight > 0, so cost never falls as
//     intensity rises.
//   - A diagonal step needs both orthogonal intermediates traversable, so
//     routes do not clip burning corners any more than wall corners.
//   - Build fails with ErrStartOrExitUnsafe when the start or every exit is
//     impassable; no search should be attempted in that case.
//
// A Field covers the start floor only and is read-only after Build; it is
// safe to share between the goroutines of one request.
package costfield
