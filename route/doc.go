// Package route turns a raw cell path into what an evacuee can follow:
// total length, turning points and turn-by-turn instructions.
//
// Geometry uses cell centres with columns growing east and rows growing
// south. A cell is a turning point when the angle between the step that
// enters it and the step that leaves it exceeds Options.AngleTolerance.
// Turns are labelled by side (the sign of the 2D cross product of the two
// steps) and sharpness:
//
//	angle ≤ 45°   bear left / bear right
//	angle ≤ 135°  left / right
//	otherwise     u-turn
//
// Instructions are one "head" segment, one segment per turning point, and a
// final "arrive" instruction with zero distance.
package route
