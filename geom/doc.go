// Package geom provides the geometric value types used by the text recorder:
// points, affine matrices, bounds, sub-path geometry, polygon arc-length
// sampling and oriented-bounds intersection.
//
// All operations are epsilon-guarded. Degenerate input (zero-length
// segments, zero arc length, coincident points) yields a sentinel value such
// as a perturbed point or a zero overlap, never a panic.
package geom

// Epsilon is the tolerance used when deciding whether two sampled points
// coincide or a segment is axis-aligned.
const Epsilon = 0.001
