// Package paint describes how recorded geometry is painted: fills (solid,
// gradient, texture) and strokes.
//
// Fill is a sealed interface; only types in this package implement it.
// Fills and strokes are compared by deep value equality, which is what the
// recorder uses to decide whether a style change starts a new drawable and
// what the union pass uses to merge drawables.
package paint
