package geom

import "math"

// Rect is an axis-aligned bounding box. The zero value is a degenerate box
// at the origin; use EmptyRect for an accumulator that any point extends.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyRect returns an inverted box that becomes valid on the first Extend.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether no point has been added to the box.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Width returns the horizontal extent, or 0 for an empty box.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the vertical extent, or 0 for an empty box.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Extend returns the box grown to contain p.
func (r Rect) Extend(p Point) Rect {
	r.MinX = math.Min(r.MinX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MaxY = math.Max(r.MaxY, p.Y)
	return r
}

// Union returns the smallest box containing both boxes.
func (r Rect) Union(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Scale returns the box with every coordinate multiplied by k.
func (r Rect) Scale(k float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{MinX: r.MinX * k, MinY: r.MinY * k, MaxX: r.MaxX * k, MaxY: r.MaxY * k}
}
