package geom

import "math"

// Edge is a directed segment from P0 to P1.
type Edge struct {
	P0, P1 Point
}

// Vector returns P1 - P0.
func (e Edge) Vector() Point {
	return e.P1.Sub(e.P0)
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	return e.P0.Distance(e.P1)
}

// Param returns the parameter t of the orthogonal projection of p onto the
// line through the edge: 0 at P0, 1 at P1. It returns -1 for a zero-length
// edge.
func (e Edge) Param(p Point) float64 {
	d := e.Vector()
	l2 := d.Dot(d)
	if l2 == 0 {
		return -1
	}
	return p.Sub(e.P0).Dot(d) / l2
}

// Edge indices of a BoundsRect.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// BoundsRect is an axis-aligned box carried through an affine transform:
// four directed edges forming a parallelogram.
//
// Edges are oriented as
//
//	EdgeTop    (min,min) -> (max,min)
//	EdgeRight  (max,max) -> (max,min)
//	EdgeBottom (max,max) -> (min,max)
//	EdgeLeft   (min,max) -> (min,min)
//
// so the two vertical edges share a direction, and so do the two
// horizontal ones, up to the sign the transform introduces.
type BoundsRect struct {
	Edges [4]Edge
}

// NewBoundsRect transforms the corners of r through m.
func NewBoundsRect(r Rect, m Matrix) BoundsRect {
	tl := m.TransformPoint(Point{r.MinX, r.MinY})
	tr := m.TransformPoint(Point{r.MaxX, r.MinY})
	br := m.TransformPoint(Point{r.MaxX, r.MaxY})
	bl := m.TransformPoint(Point{r.MinX, r.MaxY})
	return BoundsRect{Edges: [4]Edge{
		EdgeTop:    {tl, tr},
		EdgeRight:  {br, tr},
		EdgeBottom: {br, bl},
		EdgeLeft:   {bl, tl},
	}}
}

func (b *BoundsRect) corners() [4]Point {
	return [4]Point{
		b.Edges[EdgeTop].P0, b.Edges[EdgeTop].P1,
		b.Edges[EdgeBottom].P0, b.Edges[EdgeBottom].P1,
	}
}

// Intersects reports whether the two parallelograms overlap, touching
// included. It runs a separating-axis test over the edge normals of both
// shapes.
func (b *BoundsRect) Intersects(o *BoundsRect) bool {
	ca, cb := b.corners(), o.corners()
	axes := [4]Point{
		b.Edges[EdgeTop].Vector(), b.Edges[EdgeRight].Vector(),
		o.Edges[EdgeTop].Vector(), o.Edges[EdgeRight].Vector(),
	}
	for _, d := range axes {
		n := Point{X: -d.Y, Y: d.X}
		if n.X == 0 && n.Y == 0 {
			continue
		}
		minA, maxA := projectCorners(ca, n)
		minB, maxB := projectCorners(cb, n)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	// Degenerate boxes (zero area) still collide when a point is shared.
	return true
}

func projectCorners(pts [4]Point, axis Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		v := p.Dot(axis)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Projection returns the signed length of the part of edge that other
// covers when projected onto it. The result is 0 unless at least one end
// of other projects inside edge. The sign is positive when other runs in
// the same direction as edge.
func Projection(edge, other Edge) float64 {
	t0 := edge.Param(other.P0)
	t1 := edge.Param(other.P1)
	inside := func(t float64) bool { return t >= 0 && t <= 1 }
	if !inside(t0) && !inside(t1) {
		return 0
	}
	clamp := func(t float64) float64 { return math.Max(0, math.Min(1, t)) }
	return (clamp(t1) - clamp(t0)) * edge.Length()
}

// Overlap quantifies how much two placed boxes collide.
type Overlap struct {
	// DX is the largest horizontal overlap, already divided by the
	// placement distance. It is never negative.
	DX float64

	// DY is the vertical overlap as a non-positive number: 0 means no
	// overlap, more negative means more.
	DY float64
}

// ProjectOnto measures how much o overlaps b along b's own axes.
func (b *BoundsRect) ProjectOnto(o *BoundsRect) Overlap {
	var res Overlap
	for _, i := range [...]int{EdgeRight, EdgeLeft} {
		for _, j := range [...]int{EdgeRight, EdgeLeft} {
			res.DY = math.Min(res.DY, -math.Abs(Projection(b.Edges[i], o.Edges[j])))
		}
	}
	for _, i := range [...]int{EdgeBottom, EdgeTop} {
		for _, j := range [...]int{EdgeRight, EdgeLeft} {
			res.DX = math.Max(res.DX, math.Abs(Projection(b.Edges[i], o.Edges[j])))
		}
	}
	return res
}

// IntersectionBounds transforms r1 by m1 and r2 by m2 and, when the two
// boxes intersect, returns their overlap with DX divided by dist. dist is
// the number of placements between the two boxes and must be positive;
// non-positive values are treated as 1. Non-intersecting boxes yield the
// zero Overlap.
func IntersectionBounds(r1 Rect, m1 Matrix, r2 Rect, m2 Matrix, dist int) Overlap {
	if r1.IsEmpty() || r2.IsEmpty() {
		return Overlap{}
	}
	a := NewBoundsRect(r1, m1)
	b := NewBoundsRect(r2, m2)
	if !a.Intersects(&b) {
		return Overlap{}
	}
	res := a.ProjectOnto(&b)
	if dist > 1 {
		res.DX /= float64(dist)
	}
	return res
}
