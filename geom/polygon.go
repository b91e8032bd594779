package geom

import (
	"math"
	"sort"
)

// Polygon is an immutable polyline with a precomputed cumulative arc-length
// table. It maps normalized arc-length positions to points and local
// tangents.
type Polygon struct {
	points []Point
	// lengths[i] is the arc length from points[0] to points[i].
	lengths []float64
}

// PolygonPoint is the result of sampling a Polygon.
type PolygonPoint struct {
	// Point is the interpolated position.
	Point Point

	// P1 and P2 bracket Point on the polygon. When a tangent was requested
	// they form a non-degenerate pair whose direction is the local tangent.
	P1, P2 Point
}

// NewPolygon wraps points. The slice is not copied and must not be modified
// afterwards.
func NewPolygon(points []Point) *Polygon {
	lengths := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		lengths[i] = lengths[i-1] + points[i].Distance(points[i-1])
	}
	return &Polygon{points: points, lengths: lengths}
}

// Points returns the wrapped points.
func (p *Polygon) Points() []Point {
	return p.points
}

// Length returns the total arc length.
func (p *Polygon) Length() float64 {
	if len(p.lengths) == 0 {
		return 0
	}
	return p.lengths[len(p.lengths)-1]
}

// Sample returns the point at the given fraction of the total arc length.
// The fraction is clamped to [0, 1]. With needTangent set, P1 and P2 are
// widened outward until they no longer coincide; if the whole polygon is
// degenerate at that location P2 is P1 shifted by Epsilon along X.
func (p *Polygon) Sample(fraction float64, needTangent bool) PolygonPoint {
	n := len(p.points)
	switch n {
	case 0:
		return PolygonPoint{P2: Point{X: Epsilon}}
	case 1:
		pt := p.points[0]
		return PolygonPoint{Point: pt, P1: pt, P2: Point{X: pt.X + Epsilon, Y: pt.Y}}
	}

	fraction = math.Max(0, math.Min(1, fraction))
	target := p.Length() * fraction

	// Largest i with lengths[i] <= target, kept inside [0, n-2] so that
	// the bracketing segment is i..i+1.
	i := sort.Search(n, func(k int) bool { return p.lengths[k] > target }) - 1
	i = max(0, min(i, n-2))

	var t float64
	if d := p.lengths[i+1] - p.lengths[i]; d != 0 {
		t = (target - p.lengths[i]) / d
	}
	a, b := p.points[i], p.points[i+1]
	res := PolygonPoint{Point: a.Lerp(b, t), P1: a, P2: b}
	if !needTangent {
		return res
	}

	left, right := i, i+1
	for right+1 < n && p.points[left].Near(p.points[right], Epsilon) {
		right++
	}
	for left > 0 && p.points[left].Near(p.points[right], Epsilon) {
		left--
	}
	if p.points[left].Near(p.points[right], Epsilon) {
		res.P2 = Point{X: res.P1.X + Epsilon, Y: res.P1.Y}
		return res
	}
	res.P1, res.P2 = p.points[left], p.points[right]
	return res
}

// Tangent returns the direction P2 - P1.
func (pp PolygonPoint) Tangent() Point {
	return pp.P2.Sub(pp.P1)
}

// Normal returns the unit normal of the sampled tangent. The normal points
// to the left of the walking direction (up for a left-to-right baseline in
// Y-down coordinates); reversed walks it to the other side.
func (pp PolygonPoint) Normal(reversed bool) Point {
	return unitNormal(pp.Tangent(), reversed)
}

func unitNormal(d Point, reversed bool) Point {
	if reversed {
		d = d.Mul(-1)
	}
	l := d.Length()
	if l < 1e-12 {
		return Point{Y: -1}
	}
	return Point{X: d.Y / l, Y: -d.X / l}
}
