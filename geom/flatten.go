package geom

import "math"

// maxFlattenDepth bounds the recursive subdivision of one curve.
const maxFlattenDepth = 16

// maxCubicPieces bounds SplitCubic for very long curves.
const maxCubicPieces = 512

// Flatten converts the sub-path to a polyline with the given tolerance.
// Contours are concatenated in order; Close returns to the contour start.
func (p *Path) Flatten(tolerance float64) []Point {
	if len(p.Segments) == 0 {
		return nil
	}
	points := make([]Point, 0, len(p.Segments)*4)
	p.FlattenCallback(tolerance, func(pt Point) {
		points = append(points, pt)
	})
	return points
}

// FlattenCallback calls fn for each point of the flattened sub-path.
func (p *Path) FlattenCallback(tolerance float64, fn func(pt Point)) {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	tolSq := tolerance * tolerance

	var current, start Point
	for i := range p.Segments {
		s := &p.Segments[i]
		switch s.Op {
		case OpMoveTo:
			fn(s.Pts[0])
			start, current = s.Pts[0], s.Pts[0]
		case OpLineTo:
			fn(s.Pts[0])
			current = s.Pts[0]
		case OpQuadTo:
			flattenQuad(current, s.Pts[0], s.Pts[1], tolSq, 0, fn)
			current = s.Pts[1]
		case OpCubicTo:
			flattenCubic(current, s.Pts[0], s.Pts[1], s.Pts[2], tolSq, 0, fn)
			current = s.Pts[2]
		case OpClose:
			if current != start {
				fn(start)
			}
			current = start
		}
	}
}

func flattenQuad(p0, p1, p2 Point, tolSq float64, depth int, fn func(Point)) {
	// Flatness: distance from control point to chord midpoint.
	d := p1.Sub(p0.Lerp(p2, 0.5))
	if depth >= maxFlattenDepth || d.Dot(d) <= tolSq {
		fn(p2)
		return
	}
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	mid := p01.Lerp(p12, 0.5)
	flattenQuad(p0, p01, mid, tolSq, depth+1, fn)
	flattenQuad(mid, p12, p2, tolSq, depth+1, fn)
}

func flattenCubic(p0, p1, p2, p3 Point, tolSq float64, depth int, fn func(Point)) {
	if depth >= maxFlattenDepth || cubicFlatness(p0, p1, p2, p3) <= tolSq*16 {
		fn(p3)
		return
	}
	a, b := subdivideCubic(p0, p1, p2, p3, 0.5)
	flattenCubic(a[0], a[1], a[2], a[3], tolSq, depth+1, fn)
	flattenCubic(b[0], b[1], b[2], b[3], tolSq, depth+1, fn)
}

// cubicFlatness returns the squared distance metric of the control points
// from the chord, scaled by 16.
func cubicFlatness(p0, p1, p2, p3 Point) float64 {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - 2*p3.X - p0.X
	vy := 3*p2.Y - 2*p3.Y - p0.Y
	return math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
}

// subdivideCubic splits a cubic at t using de Casteljau.
func subdivideCubic(p0, p1, p2, p3 Point, t float64) ([4]Point, [4]Point) {
	p01 := p0.Lerp(p1, t)
	p12 := p1.Lerp(p2, t)
	p23 := p2.Lerp(p3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)
	return [4]Point{p0, p01, p012, mid}, [4]Point{mid, p123, p23, p3}
}

// SplitCubic partitions a cubic into pieces whose chord length does not
// exceed step. Every piece is itself a cubic; consecutive pieces share
// their end points. A zero-length curve yields one piece.
func SplitCubic(p0, p1, p2, p3 Point, step float64) [][4]Point {
	length := p0.Distance(p1) + p1.Distance(p2) + p2.Distance(p3)
	n := 1
	if step > 0 && length > step {
		n = min(int(math.Ceil(length/step)), maxCubicPieces)
	}

	pieces := make([][4]Point, 0, n)
	rest := [4]Point{p0, p1, p2, p3}
	for i := n; i > 1; i-- {
		// Cutting 1/i off the remainder keeps the pieces uniform in t.
		head, tail := subdivideCubic(rest[0], rest[1], rest[2], rest[3], 1/float64(i))
		pieces = append(pieces, head)
		rest = tail
	}
	return append(pieces, rest)
}
