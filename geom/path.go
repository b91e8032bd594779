package geom

// SegmentOp is the type of a path segment.
type SegmentOp uint8

const (
	// OpMoveTo starts a new contour at Pts[0].
	OpMoveTo SegmentOp = iota
	// OpLineTo draws a straight line to Pts[0].
	OpLineTo
	// OpQuadTo draws a quadratic Bezier with control Pts[0] ending at Pts[1].
	OpQuadTo
	// OpCubicTo draws a cubic Bezier with controls Pts[0], Pts[1] ending at Pts[2].
	OpCubicTo
	// OpClose closes the current contour.
	OpClose
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubicTo:
		return "CubicTo"
	case OpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointCount returns how many entries of Segment.Pts the operation uses.
func (op SegmentOp) PointCount() int {
	switch op {
	case OpMoveTo, OpLineTo:
		return 1
	case OpQuadTo:
		return 2
	case OpCubicTo:
		return 3
	default:
		return 0
	}
}

// Segment is one path command with up to three points.
type Segment struct {
	Op  SegmentOp
	Pts [3]Point
}

// NoCode marks a sub-path that does not belong to a glyph.
const NoCode rune = -1

// Path is one sub-path of a Geometry: an ordered list of segments plus
// its paint mode.
type Path struct {
	Segments []Segment

	// Filled is true when the sub-path is painted with the fill
	// (the "norm" fill mode); false means fill "none".
	Filled bool

	// Stroked is true when the sub-path is outlined with the stroke.
	Stroked bool

	// Code is the character code of the glyph this sub-path draws, or NoCode.
	Code rune
}

// NewPath creates an empty stroked, unfilled sub-path.
func NewPath() *Path {
	return &Path{Stroked: true, Code: NoCode}
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpMoveTo, Pts: [3]Point{{x, y}}})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpLineTo, Pts: [3]Point{{x, y}}})
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpQuadTo, Pts: [3]Point{{cx, cy}, {x, y}}})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: OpCubicTo, Pts: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
}

// IsEmpty reports whether the sub-path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Bounds returns the bounding box of all segment points, control points
// included.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	for i := range p.Segments {
		s := &p.Segments[i]
		for j := 0; j < s.Op.PointCount(); j++ {
			r = r.Extend(s.Pts[j])
		}
	}
	return r
}

// mapPoints replaces every segment point with f(point).
func (p *Path) mapPoints(f func(Point) Point) {
	for i := range p.Segments {
		s := &p.Segments[i]
		for j := 0; j < s.Op.PointCount(); j++ {
			s.Pts[j] = f(s.Pts[j])
		}
	}
}

// Clone returns a deep copy of the sub-path.
func (p *Path) Clone() *Path {
	c := *p
	c.Segments = append([]Segment(nil), p.Segments...)
	return &c
}
