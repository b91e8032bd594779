package geom

// Geometry is the mutable path storage of one drawable: an ordered list of
// sub-paths.
type Geometry struct {
	Paths []*Path

	// Smart marks table and shape border geometry. Smart geometry is never
	// merged with neighbouring drawables.
	Smart bool
}

// NewGeometry creates an empty geometry.
func NewGeometry() *Geometry {
	return &Geometry{}
}

// AddPath appends a sub-path.
func (g *Geometry) AddPath(p *Path) {
	g.Paths = append(g.Paths, p)
}

// LastPath returns the last sub-path, or nil if there is none.
func (g *Geometry) LastPath() *Path {
	if len(g.Paths) == 0 {
		return nil
	}
	return g.Paths[len(g.Paths)-1]
}

// IsEmpty reports whether the geometry holds no segments at all.
func (g *Geometry) IsEmpty() bool {
	for _, p := range g.Paths {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// Bounds returns the control-point bounding box of all sub-paths.
func (g *Geometry) Bounds() Rect {
	r := EmptyRect()
	for _, p := range g.Paths {
		r = r.Union(p.Bounds())
	}
	return r
}

// Clone returns a deep copy of g.
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{Paths: make([]*Path, len(g.Paths)), Smart: g.Smart}
	for i, p := range g.Paths {
		c.Paths[i] = p.Clone()
	}
	return c
}

// TakePaths moves all sub-paths out of g and leaves it empty.
func (g *Geometry) TakePaths() []*Path {
	paths := g.Paths
	g.Paths = nil
	return paths
}

// Transform scales every point by scale and then applies m.
// The result lives in the coordinate space of m's output.
func (g *Geometry) Transform(m Matrix, scale float64) {
	for _, p := range g.Paths {
		p.mapPoints(func(pt Point) Point {
			return m.TransformPoint(pt.Mul(scale))
		})
	}
}

// CheckBetweenPolygons re-parameterizes every point between two boundary
// polygons. bounds is the box of the source text band: a point at relative
// position (u, v) inside bounds moves to the point at fraction v between
// top.Sample(u) and bottom.Sample(u).
func (g *Geometry) CheckBetweenPolygons(bounds Rect, top, bottom *Polygon) {
	w, h := bounds.Width(), bounds.Height()
	for _, p := range g.Paths {
		p.mapPoints(func(pt Point) Point {
			u, v := 0.0, 0.0
			if w > Epsilon {
				u = (pt.X - bounds.MinX) / w
			}
			if h > Epsilon {
				v = (pt.Y - bounds.MinY) / h
			}
			a := top.Sample(u, false).Point
			b := bottom.Sample(u, false).Point
			return a.Lerp(b, v)
		})
	}
}

// CheckByPolygon bends every point onto a single boundary polygon.
//
// The x coordinate (times scale) selects the arc-length fraction: relative
// to bounds when bounds is non-nil, otherwise relative to xLimit*scale. The
// point is then pushed along the polygon normal by its distance from the
// baseline: the top of the content when arcDown is set, the bottom
// (contentHeight) otherwise. Input is in content units; output is in the
// polygon's coordinate space.
func (g *Geometry) CheckByPolygon(poly *Polygon, arcDown bool, xLimit, contentHeight, scale float64, bounds *Rect) {
	for _, p := range g.Paths {
		p.mapPoints(func(pt Point) Point {
			x, y := pt.X*scale, pt.Y*scale
			var frac float64
			switch {
			case bounds != nil && bounds.Width() > Epsilon:
				frac = (x - bounds.MinX*scale) / (bounds.Width() * scale)
			case xLimit*scale > Epsilon:
				frac = x / (xLimit * scale)
			}
			s := poly.Sample(frac, true)
			n := s.Normal(arcDown)
			dist := contentHeight*scale - y
			if arcDown {
				dist = y
			}
			return Point{X: s.Point.X + n.X*dist, Y: s.Point.Y + n.Y*dist}
		})
	}
}
