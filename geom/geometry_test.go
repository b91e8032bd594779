package geom

import (
	"math"
	"testing"
)

func square(x, y, s float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+s, y)
	p.LineTo(x+s, y+s)
	p.LineTo(x, y+s)
	p.Close()
	return p
}

func line(x0, y0, x1, y1 float64) *Polygon {
	return NewPolygon([]Point{{x0, y0}, {x1, y1}})
}

func rectNear(a, b Rect) bool {
	return near(Pt(a.MinX, a.MinY), Pt(b.MinX, b.MinY)) && near(Pt(a.MaxX, a.MaxY), Pt(b.MaxX, b.MaxY))
}

func TestMatrix(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"scale then translate", Translate(10, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 2)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(10, 0)), Pt(1, 1), Pt(22, 2)},
		{"rotate", Matrix{A: 0, B: -1, D: 1, E: 0}, Pt(1, 0), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !near(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if !Identity().IsIdentity() || Translate(1, 0).IsIdentity() {
		t.Error("IsIdentity() wrong")
	}
}

func TestGeometryTransform(t *testing.T) {
	g := NewGeometry()
	g.AddPath(square(0, 0, 1))
	g.Transform(Translate(5, 5), 2)
	want := Rect{MinX: 5, MinY: 5, MaxX: 7, MaxY: 7}
	if got := g.Bounds(); !rectNear(got, want) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestGeometryCloneAndTake(t *testing.T) {
	g := NewGeometry()
	g.AddPath(square(0, 0, 1))
	g.Smart = true

	c := g.Clone()
	if !c.Smart || len(c.Paths) != 1 || c.Paths[0] == g.Paths[0] {
		t.Fatalf("Clone() = %+v, want a deep copy", c)
	}
	c.Transform(Translate(10, 0), 1)
	if g.Bounds().MinX != 0 {
		t.Errorf("transforming the clone moved the original: %+v", g.Bounds())
	}

	if g.LastPath() == nil || g.IsEmpty() {
		t.Error("geometry with a square reports empty")
	}
	paths := g.TakePaths()
	if len(paths) != 1 || len(g.Paths) != 0 || g.LastPath() != nil || !g.IsEmpty() {
		t.Errorf("TakePaths() left %d paths, took %d", len(g.Paths), len(paths))
	}
	if !g.Bounds().IsEmpty() {
		t.Errorf("Bounds() of empty geometry = %+v", g.Bounds())
	}
}

func TestCheckBetweenPolygons(t *testing.T) {
	g := NewGeometry()
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(25, 10)
	p.LineTo(50, 20)
	g.AddPath(p)

	top := line(0, 0, 100, 0)
	bottom := line(0, 40, 100, 40)
	g.CheckBetweenPolygons(Rect{MinX: 0, MinY: 0, MaxX: 50, MaxY: 20}, top, bottom)

	want := []Point{{0, 0}, {50, 20}, {100, 40}}
	for i, s := range g.Paths[0].Segments {
		if !near(s.Pts[0], want[i]) {
			t.Errorf("point %d = %v, want %v", i, s.Pts[0], want[i])
		}
	}
}

func TestCheckByPolygon(t *testing.T) {
	base := line(0, 100, 100, 100)
	tests := []struct {
		name    string
		in      Point
		arcDown bool
		bounds  *Rect
		want    Point
	}{
		{"on baseline", Pt(50, 10), false, nil, Pt(50, 100)},
		{"top of content", Pt(50, 0), false, nil, Pt(50, 90)},
		{"arc down", Pt(50, 4), true, nil, Pt(50, 104)},
		{"band bounds", Pt(25, 10), false, &Rect{MinX: 0, MinY: 0, MaxX: 50, MaxY: 10}, Pt(50, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry()
			p := NewPath()
			p.MoveTo(tt.in.X, tt.in.Y)
			g.AddPath(p)
			g.CheckByPolygon(base, tt.arcDown, 100, 10, 1, tt.bounds)
			if got := g.Paths[0].Segments[0].Pts[0]; !near(got, tt.want) {
				t.Errorf("point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckByPolygonScale(t *testing.T) {
	g := NewGeometry()
	p := NewPath()
	p.MoveTo(25, 5)
	g.AddPath(p)
	// Scale 2 maps x=25 of a 50 wide content to the middle, 10 above.
	g.CheckByPolygon(line(0, 100, 100, 100), false, 50, 10, 2, nil)
	if got := g.Paths[0].Segments[0].Pts[0]; !near(got, Pt(50, 90)) {
		t.Errorf("point = %v, want (50, 90)", got)
	}
}

func TestSplitCubic(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)
	pieces := SplitCubic(p0, p1, p2, p3, 10)
	if len(pieces) != 3 {
		t.Fatalf("len(pieces) = %d, want 3", len(pieces))
	}
	if pieces[0][0] != p0 || !near(pieces[2][3], p3) {
		t.Errorf("pieces span %v..%v, want %v..%v", pieces[0][0], pieces[2][3], p0, p3)
	}
	for i := 1; i < len(pieces); i++ {
		if !near(pieces[i-1][3], pieces[i][0]) {
			t.Errorf("piece %d starts at %v, previous ends at %v", i, pieces[i][0], pieces[i-1][3])
		}
		if !near(pieces[i][0], Pt(float64(i)*10, 0)) {
			t.Errorf("piece %d starts at %v, want (%d, 0)", i, pieces[i][0], i*10)
		}
	}

	if got := SplitCubic(p0, p0, p0, p0, 1); len(got) != 1 {
		t.Errorf("zero-length curve: %d pieces, want 1", len(got))
	}
	if got := SplitCubic(p0, p1, p2, p3, 0); len(got) != 1 {
		t.Errorf("zero step: %d pieces, want 1", len(got))
	}
}

func TestFlatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	pts := p.Flatten(0.1)
	if len(pts) != 2 || pts[0] != Pt(0, 0) || pts[1] != Pt(10, 0) {
		t.Errorf("Flatten(line) = %v", pts)
	}

	// Quarter circle of radius 10: every flattened point stays near it.
	c := NewPath()
	c.MoveTo(10, 0)
	c.CubicTo(10, 10*0.5522847498307936, 10*0.5522847498307936, 10, 0, 10)
	pts = c.Flatten(0.01)
	if len(pts) < 4 {
		t.Fatalf("Flatten(arc) = %d points, want a curve", len(pts))
	}
	for _, pt := range pts {
		if r := math.Hypot(pt.X, pt.Y); math.Abs(r-10) > 0.05 {
			t.Errorf("point %v at radius %v, want about 10", pt, r)
		}
	}
	if !near(pts[len(pts)-1], Pt(0, 10)) {
		t.Errorf("last point = %v, want (0, 10)", pts[len(pts)-1])
	}
}
