package geom

import (
	"math"
	"testing"
)

func TestEdgeParam(t *testing.T) {
	e := Edge{Point{0, 0}, Point{10, 0}}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{0, 5}, 0},
		{Point{10, -5}, 1},
		{Point{5, 3}, 0.5},
		{Point{-10, 0}, -1},
	}
	for _, tt := range tests {
		if got := e.Param(tt.p); math.Abs(got-tt.want) > tol {
			t.Errorf("Param(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := (Edge{}).Param(Point{1, 1}); got != -1 {
		t.Errorf("zero edge Param = %v, want -1", got)
	}
}

func TestNewBoundsRectEdges(t *testing.T) {
	b := NewBoundsRect(Rect{0, 0, 2, 1}, Identity())
	want := [4]Edge{
		{Point{0, 0}, Point{2, 0}},
		{Point{2, 1}, Point{2, 0}},
		{Point{2, 1}, Point{0, 1}},
		{Point{0, 1}, Point{0, 0}},
	}
	if b.Edges != want {
		t.Errorf("Edges = %v, want %v", b.Edges, want)
	}
}

func TestBoundsRectIntersects(t *testing.T) {
	unit := Rect{0, 0, 1, 1}
	rot := Matrix{A: math.Cos(math.Pi / 4), B: -math.Sin(math.Pi / 4), D: math.Sin(math.Pi / 4), E: math.Cos(math.Pi / 4)}
	tests := []struct {
		name   string
		m1, m2 Matrix
		want   bool
	}{
		{"same", Identity(), Identity(), true},
		{"overlap", Identity(), Translate(0.5, 0.5), true},
		{"touching", Identity(), Translate(1, 0), true},
		{"apart", Identity(), Translate(3, 0), false},
		{"contained", Scale(4, 4).Multiply(Translate(-0.5, -0.5)), Translate(0.5, 0.5), true},
		{"rotated apart", Identity(), Translate(1.8, 0.5).Multiply(rot), false},
		{"rotated overlap", Identity(), Translate(1.2, 0.2).Multiply(rot), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewBoundsRect(unit, tt.m1)
			b := NewBoundsRect(unit, tt.m2)
			if got := a.Intersects(&b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := b.Intersects(&a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjection(t *testing.T) {
	e := Edge{Point{0, 0}, Point{10, 0}}
	tests := []struct {
		name  string
		other Edge
		want  float64
	}{
		{"inside same dir", Edge{Point{2, 1}, Point{6, 1}}, 4},
		{"inside reversed", Edge{Point{6, 1}, Point{2, 1}}, -4},
		{"partly outside", Edge{Point{8, 0}, Point{20, 0}}, 2},
		{"fully outside", Edge{Point{11, 0}, Point{20, 0}}, 0},
		{"covering", Edge{Point{-5, 0}, Point{20, 0}}, 0},
	}
	for _, tt := range tests {
		if got := Projection(e, tt.other); math.Abs(got-tt.want) > tol {
			t.Errorf("%s: Projection() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIntersectionBounds(t *testing.T) {
	r := Rect{0, 0, 4, 10}

	if got := IntersectionBounds(r, Identity(), r, Translate(20, 0), 1); got != (Overlap{}) {
		t.Errorf("apart = %+v, want zero", got)
	}

	got := IntersectionBounds(r, Identity(), r, Translate(0, 3), 1)
	if got.DY >= 0 {
		t.Errorf("shifted down DY = %v, want < 0", got.DY)
	}
	if got.DX < 0 {
		t.Errorf("DX = %v, want >= 0", got.DX)
	}

	// A sheared neighbour projects its vertical edges onto the horizontal
	// edges, which shows up as DX; dist divides it.
	shear := Matrix{A: 1, B: 0.5, E: 1}
	one := IntersectionBounds(r, Identity(), r, Translate(2, 0).Multiply(shear), 1)
	two := IntersectionBounds(r, Identity(), r, Translate(2, 0).Multiply(shear), 2)
	if one.DX <= 0 {
		t.Fatalf("sheared DX = %v, want > 0", one.DX)
	}
	if math.Abs(two.DX-one.DX/2) > tol {
		t.Errorf("DX with dist 2 = %v, want %v", two.DX, one.DX/2)
	}

	if got := IntersectionBounds(EmptyRect(), Identity(), r, Identity(), 1); got != (Overlap{}) {
		t.Errorf("empty = %+v, want zero", got)
	}
}
