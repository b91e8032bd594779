package warp

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
	"github.com/gogpu/textdraw/scene"
)

const tol = 1e-9

// boxEngine draws every glyph as a filled unit square standing on the
// glyph origin.
type boxEngine struct{}

func (boxEngine) SetFontInternal(string, float64, grapheme.Style, float64) {}

func (boxEngine) LoadGlyphPath(_ rune, _ bool, x, y float64, sink scene.PathSink) error {
	sink.BeginPath()
	sink.MoveTo(x, y)
	sink.LineTo(x+1, y)
	sink.LineTo(x+1, y-1)
	sink.LineTo(x, y-1)
	sink.ClosePath()
	sink.FillPath()
	return nil
}

type glyphAt struct {
	x, y float64
}

// record builds a content with one visual line per entry of lines.
func record(divGlyphs bool, lines ...[]glyphAt) *scene.Content {
	opts := []scene.Option{scene.WithEngine(boxEngine{}), scene.WithLineDivision()}
	if divGlyphs {
		opts = append(opts, scene.WithGlyphDivision())
	}
	b := scene.NewBuilder(100, 50, opts...)
	b.StartContent()
	b.StartParagraph(1)
	for i, line := range lines {
		b.StartLine(i, scene.RoleContent)
		for _, g := range line {
			b.FillTextCode(g.x, g.y, 'x')
		}
		b.EndStructure()
	}
	b.EndStructure()
	b.EndStructure()
	return b.Result()
}

// vertical is an odd preset whose single guide runs down the y axis.
func vertical() *Preset {
	p := geom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(0, 100)
	return &Preset{Name: "custom", Paths: []*geom.Path{p}}
}

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func rectNear(a, b geom.Rect, eps float64) bool {
	return near(a.MinX, b.MinX, eps) && near(a.MinY, b.MinY, eps) &&
		near(a.MaxX, b.MaxX, eps) && near(a.MaxY, b.MaxY, eps)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		lines, bands int
		want         []Span
	}{
		{5, 2, []Span{{0, 3}, {3, 5}}},
		{4, 2, []Span{{0, 2}, {2, 4}}},
		{7, 3, []Span{{0, 3}, {3, 5}, {5, 7}}},
		{1, 1, []Span{{0, 1}}},
		{1, 3, []Span{{0, 1}, {1, 1}, {1, 1}}},
		{0, 2, []Span{{0, 0}, {0, 0}}},
	}
	for _, tt := range tests {
		got := Partition(tt.lines, tt.bands)
		if len(got) != len(tt.want) {
			t.Errorf("Partition(%d, %d) = %v, want %v", tt.lines, tt.bands, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Partition(%d, %d) = %v, want %v", tt.lines, tt.bands, got, tt.want)
				break
			}
		}
	}
	if got := Partition(3, 0); got != nil {
		t.Errorf("Partition(3, 0) = %v, want nil", got)
	}
}

func TestPartitionCoverage(t *testing.T) {
	for lines := 1; lines <= 30; lines++ {
		for bands := 1; bands <= lines; bands++ {
			spans := Partition(lines, bands)
			next := 0
			for i, s := range spans {
				if s.Start != next {
					t.Fatalf("Partition(%d, %d)[%d] starts at %d, want %d", lines, bands, i, s.Start, next)
				}
				if s.Len() == 0 {
					t.Fatalf("Partition(%d, %d)[%d] is empty", lines, bands, i)
				}
				next = s.End
			}
			if next != lines {
				t.Fatalf("Partition(%d, %d) covers %d lines", lines, bands, next)
			}
		}
	}
}

func TestPresetBands(t *testing.T) {
	three := &Preset{Paths: []*geom.Path{geom.NewPath(), geom.NewPath(), geom.NewPath()}}
	tests := []struct {
		name  string
		p     *Preset
		bands int
		odd   bool
	}{
		{"plain", Plain(100, 50), 1, false},
		{"wave", Wave(100, 50), 1, false},
		{"arch up", ArchUp(100, 50), 1, true},
		{"arch down", ArchDown(100, 50), 1, true},
		{"circle", Circle(100, 50), 1, true},
		{"three", three, 3, true},
	}
	for _, tt := range tests {
		if got := tt.p.Bands(); got != tt.bands {
			t.Errorf("%s: Bands() = %d, want %d", tt.name, got, tt.bands)
		}
		if got := tt.p.Odd(); got != tt.odd {
			t.Errorf("%s: Odd() = %v, want %v", tt.name, got, tt.odd)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{NamePlain, NameArchUp, NameArchDown, NameCircle, NameWave} {
		p, err := Lookup(name, 100, 50)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
			continue
		}
		if p.Name != name || len(p.Paths) == 0 {
			t.Errorf("Lookup(%q) = %q with %d paths", name, p.Name, len(p.Paths))
		}
	}
	if _, err := Lookup("textStop", 100, 50); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Lookup(unknown) error = %v, want ErrUnknownPreset", err)
	}
}

func TestArcDown(t *testing.T) {
	up, down := ArchUp(10, 10), ArchDown(10, 10)
	if !up.arcDown(0) || up.arcDown(1) {
		t.Error("arch up: want arcDown only for the first band")
	}
	if down.arcDown(0) {
		t.Error("arch down: arcDown set")
	}
}

func TestArchPolygons(t *testing.T) {
	polys := ArchUp(100, 50).Polygons(PathDivEpsilon)
	if len(polys) != 1 {
		t.Fatalf("len(Polygons()) = %d, want 1", len(polys))
	}
	pts := polys[0].Points()
	if first := pts[0]; first != geom.Pt(0, 25) {
		t.Errorf("first point = %v, want (0, 25)", first)
	}
	if last := pts[len(pts)-1]; !last.Near(geom.Pt(100, 25), 1e-9) {
		t.Errorf("last point = %v, want (100, 25)", last)
	}
	mid := polys[0].Sample(0.5, false).Point
	if !mid.Near(geom.Pt(50, 0), 0.2) {
		t.Errorf("Sample(0.5) = %v, want near (50, 0)", mid)
	}
}

func TestApplyErrors(t *testing.T) {
	c := record(true, []glyphAt{{0, 5}})
	tests := []struct {
		name    string
		c       *scene.Content
		preset  *Preset
		wantErr error
	}{
		{"nil content", nil, Plain(1, 1), ErrNilContent},
		{"nil preset", c, nil, ErrNoPaths},
		{"no paths", c, &Preset{Name: NamePlain}, ErrNoPaths},
		{"no lines", &scene.Content{}, Plain(1, 1), nil},
		{"paragraph groups only", &scene.Content{ByParagraphs: [][]*scene.Line{{}}}, Plain(1, 1), ErrNoLineIndex},
	}
	for _, tt := range tests {
		err := Apply(tt.c, tt.preset, DefaultParams(100, 50))
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: Apply() error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestApplyEvenFillsBox(t *testing.T) {
	c := record(true, []glyphAt{{0, 5}, {2, 5}})
	if err := Apply(c, Plain(100, 50), DefaultParams(100, 50)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	line := c.ByLines[0][0]
	if len(line.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1 after union", len(line.Content))
	}
	d := line.Content[0]
	if n := len(d.Geometry.Paths); n != 2 {
		t.Errorf("merged paths = %d, want 2", n)
	}
	// The band box (0,4)-(3,5) is stretched onto the plain box.
	if got := d.Bounds(); !rectNear(got, geom.Rect{MaxX: 100, MaxY: 50}, 1e-9) {
		t.Errorf("Bounds() = %+v, want the full box", got)
	}
}

func TestApplyOddRotatesGlyphs(t *testing.T) {
	c := record(true, []glyphAt{{50, 0}})
	if err := Apply(c, vertical(), DefaultParams(100, 50)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	d := c.ByLines[0][0].Content[0]
	// The guide runs down the y axis: the glyph origin lands half way and
	// the glyph is turned a quarter clockwise.
	want := geom.Rect{MinX: 0, MinY: 50, MaxX: 1, MaxY: 51}
	if got := d.Bounds(); !rectNear(got, want, 1e-9) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestApplyOddBendsWithoutOrigin(t *testing.T) {
	b := scene.NewBuilder(100, 50, scene.WithLineDivision())
	b.StartContent()
	b.StartParagraph(1)
	b.StartLine(0, scene.RoleContent)
	b.BeginPath()
	b.MoveTo(50, 0)
	b.LineTo(60, 0)
	b.FillPath()
	b.EndStructure()
	b.EndStructure()
	b.EndStructure()
	c := b.Result()

	if err := Apply(c, vertical(), DefaultParams(100, 50)); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	segs := c.ByLines[0][0].Content[0].Geometry.Paths[0].Segments
	if got := segs[0].Pts[0]; !got.Near(geom.Pt(0, 50), tol) {
		t.Errorf("start = %v, want (0, 50)", got)
	}
	if got := segs[1].Pts[0]; !got.Near(geom.Pt(0, 60), tol) {
		t.Errorf("end = %v, want (0, 60)", got)
	}
}

func glyphDrawable(x, y float64) *scene.Drawable {
	d := &scene.Drawable{Geometry: geom.NewGeometry(), Fill: paint.Solid(paint.Black)}
	d.SetOrigin(geom.Pt(x, y))
	return d
}

func TestTransformByOddPath(t *testing.T) {
	elbow := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 50}})
	params := DefaultParams(100, 50)

	a, b := glyphDrawable(20, 50), glyphDrawable(80, 50)
	m, next := TransformByOddPath(a, b, nil, elbow, false, params)
	if next == nil {
		t.Fatal("next point = nil, want the neighbour's sample")
	}
	if want := elbow.Sample(0.8, true); *next != want {
		t.Errorf("next point = %+v, want %+v", *next, want)
	}
	// Tangents (50,0) and (50,50) are averaged.
	n := math.Hypot(100, 50)
	if !near(m.A, 100/n, tol) || !near(m.D, 50/n, tol) || !near(m.B, -50/n, tol) || !near(m.E, 100/n, tol) {
		t.Errorf("rotation = %+v, want cos %v sin %v", m, 100/n, 50/n)
	}
	// The origin sits on the bottom baseline and lands on the path.
	want := elbow.Sample(0.2, false).Point
	if got := m.TransformPoint(geom.Pt(20, 50)); !got.Near(want, 1e-9) {
		t.Errorf("origin -> %v, want %v", got, want)
	}

	m, next = TransformByOddPath(b, nil, next, elbow, false, params)
	if next != nil {
		t.Errorf("next point = %+v, want nil without a neighbour", next)
	}
	c := math.Sqrt2 / 2
	if !near(m.A, c, tol) || !near(m.D, c, tol) {
		t.Errorf("rotation = %+v, want 45 degrees", m)
	}

	// A neighbour to the left is not averaged in.
	_, next = TransformByOddPath(b, a, nil, elbow, false, params)
	if next != nil {
		t.Error("left neighbour produced a next point")
	}
}

func TestTransformByOddPathDegenerate(t *testing.T) {
	dot := geom.NewPolygon([]geom.Point{{X: 5, Y: 5}, {X: 5, Y: 5}})
	m, _ := TransformByOddPath(glyphDrawable(10, 0), nil, nil, dot, true, DefaultParams(100, 50))
	for _, v := range []float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("matrix = %+v, want finite", m)
		}
	}
	if got := m.TransformPoint(geom.Pt(10, 0)); !got.Near(geom.Pt(5, 5), 1e-6) {
		t.Errorf("origin -> %v, want (5, 5)", got)
	}
}

func TestUnionPaths(t *testing.T) {
	withPaths := func(fill paint.Fill, n int) *scene.Drawable {
		d := &scene.Drawable{Geometry: geom.NewGeometry(), Fill: fill}
		for range n {
			p := geom.NewPath()
			p.MoveTo(0, 0)
			p.LineTo(1, 1)
			d.Geometry.AddPath(p)
		}
		return d
	}
	red := paint.Solid(paint.RGB(255, 0, 0))
	blue := paint.Solid(paint.RGB(0, 0, 255))

	t.Run("same style", func(t *testing.T) {
		group := []*scene.Drawable{withPaths(red, 1), withPaths(red, 2), withPaths(red, 1), withPaths(red, 3)}
		absorbed := group[1]
		got := UnionPaths(group)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if n := len(got[0].Geometry.Paths); n != 7 {
			t.Errorf("paths = %d, want 7", n)
		}
		if !absorbed.IsEmpty() {
			t.Error("absorbed drawable kept its paths")
		}
	})

	t.Run("style change splits", func(t *testing.T) {
		group := []*scene.Drawable{withPaths(red, 1), withPaths(red, 1), withPaths(blue, 1), withPaths(red, 1)}
		if got := UnionPaths(group); len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("comment and smart", func(t *testing.T) {
		commented := withPaths(red, 1)
		commented.Comment = &scene.Comment{ID: "c1"}
		smart := withPaths(red, 1)
		smart.Geometry.Smart = true
		group := []*scene.Drawable{withPaths(red, 1), commented, smart, withPaths(red, 1)}
		if got := UnionPaths(group); len(got) != 4 {
			t.Errorf("len = %d, want 4", len(got))
		}
	})
}

func TestUnionByLines(t *testing.T) {
	c := record(true, []glyphAt{{0, 5}, {2, 5}, {4, 5}}, []glyphAt{{0, 10}})
	if got := len(c.ByLines[0][0].Content); got != 3 {
		t.Fatalf("recorded %d drawables, want 3", got)
	}
	if removed := UnionByLines(c); removed != 2 {
		t.Errorf("UnionByLines() = %d, want 2", removed)
	}
	if got := len(c.ByLines[0][0].Content); got != 1 {
		t.Errorf("line 0 drawables = %d, want 1", got)
	}
	if got := len(c.ByLines[1][0].Content); got != 1 {
		t.Errorf("line 1 drawables = %d, want 1", got)
	}
}

func TestContentReduction(t *testing.T) {
	params := DefaultParams(100, 50)

	c := record(true, []glyphAt{{50, 0}, {50.5, 0}})
	before := c.ByLines[0][0].Content[1].Bounds()
	ov, err := ContentReduction(c, vertical(), params)
	if err != nil {
		t.Fatalf("ContentReduction() error = %v", err)
	}
	if ov.DX <= 0 && ov.DY >= 0 {
		t.Errorf("overlapping glyphs: Overlap = %+v, want non-zero", ov)
	}
	if after := c.ByLines[0][0].Content[1].Bounds(); after != before {
		t.Errorf("geometry moved from %+v to %+v", before, after)
	}

	apart := record(true, []glyphAt{{10, 0}, {90, 0}})
	if ov, _ := ContentReduction(apart, vertical(), params); ov != (geom.Overlap{}) {
		t.Errorf("distant glyphs: Overlap = %+v, want zero", ov)
	}

	if ov, _ := ContentReduction(c, Plain(100, 50), params); ov != (geom.Overlap{}) {
		t.Errorf("even preset: Overlap = %+v, want zero", ov)
	}
}

func BenchmarkApply(b *testing.B) {
	line := make([]glyphAt, 40)
	for i := range line {
		line[i] = glyphAt{float64(i) * 2.5, 10}
	}
	for b.Loop() {
		c := record(true, line, line, line)
		_ = Apply(c, ArchUp(100, 50), DefaultParams(100, 50))
	}
}
