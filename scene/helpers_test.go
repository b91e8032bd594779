package scene

import (
	"errors"
	"testing"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
)

// squareEngine draws every glyph as a filled unit square.
type squareEngine struct {
	font  string
	size  float64
	style grapheme.Style
	dpi   float64

	loaded []rune
	gids   []bool
}

func (e *squareEngine) SetFontInternal(name string, size float64, style grapheme.Style, dpi float64) {
	e.font, e.size, e.style, e.dpi = name, size, style, dpi
}

func (e *squareEngine) LoadGlyphPath(code rune, isGID bool, x, y float64, sink PathSink) error {
	e.loaded = append(e.loaded, code)
	e.gids = append(e.gids, isGID)
	if code == '?' {
		return errors.New("no glyph")
	}
	sink.BeginPath()
	sink.MoveTo(x, y)
	sink.LineTo(x+1, y)
	sink.LineTo(x+1, y-1)
	sink.LineTo(x, y-1)
	sink.ClosePath()
	sink.FillPath()
	return nil
}

func newTestBuilder(opts ...Option) (*Builder, *squareEngine) {
	e := &squareEngine{}
	return NewBuilder(100, 50, append([]Option{WithEngine(e)}, opts...)...), e
}

// text draws s one character every 2mm starting at (x, y).
func text(b *Builder, x, y float64, s string) {
	for i, r := range []rune(s) {
		b.FillTextCode(x+float64(i)*2, y, r)
	}
}

// emptyLine opens and closes a content line.
func emptyLine(b *Builder, index int) {
	b.StartLine(index, RoleContent)
	b.EndStructure()
}

func codes(list []*Drawable) string {
	var s []rune
	for _, d := range list {
		if d.HasCode() {
			s = append(s, d.Code)
		}
	}
	return string(s)
}

func pathCodes(d *Drawable) string {
	var s []rune
	for _, p := range d.Geometry.Paths {
		if p.Code != geom.NoCode {
			s = append(s, p.Code)
		}
	}
	return string(s)
}

func expectContractPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(*ContractError)
		if !ok {
			t.Fatalf("recovered %v, want *ContractError", r)
		}
		if !errors.Is(err, want) {
			t.Errorf("error = %v, want %v", err, want)
		}
	}()
	fn()
}

// recordCanvas records the geometry of every paint call in order.
type recordCanvas struct {
	geoms   []*geom.Geometry
	fills   []paint.Fill
	strokes []*paint.Stroke
}

func (c *recordCanvas) FillGeometry(g *geom.Geometry, f paint.Fill, _ geom.Matrix) {
	c.geoms = append(c.geoms, g)
	c.fills = append(c.fills, f)
}

func (c *recordCanvas) StrokeGeometry(g *geom.Geometry, s *paint.Stroke, _ geom.Matrix) {
	c.geoms = append(c.geoms, g)
	c.strokes = append(c.strokes, s)
}

type markerDrawing struct {
	g *geom.Geometry
}

func (m markerDrawing) Draw(c Canvas) {
	c.FillGeometry(m.g, paint.Solid(paint.White), geom.Identity())
}

var (
	red    = paint.RGB(255, 0, 0)
	blue   = paint.RGB(0, 0, 255)
	green  = paint.RGB(0, 255, 0)
	yellow = paint.RGB(255, 255, 0)
)
