package scene

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
)

// Canvas receives the recorded tree when it is drawn.
type Canvas interface {
	// FillGeometry paints the filled sub-paths of g with fill.
	FillGeometry(g *geom.Geometry, fill paint.Fill, transform geom.Matrix)

	// StrokeGeometry outlines the stroked sub-paths of g with stroke.
	StrokeGeometry(g *geom.Geometry, stroke *paint.Stroke, transform geom.Matrix)
}

// Drawing is an embedded object (picture, chart) recorded with the content
// and drawn before it.
type Drawing interface {
	Draw(c Canvas)
}

// PathSink receives glyph outlines from a GlyphEngine. Builder implements
// it.
type PathSink interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	FillPath()
}

// GlyphEngine turns characters or glyph ids of the selected font into
// outlines.
type GlyphEngine interface {
	// SetFontInternal selects a font by resolved name, size in points and
	// style at the given dpi.
	SetFontInternal(name string, size float64, style grapheme.Style, dpi float64)

	// LoadGlyphPath emits the outline of one glyph with its origin at
	// (x, y) millimetres into sink. code is a glyph id when isGID is set
	// and a character otherwise.
	LoadGlyphPath(code rune, isGID bool, x, y float64, sink PathSink) error
}

// FontResolver maps a requested family and style to an installed font
// name and the style that font provides natively.
type FontResolver interface {
	Resolve(family string, style grapheme.Style) (name string, base grapheme.Style)
}

type identityResolver struct{}

func (identityResolver) Resolve(family string, style grapheme.Style) (string, grapheme.Style) {
	return family, style
}

// Comment marks a commented range of text art. Drawables recorded while a
// comment is active carry it and are never merged.
type Comment struct {
	ID     string
	Bounds geom.Rect
}

// FontSlot selects which of the run's font families applies.
type FontSlot uint8

// Font slots.
const (
	SlotASCII FontSlot = iota
	SlotEastAsia
	SlotCS
	SlotHAnsi
)

// RunFonts holds the families of a text run per slot.
type RunFonts struct {
	ASCII, EastAsia, CS, HAnsi string
}

// TextProps are the properties of a text run that affect painting.
type TextProps struct {
	// TextFill takes precedence over Unifill, which takes precedence over
	// Color.
	TextFill paint.Fill
	Unifill  paint.Fill
	Color    *paint.RGBA

	// Outline strokes glyphs and underlines when set.
	Outline *paint.Stroke

	FontSize     float64
	Bold, Italic bool

	// Complex-script variants.
	FontSizeCS       float64
	BoldCS, ItalicCS bool

	Fonts RunFonts
}

// Clone returns a shallow copy. Fills are shared; the outline is copied.
func (p *TextProps) Clone() *TextProps {
	if p == nil {
		return nil
	}
	c := *p
	c.Outline = p.Outline.Clone()
	if p.Color != nil {
		col := *p.Color
		c.Color = &col
	}
	return &c
}

// Shading is a paragraph or cell background request.
type Shading struct {
	// Nil disables shading.
	Nil   bool
	Fill  paint.Fill
	Color *paint.RGBA
}

// Border is a paragraph or cell border request.
type Border struct {
	None  bool
	Fill  paint.Fill
	Color paint.RGBA
}
