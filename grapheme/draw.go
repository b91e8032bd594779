package grapheme

import "math"

// GlyphPlacer receives replayed glyphs.
type GlyphPlacer interface {
	// SetFontInternal selects the font for the following placements.
	SetFontInternal(name string, size float64, style Style)

	// PlaceGlyph draws glyph gid with its origin at (x, y) in millimetres.
	PlaceGlyph(gid GlyphID, x, y float64, codePoints []rune)
}

// BBox is a glyph or grapheme bounding box in pixels at the measuring dpi,
// Y pointing up.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Measurer supplies glyph bounding boxes.
type Measurer interface {
	// SetFontInternal selects the font used by GlyphBBox.
	SetFontInternal(name string, size float64, style Style, dpi float64)

	// GlyphBBox returns the box of one glyph of the selected font.
	GlyphBBox(gid GlyphID) BBox
}

// Draw replays h through placer at (x, y). fontSize is in points and scale
// multiplies every distance. Unknown handles draw nothing.
func (c *Cache) Draw(h Handle, placer GlyphPlacer, x, y, fontSize, scale float64) {
	r, ok := c.lookup(h)
	if !ok || len(r.Glyphs) == 0 {
		return
	}
	placer.SetFontInternal(c.FontName(r.Font), fontSize, r.Font.Style())

	k := Coef * fontSize * scale
	if len(r.Glyphs) == 1 {
		g := &r.Glyphs[0]
		placer.PlaceGlyph(g.ID, x+float64(g.OffsetX)*k, y-float64(g.OffsetY)*k, g.CodePoints)
		return
	}
	for i := range r.Glyphs {
		g := &r.Glyphs[i]
		placer.PlaceGlyph(g.ID, x+float64(g.OffsetX)*k, y-float64(g.OffsetY)*k, g.CodePoints)
		x += float64(g.AdvanceX) * k
		y += float64(g.AdvanceY) * k
	}
}

// Width returns the advance of h in millimetres for a 1pt font, or 0 for
// an unknown handle.
func (c *Cache) Width(h Handle) float64 {
	r, ok := c.lookup(h)
	if !ok {
		return 0
	}
	return float64(r.Advance) * Coef
}

// BBox returns the union of the glyph boxes of h, each shifted by the pen
// advance, in pixels at dpi. A non-positive dpi means 72. Unknown or empty
// handles return the zero box.
func (c *Cache) BBox(h Handle, m Measurer, fontSize, dpi float64) BBox {
	r, ok := c.lookup(h)
	if !ok || len(r.Glyphs) == 0 {
		return BBox{}
	}
	if dpi <= 0 {
		dpi = 72
	}
	m.SetFontInternal(c.FontName(r.Font), fontSize, r.Font.Style(), dpi)

	box := m.GlyphBBox(r.Glyphs[0].ID)
	if len(r.Glyphs) == 1 {
		return box
	}

	k := Coef * fontSize * dpi / 25.4
	var x, y float64
	for i := range r.Glyphs {
		g := &r.Glyphs[i]
		b := m.GlyphBBox(g.ID)
		box.MinX = math.Min(box.MinX, x+b.MinX)
		box.MaxX = math.Max(box.MaxX, x+b.MaxX)
		box.MinY = math.Min(box.MinY, y+b.MinY)
		box.MaxY = math.Max(box.MaxY, y+b.MaxY)
		x += float64(g.AdvanceX) * k
		y += float64(g.AdvanceY) * k
	}
	return box
}

// CodePoints returns the source characters of h in glyph order.
// NoGrapheme yields a single space; unknown handles yield nil.
func (c *Cache) CodePoints(h Handle) []rune {
	if h == NoGrapheme {
		return []rune{' '}
	}
	r, ok := c.lookup(h)
	if !ok {
		return nil
	}
	if len(r.Glyphs) == 1 {
		return r.Glyphs[0].CodePoints
	}
	var out []rune
	for i := range r.Glyphs {
		out = append(out, r.Glyphs[i].CodePoints...)
	}
	return out
}
