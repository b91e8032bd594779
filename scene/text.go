package scene

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
)

// FillText draws the first character of text with its origin at (x, y).
func (b *Builder) FillText(x, y float64, text string) {
	for _, r := range text {
		b.FillTextCode(x, y, r)
		return
	}
}

// FillTextCode draws character code with its origin at (x, y) through the
// glyph engine. With glyph division the glyph gets its own drawable tagged
// with code.
func (b *Builder) FillTextCode(x, y float64, code rune) {
	b.drawGlyph(code, false, code, x, y)
}

// PlaceGlyph draws glyph gid of the selected font with its origin at
// (x, y). The first code point tags the glyph. PlaceGlyph makes the
// builder a grapheme.GlyphPlacer.
func (b *Builder) PlaceGlyph(gid grapheme.GlyphID, x, y float64, codePoints []rune) {
	code := geom.NoCode
	if len(codePoints) > 0 {
		code = codePoints[0]
	}
	b.drawGlyph(rune(gid), true, code, x, y)
}

// DrawGrapheme replays an interned grapheme at (x, y).
func (b *Builder) DrawGrapheme(c *grapheme.Cache, h grapheme.Handle, x, y, fontSize float64) {
	c.Draw(h, b, x, y, fontSize, 1)
}

func (b *Builder) drawGlyph(id rune, isGID bool, code rune, x, y float64) {
	b.checkAddNewPath(x, y, code)
	if b.opts.engine == nil {
		return
	}
	b.curCode = code
	defer func() { b.curCode = geom.NoCode }()

	b.opts.engine.SetFontInternal(b.font.name, b.font.size, b.font.style, measureDPI)
	if err := b.opts.engine.LoadGlyphPath(id, isGID, x, y, b); err != nil {
		slogger().Warn("scene: glyph outline unavailable",
			"font", b.font.name, "code", id, "gid", isGID, "err", err)
	}
}

// checkAddNewPath starts a per-glyph drawable when glyphs are divided.
func (b *Builder) checkAddNewPath(x, y float64, code rune) {
	if !b.opts.divGlyphs || b.suppressed() {
		return
	}
	at := geom.Pt(x, y)
	b.resolveActive(false, true, &at, code)
}

// CheckSpaceDraw closes the current word of every open paragraph. Layout
// calls it at each space.
func (b *Builder) CheckSpaceDraw() {
	for _, n := range b.stack {
		if p, ok := n.(*Paragraph); ok {
			p.checkWord()
		}
	}
}

var (
	_ PathSink             = (*Builder)(nil)
	_ grapheme.GlyphPlacer = (*Builder)(nil)
)
