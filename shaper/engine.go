package shaper

import (
	"fmt"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/scene"
)

// mmPerPoint converts points to millimetres.
const mmPerPoint = 25.4 / 72

// Engine loads glyph outlines and boxes from registered fonts and shapes
// text into graphemes.
type Engine struct {
	fonts   map[fontKey]*face
	missing map[string]bool

	// selection made by SetFontInternal
	cur       *face
	curKey    fontKey
	size, dpi float64

	buf       sfnt.Buffer
	hb        shaping.HarfbuzzShaper
	outlines  *OutlineCache
	graphemes *grapheme.Cache
}

var (
	_ scene.GlyphEngine = (*Engine)(nil)
	_ grapheme.Measurer = (*Engine)(nil)
)

// NewEngine creates an engine with no fonts.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.graphemes == nil {
		cfg.graphemes = grapheme.NewCache()
	}
	if cfg.outlines == nil {
		cfg.outlines = NewOutlineCache(cfg.outlineSize)
	}
	return &Engine{
		fonts:     make(map[fontKey]*face),
		missing:   make(map[string]bool),
		outlines:  cfg.outlines,
		graphemes: cfg.graphemes,
		dpi:       72,
	}
}

// RegisterFont parses a TrueType or OpenType file and makes it available
// as name in the given style. An empty name registers the font under the
// family in its name table. Registering a name and style again replaces
// the font.
func (e *Engine) RegisterFont(name string, style grapheme.Style, data []byte) error {
	f, err := parseFace(name, style, data)
	if err != nil {
		return err
	}
	if name == "" {
		if name = f.familyName(); name == "" {
			return fmt.Errorf("shaper: font has no family name: %w", ErrUnknownFont)
		}
		f.name = name
	}
	key := fontKey{name: name, style: style}
	e.fonts[key] = f
	delete(e.missing, name)
	if e.curKey == key {
		e.cur = f
	}
	slogger().Debug("shaper: font registered", "name", name, "style", style,
		"glyphs", f.sfnt.NumGlyphs(), "upem", f.upem)
	return nil
}

// Fonts returns the number of registered fonts.
func (e *Engine) Fonts() int {
	return len(e.fonts)
}

// lookup finds the font for name in style, falling back to the regular
// style of the same name.
func (e *Engine) lookup(name string, style grapheme.Style) (*face, error) {
	if f, ok := e.fonts[fontKey{name, style}]; ok {
		return f, nil
	}
	if f, ok := e.fonts[fontKey{name, 0}]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
}

// SetFontInternal selects the font used by LoadGlyphPath and GlyphBBox.
// size is in points. An unknown name clears the selection and is logged
// once.
func (e *Engine) SetFontInternal(name string, size float64, style grapheme.Style, dpi float64) {
	e.size, e.dpi = size, dpi
	key := fontKey{name, style}
	if e.cur != nil && key == e.curKey {
		return
	}
	e.curKey = key
	f, err := e.lookup(name, style)
	if err != nil && !e.missing[name] {
		e.missing[name] = true
		slogger().Warn("shaper: unknown font", "name", name, "style", style)
	}
	e.cur = f
}

// glyphIndex maps code to a glyph of f. Characters the font lacks map to
// glyph 0, the notdef box.
func (e *Engine) glyphIndex(f *face, code rune, isGID bool) (sfnt.GlyphIndex, error) {
	if isGID {
		if code < 0 || int(code) >= f.sfnt.NumGlyphs() {
			return 0, fmt.Errorf("shaper: glyph %d out of range in %q", code, f.name)
		}
		return sfnt.GlyphIndex(code), nil
	}
	gid, err := f.sfnt.GlyphIndex(&e.buf, code)
	if err != nil {
		return 0, fmt.Errorf("shaper: map %q in %q: %w", code, f.name, err)
	}
	if gid == 0 {
		slogger().Debug("shaper: character not in font", "font", f.name, "code", code)
	}
	return gid, nil
}

// LoadGlyphPath emits the outline of one glyph with its origin at (x, y)
// millimetres as a single filled path. Glyphs without contours emit
// nothing.
func (e *Engine) LoadGlyphPath(code rune, isGID bool, x, y float64, sink scene.PathSink) error {
	f := e.cur
	if f == nil {
		return ErrNoFont
	}
	gid, err := e.glyphIndex(f, code, isGID)
	if err != nil {
		return err
	}
	o, err := e.loadOutline(f, gid)
	if err != nil {
		return err
	}
	if len(o.segs) == 0 {
		return nil
	}

	k := e.size * mmPerPoint / f.upem
	pt := func(p fixed.Point26_6) (float64, float64) {
		return x + float64(p.X)/64*k, y + float64(p.Y)/64*k
	}

	sink.BeginPath()
	open := false
	for _, s := range o.segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.ClosePath()
			}
			sink.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			sink.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			px, py := pt(s.Args[1])
			sink.QuadTo(cx, cy, px, py)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			px, py := pt(s.Args[2])
			sink.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if open {
		sink.ClosePath()
	}
	sink.FillPath()
	return nil
}

// GlyphBBox returns the ink box of glyph gid of the selected font in
// pixels at the selected dpi, Y pointing up. Without a font, or for a
// glyph that cannot be loaded, it returns the zero box.
func (e *Engine) GlyphBBox(gid grapheme.GlyphID) grapheme.BBox {
	f := e.cur
	if f == nil {
		return grapheme.BBox{}
	}
	o, err := e.loadOutline(f, sfnt.GlyphIndex(gid))
	if err != nil {
		slogger().Warn("shaper: glyph box unavailable", "font", f.name, "gid", gid, "err", err)
		return grapheme.BBox{}
	}
	k := e.size * e.dpi / 72 / f.upem / 64
	b := o.bounds
	return grapheme.BBox{
		MinX: float64(b.Min.X) * k,
		MinY: -float64(b.Max.Y) * k,
		MaxX: float64(b.Max.X) * k,
		MaxY: -float64(b.Min.Y) * k,
	}
}

// Graphemes returns the cache Shape interns into.
func (e *Engine) Graphemes() *grapheme.Cache {
	return e.graphemes
}

// Outlines returns the engine's outline cache.
func (e *Engine) Outlines() *OutlineCache {
	return e.outlines
}
