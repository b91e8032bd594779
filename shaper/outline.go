package shaper

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textdraw/cache"
)

type outlineKey struct {
	font uint64
	gid  sfnt.GlyphIndex
}

// outline is a glyph loaded at one pixel per font unit, Y pointing down.
type outline struct {
	segs   []sfnt.Segment
	bounds fixed.Rectangle26_6
}

// OutlineCache holds glyph outlines independent of font size. It is safe
// for concurrent use and may be shared by engines.
type OutlineCache struct {
	c *cache.ShardedCache[outlineKey, *outline]
}

// NewOutlineCache creates an outline cache holding about capacity glyphs.
func NewOutlineCache(capacity int) *OutlineCache {
	return &OutlineCache{c: cache.NewSharded[outlineKey, *outline](capacity)}
}

// Len returns the number of cached outlines.
func (c *OutlineCache) Len() int { return c.c.Len() }

// Stats returns hit and eviction counters.
func (c *OutlineCache) Stats() cache.Stats { return c.c.Stats() }

// Clear drops every cached outline.
func (c *OutlineCache) Clear() { c.c.Clear() }

// loadOutline returns the outline of gid in f. Failed loads are not
// cached.
func (e *Engine) loadOutline(f *face, gid sfnt.GlyphIndex) (*outline, error) {
	key := outlineKey{font: f.id, gid: gid}
	if o, ok := e.outlines.c.Get(key); ok {
		return o, nil
	}

	ppem := fixed.I(int(f.upem))
	segs, err := f.sfnt.LoadGlyph(&e.buf, gid, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("shaper: load glyph %d of %q: %w", gid, f.name, err)
	}
	// segs is backed by e.buf.
	o := &outline{segs: append([]sfnt.Segment(nil), segs...)}
	if len(segs) > 0 {
		o.bounds, _, err = f.sfnt.GlyphBounds(&e.buf, gid, ppem, xfont.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("shaper: bounds of glyph %d of %q: %w", gid, f.name, err)
		}
	}
	e.outlines.c.Set(key, o)
	return o, nil
}
