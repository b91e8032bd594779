package grapheme

// Handle identifies an interned grapheme. Handles grow monotonically from 1.
type Handle int32

// NoGrapheme is the reserved handle for "no grapheme".
const NoGrapheme Handle = 0

// Measurement constants shared with the glyph engine.
const (
	// MeasureFontSize is the font size, in points, at which advances and
	// offsets are recorded.
	MeasureFontSize = 576

	// StringMaxLen is the size of the append buffer in record slots: a
	// three-slot header plus six slots per glyph.
	StringMaxLen = 1024

	// Coef converts a recorded 26.6 value to millimetres for a 1pt font.
	Coef = 25.4 / 72 / 64 / MeasureFontSize
)

// GlyphID is a glyph index inside a font.
type GlyphID uint16

// Glyph is one shaped glyph of a grapheme.
type Glyph struct {
	ID       GlyphID
	AdvanceX int32
	AdvanceY int32
	OffsetX  int32
	OffsetY  int32

	// CodePoints are the source characters attributed to this glyph.
	CodePoints []rune
}

// Record is an interned grapheme.
type Record struct {
	Font FontKey

	// Advance is the sum of the glyphs' horizontal advances.
	Advance int32

	Glyphs []Glyph
}

// Config holds configuration for Cache.
type Config struct {
	// MaxGlyphs caps the number of glyphs buffered between Begin and
	// Intern. Extra glyphs are dropped with a warning.
	// Default: (StringMaxLen - 3) / 6
	MaxGlyphs int
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{MaxGlyphs: (StringMaxLen - 3) / 6}
}

type trieNode struct {
	children map[GlyphID]*trieNode
	handle   Handle
}

func (n *trieNode) child(id GlyphID) *trieNode {
	if n.children == nil {
		n.children = make(map[GlyphID]*trieNode)
	}
	c, ok := n.children[id]
	if !ok {
		c = &trieNode{}
		n.children[id] = c
	}
	return c
}

// Cache interns graphemes for one document session.
//
// Lookups go through a trie keyed by font key, then by each glyph id in
// order. A trie hit is returned as is: advances, offsets and code points of
// the new run are not compared against the stored record. Two runs with
// the same glyph ids in the same font are assumed to be the same grapheme.
type Cache struct {
	config Config
	fonts  *FontMap

	records []Record
	index   map[FontKey]*trieNode

	// Append buffer between Begin and Intern.
	buf       Record
	truncated bool
}

// NewCache creates a cache with default configuration.
func NewCache() *Cache {
	return NewCacheWithConfig(DefaultConfig())
}

// NewCacheWithConfig creates a cache with the given configuration.
func NewCacheWithConfig(config Config) *Cache {
	if config.MaxGlyphs <= 0 {
		config.MaxGlyphs = DefaultConfig().MaxGlyphs
	}
	c := &Cache{config: config, fonts: NewFontMap()}
	c.init()
	return c
}

func (c *Cache) init() {
	c.records = []Record{{}}
	c.index = make(map[FontKey]*trieNode)
	c.buf = Record{}
	c.truncated = false
}

// Fonts returns the font id map used for FontKey ids.
func (c *Cache) Fonts() *FontMap {
	return c.fonts
}

// Begin resets the append buffer and starts a grapheme in the given font.
func (c *Cache) Begin(fontID int, style Style) {
	c.buf = Record{Font: MakeFontKey(fontID, style), Glyphs: c.buf.Glyphs[:0]}
	c.truncated = false
}

// BeginFont is Begin with the font id looked up (or assigned) by name.
func (c *Cache) BeginFont(name string, style Style) {
	c.Begin(c.fonts.ID(name), style)
}

// AddGlyph appends a glyph to the buffer.
func (c *Cache) AddGlyph(id GlyphID, advanceX, advanceY, offsetX, offsetY int32) {
	if len(c.buf.Glyphs) >= c.config.MaxGlyphs {
		if !c.truncated {
			slogger().Warn("grapheme: glyph buffer full, dropping glyphs",
				"font", c.buf.Font.FontID(), "max", c.config.MaxGlyphs)
			c.truncated = true
		}
		return
	}
	c.buf.Glyphs = append(c.buf.Glyphs, Glyph{
		ID:       id,
		AdvanceX: advanceX,
		AdvanceY: advanceY,
		OffsetX:  offsetX,
		OffsetY:  offsetY,
	})
	c.buf.Advance += advanceX
}

// Intern finishes the buffered grapheme and returns its handle, reusing
// the handle of an earlier run with the same font key and glyph ids.
//
// Code points are distributed over the glyphs: every glyph gets one, the
// first glyph also takes any surplus, and glyphs left without one get a
// space.
func (c *Cache) Intern(codePoints []rune) Handle {
	root, ok := c.index[c.buf.Font]
	if !ok {
		root = &trieNode{}
		c.index[c.buf.Font] = root
	}
	node := root
	for i := range c.buf.Glyphs {
		node = node.child(c.buf.Glyphs[i].ID)
	}
	if node.handle != NoGrapheme {
		return node.handle
	}

	rec := Record{
		Font:    c.buf.Font,
		Advance: c.buf.Advance,
		Glyphs:  append([]Glyph(nil), c.buf.Glyphs...),
	}
	distributeCodePoints(rec.Glyphs, codePoints)

	h := Handle(len(c.records))
	c.records = append(c.records, rec)
	node.handle = h
	return h
}

func distributeCodePoints(glyphs []Glyph, codePoints []rune) {
	if len(glyphs) == 0 {
		return
	}
	n := len(codePoints)
	pos := 0
	if n == 0 {
		glyphs[0].CodePoints = []rune{' '}
	} else {
		first := max(1, n-len(glyphs)+1)
		glyphs[0].CodePoints = append([]rune(nil), codePoints[:first]...)
		pos = first
	}
	for i := 1; i < len(glyphs); i++ {
		if pos >= n {
			glyphs[i].CodePoints = []rune{' '}
			continue
		}
		glyphs[i].CodePoints = []rune{codePoints[pos]}
		pos++
	}
}

// Len returns the number of interned graphemes, not counting NoGrapheme.
func (c *Cache) Len() int {
	return len(c.records) - 1
}

// Reset drops every interned grapheme. Handles issued before the reset
// become unknown. Font ids are kept.
func (c *Cache) Reset() {
	slogger().Debug("grapheme: cache reset", "graphemes", c.Len())
	c.init()
}

func (c *Cache) lookup(h Handle) (*Record, bool) {
	if h <= NoGrapheme || int(h) >= len(c.records) {
		return nil, false
	}
	return &c.records[h], true
}

// Record returns the interned record for h. The returned slices are shared
// with the cache and must not be modified.
func (c *Cache) Record(h Handle) (Record, bool) {
	r, ok := c.lookup(h)
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// FontKey returns the font key of h.
func (c *Cache) FontKey(h Handle) (FontKey, bool) {
	r, ok := c.lookup(h)
	if !ok {
		return 0, false
	}
	return r.Font, true
}

// FontName returns the font name encoded in key.
func (c *Cache) FontName(key FontKey) string {
	return c.fonts.Name(key.FontID())
}

// FontStyle returns the style encoded in key.
func FontStyle(key FontKey) Style {
	return key.Style()
}
