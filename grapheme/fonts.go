package grapheme

// Style is the font style nibble stored in a FontKey.
type Style uint8

// Style bits.
const (
	StyleRegular Style = 0
	StyleBold    Style = 1
	StyleItalic  Style = 2
)

// Bold reports whether the bold bit is set.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Italic reports whether the italic bit is set.
func (s Style) Italic() bool { return s&StyleItalic != 0 }

// FontKey packs a font id and a style as fontID<<8 | style.
type FontKey int32

// MakeFontKey builds a FontKey.
func MakeFontKey(fontID int, style Style) FontKey {
	return FontKey(int32(fontID)<<8 | int32(style))
}

// FontID returns the font id part of the key.
func (k FontKey) FontID() int { return int(k >> 8) }

// Style returns the style part of the key. Only the low nibble is
// significant.
func (k FontKey) Style() Style { return Style(k & 0xF) }

// FontMap assigns dense ids to font names. Ids start at 1; 0 means
// "no font".
type FontMap struct {
	ids   map[string]int
	names []string
}

// NewFontMap creates an empty map.
func NewFontMap() *FontMap {
	return &FontMap{ids: make(map[string]int), names: []string{""}}
}

// ID returns the id of name, assigning a new one on first use.
func (m *FontMap) ID(name string) int {
	if id, ok := m.ids[name]; ok {
		return id
	}
	id := len(m.names)
	m.ids[name] = id
	m.names = append(m.names, name)
	return id
}

// Lookup returns the id of name without assigning one.
func (m *FontMap) Lookup(name string) (int, bool) {
	id, ok := m.ids[name]
	return id, ok
}

// Name returns the font name for id, or "" if the id is unknown.
func (m *FontMap) Name(id int) string {
	if id <= 0 || id >= len(m.names) {
		return ""
	}
	return m.names[id]
}

// Len returns the number of registered names.
func (m *FontMap) Len() int {
	return len(m.names) - 1
}
