package shaper

import (
	"bytes"
	"fmt"
	"hash/maphash"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/textdraw/grapheme"
)

// fontSeed fingerprints font data so engines that register the same file
// share cached outlines.
var fontSeed = maphash.MakeSeed()

type fontKey struct {
	name  string
	style grapheme.Style
}

// face is one registered font file.
type face struct {
	name  string
	style grapheme.Style

	// id fingerprints the font data.
	id uint64

	sfnt *sfnt.Font
	// text is the go-text view of the same data, used for shaping.
	// font.Font is read-only; a font.Face is made per shaping call.
	text *font.Font

	upem float64
}

func parseFace(name string, style grapheme.Style, data []byte) (*face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	data = bytes.Clone(data)

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("shaper: parse %q: %w", name, err)
	}
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("shaper: parse %q for shaping: %w", name, err)
	}
	return &face{
		name:  name,
		style: style,
		id:    maphash.Bytes(fontSeed, data),
		sfnt:  sf,
		text:  gt.Font,
		upem:  float64(sf.UnitsPerEm()),
	}, nil
}

// familyName returns the family recorded in the font's name table, or the
// empty string.
func (f *face) familyName() string {
	var buf sfnt.Buffer
	if s, err := f.sfnt.Name(&buf, sfnt.NameIDFamily); err == nil {
		return s
	}
	return ""
}
