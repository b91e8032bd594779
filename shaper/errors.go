package shaper

import "errors"

// Sentinel errors for the shaper package.
var (
	// ErrEmptyFontData is returned by RegisterFont for empty data.
	ErrEmptyFontData = errors.New("shaper: empty font data")

	// ErrUnknownFont is returned when a name has no registered font.
	ErrUnknownFont = errors.New("shaper: unknown font")

	// ErrNoFont is returned by LoadGlyphPath before a font is selected.
	ErrNoFont = errors.New("shaper: no font selected")
)
