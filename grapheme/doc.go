// Package grapheme interns shaped glyph runs ("graphemes") behind small
// integer handles.
//
// A glyph engine shapes a cluster of text, then records the result with
// Begin, one AddGlyph per glyph and a final Intern carrying the source code
// points. Identical runs within one font and style map to the same Handle,
// so layout can store handles instead of glyph arrays and replay them with
// Draw on every repaint.
//
// # Units
//
// Advances and offsets are stored as 26.6 fixed-point values measured at
// MeasureFontSize points. Coef converts such a value to millimetres for a
// 1pt font; multiply by the real font size to get the drawn distance.
//
// # Lifetime
//
// A Cache is owned by one document session and grows without eviction:
// identical runs recur on every repaint. Reset drops every handle at once,
// for example after the font substitution table changes. Handle 0
// (NoGrapheme) is reserved and always resolves to an empty run whose code
// points are a single space.
//
// A Cache is not safe for concurrent use.
package grapheme
