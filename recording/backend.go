package recording

import (
	"image"
	"io"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
)

// Backend is the interface that all playback targets must implement.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Treat every coordinate as millimetres and convert as needed
type Backend interface {
	// Begin initializes the backend for a scene of the given size in
	// millimetres. It must be called before any drawing operations.
	Begin(width, height float64) error

	// End finalizes the output.
	End() error

	// FillGeometry paints the filled sub-paths of g, each point mapped
	// through m first.
	FillGeometry(g *geom.Geometry, fill paint.Fill, m geom.Matrix)

	// StrokeGeometry outlines the stroked sub-paths of g.
	StrokeGeometry(g *geom.Geometry, stroke *paint.Stroke, m geom.Matrix)

	// SetFont selects the font for the following glyph placements.
	SetFont(name string, size float64, style grapheme.Style)

	// PlaceGlyph draws glyph gid with its origin at (x, y).
	PlaceGlyph(gid grapheme.GlyphID, x, y float64, codePoints []rune)
}

// ImageBackend extends Backend with access to rendered pixels.
// This is implemented by the raster backend.
type ImageBackend interface {
	Backend

	// Image returns the rendered image. It should only be called after
	// End and returns nil before Begin.
	Image() *image.RGBA
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. It should only be called
	// after End.
	WriteTo(w io.Writer) (int64, error)
}
