// Package raster provides a raster backend for the recording system.
// It renders recordings to an RGBA image with golang.org/x/image/vector.
//
// The raster backend serves as
//   - the reference implementation for other backends
//   - a pixel check that warped scenes still cover what they should
//
// # Supported Features
//
//   - Solid fills and strokes, with the scene transform applied
//   - Gradients painted with their first stop color
//   - PNG output
//
// Glyph placements are counted but not drawn: text reaches the raster
// backend as outlines through FillGeometry.
//
// # Example
//
//	import _ "github.com/gogpu/textdraw/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	img := backend.(recording.ImageBackend).Image()
package raster

import (
	"errors"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
	"github.com/gogpu/textdraw/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// DefaultDPI is the resolution of backends created by NewBackend.
const DefaultDPI = 96

// minStrokePx is the narrowest stroke drawn, in pixels.
const minStrokePx = 1

// ErrEmptyCanvas is returned by Begin for a size below one pixel.
var ErrEmptyCanvas = errors.New("raster: canvas has no pixels")

// Backend renders recordings to an RGBA image.
type Backend struct {
	dpi    float64
	img    *image.RGBA
	z      *vector.Rasterizer
	font   string
	glyphs int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a raster backend at DefaultDPI.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return NewBackendDPI(DefaultDPI)
}

// NewBackendDPI creates a raster backend at the given resolution. A
// non-positive dpi means DefaultDPI.
func NewBackendDPI(dpi float64) *Backend {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Backend{dpi: dpi}
}

// scale converts millimetres to pixels.
func (b *Backend) scale() float64 {
	return b.dpi / 25.4
}

// Begin allocates a transparent image for a width x height mm scene.
func (b *Backend) Begin(width, height float64) error {
	k := b.scale()
	w, h := int(math.Ceil(width*k)), int(math.Ceil(height*k))
	if w <= 0 || h <= 0 {
		return ErrEmptyCanvas
	}
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	b.z = vector.NewRasterizer(w, h)
	b.glyphs = 0
	return nil
}

// End implements recording.Backend.
func (b *Backend) End() error {
	return nil
}

// FillGeometry fills the filled sub-paths of g.
func (b *Backend) FillGeometry(g *geom.Geometry, fill paint.Fill, m geom.Matrix) {
	if b.img == nil {
		return
	}
	size := b.img.Bounds().Size()
	b.z.Reset(size.X, size.Y)
	filled := false
	for _, p := range g.Paths {
		if p.Filled {
			b.addPath(p, m)
			filled = true
		}
	}
	if filled {
		b.paint(fill)
	}
}

// StrokeGeometry outlines the stroked sub-paths of g. Every flattened
// segment becomes a quad of the stroke width.
func (b *Backend) StrokeGeometry(g *geom.Geometry, stroke *paint.Stroke, m geom.Matrix) {
	if b.img == nil {
		return
	}
	size := b.img.Bounds().Size()
	b.z.Reset(size.X, size.Y)
	hw := math.Max(stroke.Width*b.scale(), minStrokePx) / 2
	stroked := false
	for _, p := range g.Paths {
		if !p.Stroked {
			continue
		}
		for _, line := range b.polylines(p, m) {
			for i := 1; i < len(line); i++ {
				b.addQuad(line[i-1], line[i], hw)
			}
		}
		stroked = true
	}
	if stroked {
		b.paint(stroke.Fill)
	}
}

// SetFont implements recording.Backend.
func (b *Backend) SetFont(name string, _ float64, _ grapheme.Style) {
	b.font = name
}

// PlaceGlyph counts the placement.
func (b *Backend) PlaceGlyph(grapheme.GlyphID, float64, float64, []rune) {
	b.glyphs++
}

// Glyphs returns the number of glyph placements since Begin.
func (b *Backend) Glyphs() int {
	return b.glyphs
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrEmptyCanvas
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

func (b *Backend) point(p geom.Point, m geom.Matrix) (float32, float32) {
	p = m.TransformPoint(p).Mul(b.scale())
	return float32(p.X), float32(p.Y)
}

func (b *Backend) addPath(p *geom.Path, m geom.Matrix) {
	for i := range p.Segments {
		s := &p.Segments[i]
		switch s.Op {
		case geom.OpMoveTo:
			b.z.MoveTo(b.point(s.Pts[0], m))
		case geom.OpLineTo:
			b.z.LineTo(b.point(s.Pts[0], m))
		case geom.OpQuadTo:
			bx, by := b.point(s.Pts[0], m)
			cx, cy := b.point(s.Pts[1], m)
			b.z.QuadTo(bx, by, cx, cy)
		case geom.OpCubicTo:
			bx, by := b.point(s.Pts[0], m)
			cx, cy := b.point(s.Pts[1], m)
			dx, dy := b.point(s.Pts[2], m)
			b.z.CubeTo(bx, by, cx, cy, dx, dy)
		case geom.OpClose:
			b.z.ClosePath()
		}
	}
	b.z.ClosePath()
}

// polylines flattens p into one pixel-space polyline per contour.
func (b *Backend) polylines(p *geom.Path, m geom.Matrix) [][]geom.Point {
	var out [][]geom.Point
	var cur []geom.Point
	var pen, start geom.Point
	k := b.scale()
	emit := func(pt geom.Point) {
		cur = append(cur, m.TransformPoint(pt).Mul(k))
	}
	for i := range p.Segments {
		s := p.Segments[i]
		switch s.Op {
		case geom.OpMoveTo:
			if len(cur) > 1 {
				out = append(out, cur)
			}
			cur = nil
			pen, start = s.Pts[0], s.Pts[0]
			emit(pen)
		case geom.OpClose:
			emit(start)
			pen = start
		case geom.OpLineTo:
			pen = s.Pts[0]
			emit(pen)
		default:
			seg := geom.NewPath()
			seg.MoveTo(pen.X, pen.Y)
			seg.Segments = append(seg.Segments, s)
			pts := seg.Flatten(0.5 / k)
			for _, pt := range pts[1:] {
				emit(pt)
			}
			pen = s.Pts[s.Op.PointCount()-1]
		}
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

func (b *Backend) addQuad(a, c geom.Point, hw float64) {
	d := c.Sub(a)
	l := d.Length()
	if l < geom.Epsilon {
		return
	}
	n := geom.Pt(-d.Y/l*hw, d.X/l*hw)
	p0, p1, p2, p3 := a.Add(n), c.Add(n), c.Sub(n), a.Sub(n)
	b.z.MoveTo(float32(p0.X), float32(p0.Y))
	b.z.LineTo(float32(p1.X), float32(p1.Y))
	b.z.LineTo(float32(p2.X), float32(p2.Y))
	b.z.LineTo(float32(p3.X), float32(p3.Y))
	b.z.ClosePath()
}

func (b *Backend) paint(f paint.Fill) {
	src := image.NewUniform(flatColor(f).Color())
	b.z.Draw(b.img, b.img.Bounds(), src, image.Point{})
}

// flatColor picks the single color a fill is painted with.
func flatColor(f paint.Fill) paint.RGBA {
	switch f := f.(type) {
	case paint.SolidFill:
		return f.Color
	case *paint.LinearGradientFill:
		if f != nil && len(f.Stops) > 0 {
			return f.Stops[0].Color
		}
	case *paint.RadialGradientFill:
		if f != nil && len(f.Stops) > 0 {
			return f.Stops[0].Color
		}
	}
	return paint.Black
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
