package scene

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/paint"
)

// Drawable is one paintable primitive: geometry plus the fill and stroke
// it is painted with.
type Drawable struct {
	Geometry *geom.Geometry
	Fill     paint.Fill
	Stroke   *paint.Stroke

	// Transform is the text transform active when the drawable started.
	Transform geom.Matrix

	// Width and Height are the dimensions of the recorded region.
	Width, Height float64

	Comment *Comment

	// Code is the character this drawable was started for when glyphs are
	// divided, or geom.NoCode.
	Code rune

	origin    geom.Point
	hasOrigin bool
}

func newDrawable(b *Builder, fill paint.Fill, stroke *paint.Stroke, at *geom.Point, code rune) *Drawable {
	d := &Drawable{
		Geometry:  geom.NewGeometry(),
		Fill:      fill,
		Stroke:    stroke,
		Transform: b.transform,
		Width:     b.width,
		Height:    b.height,
		Code:      code,
	}
	if at != nil {
		d.SetOrigin(*at)
	}
	return d
}

// restyle replaces the paint of a drawable that has no geometry yet.
func (d *Drawable) restyle(fill paint.Fill, stroke *paint.Stroke, at *geom.Point, code rune) {
	d.Fill = fill
	d.Stroke = stroke
	d.Code = code
	d.hasOrigin = false
	if at != nil {
		d.SetOrigin(*at)
	}
}

// Origin returns the pen position the drawable was started at. Only
// drawables started per glyph have one.
func (d *Drawable) Origin() (geom.Point, bool) {
	return d.origin, d.hasOrigin
}

// SetOrigin sets the pen position.
func (d *Drawable) SetOrigin(p geom.Point) {
	d.origin = p
	d.hasOrigin = true
}

// HasCode reports whether the drawable was started for a character.
func (d *Drawable) HasCode() bool {
	return d.Code != geom.NoCode
}

// IsEmpty reports whether the drawable holds no segments.
func (d *Drawable) IsEmpty() bool {
	return d.Geometry == nil || d.Geometry.IsEmpty()
}

// Bounds returns the control-point bounds of the geometry.
func (d *Drawable) Bounds() geom.Rect {
	if d.Geometry == nil {
		return geom.EmptyRect()
	}
	return d.Geometry.Bounds()
}

// Draw paints the drawable. Empty drawables draw nothing.
func (d *Drawable) Draw(c Canvas) {
	if d.IsEmpty() {
		return
	}
	var filled, stroked bool
	for _, p := range d.Geometry.Paths {
		filled = filled || (p.Filled && !p.IsEmpty())
		stroked = stroked || (p.Stroked && !p.IsEmpty())
	}
	if filled && d.Fill != nil {
		c.FillGeometry(d.Geometry, d.Fill, d.Transform)
	}
	if stroked && d.Stroke != nil {
		c.StrokeGeometry(d.Geometry, d.Stroke, d.Transform)
	}
}

func drawAll(c Canvas, list []*Drawable) {
	for _, d := range list {
		d.Draw(c)
	}
}
