package paint

import "github.com/gogpu/textdraw/geom"

// Fill describes how the inside of geometry is painted.
// This is a sealed interface - only types in this package implement it.
type Fill interface {
	// Equal reports deep value equality with another fill.
	Equal(other Fill) bool

	fillMarker()
}

// SolidFill paints with a single color.
type SolidFill struct {
	Color RGBA
}

func (SolidFill) fillMarker() {}

// Solid creates a solid fill.
func Solid(c RGBA) SolidFill {
	return SolidFill{Color: c}
}

// Equal implements Fill.
func (f SolidFill) Equal(other Fill) bool {
	o, ok := other.(SolidFill)
	return ok && o == f
}

// GradientStop defines a color stop in a gradient.
type GradientStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

func equalStops(a, b []GradientStop) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// LinearGradientFill is a linear gradient from Start to End.
type LinearGradientFill struct {
	Start, End geom.Point
	Stops      []GradientStop
}

func (*LinearGradientFill) fillMarker() {}

// NewLinearGradient creates a linear gradient fill.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradientFill {
	return &LinearGradientFill{Start: geom.Pt(x0, y0), End: geom.Pt(x1, y1)}
}

// AddColorStop adds a color stop at offset.
// Returns the gradient for method chaining.
func (g *LinearGradientFill) AddColorStop(offset float64, c RGBA) *LinearGradientFill {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// Equal implements Fill.
func (g *LinearGradientFill) Equal(other Fill) bool {
	o, ok := other.(*LinearGradientFill)
	if !ok || o == nil || g == nil {
		return ok && o == g
	}
	return g.Start == o.Start && g.End == o.End && equalStops(g.Stops, o.Stops)
}

// RadialGradientFill radiates from Center between two radii.
type RadialGradientFill struct {
	Center                 geom.Point
	StartRadius, EndRadius float64
	Stops                  []GradientStop
}

func (*RadialGradientFill) fillMarker() {}

// NewRadialGradient creates a radial gradient fill.
func NewRadialGradient(cx, cy, startRadius, endRadius float64) *RadialGradientFill {
	return &RadialGradientFill{Center: geom.Pt(cx, cy), StartRadius: startRadius, EndRadius: endRadius}
}

// AddColorStop adds a color stop at offset.
// Returns the gradient for method chaining.
func (g *RadialGradientFill) AddColorStop(offset float64, c RGBA) *RadialGradientFill {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// Equal implements Fill.
func (g *RadialGradientFill) Equal(other Fill) bool {
	o, ok := other.(*RadialGradientFill)
	if !ok || o == nil || g == nil {
		return ok && o == g
	}
	return g.Center == o.Center && g.StartRadius == o.StartRadius &&
		g.EndRadius == o.EndRadius && equalStops(g.Stops, o.Stops)
}

// TextureFill paints with an image referenced by a host-defined key.
type TextureFill struct {
	Ref  string
	Mode int
}

func (TextureFill) fillMarker() {}

// Equal implements Fill.
func (f TextureFill) Equal(other Fill) bool {
	o, ok := other.(TextureFill)
	return ok && o == f
}

// EqualFills compares two possibly nil fills. Two nil fills are equal.
func EqualFills(a, b Fill) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
