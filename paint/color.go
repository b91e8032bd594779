package paint

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black = RGBA{A: 1}
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// RGB creates an opaque color from 8-bit components, the form colors take
// when they come out of a document.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// RGBA8 creates a color from 8-bit components including alpha.
func RGBA8(r, g, b, a uint8) RGBA {
	c := RGB(r, g, b)
	c.A = float64(a) / 255
	return c
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color is alpha-premultiplied.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

func clamp255(v float64) float64 {
	return math.Max(0, math.Min(255, math.Round(v)))
}
