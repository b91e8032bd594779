package warp

import (
	"fmt"

	"github.com/gogpu/textdraw/geom"
)

// Preset names as they appear in documents.
const (
	NamePlain    = "textPlain"
	NameArchUp   = "textArchUp"
	NameArchDown = "textArchDown"
	NameCircle   = "textCircle"
	NameWave     = "textWave1"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

// Preset is the path list of a WordArt shape in millimetres.
//
// An even number of paths is read as (top, bottom) pairs, one pair per
// band. An odd number gives one guide path per band.
type Preset struct {
	Name  string
	Paths []*geom.Path
}

// Polygons flattens every path with the given tolerance. Paths without
// segments yield a polygon with no points, which samples to the origin.
func (p *Preset) Polygons(eps float64) []*geom.Polygon {
	out := make([]*geom.Polygon, len(p.Paths))
	for i, path := range p.Paths {
		out[i] = geom.NewPolygon(path.Flatten(eps))
	}
	return out
}

// Bands returns the number of bands the preset splits content into.
func (p *Preset) Bands() int {
	n := len(p.Paths)
	if n%2 == 0 {
		return n / 2
	}
	return n
}

// Odd reports whether every band is guided by a single path.
func (p *Preset) Odd() bool {
	return len(p.Paths)%2 == 1
}

// arcDown reports whether band i hangs below its guide path.
func (p *Preset) arcDown(band int) bool {
	return p.Name != NameArchDown && band < 1
}

// Plain returns the two straight boundaries of a w x h box.
func Plain(w, h float64) *Preset {
	top := geom.NewPath()
	top.MoveTo(0, 0)
	top.LineTo(w, 0)
	bottom := geom.NewPath()
	bottom.MoveTo(0, h)
	bottom.LineTo(w, h)
	return &Preset{Name: NamePlain, Paths: []*geom.Path{top, bottom}}
}

// ArchUp returns the upper half of the ellipse inscribed in a w x h box,
// walked left to right.
func ArchUp(w, h float64) *Preset {
	cx, cy, rx, ry := w/2, h/2, w/2, h/2
	p := geom.NewPath()
	p.MoveTo(0, cy)
	p.CubicTo(0, cy-ry*kappa, cx-rx*kappa, 0, cx, 0)
	p.CubicTo(cx+rx*kappa, 0, w, cy-ry*kappa, w, cy)
	return &Preset{Name: NameArchUp, Paths: []*geom.Path{p}}
}

// ArchDown returns the lower half of the ellipse inscribed in a w x h box,
// walked left to right.
func ArchDown(w, h float64) *Preset {
	cx, cy, rx, ry := w/2, h/2, w/2, h/2
	p := geom.NewPath()
	p.MoveTo(0, cy)
	p.CubicTo(0, cy+ry*kappa, cx-rx*kappa, h, cx, h)
	p.CubicTo(cx+rx*kappa, h, w, cy+ry*kappa, w, cy)
	return &Preset{Name: NameArchDown, Paths: []*geom.Path{p}}
}

// Circle returns the full ellipse inscribed in a w x h box, starting at
// the bottom and walking clockwise so that text reads along the top.
func Circle(w, h float64) *Preset {
	cx, cy, rx, ry := w/2, h/2, w/2, h/2
	p := geom.NewPath()
	p.MoveTo(cx, h)
	p.CubicTo(cx-rx*kappa, h, 0, cy+ry*kappa, 0, cy)
	p.CubicTo(0, cy-ry*kappa, cx-rx*kappa, 0, cx, 0)
	p.CubicTo(cx+rx*kappa, 0, w, cy-ry*kappa, w, cy)
	p.CubicTo(w, cy+ry*kappa, cx+rx*kappa, h, cx, h)
	return &Preset{Name: NameCircle, Paths: []*geom.Path{p}}
}

// Wave returns two parallel S-curves bounding a w x h box.
func Wave(w, h float64) *Preset {
	amp := h / 10
	wave := func(y float64) *geom.Path {
		p := geom.NewPath()
		p.MoveTo(0, y)
		p.CubicTo(w/3, y-2*amp, 2*w/3, y+2*amp, w, y)
		return p
	}
	return &Preset{Name: NameWave, Paths: []*geom.Path{wave(amp), wave(h - amp)}}
}

var builtin = map[string]func(w, h float64) *Preset{
	NamePlain:    Plain,
	NameArchUp:   ArchUp,
	NameArchDown: ArchDown,
	NameCircle:   Circle,
	NameWave:     Wave,
}

// Lookup returns the built-in preset called name sized to a w x h box.
func Lookup(name string, w, h float64) (*Preset, error) {
	mk, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return mk(w, h), nil
}
