package warp

import (
	"math"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/scene"
)

// PathDivEpsilon is the default tolerance for flattening preset paths.
const PathDivEpsilon = 0.1

// Params describes the recorded content relative to the preset box.
type Params struct {
	// Width and Height are the preset box in millimetres.
	Width, Height float64

	// XLimit is the content width that maps to the full length of a guide
	// path. Default: Width
	XLimit float64

	// ContentHeight is the height of the recorded text region.
	// Default: Height
	ContentHeight float64

	// Scale multiplies content coordinates before they are placed.
	// Default: 1
	Scale float64

	// PathDivEpsilon is the flattening tolerance for the preset paths.
	// Default: PathDivEpsilon
	PathDivEpsilon float64
}

// DefaultParams returns parameters for content that fills a w x h box.
func DefaultParams(w, h float64) Params {
	return Params{
		Width:          w,
		Height:         h,
		XLimit:         w,
		ContentHeight:  h,
		Scale:          1,
		PathDivEpsilon: PathDivEpsilon,
	}
}

func (p Params) normalized() Params {
	if p.XLimit <= 0 {
		p.XLimit = p.Width
	}
	if p.ContentHeight <= 0 {
		p.ContentHeight = p.Height
	}
	if p.Scale <= 0 {
		p.Scale = 1
	}
	if p.PathDivEpsilon <= 0 {
		p.PathDivEpsilon = PathDivEpsilon
	}
	return p
}

// Span is a half-open range of line numbers.
type Span struct {
	Start, End int
}

// Len returns the number of lines in the span.
func (s Span) Len() int { return s.End - s.Start }

// Partition splits lines into bands contiguous spans. Each band takes the
// ceiling of the remaining lines divided by the remaining bands, so the
// spans cover every line once and none is empty while lines >= bands.
func Partition(lines, bands int) []Span {
	if bands <= 0 {
		return nil
	}
	out := make([]Span, bands)
	last := 0
	for i := range bands {
		n := 0
		if rem := lines - last; rem > 0 {
			left := bands - i
			n = (rem + left - 1) / left
		}
		out[i] = Span{Start: last, End: last + n}
		last += n
	}
	return out
}

// band is one partition of the content with its warped drawables.
type band struct {
	index  int
	lines  []*scene.Line
	bounds geom.Rect
}

func (b *band) objects() []*scene.Drawable {
	var out []*scene.Drawable
	for _, l := range b.lines {
		out = append(out, l.Warped()...)
	}
	return out
}

// bands partitions c for preset. The horizontal extent of every band is
// widened to the extent of the whole content so that short lines keep
// their position along the path.
func bands(c *scene.Content, preset *Preset) []band {
	global := geom.EmptyRect()
	for _, row := range c.ByLines {
		for _, l := range row {
			global = global.Union(l.WarpedBounds())
		}
	}

	spans := Partition(len(c.ByLines), preset.Bands())
	out := make([]band, len(spans))
	for i, s := range spans {
		b := band{index: i, bounds: geom.EmptyRect()}
		for _, row := range c.ByLines[s.Start:s.End] {
			for _, l := range row {
				b.lines = append(b.lines, l)
				b.bounds = b.bounds.Union(l.WarpedBounds())
			}
		}
		if !b.bounds.IsEmpty() {
			b.bounds.MinX = math.Min(b.bounds.MinX, global.MinX)
			b.bounds.MaxX = math.Max(b.bounds.MaxX, global.MaxX)
		}
		out[i] = b
	}
	return out
}

func validate(c *scene.Content, preset *Preset) (ok bool, err error) {
	if c == nil {
		return false, ErrNilContent
	}
	if preset == nil || len(preset.Paths) == 0 {
		return false, ErrNoPaths
	}
	if len(c.ByLines) == 0 {
		if len(c.ByParagraphs) > 0 {
			return false, ErrNoLineIndex
		}
		return false, nil
	}
	return true, nil
}

// Apply warps the geometry of c onto preset in place and then merges
// same-style drawables line by line. Content without lines is left
// untouched.
func Apply(c *scene.Content, preset *Preset, params Params) error {
	ok, err := validate(c, preset)
	if !ok {
		return err
	}
	p := params.normalized()
	polys := preset.Polygons(p.PathDivEpsilon)
	all := bands(c, preset)

	for _, b := range all {
		objs := b.objects()
		slogger().Debug("warp: band", "preset", preset.Name, "band", b.index,
			"lines", len(b.lines), "objects", len(objs))

		if !preset.Odd() {
			top, bottom := polys[2*b.index], polys[2*b.index+1]
			for _, d := range objs {
				d.Geometry.CheckBetweenPolygons(b.bounds, top, bottom)
			}
			continue
		}

		poly := polys[b.index]
		arcDown := preset.arcDown(b.index)
		var bounds *geom.Rect
		if len(all) > 1 {
			bounds = &b.bounds
		}
		var next *geom.PolygonPoint
		for i, d := range objs {
			if _, ok := d.Origin(); !ok {
				d.Geometry.CheckByPolygon(poly, arcDown, p.XLimit, p.ContentHeight, p.Scale, bounds)
				next = nil
				continue
			}
			var m geom.Matrix
			m, next = TransformByOddPath(d, neighbour(objs, i), next, poly, arcDown, p)
			d.Geometry.Transform(m, p.Scale)
		}
	}

	UnionByLines(c)
	return nil
}

func neighbour(objs []*scene.Drawable, i int) *scene.Drawable {
	if i+1 < len(objs) {
		return objs[i+1]
	}
	return nil
}

// TransformByOddPath returns the rigid transform that places d, a drawable
// with an origin, on a guide path. The origin's x position picks the
// point on poly; the glyph is rotated onto the path tangent there and
// lifted off the path by its distance from the baseline. The baseline is
// the top of the content when arcDown is set and the bottom otherwise.
//
// When next also has an origin further right, its tangent is added to
// d's so consecutive glyphs turn smoothly; the sample taken for next is
// returned for reuse as nextPoint on the following call. A nil nextPoint
// makes the function sample d's own position.
//
// The matrix expects points already multiplied by params.Scale, which is
// what geom.Geometry.Transform does.
func TransformByOddPath(d, next *scene.Drawable, nextPoint *geom.PolygonPoint, poly *geom.Polygon,
	arcDown bool, params Params) (geom.Matrix, *geom.PolygonPoint) {
	p := params.normalized()
	k := p.Scale
	o, _ := d.Origin()
	x0, y0 := o.X*k, o.Y*k

	var s geom.PolygonPoint
	if nextPoint != nil {
		s = *nextPoint
	} else {
		s = poly.Sample(fraction(o.X, p.XLimit), true)
	}
	dir := tangent(s, arcDown)

	var ret *geom.PolygonPoint
	if next != nil {
		if no, ok := next.Origin(); ok && no.X > o.X {
			ns := poly.Sample(fraction(no.X, p.XLimit), true)
			dir = dir.Add(tangent(ns, arcDown))
			ret = &ns
		}
	}

	n := dir.Length()
	if n < geom.Epsilon {
		dir, n = geom.Pt(1, 0), 1
		if arcDown {
			dir = geom.Pt(-1, 0)
		}
	}
	dx, dy := dir.X/n, dir.Y/n

	lift := p.ContentHeight*k - y0
	if arcDown {
		lift = y0
	}
	x0t := s.Point.X + dy*lift
	y0t := s.Point.Y - dx*lift

	var sx, shx float64
	if arcDown {
		shx, sx = dy, -dx
	} else {
		shx, sx = -dy, dx
	}
	sy, shy := sx, -shx

	return geom.Matrix{
		A: sx, B: shx, C: x0t - x0*sx - y0*shx,
		D: shy, E: sy, F: y0t - x0*shy - y0*sy,
	}, ret
}

func fraction(x, limit float64) float64 {
	if limit < geom.Epsilon {
		return 0
	}
	return x / limit
}

func tangent(s geom.PolygonPoint, arcDown bool) geom.Point {
	t := s.Tangent()
	if arcDown {
		return t.Mul(-1)
	}
	return t
}
