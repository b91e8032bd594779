package warp

import (
	"math"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/scene"
)

type placement struct {
	bounds geom.Rect
	m      geom.Matrix
}

// ContentReduction places every glyph of c on preset the way Apply would
// and reports the worst overlap between each glyph box and the boxes
// placed before it in the same band. The geometry is not modified.
//
// Only presets with an odd number of paths rotate glyphs, so only they can
// produce an overlap; other presets and content without lines report the
// zero Overlap.
func ContentReduction(c *scene.Content, preset *Preset, params Params) (geom.Overlap, error) {
	var res geom.Overlap
	ok, err := validate(c, preset)
	if !ok || !preset.Odd() {
		return res, err
	}
	p := params.normalized()
	polys := preset.Polygons(p.PathDivEpsilon)

	for _, b := range bands(c, preset) {
		objs := b.objects()
		poly := polys[b.index]
		arcDown := preset.arcDown(b.index)

		var placed []placement
		var next *geom.PolygonPoint
		for i, d := range objs {
			if _, ok := d.Origin(); !ok {
				next = nil
				continue
			}
			var m geom.Matrix
			m, next = TransformByOddPath(d, neighbour(objs, i), next, poly, arcDown, p)
			r := d.Bounds().Scale(p.Scale)
			for j, q := range placed {
				ov := geom.IntersectionBounds(q.bounds, q.m, r, m, len(placed)-j)
				res.DX = math.Max(res.DX, ov.DX)
				res.DY = math.Min(res.DY, ov.DY)
			}
			placed = append(placed, placement{bounds: r, m: m})
		}
	}
	return res, nil
}
