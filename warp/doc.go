// Package warp bends a recorded text scene onto WordArt preset paths.
//
// Apply takes a root scene.Content recorded with line division, splits
// its visual lines into bands and re-projects every drawable of a band
// onto the band's boundary polygons. A preset with an even number of paths
// is read as top/bottom pairs and every point is re-parameterized between
// the pair. A preset with an odd number of paths gives each band a single
// guide path: drawables started per glyph are rotated onto its tangent as
// rigid bodies, everything else is bent point by point.
//
// After warping, drawables of one line that share fill and stroke are
// merged so that the draw-call count follows the style runs rather than
// the glyph count.
//
// ContentReduction runs the same placement without touching the geometry
// and reports how much neighbouring glyph boxes would collide. An auto-fit
// loop shrinks the font until the overlap is acceptable.
package warp
