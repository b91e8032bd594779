package recording

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/paint"
)

// ResourcePool stores resources referenced by recording commands.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	geometries []*geom.Geometry
	fills      []paint.Fill
	strokes    []*paint.Stroke
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		geometries: make([]*geom.Geometry, 0, 64),
		fills:      make([]paint.Fill, 0, 8),
		strokes:    make([]*paint.Stroke, 0, 4),
	}
}

// AddGeometry clones g into the pool and returns its reference.
func (p *ResourcePool) AddGeometry(g *geom.Geometry) GeometryRef {
	var c *geom.Geometry
	if g != nil {
		c = g.Clone()
	}
	p.geometries = append(p.geometries, c)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return GeometryRef(uint32(len(p.geometries) - 1))
}

// Geometry returns the geometry for ref, or nil for an invalid reference.
func (p *ResourcePool) Geometry(ref GeometryRef) *geom.Geometry {
	if int(ref) >= len(p.geometries) {
		return nil
	}
	return p.geometries[ref]
}

// GeometryCount returns the number of geometries in the pool.
func (p *ResourcePool) GeometryCount() int {
	return len(p.geometries)
}

// AddFill stores f once and returns its reference. A fill equal to one
// already stored reuses that entry.
func (p *ResourcePool) AddFill(f paint.Fill) FillRef {
	for i, have := range p.fills {
		if paint.EqualFills(have, f) {
			// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
			return FillRef(uint32(i))
		}
	}
	p.fills = append(p.fills, f)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return FillRef(uint32(len(p.fills) - 1))
}

// Fill returns the fill for ref, or nil for an invalid reference.
func (p *ResourcePool) Fill(ref FillRef) paint.Fill {
	if int(ref) >= len(p.fills) {
		return nil
	}
	return p.fills[ref]
}

// FillCount returns the number of distinct fills in the pool.
func (p *ResourcePool) FillCount() int {
	return len(p.fills)
}

// AddStroke stores a copy of s once and returns its reference.
func (p *ResourcePool) AddStroke(s *paint.Stroke) StrokeRef {
	for i, have := range p.strokes {
		if paint.EqualStrokes(have, s) {
			// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
			return StrokeRef(uint32(i))
		}
	}
	p.strokes = append(p.strokes, s.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return StrokeRef(uint32(len(p.strokes) - 1))
}

// Stroke returns the stroke for ref, or nil for an invalid reference.
func (p *ResourcePool) Stroke(ref StrokeRef) *paint.Stroke {
	if int(ref) >= len(p.strokes) {
		return nil
	}
	return p.strokes[ref]
}

// StrokeCount returns the number of distinct strokes in the pool.
func (p *ResourcePool) StrokeCount() int {
	return len(p.strokes)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	clear(p.geometries)
	p.geometries = p.geometries[:0]
	p.fills = p.fills[:0]
	p.strokes = p.strokes[:0]
}
