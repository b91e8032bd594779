package scene

import (
	"math"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/paint"
)

// path returns the active sub-path for a segment call, or nil while
// geometry is suppressed.
func (b *Builder) path() *geom.Path {
	if b.suppressed() {
		return nil
	}
	return b.resolveActive(false, false, nil, geom.NoCode)
}

func (b *Builder) suppressed() bool {
	return b.suppress > 0 || b.clipping
}

// BeginPath starts a new sub-path in the active drawable.
func (b *Builder) BeginPath() {
	if b.suppressed() {
		return
	}
	b.resolveActive(true, false, nil, geom.NoCode)
}

// EndPath ends the current path. Recording needs no action.
func (b *Builder) EndPath() {}

// StrokePath marks the current path as stroked. Sub-paths are stroked
// from creation, so recording needs no action.
func (b *Builder) StrokePath() {}

// ClosePath closes the current contour.
func (b *Builder) ClosePath() {
	if p := b.path(); p != nil {
		p.Close()
	}
}

// FillPath marks the current sub-path as filled.
func (b *Builder) FillPath() {
	if p := b.path(); p != nil {
		p.Filled = true
	}
}

// MoveTo starts a contour at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	if p := b.path(); p != nil {
		p.MoveTo(x, y)
	}
	b.last = geom.Pt(x, y)
}

// LineTo draws a line to (x, y). With line checking on, lines that are
// nearly vertical or nearly horizontal are recorded as chains of short
// cubics so that warping can bend them.
func (b *Builder) LineTo(x, y float64) {
	if b.opts.checkLines && !b.suppressed() {
		dx, dy := x-b.last.X, y-b.last.Y
		switch {
		case math.Abs(dx) < geom.Epsilon && math.Abs(dx) < math.Abs(dy):
			b.curveBezier(b.last,
				geom.Pt(b.last.X, b.last.Y+dy/3),
				geom.Pt(b.last.X, b.last.Y+2*dy/3),
				geom.Pt(x, y), PathDivEpsilon)
			b.last = geom.Pt(x, y)
			return
		case math.Abs(dy) < geom.Epsilon && math.Abs(dy) < math.Abs(dx):
			b.curveBezier(b.last,
				geom.Pt(b.last.X+dx/3, b.last.Y),
				geom.Pt(b.last.X+2*dx/3, b.last.Y),
				geom.Pt(x, y), PathDivEpsilon)
			b.last = geom.Pt(x, y)
			return
		}
	}
	if p := b.path(); p != nil {
		p.LineTo(x, y)
	}
	b.last = geom.Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if p := b.path(); p != nil {
		p.CubicTo(c1x, c1y, c2x, c2y, x, y)
	}
	b.last = geom.Pt(x, y)
}

// QuadTo draws a quadratic Bezier curve.
func (b *Builder) QuadTo(cx, cy, x, y float64) {
	if p := b.path(); p != nil {
		p.QuadTo(cx, cy, x, y)
	}
	b.last = geom.Pt(x, y)
}

// StartClipPath suppresses geometry until EndClipPath. Clip paths are not
// part of the recorded tree.
func (b *Builder) StartClipPath() {
	b.clipping = true
}

// EndClipPath ends clip path suppression.
func (b *Builder) EndClipPath() {
	b.clipping = false
}

// curveBezier records the cubic p0..p3 as pieces of about step length. A
// non-positive step means UnderlineDivEpsilon.
func (b *Builder) curveBezier(p0, p1, p2, p3 geom.Point, step float64) {
	if step <= 0 {
		step = UnderlineDivEpsilon
	}
	for _, c := range geom.SplitCubic(p0, p1, p2, p3, step) {
		b.CubicTo(c[1].X, c[1].Y, c[2].X, c[2].Y, c[3].X, c[3].Y)
	}
}

// ---------------------------------------------------------------------------
// Rules and rectangles
// ---------------------------------------------------------------------------

// Alignment of a rule relative to its coordinate.
const (
	AlignTop    = 0
	AlignCenter = 1
	AlignBottom = 2
)

// DrawHorLine draws a horizontal rule of thickness penW from x to r with
// its top edge at y, as a filled band with curved long edges. With
// mathRule set the rule is a single stroked segment outlined in the text
// color instead, as used for fraction bars.
func (b *Builder) DrawHorLine(align int, y, x, r, penW float64, mathRule bool) {
	if mathRule {
		b.withTextOutline(penW, func() {
			b.BeginPath()
			b.MoveTo(x, y)
			b.LineTo(r, y)
			b.StrokePath()
		})
		return
	}
	b.BeginPath()
	b.MoveTo(x, y)
	b.hEdge(x, r, y, UnderlineDivEpsilon)
	b.LineTo(r, y+penW)
	b.hEdge(r, x, y+penW, UnderlineDivEpsilon)
	b.ClosePath()
	b.StrokePath()
	b.FillPath()
}

// DrawHorLine2 draws a double horizontal rule.
func (b *Builder) DrawHorLine2(align int, y, x, r, penW float64) {
	yy := alignOffset(align, y, penW)

	b.BeginPath()
	b.MoveTo(x, yy-penW)
	b.hEdge(x, r, yy-penW, UnderlineDivEpsilon)
	b.LineTo(r, yy)
	b.hEdge(r, x, yy, UnderlineDivEpsilon)
	b.ClosePath()
	b.StrokePath()
	b.FillPath()

	b.BeginPath()
	b.MoveTo(x, yy+penW)
	b.hEdge(x, r, yy+penW, UnderlineDivEpsilon)
	b.LineTo(r, yy+2*penW)
	b.hEdge(r, x, yy+2*penW, UnderlineDivEpsilon)
	b.ClosePath()
	b.StrokePath()
	b.EndPath()
}

// DrawVerLine draws a vertical rule from y to bottom. Directly inside a
// table the rule stays a plain line even with line checking on.
func (b *Builder) DrawVerLine(align int, x, y, bottom, penW float64, mathRule bool) {
	xx := alignOffset(align, x, penW)
	if mathRule {
		b.withTextOutline(penW, func() {
			b.BeginPath()
			b.MoveTo(xx, y)
			b.LineTo(xx, bottom)
			b.StrokePath()
		})
		return
	}
	b.inTableRule(func() {
		b.SetPenWidth(penW)
		b.BeginPath()
		b.MoveTo(xx, y)
		b.LineTo(xx, bottom)
		b.StrokePath()
	})
}

// DrawHorLineExt draws a horizontal rule extended by leftMW and rightMW.
// Directly inside a table it is a plain stroked line.
func (b *Builder) DrawHorLineExt(align int, y, x, r, penW, leftMW, rightMW float64) {
	if k, _ := b.topCommand(); k == KindTable {
		b.inTableRule(func() {
			b.SetPenWidth(penW)
			b.BeginPath()
			b.MoveTo(x, y)
			b.LineTo(r, y)
			b.StrokePath()
		})
		return
	}
	b.DrawHorLine(align, y, x+leftMW, r+rightMW, penW, false)
}

// Rect records a rectangle as a new sub-path of a new style run.
// Backgrounds get curved long edges so they bend with the text.
func (b *Builder) Rect(x, y, w, h float64) {
	if b.suppressed() {
		return
	}
	b.resolveActive(true, true, nil, geom.NoCode)
	if l, ok := b.top().(*Line); ok && (l.Role == RoleBackground || l.Role == RoleParagraphBackground) {
		b.MoveTo(x, y)
		b.hEdge(x, x+w, y, UnderlineDivEpsilon)
		b.LineTo(x+w, y+h)
		b.hEdge(x+w, x, y+h, UnderlineDivEpsilon)
		b.ClosePath()
		return
	}
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.LineTo(x, y)
}

// TableRect records a filled rectangle.
func (b *Builder) TableRect(x, y, w, h float64) {
	b.Rect(x, y, w, h)
	b.FillPath()
}

// DrawTextArtComment records the highlight of a comment on text art. The
// drawable carries the comment and is listed in Content.Comments.
func (b *Builder) DrawTextArtComment(c *Comment) {
	b.curComment = c
	r := c.Bounds
	b.Rect(r.MinX, r.MinY, r.Width(), r.Height())
	b.FillPath()
	b.curComment = nil
}

// hEdge records a horizontal edge from (x0, y) to (x1, y) as cubic pieces.
func (b *Builder) hEdge(x0, x1, y, step float64) {
	d := x1 - x0
	b.curveBezier(geom.Pt(x0, y), geom.Pt(x0+d/3, y), geom.Pt(x0+2*d/3, y), geom.Pt(x1, y), step)
}

// inTableRule runs fn with line checking off when the innermost command is
// a table.
func (b *Builder) inTableRule(fn func()) {
	if k, _ := b.topCommand(); k == KindTable {
		old := b.opts.checkLines
		b.opts.checkLines = false
		defer func() { b.opts.checkLines = old }()
	}
	fn()
}

// withTextOutline runs fn with the text properties outlined at width penW
// in the text fill, then restores them.
func (b *Builder) withTextOutline(penW float64, fn func()) {
	old := b.textProps
	if old != nil {
		p := old.Clone()
		fill := p.TextFill
		if fill == nil {
			fill = p.Unifill
		}
		if fill == nil && p.Color != nil {
			fill = paint.Solid(*p.Color)
		}
		p.Outline = &paint.Stroke{Width: penW, Fill: fill}
		b.SetTextProps(p)
		defer b.SetTextProps(old)
	}
	fn()
}

func alignOffset(align int, v, penW float64) float64 {
	switch align {
	case AlignTop:
		return v + penW/2
	case AlignBottom:
		return v - penW/2
	default:
		return v
	}
}
