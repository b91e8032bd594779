package scene

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/paint"
)

// resolveActive returns the sub-path that path calls append to.
//
// The active drawable is selected by the innermost structure: a line's
// list for its role, a table's or shape's borders, or the standalone
// object when nothing is open. newRun starts a new style run: an empty
// drawable is restyled in place, a non-empty one is left as is and a new
// drawable is appended. start opens a new sub-path.
//
// It returns nil when no drawable applies, for example inside a paragraph
// outside any line.
func (b *Builder) resolveActive(start, newRun bool, at *geom.Point, code rune) *geom.Path {
	var d *Drawable
	switch top := b.top().(type) {
	case *Line:
		fill, stroke := b.roleStyle(top.Role)
		d = b.slot(top.list(top.Role), false, newRun, fill, stroke, at, code)
	case *Table:
		d = b.slot(&top.Borders, newRun, newRun, b.fill, b.line, at, code)
		d.Geometry.Smart = true
	case *Shape:
		d = b.slot(&top.Borders, newRun, newRun, b.fill, b.line, at, code)
	case nil:
		d = b.objectToDraw
	}
	if d == nil || d.Geometry == nil {
		return nil
	}
	if b.curComment != nil || d.IsEmpty() {
		d.Comment = b.curComment
	}

	g := d.Geometry
	last := g.LastPath()
	switch {
	case last == nil:
	case start && last.IsEmpty():
		// A run started by a setter has not drawn yet.
		last.Code = b.curCode
		return last
	case !start:
		return last
	}
	p := geom.NewPath()
	p.Code = b.curCode
	g.AddPath(p)
	return p
}

// slot returns the last drawable of list, creating one when the list is
// empty or when forceNew is set, and applies the new-run rule.
func (b *Builder) slot(list *[]*Drawable, forceNew, newRun bool, fill paint.Fill, stroke *paint.Stroke, at *geom.Point, code rune) *Drawable {
	if len(*list) == 0 || forceNew {
		if n := len(*list); n > 0 && (*list)[n-1].IsEmpty() {
			// Reuse an empty trailing drawable rather than stacking them.
			d := (*list)[n-1]
			d.restyle(fill, stroke, at, code)
			return d
		}
		d := newDrawable(b, fill, stroke, at, code)
		*list = append(*list, d)
		return d
	}
	d := (*list)[len(*list)-1]
	if newRun {
		if d.IsEmpty() {
			d.restyle(fill, stroke, at, code)
		} else {
			d = newDrawable(b, fill, stroke, at, code)
			*list = append(*list, d)
		}
	}
	return d
}

// roleStyle returns the paint for new drawables of role.
func (b *Builder) roleStyle(r Role) (paint.Fill, *paint.Stroke) {
	if r.textRole() {
		return b.fillFromTextProps(b.textProps), penFromTextProps(b.textProps)
	}
	return b.fill, b.line
}

// fillFromTextProps resolves the text fill: the explicit text fill, then
// the unifill, then the plain color. Without properties the first brush
// color applies, then the brush texture, then black.
func (b *Builder) fillFromTextProps(p *TextProps) paint.Fill {
	if p == nil {
		switch {
		case b.brush1 != nil:
			return paint.Solid(*b.brush1)
		case b.texture != nil:
			return *b.texture
		default:
			return paint.Solid(paint.Black)
		}
	}
	switch {
	case p.TextFill != nil:
		return p.TextFill
	case p.Unifill != nil:
		return p.Unifill
	case p.Color != nil:
		return paint.Solid(*p.Color)
	}
	return nil
}

func penFromTextProps(p *TextProps) *paint.Stroke {
	if p == nil {
		return nil
	}
	return p.Outline
}

// sameTextPaint reports whether two property sets paint text identically.
func (b *Builder) sameTextPaint(p1, p2 *TextProps) bool {
	if (p1 == nil) != (p2 == nil) {
		return false
	}
	if p1 == nil {
		return true
	}
	return paint.EqualFills(b.fillFromTextProps(p1), b.fillFromTextProps(p2)) &&
		paint.EqualStrokes(penFromTextProps(p1), penFromTextProps(p2))
}
