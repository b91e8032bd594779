package warp

import (
	"github.com/gogpu/textdraw/paint"
	"github.com/gogpu/textdraw/scene"
)

// UnionPaths merges runs of adjacent drawables that paint identically.
// The sub-paths of every absorbed drawable move to the first drawable of
// its run and the absorbed drawable is dropped. Drawables with a comment
// and smart table or shape geometry are never merged.
//
// The result reuses the backing array of group.
func UnionPaths(group []*scene.Drawable) []*scene.Drawable {
	out := group[:0]
	var rep *scene.Drawable
	for _, d := range group {
		if rep != nil && mergeable(rep, d) {
			rep.Geometry.Paths = append(rep.Geometry.Paths, d.Geometry.TakePaths()...)
			continue
		}
		out = append(out, d)
		rep = d
	}
	clear(group[len(out):])
	return out
}

func mergeable(a, b *scene.Drawable) bool {
	if a.Geometry == nil || b.Geometry == nil {
		return false
	}
	if a.Comment != nil || b.Comment != nil || a.Geometry.Smart || b.Geometry.Smart {
		return false
	}
	return a.Transform == b.Transform &&
		paint.EqualFills(a.Fill, b.Fill) &&
		paint.EqualStrokes(a.Stroke, b.Stroke)
}

// UnionByLines prunes empty drawables and merges same-style runs in the
// warped lists of every indexed line, then rebuilds the decoration lists
// of c. It returns the number of drawables removed.
func UnionByLines(c *scene.Content) int {
	removed := 0
	union := func(list []*scene.Drawable) []*scene.Drawable {
		n := len(list)
		list = UnionPaths(list)
		removed += n - len(list)
		return list
	}
	for _, row := range c.ByLines {
		for _, l := range row {
			before := len(l.Content) + len(l.Backgrounds) + len(l.Underlines)
			l.Prune()
			removed += before - len(l.Content) - len(l.Backgrounds) - len(l.Underlines)
			l.Content = union(l.Content)
			l.Backgrounds = union(l.Backgrounds)
			l.Underlines = union(l.Underlines)
		}
	}
	c.CollectDecorations()
	slogger().Debug("warp: union", "removed", removed)
	return removed
}
