package scene

import "github.com/gogpu/textdraw/geom"

// Node is a structure node of the recorded tree: *Content, *Paragraph,
// *Line, *Table or *Shape.
type Node interface {
	Kind() Kind

	// Draw paints the node and its descendants.
	Draw(c Canvas)

	// collect appends decoration drawables to the content-level lists.
	collect(dst *Decorations)

	// textObjects appends glyph-tagged content drawables.
	textObjects(dst []*Drawable) []*Drawable
}

// Decorations are drawables painted at content level, beneath the text.
type Decorations struct {
	ParagraphBackgrounds []*Drawable
	Backgrounds          []*Drawable
	Borders              []*Drawable

	// Comments are backgrounds that carry a comment.
	Comments []*Drawable
}

// ParagraphID identifies a paragraph across recording passes. Any
// comparable value works; nil means "no identity".
type ParagraphID any

// ---------------------------------------------------------------------------
// Content
// ---------------------------------------------------------------------------

// Content is a document content region: the root of a recorded tree, a
// table cell or a shape's text body.
type Content struct {
	Children []Node

	// ByLines indexes lines by visual line number. Set on the root only
	// and only with line division.
	ByLines [][]*Line

	// ByParagraphs groups lines per paragraph. Set on the root only and
	// only without line division.
	ByParagraphs [][]*Line

	// Drawings are embedded objects recorded within the content.
	Drawings []Drawing

	// Decorations are collected from the lines of the whole tree when the
	// content becomes a root, and again after warping.
	Decorations
}

// Kind implements Node.
func (*Content) Kind() Kind { return KindContent }

// Draw paints embedded drawings, paragraph backgrounds, borders and
// backgrounds, then the children.
func (n *Content) Draw(c Canvas) {
	for _, d := range n.Drawings {
		d.Draw(c)
	}
	drawAll(c, n.ParagraphBackgrounds)
	drawAll(c, n.Borders)
	drawAll(c, n.Backgrounds)
	for _, ch := range n.Children {
		ch.Draw(c)
	}
}

// DrawComments paints the commented backgrounds.
func (n *Content) DrawComments(c Canvas) {
	drawAll(c, n.Comments)
}

// CollectDecorations rebuilds the decoration lists from the lines of the
// tree.
func (n *Content) CollectDecorations() {
	n.Decorations = Decorations{}
	for _, ch := range n.Children {
		ch.collect(&n.Decorations)
	}
}

func (n *Content) collect(dst *Decorations) {
	for _, ch := range n.Children {
		ch.collect(dst)
	}
}

func (n *Content) textObjects(dst []*Drawable) []*Drawable {
	for _, ch := range n.Children {
		dst = ch.textObjects(dst)
	}
	return dst
}

// Paragraphs returns the direct paragraph children.
func (n *Content) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, ch := range n.Children {
		if p, ok := ch.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// TextObjects returns every glyph-tagged content drawable in tree order.
func (n *Content) TextObjects() []*Drawable {
	return n.textObjects(nil)
}

// ---------------------------------------------------------------------------
// Paragraph
// ---------------------------------------------------------------------------

// wordPos is where the next word scan resumes.
type wordPos struct {
	line, pos int
}

// Paragraph owns the lines of one paragraph.
type Paragraph struct {
	ID    ParagraphID
	Lines []*Line

	// Nested holds structure started inside the paragraph other than
	// lines, such as inline shapes.
	Nested []Node

	// Words are runs of glyph-tagged content drawables, closed at each
	// space and at the end of the paragraph.
	Words [][]*Drawable

	lastWord wordPos
}

func newParagraph(id ParagraphID) *Paragraph {
	return &Paragraph{ID: id, lastWord: wordPos{line: 0, pos: -1}}
}

// Kind implements Node.
func (*Paragraph) Kind() Kind { return KindParagraph }

// Draw paints the lines, then nested structure.
func (n *Paragraph) Draw(c Canvas) {
	for _, l := range n.Lines {
		l.Draw(c)
	}
	for _, ch := range n.Nested {
		ch.Draw(c)
	}
}

func (n *Paragraph) collect(dst *Decorations) {
	for _, l := range n.Lines {
		l.collect(dst)
	}
	for _, ch := range n.Nested {
		ch.collect(dst)
	}
}

func (n *Paragraph) textObjects(dst []*Drawable) []*Drawable {
	for _, l := range n.Lines {
		dst = l.textObjects(dst)
	}
	return dst
}

// TextObjects returns the glyph-tagged content drawables of the paragraph.
func (n *Paragraph) TextObjects() []*Drawable {
	return n.textObjects(nil)
}

// checkWord closes the current word: every glyph-tagged content drawable
// recorded since the previous call.
func (n *Paragraph) checkWord() {
	var word []*Drawable
	for li := n.lastWord.line; li < len(n.Lines); li++ {
		content := n.Lines[li].Content
		if len(content) == 0 {
			break
		}
		if n.lastWord.line < li {
			n.lastWord.pos = -1
		}
		for pi := n.lastWord.pos + 1; pi < len(content); pi++ {
			if content[pi].HasCode() {
				word = append(word, content[pi])
				n.lastWord.pos = pi
			}
		}
		n.lastWord.line = li
	}
	if len(word) > 0 {
		n.Words = append(n.Words, word)
	}
}

// rewindContent drops the content drawables of line index and every line
// after it, together with the words that reference them, so the lines
// can be recorded again.
func (n *Paragraph) rewindContent(index int) {
	dropped := make(map[*Drawable]bool)
	for _, l := range n.Lines[index:] {
		for _, d := range l.Content {
			dropped[d] = true
		}
		l.Content = nil
	}
	keep := n.Words[:0]
	for _, w := range n.Words {
		clean := true
		for _, d := range w {
			if dropped[d] {
				clean = false
				break
			}
		}
		if clean {
			keep = append(keep, w)
		}
	}
	clear(n.Words[len(keep):])
	n.Words = keep
	if n.lastWord.line >= index {
		n.lastWord = wordPos{line: index, pos: -1}
	}
}

// ---------------------------------------------------------------------------
// Line
// ---------------------------------------------------------------------------

// Line owns everything drawn for one visual line, partitioned by role.
type Line struct {
	// Role is the role the line was last opened with.
	Role Role

	Content              []*Drawable
	Borders              []*Drawable
	Backgrounds          []*Drawable
	Underlines           []*Drawable
	ParagraphBackgrounds []*Drawable
}

// Kind implements Node.
func (*Line) Kind() Kind { return KindLine }

// Draw paints content and underlines. Borders and backgrounds are painted
// by the root content.
func (n *Line) Draw(c Canvas) {
	drawAll(c, n.Content)
	drawAll(c, n.Underlines)
}

// list returns the role list selected by r.
func (n *Line) list(r Role) *[]*Drawable {
	switch r {
	case RoleBorder:
		return &n.Borders
	case RoleBackground:
		return &n.Backgrounds
	case RoleUnderline:
		return &n.Underlines
	case RoleParagraphBackground:
		return &n.ParagraphBackgrounds
	default:
		return &n.Content
	}
}

func (n *Line) collect(dst *Decorations) {
	dst.ParagraphBackgrounds = append(dst.ParagraphBackgrounds, n.ParagraphBackgrounds...)
	for _, d := range n.Backgrounds {
		dst.Backgrounds = append(dst.Backgrounds, d)
		if d.Comment != nil {
			dst.Comments = append(dst.Comments, d)
		}
	}
	dst.Borders = append(dst.Borders, n.Borders...)
}

func (n *Line) textObjects(dst []*Drawable) []*Drawable {
	for _, d := range n.Content {
		if d.HasCode() {
			dst = append(dst, d)
		}
	}
	return dst
}

// Warped returns the drawables the warp pass moves: content, backgrounds
// and underlines, in that order.
func (n *Line) Warped() []*Drawable {
	out := make([]*Drawable, 0, len(n.Content)+len(n.Backgrounds)+len(n.Underlines))
	out = append(out, n.Content...)
	out = append(out, n.Backgrounds...)
	return append(out, n.Underlines...)
}

// WarpedBounds returns the bounds of the drawables returned by Warped.
func (n *Line) WarpedBounds() geom.Rect {
	r := geom.EmptyRect()
	for _, d := range n.Warped() {
		r = r.Union(d.Bounds())
	}
	return r
}

// Prune removes drawables without geometry from the warped lists.
func (n *Line) Prune() {
	n.Content = pruneEmpty(n.Content)
	n.Backgrounds = pruneEmpty(n.Backgrounds)
	n.Underlines = pruneEmpty(n.Underlines)
}

func pruneEmpty(list []*Drawable) []*Drawable {
	keep := list[:0]
	for _, d := range list {
		if !d.IsEmpty() {
			keep = append(keep, d)
		}
	}
	clear(list[len(keep):])
	return keep
}

// ---------------------------------------------------------------------------
// Table and Shape
// ---------------------------------------------------------------------------

// Table owns its cells' content and the table border drawables.
type Table struct {
	Children []Node
	Borders  []*Drawable
}

// Kind implements Node.
func (*Table) Kind() Kind { return KindTable }

// Draw paints the cells. Borders are painted by the root content.
func (n *Table) Draw(c Canvas) {
	for _, ch := range n.Children {
		ch.Draw(c)
	}
}

func (n *Table) collect(dst *Decorations) {
	dst.Borders = append(dst.Borders, n.Borders...)
	for _, ch := range n.Children {
		ch.collect(dst)
	}
}

func (n *Table) textObjects(dst []*Drawable) []*Drawable {
	for _, ch := range n.Children {
		dst = ch.textObjects(dst)
	}
	return dst
}

// Shape owns a shape's text body and outline drawables.
type Shape struct {
	Children []Node
	Borders  []*Drawable
}

// Kind implements Node.
func (*Shape) Kind() Kind { return KindShape }

// Draw paints the outline, then the text body.
func (n *Shape) Draw(c Canvas) {
	drawAll(c, n.Borders)
	for _, ch := range n.Children {
		ch.Draw(c)
	}
}

// collect skips the outline: the shape paints it beneath its own body.
func (n *Shape) collect(dst *Decorations) {
	for _, ch := range n.Children {
		ch.collect(dst)
	}
}

func (n *Shape) textObjects(dst []*Drawable) []*Drawable {
	for _, ch := range n.Children {
		dst = ch.textObjects(dst)
	}
	return dst
}

// appendChild attaches child to a container node.
func appendChild(parent, child Node) {
	switch p := parent.(type) {
	case *Content:
		p.Children = append(p.Children, child)
	case *Paragraph:
		if l, ok := child.(*Line); ok {
			p.Lines = append(p.Lines, l)
		} else {
			p.Nested = append(p.Nested, child)
		}
	case *Table:
		p.Children = append(p.Children, child)
	case *Shape:
		p.Children = append(p.Children, child)
	}
}
