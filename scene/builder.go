package scene

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
)

// Tolerances used when recording.
const (
	// PathDivEpsilon is the cubic piece length, in millimetres, used when
	// straight lines are converted to curves.
	PathDivEpsilon = 0.1

	// UnderlineDivEpsilon is the piece length for underline and rule
	// edges.
	UnderlineDivEpsilon = 3.0

	// measureDPI is the resolution glyph outlines are requested at.
	measureDPI = 72
)

// fontState is the font currently selected for text calls.
type fontState struct {
	name  string
	size  float64
	style grapheme.Style
}

// Builder records a stream of structure, path and style calls into a tree
// of drawable objects.
//
// A Builder is not safe for concurrent use, and glyph engines must not
// call back into it except through the PathSink methods.
type Builder struct {
	opts builderOptions

	width, height float64
	transform     geom.Matrix

	// commands holds every open command; stack only the open structure
	// nodes.
	commands []Kind
	stack    []Node
	suppress int
	clipping bool

	root         *Content
	objectToDraw *Drawable

	// Accumulators attached to the root content when it is promoted.
	byLines      [][]*Line
	byParagraphs [][]*Line
	drawings     []Drawing

	curLine     int
	checkpoints []int
	rowMax      []int

	// Paint state.
	penColor   paint.RGBA
	penWidth   float64
	brush1     *paint.RGBA
	brush2     *paint.RGBA
	texture    *paint.TextureFill
	fill       paint.Fill
	line       *paint.Stroke
	textProps  *TextProps
	curComment *Comment

	font    fontState
	curCode rune
	last    geom.Point
}

// NewBuilder creates a builder for a region of the given size in
// millimetres.
//
// Example:
//
//	b := scene.NewBuilder(100, 50, scene.WithEngine(engine))
//	b.StartContent()
//	b.StartParagraph(para)
//	b.StartLine(0, scene.RoleContent)
//	b.FillText(10, 20, "Hi")
//	b.EndStructure()
//	b.EndStructure()
//	b.EndStructure()
//	root := b.Result()
func NewBuilder(width, height float64, opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{
		opts:      o,
		width:     width,
		height:    height,
		transform: geom.Identity(),
		curLine:   -1,
		penColor:  paint.Black,
		curCode:   geom.NoCode,
		font:      fontState{size: -1},
	}
}

// Result returns the last promoted root content, or nil if no top-level
// content has ended yet.
func (b *Builder) Result() *Content {
	return b.root
}

// Size returns the recorded region size.
func (b *Builder) Size() (width, height float64) {
	return b.width, b.height
}

// SetObjectToDraw sets the drawable that receives path calls made while no
// structure is open.
func (b *Builder) SetObjectToDraw(d *Drawable) {
	b.objectToDraw = d
}

// NewObjectToDraw creates an empty drawable carrying the current
// transform and region size, suitable for SetObjectToDraw.
func (b *Builder) NewObjectToDraw(fill paint.Fill, stroke *paint.Stroke) *Drawable {
	return newDrawable(b, fill, stroke, nil, geom.NoCode)
}

// AddDrawing records an embedded object. Drawings are attached to the root
// content when it is promoted.
func (b *Builder) AddDrawing(d Drawing) {
	b.drawings = append(b.drawings, d)
}

// SetCheckLines toggles conversion of near-vertical and near-horizontal
// line segments into subdivided cubics so the warp pass can bend them.
func (b *Builder) SetCheckLines(on bool) {
	b.opts.checkLines = on
}

// CheckLines reports whether line conversion is on.
func (b *Builder) CheckLines() bool {
	return b.opts.checkLines
}

// Depth returns the number of open commands.
func (b *Builder) Depth() int {
	return len(b.commands)
}

// CurrentLine returns the current visual line index, or -1 before the
// first line.
func (b *Builder) CurrentLine() int {
	return b.curLine
}

// top returns the innermost open structure node.
func (b *Builder) top() Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// topCommand returns the innermost open command.
func (b *Builder) topCommand() (Kind, bool) {
	if len(b.commands) == 0 {
		return 0, false
	}
	return b.commands[len(b.commands)-1], true
}

// container returns the innermost open node that can own structure.
func (b *Builder) container() Node {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if _, ok := b.stack[i].(*Line); !ok {
			return b.stack[i]
		}
	}
	return nil
}
