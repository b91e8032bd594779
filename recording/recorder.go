package recording

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
	"github.com/gogpu/textdraw/scene"
)

// ErrInvalidRef is returned by Playback when a command references a
// resource the pool does not hold.
var ErrInvalidRef = errors.New("recording: invalid resource reference")

// Recorder captures a drawn scene as commands. It is the Canvas a
// scene.Content is drawn to and the GlyphPlacer graphemes are replayed
// to. Use Finish to obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool
}

// NewRecorder creates a Recorder for a scene of the given size in
// millimetres.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// FillGeometry records a fill. Nil geometry or fill records nothing.
func (r *Recorder) FillGeometry(g *geom.Geometry, fill paint.Fill, m geom.Matrix) {
	if g == nil || fill == nil {
		return
	}
	r.commands = append(r.commands, FillGeometryCommand{
		Geometry:  r.resources.AddGeometry(g),
		Fill:      r.resources.AddFill(fill),
		Transform: m,
	})
}

// StrokeGeometry records a stroke. Nil geometry or stroke records nothing.
func (r *Recorder) StrokeGeometry(g *geom.Geometry, stroke *paint.Stroke, m geom.Matrix) {
	if g == nil || stroke == nil {
		return
	}
	r.commands = append(r.commands, StrokeGeometryCommand{
		Geometry:  r.resources.AddGeometry(g),
		Stroke:    r.resources.AddStroke(stroke),
		Transform: m,
	})
}

// SetFontInternal records a font selection. A selection equal to the
// current one is dropped.
func (r *Recorder) SetFontInternal(name string, size float64, style grapheme.Style) {
	cmd := SetFontCommand{Name: name, Size: size, Style: style}
	for i := len(r.commands) - 1; i >= 0; i-- {
		if prev, ok := r.commands[i].(SetFontCommand); ok {
			if prev == cmd {
				return
			}
			break
		}
	}
	r.commands = append(r.commands, cmd)
}

// PlaceGlyph records a glyph placement.
func (r *Recorder) PlaceGlyph(gid grapheme.GlyphID, x, y float64, codePoints []rune) {
	r.commands = append(r.commands, PlaceGlyphCommand{
		GID:        gid,
		X:          x,
		Y:          y,
		CodePoints: slices.Clone(codePoints),
	})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Finish returns an immutable Recording containing all recorded commands.
// After calling Finish, the Recorder should not be used again.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded commands.
type Recording struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool
}

// Size returns the scene size in millimetres.
func (r *Recording) Size() (width, height float64) {
	return r.width, r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to backend between Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillGeometryCommand:
			g, f := r.resources.Geometry(c.Geometry), r.resources.Fill(c.Fill)
			if g == nil || f == nil {
				return fmt.Errorf("%w: command %d (%s)", ErrInvalidRef, i, c.Type())
			}
			backend.FillGeometry(g, f, c.Transform)
		case StrokeGeometryCommand:
			g, s := r.resources.Geometry(c.Geometry), r.resources.Stroke(c.Stroke)
			if g == nil || s == nil {
				return fmt.Errorf("%w: command %d (%s)", ErrInvalidRef, i, c.Type())
			}
			backend.StrokeGeometry(g, s, c.Transform)
		case SetFontCommand:
			backend.SetFont(c.Name, c.Size, c.Style)
		case PlaceGlyphCommand:
			backend.PlaceGlyph(c.GID, c.X, c.Y, c.CodePoints)
		}
	}
	return backend.End()
}

// Draw replays the geometry commands to c, which makes a Recording usable
// as an embedded scene.Drawing. Glyph placements are skipped: a Canvas
// only paints geometry.
func (r *Recording) Draw(c scene.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case FillGeometryCommand:
			if g, f := r.resources.Geometry(cmd.Geometry), r.resources.Fill(cmd.Fill); g != nil && f != nil {
				c.FillGeometry(g, f, cmd.Transform)
			}
		case StrokeGeometryCommand:
			if g, s := r.resources.Geometry(cmd.Geometry), r.resources.Stroke(cmd.Stroke); g != nil && s != nil {
				c.StrokeGeometry(g, s, cmd.Transform)
			}
		}
	}
}

var (
	_ scene.Canvas         = (*Recorder)(nil)
	_ grapheme.GlyphPlacer = (*Recorder)(nil)
	_ scene.Drawing        = (*Recording)(nil)
)
