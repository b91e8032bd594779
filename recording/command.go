package recording

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillGeometry   CommandType = iota // Fill the filled sub-paths of a geometry
	CmdStrokeGeometry                    // Stroke the stroked sub-paths of a geometry
	CmdSetFont                           // Select the font for glyph placements
	CmdPlaceGlyph                        // Place one glyph
)

var commandTypeNames = [...]string{
	CmdFillGeometry:   "FillGeometry",
	CmdStrokeGeometry: "StrokeGeometry",
	CmdSetFont:        "SetFont",
	CmdPlaceGlyph:     "PlaceGlyph",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// GeometryRef is a reference to a geometry in the resource pool.
type GeometryRef uint32

// FillRef is a reference to a fill in the resource pool.
type FillRef uint32

// StrokeRef is a reference to a stroke in the resource pool.
type StrokeRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid geometry.
func (r GeometryRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid fill.
func (r FillRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid returns true if the reference points to a valid stroke.
func (r StrokeRef) IsValid() bool { return uint32(r) != InvalidRef }

// FillGeometryCommand fills a geometry.
type FillGeometryCommand struct {
	Geometry  GeometryRef
	Fill      FillRef
	Transform geom.Matrix
}

// Type implements Command.
func (FillGeometryCommand) Type() CommandType { return CmdFillGeometry }

// StrokeGeometryCommand strokes a geometry.
type StrokeGeometryCommand struct {
	Geometry  GeometryRef
	Stroke    StrokeRef
	Transform geom.Matrix
}

// Type implements Command.
func (StrokeGeometryCommand) Type() CommandType { return CmdStrokeGeometry }

// SetFontCommand selects the font for the following PlaceGlyphCommands.
type SetFontCommand struct {
	Name  string
	Size  float64
	Style grapheme.Style
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// PlaceGlyphCommand places glyph GID with its origin at (X, Y).
type PlaceGlyphCommand struct {
	GID        grapheme.GlyphID
	X, Y       float64
	CodePoints []rune
}

// Type implements Command.
func (PlaceGlyphCommand) Type() CommandType { return CmdPlaceGlyph }
