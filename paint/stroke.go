package paint

// Stroke describes an outline: its width in millimetres and its fill.
type Stroke struct {
	Width float64
	Fill  Fill
}

// NewStroke creates a stroke with a solid color.
func NewStroke(width float64, c RGBA) *Stroke {
	return &Stroke{Width: width, Fill: Solid(c)}
}

// Equal reports deep value equality.
func (s *Stroke) Equal(o *Stroke) bool {
	return EqualStrokes(s, o)
}

// Clone returns a copy of the stroke. Fills are immutable values once
// attached and are shared.
func (s *Stroke) Clone() *Stroke {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// EqualStrokes compares two possibly nil strokes. Two nil strokes are equal.
func EqualStrokes(a, b *Stroke) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Width == b.Width && EqualFills(a.Fill, b.Fill)
}
