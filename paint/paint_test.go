package paint

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(255, 0, 51)
	if c.R != 1 || c.G != 0 || c.B != 0.2 || c.A != 1 {
		t.Errorf("RGB(255, 0, 51) = %+v, want {1 0 0.2 1}", c)
	}
	got := c.Color().(color.NRGBA)
	want := color.NRGBA{R: 255, G: 0, B: 51, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
	if back := FromColor(want); back != c {
		t.Errorf("FromColor() = %+v, want %+v", back, c)
	}
}

func TestEqualFills(t *testing.T) {
	lin := func() Fill {
		return NewLinearGradient(0, 0, 10, 0).AddColorStop(0, Black).AddColorStop(1, White)
	}
	rad := func(r float64) Fill {
		return NewRadialGradient(5, 5, 0, r).AddColorStop(0, Black)
	}
	tests := []struct {
		name string
		a, b Fill
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil solid", nil, Solid(Black), false},
		{"solid nil", Solid(Black), nil, false},
		{"same solid", Solid(RGB(1, 2, 3)), Solid(RGB(1, 2, 3)), true},
		{"different solid", Solid(Black), Solid(White), false},
		{"same linear", lin(), lin(), true},
		{"linear vs solid", lin(), Solid(Black), false},
		{"linear stops differ", lin(), NewLinearGradient(0, 0, 10, 0).AddColorStop(0, Black), false},
		{"same radial", rad(3), rad(3), true},
		{"radial radius differs", rad(3), rad(4), false},
		{"same texture", TextureFill{Ref: "a"}, TextureFill{Ref: "a"}, true},
		{"texture differs", TextureFill{Ref: "a"}, TextureFill{Ref: "b"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualFills(tt.a, tt.b); got != tt.want {
				t.Errorf("EqualFills() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualStrokes(t *testing.T) {
	tests := []struct {
		name string
		a, b *Stroke
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil set", nil, NewStroke(1, Black), false},
		{"same", NewStroke(1, Black), NewStroke(1, Black), true},
		{"width", NewStroke(1, Black), NewStroke(2, Black), false},
		{"color", NewStroke(1, Black), NewStroke(1, White), false},
		{"no fill", &Stroke{Width: 1}, &Stroke{Width: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualStrokes(tt.a, tt.b); got != tt.want {
				t.Errorf("EqualStrokes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrokeClone(t *testing.T) {
	s := NewStroke(2, Black)
	c := s.Clone()
	c.Width = 3
	if s.Width != 2 {
		t.Errorf("Clone shares storage: Width = %v", s.Width)
	}
	if (*Stroke)(nil).Clone() != nil {
		t.Error("nil Clone() != nil")
	}
}
