package scene

import (
	"github.com/gogpu/textdraw/geom"
	"github.com/gogpu/textdraw/grapheme"
	"github.com/gogpu/textdraw/paint"
)

// newRun starts a new style run for the active drawable.
func (b *Builder) newRun() {
	b.resolveActive(false, true, nil, geom.NoCode)
}

// SetPenColor sets the pen color. Inside an underline line with text
// properties the color becomes the text outline instead.
func (b *Builder) SetPenColor(c paint.RGBA) {
	b.penColor = c
	if l, ok := b.top().(*Line); ok && l.Role == RoleUnderline && b.textProps != nil {
		p := b.textProps.Clone()
		width := b.penWidth
		if p.Outline != nil {
			width = p.Outline.Width
		}
		p.Outline = &paint.Stroke{Width: width, Fill: paint.Solid(c)}
		b.SetTextProps(p)
		return
	}
	b.newRun()
}

// SetPenWidth sets the pen width in millimetres.
func (b *Builder) SetPenWidth(w float64) {
	b.penWidth = w
	b.newRun()
}

// Pen returns the pen color and width.
func (b *Builder) Pen() (paint.RGBA, float64) {
	return b.penColor, b.penWidth
}

// SetBrushColor1 sets the primary brush color. Inside a content line with
// text properties the color replaces the text fill instead.
func (b *Builder) SetBrushColor1(c paint.RGBA) {
	b.brush1 = &c
	b.texture = nil
	if l, ok := b.top().(*Line); ok && l.Role == RoleContent && b.textProps != nil {
		p := b.textProps.Clone()
		p.TextFill = nil
		p.Unifill = nil
		p.Color = &c
		b.SetTextProps(p)
		return
	}
	b.newRun()
}

// SetBrushColor2 sets the secondary brush color.
func (b *Builder) SetBrushColor2(c paint.RGBA) {
	b.brush2 = &c
	b.newRun()
}

// SetBrushTexture makes the brush paint with a texture.
func (b *Builder) SetBrushTexture(ref string, mode int) {
	b.brush1 = nil
	b.texture = &paint.TextureFill{Ref: ref, Mode: mode}
	b.newRun()
}

// SetFillColor sets the fill used by borders, backgrounds and table and
// shape geometry.
func (b *Builder) SetFillColor(c paint.RGBA) {
	b.fill = paint.Solid(c)
	b.newRun()
}

// SetShading sets the background fill from a shading. A nil or disabled
// shading clears it.
func (b *Builder) SetShading(s *Shading) {
	switch {
	case s == nil || s.Nil:
		b.fill = nil
	case s.Fill != nil:
		b.fill = s.Fill
	case s.Color != nil:
		b.fill = paint.Solid(*s.Color)
	default:
		b.fill = nil
	}
	b.newRun()
}

// SetBorder sets the stroke used by borders and backgrounds. The stroke
// takes the current pen width. The active run is not split; the border
// applies from the next run on.
func (b *Builder) SetBorder(br *Border) {
	if br == nil || br.None {
		b.line = nil
		return
	}
	fill := br.Fill
	if fill == nil {
		fill = paint.Solid(br.Color)
	}
	b.line = &paint.Stroke{Width: b.penWidth, Fill: fill}
}

// SetTextProps sets the text properties. A new run starts only when the
// text paint changes.
func (b *Builder) SetTextProps(p *TextProps) {
	same := b.sameTextPaint(p, b.textProps)
	b.textProps = p
	if !same {
		b.newRun()
	}
}

// SetAdditionalProps applies extra text properties. Nil is ignored.
func (b *Builder) SetAdditionalProps(p *TextProps) {
	if p != nil {
		b.SetTextProps(p)
	}
}

// TextProps returns the current text properties.
func (b *Builder) TextProps() *TextProps {
	return b.textProps
}

// SetFont selects a font family. The family is resolved to an installed
// font and the style is reduced to what that font lacks natively.
func (b *Builder) SetFont(family string, size float64, bold, italic bool) {
	name, base := b.opts.resolver.Resolve(family, makeStyle(bold, italic))
	b.font = fontState{name: name, size: size, style: base}
}

// SetFontInternal selects a font by name with an explicit style.
func (b *Builder) SetFontInternal(name string, size float64, style grapheme.Style) {
	resolved, _ := b.opts.resolver.Resolve(name, style)
	b.font = fontState{name: resolved, size: size, style: style}
}

// SetFontSlot selects the font of the text properties for slot. coef
// scales the size; zero means 1.
func (b *Builder) SetFontSlot(slot FontSlot, coef float64) {
	p := b.textProps
	if p == nil {
		p = &TextProps{}
	}
	family := p.Fonts.HAnsi
	size, bold, italic := p.FontSize, p.Bold, p.Italic
	switch slot {
	case SlotASCII:
		family = p.Fonts.ASCII
	case SlotCS:
		family = p.Fonts.CS
		size, bold, italic = p.FontSizeCS, p.BoldCS, p.ItalicCS
	case SlotEastAsia:
		family = p.Fonts.EastAsia
	}
	if coef != 0 {
		size *= coef
	}
	style := makeStyle(bold, italic)
	name, _ := b.opts.resolver.Resolve(family, style)
	b.font = fontState{name: name, size: size, style: style}
}

// Font returns the selected font name, size and style.
func (b *Builder) Font() (name string, size float64, style grapheme.Style) {
	return b.font.name, b.font.size, b.font.style
}

func makeStyle(bold, italic bool) grapheme.Style {
	var s grapheme.Style
	if bold {
		s |= grapheme.StyleBold
	}
	if italic {
		s |= grapheme.StyleItalic
	}
	return s
}

// SetTransform sets the text transform captured by new drawables.
func (b *Builder) SetTransform(m geom.Matrix) {
	b.transform = m
}

// Transform returns the text transform.
func (b *Builder) Transform() geom.Matrix {
	return b.transform
}

// Reset restores the identity transform.
func (b *Builder) Reset() {
	b.transform = geom.Identity()
}
