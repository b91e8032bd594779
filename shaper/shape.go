package shaper

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textdraw/grapheme"
)

// run is a half-open rune range of one direction.
type run struct {
	start, end int
	dir        di.Direction
}

// Shape shapes text in font name and style and interns every cluster in
// the engine's grapheme cache. Advances and offsets are recorded at
// grapheme.MeasureFontSize. Handles come back in visual order: bidi runs
// left to right, and right-to-left runs reversed.
func (e *Engine) Shape(text, name string, style grapheme.Style) ([]grapheme.Handle, error) {
	f, err := e.lookup(name, style)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	runes := []rune(text)
	var out []grapheme.Handle
	for _, r := range bidiRuns(text, len(runes)) {
		out = e.shapeRun(out, f, name, style, runes, r)
	}
	return out, nil
}

func (e *Engine) shapeRun(out []grapheme.Handle, f *face, name string, style grapheme.Style,
	runes []rune, r run) []grapheme.Handle {
	in := shaping.Input{
		Text:      runes,
		RunStart:  r.start,
		RunEnd:    r.end,
		Direction: r.dir,
		Face:      font.NewFace(f.text),
		Size:      fixed.I(grapheme.MeasureFontSize),
		Script:    detectScript(runes[r.start:r.end]),
		Language:  language.NewLanguage("en"),
	}
	glyphs := e.hb.Shape(in).Glyphs

	for i := 0; i < len(glyphs); {
		ci := glyphs[i].TextIndex()
		j := i + 1
		for j < len(glyphs) && glyphs[j].TextIndex() == ci {
			j++
		}
		e.graphemes.BeginFont(name, style)
		for _, g := range glyphs[i:j] {
			e.graphemes.AddGlyph(grapheme.GlyphID(g.GlyphID),
				int32(g.Advance), 0, int32(g.XOffset), int32(g.YOffset))
		}
		end := min(ci+max(glyphs[i].RuneCount, 1), len(runes))
		out = append(out, e.graphemes.Intern(runes[ci:end]))
		i = j
	}
	return out
}

// bidiRuns splits text into directional runs in visual order. Text the
// bidi algorithm rejects is one left-to-right run.
func bidiRuns(text string, n int) []run {
	whole := []run{{start: 0, end: n, dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return whole
	}
	runs := make([]run, 0, o.NumRuns())
	for i := range o.NumRuns() {
		br := o.Run(i)
		// Pos is inclusive, in runes.
		start, end := br.Pos()
		dir := di.DirectionLTR
		if br.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		if end = min(end+1, n); start < end {
			runs = append(runs, run{start: start, end: end, dir: dir})
		}
	}
	if len(runs) == 0 {
		return whole
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
