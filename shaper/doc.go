// Package shaper is the glyph engine behind scene text.
//
// An Engine holds the registered fonts of a session. It serves three
// consumers:
//
//   - scene.Builder, through LoadGlyphPath, which emits glyph outlines in
//     millimetres into the scene
//   - grapheme.Cache.BBox, through GlyphBBox, which measures glyphs in
//     pixels at a dpi
//   - layout code, through Shape, which runs text through HarfBuzz and
//     interns each cluster as a grapheme
//
// Outlines are read with golang.org/x/image/font/sfnt at the font's own
// units per em and cached by glyph id, so one cached outline serves every
// font size.
//
// # Example
//
//	e := shaper.NewEngine()
//	if err := e.RegisterFont("Go", 0, goregular.TTF); err != nil {
//		return err
//	}
//	handles, err := e.Shape("Hello", "Go", 0)
//	if err != nil {
//		return err
//	}
//	b := scene.NewBuilder(210, 297, scene.WithEngine(e))
//	b.SetFont("Go", 12, false, false)
//	x := 20.0
//	for _, h := range handles {
//		b.DrawGrapheme(e.Graphemes(), h, x, 40, 12)
//		x += e.Graphemes().Width(h) * 12
//	}
//
// An Engine is not safe for concurrent use. Engines may share an outline
// cache created with NewOutlineCache.
package shaper
