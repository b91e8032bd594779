// Package scene records the drawing of laid-out document content into a
// replayable tree of drawable objects.
//
// A Builder is a stack machine. The layout engine opens and closes
// structure (StartStructure/EndStructure: content, paragraph, line, table,
// table row, shape) and, in between, issues path commands, style changes
// and glyph placements. The builder attributes every path segment to a
// Drawable selected by the innermost open structure and, for lines, by the
// line's draw role.
//
// # Tree
//
// The finished tree starts at a *Content. Paragraphs own lines; a *Line
// keeps one list of drawables per Role, so content glyphs, borders,
// backgrounds, underlines and paragraph backgrounds never mix. Tables and
// shapes own nested structure plus their border drawables.
//
// With line division enabled the builder also indexes every line by its
// visual line number (Content.ByLines); the warp package consumes that
// index. Otherwise lines are grouped by paragraph (Content.ByParagraphs).
//
// # Style runs
//
// Once a drawable has geometry it is never restyled. A style change that
// affects the active slot starts a new drawable, so the number of
// drawables in a role list equals the number of style runs.
//
// # Re-recording
//
// Paragraphs are identified by a caller-supplied ParagraphID. Starting a
// paragraph whose id is already a child of the current container reuses
// that node, and starting a line by index inside it reuses the line. The
// role list being recorded is cleared on reuse, so recording the same
// content twice yields the same tree.
//
// # Contract
//
// Unbalanced EndStructure calls and lines started outside a paragraph or
// content panic with a *ContractError. They are programming errors of the
// caller, not runtime conditions.
//
// A Builder is not safe for concurrent use and must not be re-entered from
// a GlyphEngine callback other than through the PathSink methods.
package scene
