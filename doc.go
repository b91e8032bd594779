// Package textdraw records laid-out document text as a replayable tree of
// drawable objects and bends that tree onto WordArt-style preset paths.
//
// # Overview
//
// A layout engine walks its content tree and drives a [scene.Builder] with
// balanced start/end structure calls (content, paragraph, line, table, shape)
// interleaved with path construction and style changes. The builder produces
// a [scene.Content] tree in which every line partitions its drawables into
// content, border, background, underline and paragraph-background lists.
//
// For warped text art, the [warp] package re-projects the drawables of each
// visual line onto polygons sampled from a preset path list, and merges
// adjacent drawables that share fill and stroke.
//
// Shaped glyph runs are interned by the [grapheme] package into compact
// records behind dense integer handles. The [shaper] package provides a glyph
// engine backed by go-text/typesetting (HarfBuzz shaping) and
// golang.org/x/image (glyph outlines and bounds).
//
// # Architecture
//
//   - geom: points, affine matrices, paths, polygon arc-length sampling, oriented bounds
//   - paint: fill and stroke descriptors with deep equality
//   - grapheme: shaped glyph run cache
//   - scene: command recorder (the builder) and the drawable tree
//   - warp: text-on-path warping, union pass, content reduction
//   - recording: replay target capturing typed draw commands
//   - shaper: go-text/x-image glyph engine
//   - cache: generic LRU used for glyph outlines
//
// # Coordinate System
//
// Document coordinates are millimetres with the origin at the top-left and
// Y increasing downward. Font sizes are points.
//
// # Logging
//
// textdraw is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] logger.
package textdraw

// Version is the current version of the library.
const Version = "0.1.0"
