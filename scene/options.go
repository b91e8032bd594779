package scene

// Option configures a Builder during creation.
//
// Example:
//
//	// Per-line, per-glyph recording for a warp pass
//	b := scene.NewBuilder(w, h,
//		scene.WithLineDivision(),
//		scene.WithGlyphDivision(),
//		scene.WithEngine(engine))
type Option func(*builderOptions)

type builderOptions struct {
	engine     GlyphEngine
	resolver   FontResolver
	divLines   bool
	divGlyphs  bool
	checkLines bool
}

func defaultOptions() builderOptions {
	return builderOptions{resolver: identityResolver{}}
}

// WithLineDivision indexes lines by visual line number (Content.ByLines)
// instead of grouping them per paragraph (Content.ByParagraphs). The warp
// pass needs line division.
func WithLineDivision() Option {
	return func(o *builderOptions) {
		o.divLines = true
	}
}

// WithGlyphDivision starts a new content drawable for every glyph so each
// glyph can be warped on its own and tagged with its character.
func WithGlyphDivision() Option {
	return func(o *builderOptions) {
		o.divGlyphs = true
	}
}

// WithEngine sets the glyph engine used by FillText, FillTextCode and
// PlaceGlyph. Without an engine text calls record nothing.
func WithEngine(e GlyphEngine) Option {
	return func(o *builderOptions) {
		o.engine = e
	}
}

// WithFontResolver sets the resolver that maps requested families to
// installed fonts. The default passes names through unchanged.
func WithFontResolver(r FontResolver) Option {
	return func(o *builderOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithCheckLines converts near-vertical and near-horizontal line segments
// into subdivided cubics from the start. See Builder.SetCheckLines.
func WithCheckLines() Option {
	return func(o *builderOptions) {
		o.checkLines = true
	}
}
