package shaper

import "github.com/gogpu/textdraw/grapheme"

// DefaultOutlineCacheSize is the outline capacity of an engine's own cache.
const DefaultOutlineCacheSize = 4096

// Option configures an Engine during creation.
type Option func(*config)

type config struct {
	graphemes   *grapheme.Cache
	outlines    *OutlineCache
	outlineSize int
}

func defaultConfig() config {
	return config{outlineSize: DefaultOutlineCacheSize}
}

// WithCache sets the grapheme cache Shape interns into. By default each
// engine owns a fresh cache.
func WithCache(c *grapheme.Cache) Option {
	return func(cfg *config) {
		cfg.graphemes = c
	}
}

// WithOutlineCacheSize sets the capacity of the engine's outline cache.
// Non-positive values keep DefaultOutlineCacheSize.
func WithOutlineCacheSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.outlineSize = n
		}
	}
}

// WithOutlineCache shares an outline cache between engines.
func WithOutlineCache(c *OutlineCache) Option {
	return func(cfg *config) {
		cfg.outlines = c
	}
}
