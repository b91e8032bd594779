package warp

import "errors"

var (
	// ErrNoPaths is returned for a nil preset or a preset without paths.
	ErrNoPaths = errors.New("warp: preset has no paths")

	// ErrNoLineIndex is returned when the content was recorded without
	// line division and so has paragraph groups but no per-line index.
	ErrNoLineIndex = errors.New("warp: content has no line index")

	// ErrNilContent is returned for a nil content.
	ErrNilContent = errors.New("warp: nil content")

	// ErrUnknownPreset is returned by Lookup for a name without a built-in
	// preset.
	ErrUnknownPreset = errors.New("warp: unknown preset")
)
