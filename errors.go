package colr

import "errors"

// Errors returned by paint graph traversal. Any of them aborts only the
// current glyph's color rendering; callers fall back to plain outline
// rendering.
var (
	// ErrCycleDetected reports a paint ref that is already on the
	// active traversal path.
	ErrCycleDetected = errors.New("colr: cycle in paint graph")

	// ErrMissingPaint reports a paint ref the source cannot decode.
	ErrMissingPaint = errors.New("colr: missing paint node")

	// ErrPaletteIndex reports a non-foreground palette index outside
	// the palette.
	ErrPaletteIndex = errors.New("colr: palette index out of range")

	// ErrEmptyColorLine reports a gradient color line with no stops.
	ErrEmptyColorLine = errors.New("colr: color line has no stops")

	// ErrNoColorGlyph reports a glyph with no paint graph root.
	ErrNoColorGlyph = errors.New("colr: glyph has no color layers")
)
