package colr

// RootTransformMode selects whether a glyph's root paint includes the
// font's optional root transform.
type RootTransformMode uint8

const (
	// IncludeRootTransform resolves the root paint with the font's
	// global transform applied.
	IncludeRootTransform RootTransformMode = iota
	// NoRootTransform resolves the bare root paint.
	NoRootTransform
)

// OutlineSink receives the segments of a decomposed glyph outline.
// Coordinates are in font units with y growing upward; contours are
// implicitly closed at the next MoveTo or at the end of the outline.
type OutlineSink interface {
	MoveTo(p Point)
	LineTo(p Point)
	QuadTo(ctrl, p Point)
	CubicTo(ctrl1, ctrl2, p Point)
}

// Source provides decoded font data to the renderer: paint nodes by
// reference, root paints by glyph, clip-box hints, and glyph outlines.
//
// The renderer never owns or frees decoded data; a Source hands out
// small values and remains free to reuse its internal buffers between
// calls. Implementations must be safe for concurrent readers if
// renders run concurrently.
type Source interface {
	// Paint decodes the paint node behind a ref. Returns
	// ErrMissingPaint (possibly wrapped) if the ref is unknown.
	Paint(ref PaintRef) (Paint, error)

	// RootPaint resolves a glyph's root paint for the requested root
	// transform mode. The second result is false if the glyph has no
	// paint graph.
	RootPaint(glyphID uint16, mode RootTransformMode) (PaintRef, bool)

	// ClipBox returns the four corners of a glyph's precomputed clip
	// box in font units (y up), or false if the font defines none.
	// The box may be a non-rectangular quadrilateral.
	ClipBox(glyphID uint16) ([4]Point, bool)

	// DecomposeGlyph streams the glyph's outline at design-grid scale
	// into the sink. The outline must not depend on any render
	// transform so it composes with the accumulated matrix.
	DecomposeGlyph(glyphID uint16, sink OutlineSink) error
}
