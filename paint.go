package colr

// PaintRef identifies a paint node inside a font's paint graph.
//
// The handle is opaque to this package; the Source that issued it knows
// how to decode it. Refs are compared as values for cycle detection
// only - the same handle may legitimately be reached via multiple
// acyclic paths.
type PaintRef struct {
	Handle        uint32
	RootTransform bool
}

// FixedPoint is a point with 16.16 fixed-point coordinates in font
// space, where y grows upward.
type FixedPoint struct {
	X, Y Fixed
}

// ColorIndex selects a palette entry and an extra alpha to modulate it
// with. PaletteIndex may be ForegroundIndex to request the caller's
// foreground color.
type ColorIndex struct {
	PaletteIndex uint16
	Alpha        F2Dot14
}

// RawStop is one undecoded color-line stop. Stops arrive in
// implementation-defined order and must be sorted before use.
type RawStop struct {
	Offset F2Dot14
	Color  ColorIndex
}

// ColorLine is a gradient's color progression: raw stops plus the
// extend mode applied outside the [0, 1] offset range.
type ColorLine struct {
	Extend ExtendMode
	Stops  []RawStop
}

// Palette is a font color palette. Index ForegroundIndex is reserved
// and never stored; it substitutes the caller-supplied foreground.
type Palette []Color

// ForegroundIndex is the reserved palette index meaning "use the
// caller's foreground color".
const ForegroundIndex uint16 = 0xFFFF

// Paint is one node of a color glyph's paint graph.
//
// This is a sealed interface - the node set is fixed by the font graph
// format, so only types in this package implement it. Scalars use the
// font's fixed-point encodings: 16.16 for coordinates, scale factors
// and angles (angles as fractions of 180 degrees), 2.14 for alpha.
// All y-coordinates, pivots and angles are in the font's upward-y,
// counter-clockwise convention; the renderer flips them.
type Paint interface {
	isPaint()
}

// PaintLayerList draws each referenced layer in order onto the same
// surface state. Later layers composite over earlier ones.
type PaintLayerList struct {
	Layers []PaintRef
}

func (PaintLayerList) isPaint() {}

// PaintGlyph clips to a glyph outline and draws the inner paint
// through it.
type PaintGlyph struct {
	GlyphID uint16
	Inner   PaintRef
}

func (PaintGlyph) isPaint() {}

// PaintColrGlyph draws another color glyph's entire paint graph in
// place.
type PaintColrGlyph struct {
	GlyphID uint16
}

func (PaintColrGlyph) isPaint() {}

// PaintTransform applies a full 2x3 affine transform to its subtree.
type PaintTransform struct {
	XX, XY Fixed
	YX, YY Fixed
	DX, DY Fixed
	Inner  PaintRef
}

func (PaintTransform) isPaint() {}

// PaintTranslate applies a translation to its subtree.
type PaintTranslate struct {
	DX, DY Fixed
	Inner  PaintRef
}

func (PaintTranslate) isPaint() {}

// PaintScale scales its subtree about a pivot point.
type PaintScale struct {
	SX, SY Fixed
	CX, CY Fixed
	Inner  PaintRef
}

func (PaintScale) isPaint() {}

// PaintRotate rotates its subtree counter-clockwise about a pivot
// point. Angle is a 16.16 fraction of 180 degrees.
type PaintRotate struct {
	Angle  Fixed
	CX, CY Fixed
	Inner  PaintRef
}

func (PaintRotate) isPaint() {}

// PaintSkew skews its subtree about a pivot point. XAngle and YAngle
// are 16.16 fractions of 180 degrees.
type PaintSkew struct {
	XAngle, YAngle Fixed
	CX, CY         Fixed
	Inner          PaintRef
}

func (PaintSkew) isPaint() {}

// PaintComposite renders the backdrop subtree, then the source subtree,
// and merges the two with the given blend mode.
type PaintComposite struct {
	Backdrop PaintRef
	Source   PaintRef
	Mode     BlendMode
}

func (PaintComposite) isPaint() {}

// PaintSolid is a terminal flat fill.
type PaintSolid struct {
	Color ColorIndex
}

func (PaintSolid) isPaint() {}

// PaintLinearGradient is a terminal fill with a three-point linear
// gradient. P0-P1 is the nominal axis, P0-P2 the width axis.
type PaintLinearGradient struct {
	P0, P1, P2 FixedPoint
	Line       ColorLine
}

func (PaintLinearGradient) isPaint() {}

// PaintRadialGradient is a terminal fill interpolating between two
// circles.
type PaintRadialGradient struct {
	C0   FixedPoint
	R0   Fixed
	C1   FixedPoint
	R1   Fixed
	Line ColorLine
}

func (PaintRadialGradient) isPaint() {}

// PaintSweepGradient is a terminal fill sweeping counter-clockwise
// around a center. StartAngle and EndAngle are 16.16 fractions of 180
// degrees.
type PaintSweepGradient struct {
	Center     FixedPoint
	StartAngle Fixed
	EndAngle   Fixed
	Line       ColorLine
}

func (PaintSweepGradient) isPaint() {}
