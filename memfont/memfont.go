// Package memfont provides an in-memory colr.Source for fonts whose
// color tables have already been decoded, and for building color
// glyphs programmatically in tests and tools.
//
// A Font is built up with Add* and Set* calls, after which it serves
// concurrent readers. Building and reading must not overlap.
package memfont

import (
	"fmt"

	"github.com/gogpu/colr"
)

// Outliner supplies glyph outlines for glyphs that have no recorded
// outline in the Font itself.
type Outliner interface {
	Decompose(glyphID uint16, sink colr.OutlineSink) error
}

// Font is an in-memory paint graph, palette-free. It implements
// colr.Source.
type Font struct {
	paints []colr.Paint

	roots          map[uint16]colr.PaintRef
	transformRoots map[uint16]colr.PaintRef
	rootTransform  *colr.PaintTransform

	clipBoxes map[uint16][4]colr.Point
	outlines  map[uint16]*Outline

	// Outliner, when set, resolves outlines for glyphs without a
	// recorded Outline.
	Outliner Outliner
}

// NewFont creates an empty font.
func NewFont() *Font {
	return &Font{
		roots:          make(map[uint16]colr.PaintRef),
		transformRoots: make(map[uint16]colr.PaintRef),
		clipBoxes:      make(map[uint16][4]colr.Point),
		outlines:       make(map[uint16]*Outline),
	}
}

// AddPaint registers a paint node and returns a ref to it.
func (f *Font) AddPaint(p colr.Paint) colr.PaintRef {
	f.paints = append(f.paints, p)
	return colr.PaintRef{Handle: uint32(len(f.paints) - 1)}
}

// SetRoot makes ref the root paint of a glyph. If a root transform has
// been set, a wrapping transform node is registered as well.
func (f *Font) SetRoot(glyphID uint16, ref colr.PaintRef) {
	f.roots[glyphID] = ref
	if f.rootTransform != nil {
		f.transformRoots[glyphID] = f.wrapRoot(ref)
	}
}

// SetRootTransform sets the font-global transform that
// IncludeRootTransform roots carry. Coefficients are 16.16 fixed point
// in font conventions (y up). Existing roots are re-wrapped.
func (f *Font) SetRootTransform(xx, xy, yx, yy, dx, dy colr.Fixed) {
	f.rootTransform = &colr.PaintTransform{XX: xx, XY: xy, YX: yx, YY: yy, DX: dx, DY: dy}
	for glyphID, ref := range f.roots {
		f.transformRoots[glyphID] = f.wrapRoot(ref)
	}
}

func (f *Font) wrapRoot(ref colr.PaintRef) colr.PaintRef {
	node := *f.rootTransform
	node.Inner = ref
	wrapped := f.AddPaint(node)
	wrapped.RootTransform = true
	return wrapped
}

// SetClipBox records a glyph's clip box as four corners in font units
// (y up).
func (f *Font) SetClipBox(glyphID uint16, corners [4]colr.Point) {
	f.clipBoxes[glyphID] = corners
}

// SetOutline records a glyph's outline.
func (f *Font) SetOutline(glyphID uint16, o *Outline) {
	f.outlines[glyphID] = o
}

// Layer is one entry of a layered color glyph: an outline glyph filled
// with a palette color.
type Layer struct {
	GlyphID uint16
	Color   colr.ColorIndex
}

// AddLayeredGlyph builds the common bottom-to-top layered form - each
// layer a glyph outline filled with a flat palette color - and installs
// it as the glyph's root paint.
func (f *Font) AddLayeredGlyph(glyphID uint16, layers []Layer) {
	refs := make([]colr.PaintRef, len(layers))
	for i, l := range layers {
		fill := f.AddPaint(colr.PaintSolid{Color: l.Color})
		refs[i] = f.AddPaint(colr.PaintGlyph{GlyphID: l.GlyphID, Inner: fill})
	}
	f.SetRoot(glyphID, f.AddPaint(colr.PaintLayerList{Layers: refs}))
}

// Paint implements colr.Source.
func (f *Font) Paint(ref colr.PaintRef) (colr.Paint, error) {
	if int(ref.Handle) >= len(f.paints) {
		return nil, fmt.Errorf("%w: handle %d of %d", colr.ErrMissingPaint, ref.Handle, len(f.paints))
	}
	return f.paints[ref.Handle], nil
}

// RootPaint implements colr.Source.
func (f *Font) RootPaint(glyphID uint16, mode colr.RootTransformMode) (colr.PaintRef, bool) {
	if mode == colr.IncludeRootTransform && f.rootTransform != nil {
		ref, ok := f.transformRoots[glyphID]
		return ref, ok
	}
	ref, ok := f.roots[glyphID]
	return ref, ok
}

// ClipBox implements colr.Source.
func (f *Font) ClipBox(glyphID uint16) ([4]colr.Point, bool) {
	corners, ok := f.clipBoxes[glyphID]
	return corners, ok
}

// DecomposeGlyph implements colr.Source.
func (f *Font) DecomposeGlyph(glyphID uint16, sink colr.OutlineSink) error {
	if o, ok := f.outlines[glyphID]; ok {
		o.Replay(sink)
		return nil
	}
	if f.Outliner != nil {
		return f.Outliner.Decompose(glyphID, sink)
	}
	return fmt.Errorf("memfont: no outline for glyph %d", glyphID)
}
