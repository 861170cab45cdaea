package colr

import "github.com/golang/geo/r2"

// GlyphBounds computes the axis-aligned bounding rectangle of a color
// glyph's paint graph in renderer coordinates, without drawing.
//
// Composite nodes contribute the union of both children, which may
// over-approximate the true compositing bounds. Terminal fills
// contribute nothing by themselves; only glyph outlines produce
// geometry.
func (r *Renderer) GlyphBounds(glyphID uint16, mode RootTransformMode) (Rect, error) {
	ref, ok := r.Source.RootPaint(glyphID, mode)
	if !ok {
		return Rect{}, ErrNoColorGlyph
	}

	bounds := r2.EmptyRect()
	visited := make(visitedSet)
	if err := r.boundsRef(Identity(), &bounds, ref, visited); err != nil {
		return Rect{}, err
	}
	if bounds.IsEmpty() {
		return Rect{}, nil
	}
	return Rect{
		Min: Pt(bounds.X.Lo, bounds.Y.Lo),
		Max: Pt(bounds.X.Hi, bounds.Y.Hi),
	}, nil
}

// boundsRef is the draw-free sibling of paintRef. The running
// transform is threaded by value, so each branch restores it for free
// on return.
func (r *Renderer) boundsRef(ctm Matrix, bounds *r2.Rect, ref PaintRef, visited visitedSet) error {
	if visited.contains(ref) {
		return ErrCycleDetected
	}
	visited.add(ref)
	defer visited.remove(ref)

	p, err := r.Source.Paint(ref)
	if err != nil {
		return err
	}

	switch node := p.(type) {
	case PaintLayerList:
		for _, layer := range node.Layers {
			if err := r.boundsRef(ctm, bounds, layer, visited); err != nil {
				return err
			}
		}
		return nil

	case PaintGlyph:
		path, err := r.glyphPath(node.GlyphID)
		if err != nil {
			return err
		}
		bb, ok := path.Transform(ctm).BoundingBox()
		if ok {
			*bounds = bounds.Union(r2.RectFromPoints(
				r2.Point{X: bb.Min.X, Y: bb.Min.Y},
				r2.Point{X: bb.Max.X, Y: bb.Max.Y},
			))
		}
		return nil

	case PaintColrGlyph:
		inner, ok := r.Source.RootPaint(node.GlyphID, NoRootTransform)
		if !ok {
			return ErrNoColorGlyph
		}
		return r.boundsRef(ctm, bounds, inner, visited)

	case PaintTransform:
		m, _ := nodeTransform(node)
		return r.boundsRef(ctm.Multiply(m), bounds, node.Inner, visited)

	case PaintTranslate:
		m, _ := nodeTransform(node)
		return r.boundsRef(ctm.Multiply(m), bounds, node.Inner, visited)

	case PaintScale:
		m, _ := nodeTransform(node)
		return r.boundsRef(ctm.Multiply(m), bounds, node.Inner, visited)

	case PaintRotate:
		m, _ := nodeTransform(node)
		return r.boundsRef(ctm.Multiply(m), bounds, node.Inner, visited)

	case PaintSkew:
		m, _ := nodeTransform(node)
		return r.boundsRef(ctm.Multiply(m), bounds, node.Inner, visited)

	case PaintComposite:
		if err := r.boundsRef(ctm, bounds, node.Backdrop, visited); err != nil {
			return err
		}
		return r.boundsRef(ctm, bounds, node.Source, visited)

	case PaintSolid, PaintLinearGradient, PaintRadialGradient, PaintSweepGradient:
		return nil

	default:
		return ErrMissingPaint
	}
}
