package colr

// Renderer draws color glyphs from a Source onto a Canvas.
//
// A Renderer holds no mutable state between calls; the palette and
// foreground are read-only during rendering, so a single Renderer is
// safe for concurrent use across distinct canvases.
type Renderer struct {
	Source     Source
	Palette    Palette
	Foreground Color
}

// RenderOptions controls a single color glyph render.
type RenderOptions struct {
	// Mode selects whether the font's root transform applies.
	Mode RootTransformMode

	// SubpixelX and SubpixelY translate the glyph before traversal,
	// in renderer units.
	SubpixelX, SubpixelY float64
}

// RenderGlyph renders a glyph's paint graph onto the canvas.
//
// On failure nothing useful has been drawn and the caller should fall
// back to plain outline rendering; the error never poisons other
// glyphs. The canvas transform and clip are restored regardless of
// outcome, though drawing already issued is not undone - callers
// render into a scratch surface they discard on error.
func (r *Renderer) RenderGlyph(canvas Canvas, glyphID uint16, opts RenderOptions) error {
	canvas.Save()
	defer canvas.Restore()

	if opts.SubpixelX != 0 || opts.SubpixelY != 0 {
		canvas.Concat(Translate(opts.SubpixelX, opts.SubpixelY))
	}

	visited := make(visitedSet)
	if err := r.startGlyph(canvas, glyphID, opts.Mode, visited); err != nil {
		Logger().Debug("color glyph render failed",
			"glyph", glyphID, "error", err)
		return err
	}
	return nil
}

// startGlyph resolves a glyph's root paint, applies the clip-box hint
// when the font provides one, and traverses the graph. Also the entry
// point for nested PaintColrGlyph nodes, which reuse the caller's
// visited set so cross-glyph cycles are caught.
func (r *Renderer) startGlyph(canvas Canvas, glyphID uint16, mode RootTransformMode, visited visitedSet) error {
	ref, ok := r.Source.RootPaint(glyphID, mode)
	if !ok {
		return ErrNoColorGlyph
	}

	if corners, ok := r.Source.ClipBox(glyphID); ok {
		clip := NewPath()
		clip.Quad([4]Point{
			flipY(corners[0]),
			flipY(corners[1]),
			flipY(corners[2]),
			flipY(corners[3]),
		})
		canvas.ClipPath(clip)
	}

	return r.paintRef(canvas, ref, visited)
}

// paintRef traverses one paint node: cycle check, decode, scoped
// canvas state, dispatch.
func (r *Renderer) paintRef(canvas Canvas, ref PaintRef, visited visitedSet) error {
	// Color glyphs form a DAG; a ref already on the active path means
	// the graph has a cycle.
	if visited.contains(ref) {
		return ErrCycleDetected
	}
	visited.add(ref)
	defer visited.remove(ref)

	p, err := r.Source.Paint(ref)
	if err != nil {
		return err
	}

	canvas.Save()
	defer canvas.Restore()

	return r.paintNode(canvas, p, visited)
}

func (r *Renderer) paintNode(canvas Canvas, p Paint, visited visitedSet) error {
	switch node := p.(type) {
	case PaintLayerList:
		for _, layer := range node.Layers {
			if err := r.paintRef(canvas, layer, visited); err != nil {
				return err
			}
		}
		return nil

	case PaintGlyph:
		// Peek at the inner paint: a glyph followed directly by a
		// terminal fill can fill the path in one operation instead of
		// clipping and painting the whole surface. Terminal nodes have
		// no children, so skipping the cycle check here is safe.
		inner, err := r.Source.Paint(node.Inner)
		if err != nil {
			return err
		}
		if brush, terminal, err := terminalBrush(inner, r.Palette, r.Foreground); terminal {
			if err != nil {
				return err
			}
			path, err := r.glyphPath(node.GlyphID)
			if err != nil {
				return err
			}
			canvas.FillPath(path, brush)
			return nil
		}
		path, err := r.glyphPath(node.GlyphID)
		if err != nil {
			return err
		}
		canvas.ClipPath(path)
		return r.paintRef(canvas, node.Inner, visited)

	case PaintColrGlyph:
		return r.startGlyph(canvas, node.GlyphID, NoRootTransform, visited)

	case PaintTransform:
		m, _ := nodeTransform(node)
		canvas.Concat(m)
		return r.paintRef(canvas, node.Inner, visited)

	case PaintTranslate:
		m, _ := nodeTransform(node)
		canvas.Concat(m)
		return r.paintRef(canvas, node.Inner, visited)

	case PaintScale:
		m, _ := nodeTransform(node)
		canvas.Concat(m)
		return r.paintRef(canvas, node.Inner, visited)

	case PaintRotate:
		m, _ := nodeTransform(node)
		canvas.Concat(m)
		return r.paintRef(canvas, node.Inner, visited)

	case PaintSkew:
		m, _ := nodeTransform(node)
		canvas.Concat(m)
		return r.paintRef(canvas, node.Inner, visited)

	case PaintComposite:
		// Backdrop renders into a fresh transparent layer; the source
		// renders into a second layer carrying the blend mode. Popping
		// merges source onto backdrop, then backdrop onto the surface.
		canvas.PushLayer(BlendSourceOver, 1)
		if err := r.paintRef(canvas, node.Backdrop, visited); err != nil {
			canvas.PopLayer()
			return err
		}
		canvas.PushLayer(node.Mode, 1)
		err := r.paintRef(canvas, node.Source, visited)
		canvas.PopLayer()
		canvas.PopLayer()
		return err

	case PaintSolid, PaintLinearGradient, PaintRadialGradient, PaintSweepGradient:
		brush, _, err := terminalBrush(p, r.Palette, r.Foreground)
		if err != nil {
			return err
		}
		canvas.FillSurface(brush)
		return nil

	default:
		return ErrMissingPaint
	}
}

// glyphPath decodes a glyph outline at design-grid scale into a path.
func (r *Renderer) glyphPath(glyphID uint16) (*Path, error) {
	builder := NewPathBuilder()
	if err := r.Source.DecomposeGlyph(glyphID, builder); err != nil {
		return nil, err
	}
	return builder.Path(), nil
}
