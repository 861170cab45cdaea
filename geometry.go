package colr

import "math"

// renderPoint converts a fixed-point font-space point to renderer
// space, flipping y downward.
func (p FixedPoint) renderPoint() Point {
	return Point{X: p.X.Float(), Y: -p.Y.Float()}
}

// nearlyZeroTolerance matches the snap threshold used for rotation and
// skew tangents (2^-12).
const nearlyZeroTolerance = 1.0 / (1 << 12)

// nodeTransform returns the renderer-space affine transform for a
// transform-family paint node. Pivot points and y-components are
// flipped from the font's upward-y convention, and angles from
// counter-clockwise font degrees to the renderer's direction.
func nodeTransform(p Paint) (Matrix, bool) {
	switch node := p.(type) {
	case PaintTransform:
		return Matrix{
			A: node.XX.Float(), B: -node.XY.Float(), C: node.DX.Float(),
			D: -node.YX.Float(), E: node.YY.Float(), F: -node.DY.Float(),
		}, true
	case PaintTranslate:
		return Translate(node.DX.Float(), -node.DY.Float()), true
	case PaintScale:
		return ScaleAbout(node.SX.Float(), node.SY.Float(),
			node.CX.Float(), -node.CY.Float()), true
	case PaintRotate:
		return RotateAboutDeg(-node.Angle.Float()*180,
			node.CX.Float(), -node.CY.Float()), true
	case PaintSkew:
		xTan := math.Tan(node.XAngle.Float() * math.Pi)
		if math.Abs(xTan) < nearlyZeroTolerance {
			xTan = 0
		}
		// Negate the y angle to keep the skew counter-clockwise in a
		// y-down space.
		yTan := math.Tan(-node.YAngle.Float() * math.Pi)
		if math.Abs(yTan) < nearlyZeroTolerance {
			yTan = 0
		}
		return SkewAbout(xTan, yTan,
			node.CX.Float(), -node.CY.Float()), true
	}
	return Matrix{}, false
}

// terminalBrush builds the fill brush for a terminal paint node.
// The second result is false when the node is not a terminal fill.
// Degenerate gradient geometry is not an error: it degrades to a flat
// fill of a stop color.
func terminalBrush(p Paint, palette Palette, foreground Color) (Brush, bool, error) {
	switch node := p.(type) {
	case PaintSolid:
		c, err := resolveColorIndex(node.Color, palette, foreground)
		if err != nil {
			return nil, true, err
		}
		return Solid(c), true, nil
	case PaintLinearGradient:
		b, err := linearBrush(node, palette, foreground)
		return b, true, err
	case PaintRadialGradient:
		b, err := radialBrush(node, palette, foreground)
		return b, true, err
	case PaintSweepGradient:
		b, err := sweepBrush(node, palette, foreground)
		return b, true, err
	}
	return nil, false, nil
}

// linearBrush reconstructs a two-point linear gradient from the three
// control points P0 (origin), P1 (nominal axis) and P2 (width axis).
//
// The corrected endpoint P3 is the projection of P0P1 onto the
// perpendicular of P0P2 through P0, which preserves the skew the
// three-point form can express. Endpoints and stop offsets are then
// rescaled so the first and last stop land exactly on [0, 1], which
// the repeat and reflect extend modes require.
func linearBrush(node PaintLinearGradient, palette Palette, foreground Color) (Brush, error) {
	stops, err := resolveStops(node.Line, palette, foreground)
	if err != nil {
		return nil, err
	}
	if len(stops) == 1 {
		return Solid(stops[0].Color), nil
	}

	p0 := node.P0.renderPoint()
	p1 := node.P1.renderPoint()
	p2 := node.P2.renderPoint()

	// Degenerate or parallel axes: nothing meaningful to interpolate
	// along, fill with the first color.
	if p1 == p0 || p2 == p0 || p1.Sub(p0).Cross(p2.Sub(p0)) == 0 {
		return Solid(stops[0].Color), nil
	}

	perp := p2.Sub(p0)
	perp = Point{X: perp.Y, Y: -perp.X}
	p3 := p0.Add(p1.Sub(p0).project(perp))

	first := stops[0].Offset
	last := stops[len(stops)-1].Offset
	if last == first {
		return Solid(stops[len(stops)-1].Color), nil
	}

	p0p3 := p3.Sub(p0)
	start := p0.Add(p0p3.Mul(first))
	end := p0.Add(p0p3.Mul(last))

	scale := 1 / (last - first)
	rescaled := make([]ColorStop, len(stops))
	for i, s := range stops {
		rescaled[i] = ColorStop{
			Offset: (s.Offset - first) * scale,
			Color:  s.Color,
		}
	}

	return &LinearGradientBrush{
		Start:  start,
		End:    end,
		Stops:  rescaled,
		Extend: node.Line.Extend,
	}, nil
}

// radialBrush maps the two (center, radius) pairs directly onto a
// two-point conical gradient.
func radialBrush(node PaintRadialGradient, palette Palette, foreground Color) (Brush, error) {
	stops, err := resolveStops(node.Line, palette, foreground)
	if err != nil {
		return nil, err
	}
	if len(stops) == 1 {
		return Solid(stops[0].Color), nil
	}

	return &RadialGradientBrush{
		StartCenter: node.C0.renderPoint(),
		StartRadius: node.R0.Float(),
		EndCenter:   node.C1.renderPoint(),
		EndRadius:   node.R1.Float(),
		Stops:       stops,
		Extend:      node.Line.Extend,
	}, nil
}

// clampAngle normalizes an angle in degrees to [0, 360).
func clampAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// sweepBrush builds a sweep gradient covering the sector from the
// node's start angle to its end angle, counter-clockwise on the design
// grid.
//
// The brush's sweep direction is clockwise in a y-down space, so the
// sector is laid out from angle zero and a local matrix rotates it to
// the start angle and mirrors the y axis about the center, making the
// corrected arc cover exactly the source's counter-clockwise arc.
func sweepBrush(node PaintSweepGradient, palette Palette, foreground Color) (Brush, error) {
	stops, err := resolveStops(node.Line, palette, foreground)
	if err != nil {
		return nil, err
	}
	if len(stops) == 1 {
		return Solid(stops[0].Color), nil
	}

	start := clampAngle(node.StartAngle.Float() * 180)
	end := clampAngle(node.EndAngle.Float() * 180)
	sector := end - start
	if end <= start {
		sector = end + 360 - start
	}

	center := node.Center.renderPoint()
	local := ScaleAbout(1, -1, center.X, center.Y).
		Multiply(RotateAboutDeg(start, center.X, center.Y))

	return &SweepGradientBrush{
		Center:     center,
		StartAngle: 0,
		EndAngle:   sector,
		Stops:      stops,
		Extend:     node.Line.Extend,
		Local:      local,
	}, nil
}
