package colr

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - LinearGradientBrush: a linear transition between two points
//   - RadialGradientBrush: a transition between two circles
//   - SweepGradientBrush: an angular transition around a center
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given brush-space coordinates.
	// For solid brushes, this returns the same color regardless of position.
	ColorAt(x, y float64) Color
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color Color
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) Color {
	return b.Color
}

// Solid creates a SolidBrush from a color.
func Solid(c Color) SolidBrush {
	return SolidBrush{Color: c}
}

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color   // Color at this position
}

// LinearGradientBrush represents a linear color transition between two points.
type LinearGradientBrush struct {
	Start  Point       // Start point of the gradient (t=0)
	End    Point       // End point of the gradient (t=1)
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How gradient extends beyond bounds
}

// brushMarker implements the sealed Brush interface.
func (*LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) Color {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project the point onto the gradient line.
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}

// RadialGradientBrush represents a color transition between two circles.
// The gradient interpolates along the family of circles
// lerp(StartCenter/StartRadius, EndCenter/EndRadius, t).
type RadialGradientBrush struct {
	StartCenter Point
	StartRadius float64
	EndCenter   Point
	EndRadius   float64
	Stops       []ColorStop
	Extend      ExtendMode
}

// brushMarker implements the sealed Brush interface.
func (*RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *RadialGradientBrush) ColorAt(x, y float64) Color {
	t, ok := g.solveT(x, y)
	if !ok {
		return Transparent
	}
	return colorAtOffset(g.Stops, t, g.Extend)
}

// solveT finds the largest t such that the point lies on the circle
// C(t) = lerp(c0, c1, t) with radius R(t) = lerp(r0, r1, t) >= 0.
func (g *RadialGradientBrush) solveT(x, y float64) (float64, bool) {
	cdx := g.EndCenter.X - g.StartCenter.X
	cdy := g.EndCenter.Y - g.StartCenter.Y
	dr := g.EndRadius - g.StartRadius

	pdx := x - g.StartCenter.X
	pdy := y - g.StartCenter.Y

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.StartRadius*dr
	c := pdx*pdx + pdy*pdy - g.StartRadius*g.StartRadius

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		if g.StartRadius+t*dr < 0 {
			return 0, false
		}
		return t, true
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{(b + sq) / a, (b - sq) / a} {
		if g.StartRadius+t*dr >= 0 {
			return t, true
		}
	}
	return 0, false
}

// SweepGradientBrush represents an angular color transition around a
// center point. Angles are in degrees, measured from the +x axis toward
// the +y axis. The gradient covers the sector [StartAngle, EndAngle];
// outside the sector the extend mode applies.
//
// Local is an extra brush-space transform applied before sampling.
// It is the identity unless set.
type SweepGradientBrush struct {
	Center     Point
	StartAngle float64
	EndAngle   float64
	Stops      []ColorStop
	Extend     ExtendMode
	Local      Matrix
}

// brushMarker implements the sealed Brush interface.
func (*SweepGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *SweepGradientBrush) ColorAt(x, y float64) Color {
	if !g.Local.IsIdentity() {
		p := g.Local.Invert().TransformPoint(Pt(x, y))
		x, y = p.X, p.Y
	}

	sector := g.EndAngle - g.StartAngle
	if sector == 0 {
		return firstStopColor(g.Stops)
	}

	angle := math.Atan2(y-g.Center.Y, x-g.Center.X) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	t := (angle - g.StartAngle) / sector

	return colorAtOffset(g.Stops, t, g.Extend)
}

// sortStops returns the stops sorted by offset. The sort is stable so
// that coincident offsets keep their relative order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColor blends two colors in linear sRGB space. Alpha is
// interpolated linearly and kept straight (unpremultiplied).
func interpolateColor(c1, c2 Color, t float64) Color {
	col1 := colorful.Color{
		R: float64(c1.R) / 255,
		G: float64(c1.G) / 255,
		B: float64(c1.B) / 255,
	}
	col2 := colorful.Color{
		R: float64(c2.R) / 255,
		G: float64(c2.G) / 255,
		B: float64(c2.B) / 255,
	}

	r1, g1, b1 := col1.LinearRgb()
	r2, g2, b2 := col2.LinearRgb()
	blended := colorful.LinearRgb(
		r1+t*(r2-r1),
		g1+t*(g2-g1),
		b1+t*(b2-b1),
	).Clamped()
	alpha := float64(c1.A) + t*(float64(c2.A)-float64(c1.A))

	return Color{
		R: uint8(blended.R*255 + 0.5),
		G: uint8(blended.G*255 + 0.5),
		B: uint8(blended.B*255 + 0.5),
		A: uint8(alpha + 0.5),
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Coincident stops: the later stop wins at its exact offset.
	if stop2.Offset == stop1.Offset {
		return stop2.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColor(stop1.Color, stop2.Color, localT)
}

// firstStopColor returns the color of the stop with the smallest offset,
// or Transparent if there are no stops.
func firstStopColor(stops []ColorStop) Color {
	if len(stops) == 0 {
		return Transparent
	}
	sorted := sortStops(stops)
	return sorted[0].Color
}
