package colr

import "image/color"

// Color is an 8-bit RGBA color with straight (non-premultiplied) alpha.
// This is the color representation used throughout the paint graph:
// palette entries, resolved color stops, and brush colors.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent color.
var Transparent = Color{}

// Black is opaque black. Gradient fills use it as the placeholder base
// color so that gradient alpha is not modulated a second time.
var Black = Color{A: 0xFF}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 257, uint32(c.G) * 257, uint32(c.B) * 257, uint32(c.A) * 257
}

// NRGBA returns the color as color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ModulateAlpha scales the color's alpha by a fractional alpha in [0, 1].
// Paint graphs deliver per-stop and per-fill alpha as 2.14 fixed-point
// fractions; the final alpha is baseAlpha * fraction.
func (c Color) ModulateAlpha(f F2Dot14) Color {
	a := uint32(c.A) * uint32(f.clamped()) >> 14
	c.A = uint8(a)
	return c
}
