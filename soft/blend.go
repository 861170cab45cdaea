// Package soft is a CPU drawing surface for color glyph rendering.
// It implements the colr.Canvas interface over a premultiplied RGBA
// image, with offscreen layers, path clipping, and the full set of
// Porter-Duff, separable and HSL blend modes.
package soft

import (
	"math"

	"github.com/gogpu/colr"
)

// pixel is one premultiplied R,G,B,A pixel.
type pixel [4]uint8

// div255 divides by 255 using the fast shift approximation. The
// maximum error is +1, imperceptible in blending.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint16(a) * uint16(b)))
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// scalePixel multiplies all four channels by an 8-bit factor.
func scalePixel(p pixel, f uint8) pixel {
	if f == 255 {
		return p
	}
	return pixel{
		mulDiv255(p[0], f),
		mulDiv255(p[1], f),
		mulDiv255(p[2], f),
		mulDiv255(p[3], f),
	}
}

// premul converts a straight-alpha color to a premultiplied pixel.
func premul(c colr.Color) pixel {
	return pixel{
		mulDiv255(c.R, c.A),
		mulDiv255(c.G, c.A),
		mulDiv255(c.B, c.A),
		c.A,
	}
}

// blendPixel composites a premultiplied source over a premultiplied
// destination with the given mode.
func blendPixel(mode colr.BlendMode, s, d pixel) pixel {
	switch mode {
	case colr.BlendClear:
		return pixel{}
	case colr.BlendSource:
		return s
	case colr.BlendDestination:
		return d
	case colr.BlendSourceOver:
		return sourceOver(s, d)
	case colr.BlendDestinationOver:
		return sourceOver(d, s)
	case colr.BlendSourceIn:
		return scalePixel(s, d[3])
	case colr.BlendDestinationIn:
		return scalePixel(d, s[3])
	case colr.BlendSourceOut:
		return scalePixel(s, 255-d[3])
	case colr.BlendDestinationOut:
		return scalePixel(d, 255-s[3])
	case colr.BlendSourceAtop:
		return addPixels(scalePixel(s, d[3]), scalePixel(d, 255-s[3]))
	case colr.BlendDestinationAtop:
		return addPixels(scalePixel(s, 255-d[3]), scalePixel(d, s[3]))
	case colr.BlendXor:
		return addPixels(scalePixel(s, 255-d[3]), scalePixel(d, 255-s[3]))
	case colr.BlendPlus:
		return addPixels(s, d)

	case colr.BlendMultiply:
		return separable(s, d, mulDiv255)
	case colr.BlendScreen:
		return separable(s, d, func(cs, cb uint8) uint8 {
			return 255 - mulDiv255(255-cs, 255-cb)
		})
	case colr.BlendOverlay:
		return separable(s, d, func(cs, cb uint8) uint8 {
			return hardLight(cb, cs)
		})
	case colr.BlendDarken:
		return separable(s, d, func(cs, cb uint8) uint8 {
			if cs < cb {
				return cs
			}
			return cb
		})
	case colr.BlendLighten:
		return separable(s, d, func(cs, cb uint8) uint8 {
			if cs > cb {
				return cs
			}
			return cb
		})
	case colr.BlendColorDodge:
		return separable(s, d, func(cs, cb uint8) uint8 {
			if cs == 255 {
				return 255
			}
			v := uint16(cb) * 255 / uint16(255-cs)
			if v > 255 {
				return 255
			}
			return uint8(v)
		})
	case colr.BlendColorBurn:
		return separable(s, d, func(cs, cb uint8) uint8 {
			if cs == 0 {
				return 0
			}
			v := uint16(255-cb) * 255 / uint16(cs)
			if v > 255 {
				return 0
			}
			return 255 - uint8(v)
		})
	case colr.BlendHardLight:
		return separable(s, d, hardLight)
	case colr.BlendSoftLight:
		return separable(s, d, softLight)
	case colr.BlendDifference:
		return separable(s, d, func(cs, cb uint8) uint8 {
			if cs > cb {
				return cs - cb
			}
			return cb - cs
		})
	case colr.BlendExclusion:
		return separable(s, d, func(cs, cb uint8) uint8 {
			sum := uint16(cs) + uint16(cb)
			return uint8(sum - 2*uint16(mulDiv255(cs, cb)))
		})

	case colr.BlendHue, colr.BlendSaturation, colr.BlendColor, colr.BlendLuminosity:
		return hslBlend(mode, s, d)

	default:
		return sourceOver(s, d)
	}
}

func sourceOver(s, d pixel) pixel {
	return addPixels(s, scalePixel(d, 255-s[3]))
}

func addPixels(a, b pixel) pixel {
	return pixel{
		addSat(a[0], b[0]),
		addSat(a[1], b[1]),
		addSat(a[2], b[2]),
		addSat(a[3], b[3]),
	}
}

// hardLight is multiply or screen depending on the source channel.
// The doubled products exceed a byte, so the math stays in uint16.
func hardLight(cs, cb uint8) uint8 {
	if cs <= 128 {
		v := div255(2 * uint16(cs) * uint16(cb))
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	v := div255(2 * uint16(255-cs) * uint16(255-cb))
	if v > 255 {
		v = 255
	}
	return 255 - uint8(v)
}

// softLight follows the W3C piecewise formula in float space.
func softLight(cs, cb uint8) uint8 {
	sf := float64(cs) / 255
	df := float64(cb) / 255

	var result float64
	if sf <= 0.5 {
		result = df - (1-2*sf)*df*(1-df)
	} else {
		var dx float64
		if df <= 0.25 {
			dx = ((16*df-12)*df + 4) * df
		} else {
			dx = math.Sqrt(df)
		}
		result = df + (2*sf-1)*(dx-df)
	}

	if result < 0 {
		return 0
	}
	if result > 1 {
		return 255
	}
	return uint8(result*255 + 0.5)
}

// separable applies a per-channel blend function B over unmultiplied
// channels and recombines with the W3C compositing formula:
//
//	out = (1-Sa)*D + (1-Da)*S + Sa*Da*B(Sc, Dc)
func separable(s, d pixel, blendChan func(cs, cb uint8) uint8) pixel {
	sa, da := s[3], d[3]
	if sa == 0 {
		return d
	}
	if da == 0 {
		return s
	}

	unmul := func(c, a uint8) uint8 {
		return uint8(uint16(c) * 255 / uint16(a))
	}

	var out pixel
	saDa := mulDiv255(sa, da)
	for i := 0; i < 3; i++ {
		b := blendChan(unmul(s[i], sa), unmul(d[i], da))
		v := uint16(mulDiv255(d[i], 255-sa)) +
			uint16(mulDiv255(s[i], 255-da)) +
			uint16(mulDiv255(saDa, b))
		if v > 255 {
			v = 255
		}
		out[i] = uint8(v)
	}
	out[3] = addSat(sa, mulDiv255(da, 255-sa))
	return out
}

// HSL helpers per W3C Compositing and Blending Level 1, section 8.

func lum(r, g, b float64) float64 {
	return 0.30*r + 0.59*g + 0.11*b
}

func sat(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

// clipColor scales out-of-range components towards the luminance.
func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := math.Min(r, math.Min(g, b))
	x := math.Max(r, math.Max(g, b))

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float64) (float64, float64, float64) {
	minP, midP, maxP := sortChannels(&r, &g, &b)
	if *maxP > *minP {
		*midP = (*midP - *minP) * s / (*maxP - *minP)
		*maxP = s
	} else {
		*midP = 0
		*maxP = 0
	}
	*minP = 0
	return r, g, b
}

// sortChannels returns pointers to the three channels ordered by value.
func sortChannels(r, g, b *float64) (minP, midP, maxP *float64) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// hslBlend implements the four non-separable blend modes in float
// space, then recombines with the standard compositing formula.
func hslBlend(mode colr.BlendMode, s, d pixel) pixel {
	sa := float64(s[3]) / 255
	da := float64(d[3]) / 255
	if sa == 0 {
		return d
	}
	if da == 0 {
		return s
	}

	sr, sg, sb := float64(s[0])/255/sa, float64(s[1])/255/sa, float64(s[2])/255/sa
	dr, dg, db := float64(d[0])/255/da, float64(d[1])/255/da, float64(d[2])/255/da

	var br, bg, bb float64
	switch mode {
	case colr.BlendHue:
		br, bg, bb = setSat(sr, sg, sb, sat(dr, dg, db))
		br, bg, bb = setLum(br, bg, bb, lum(dr, dg, db))
	case colr.BlendSaturation:
		br, bg, bb = setSat(dr, dg, db, sat(sr, sg, sb))
		br, bg, bb = setLum(br, bg, bb, lum(dr, dg, db))
	case colr.BlendColor:
		br, bg, bb = setLum(sr, sg, sb, lum(dr, dg, db))
	case colr.BlendLuminosity:
		br, bg, bb = setLum(dr, dg, db, lum(sr, sg, sb))
	}

	outA := sa + da*(1-sa)
	blend := func(sc, dc, bc float64) uint8 {
		v := dc*da*(1-sa) + sc*sa*(1-da) + sa*da*bc
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}

	return pixel{
		blend(sr, dr, br),
		blend(sg, dg, bg),
		blend(sb, db, bb),
		uint8(outA*255 + 0.5),
	}
}
