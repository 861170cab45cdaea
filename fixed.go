package colr

// Fixed is a signed 16.16 fixed-point number. Paint graph scalars
// (transform coefficients, gradient control points, angles) arrive from
// the font engine in this format.
type Fixed int32

// FixedOne is the Fixed value 1.0.
const FixedOne Fixed = 1 << 16

// Float converts a 16.16 fixed-point value to float64.
func (f Fixed) Float() float64 {
	return float64(f) / (1 << 16)
}

// FixedFromFloat converts a float64 to 16.16 fixed point, truncating
// toward zero.
func FixedFromFloat(v float64) Fixed {
	return Fixed(v * (1 << 16))
}

// F2Dot14 is a signed 2.14 fixed-point number in [-2, 2). Color stop
// offsets and alpha fractions use this format.
type F2Dot14 int16

// F2Dot14One is the F2Dot14 value 1.0.
const F2Dot14One F2Dot14 = 1 << 14

// Float converts a 2.14 fixed-point value to float64.
func (f F2Dot14) Float() float64 {
	return float64(f) / (1 << 14)
}

// clamped limits the value to [0, 1] for use as an alpha fraction.
func (f F2Dot14) clamped() F2Dot14 {
	if f < 0 {
		return 0
	}
	if f > F2Dot14One {
		return F2Dot14One
	}
	return f
}
