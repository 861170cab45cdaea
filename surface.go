package colr

// BlendMode represents a compositing operation used when flattening a
// layer onto its backdrop. The values follow the OpenType COLR composite
// mode enumeration, so decoded composite records carry the raw mode
// through unchanged.
type BlendMode uint8

const (
	// Porter-Duff modes
	BlendClear BlendMode = iota
	BlendSource
	BlendDestination
	BlendSourceOver
	BlendDestinationOver
	BlendSourceIn
	BlendDestinationIn
	BlendSourceOut
	BlendDestinationOut
	BlendSourceAtop
	BlendDestinationAtop
	BlendXor
	BlendPlus
	// Separable blend modes
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	// HSL blend modes
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	switch mode {
	case BlendClear:
		return "Clear"
	case BlendSource:
		return "Source"
	case BlendDestination:
		return "Destination"
	case BlendSourceOver:
		return "SourceOver"
	case BlendDestinationOver:
		return "DestinationOver"
	case BlendSourceIn:
		return "SourceIn"
	case BlendDestinationIn:
		return "DestinationIn"
	case BlendSourceOut:
		return "SourceOut"
	case BlendDestinationOut:
		return "DestinationOut"
	case BlendSourceAtop:
		return "SourceAtop"
	case BlendDestinationAtop:
		return "DestinationAtop"
	case BlendXor:
		return "Xor"
	case BlendPlus:
		return "Plus"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendDifference:
		return "Difference"
	case BlendExclusion:
		return "Exclusion"
	case BlendMultiply:
		return "Multiply"
	case BlendHue:
		return "Hue"
	case BlendSaturation:
		return "Saturation"
	case BlendColor:
		return "Color"
	case BlendLuminosity:
		return "Luminosity"
	default:
		return "Unknown"
	}
}

// Canvas is the drawing surface a paint graph renders onto.
//
// Implementations keep a state stack: Save pushes the current transform
// and clip, Restore pops them. Concat and ClipPath modify the current
// state. PushLayer redirects drawing to an offscreen layer; PopLayer
// composites that layer onto its backdrop with the blend mode given at
// push time. PushLayer and PopLayer calls must balance, and layers nest.
//
// Paths passed to ClipPath and FillPath are in user space; the current
// transform maps them to device space. Brushes are sampled in user space
// as well.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recently saved state.
	Restore()

	// Concat post-multiplies the current transform by m.
	Concat(m Matrix)

	// ClipPath intersects the current clip with the interior of p.
	ClipPath(p *Path)

	// FillPath fills the interior of p with the brush.
	FillPath(p *Path, b Brush)

	// FillSurface fills everything inside the current clip with the brush.
	FillSurface(b Brush)

	// PushLayer begins drawing into a fresh transparent layer.
	PushLayer(mode BlendMode, opacity float64)

	// PopLayer composites the top layer onto its backdrop.
	PopLayer()
}
