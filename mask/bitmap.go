package mask

// PixelMode identifies the pixel layout of a rasterized source bitmap.
type PixelMode uint8

const (
	// ModeMono is 1-bit coverage, 8 pixels per byte, high bit leftmost.
	ModeMono PixelMode = iota
	// ModeGray is 8-bit coverage.
	ModeGray
	// ModeBGRA is 32-bit premultiplied color, B,G,R,A byte order.
	ModeBGRA
	// ModeLCD is horizontal subpixel coverage: three bytes per pixel,
	// so the bitmap is three times wider than the mask it maps to.
	ModeLCD
	// ModeLCDV is vertical subpixel coverage: three rows per pixel
	// row, so the bitmap is three times taller than the mask.
	ModeLCDV
)

// String returns a human-readable name for the pixel mode.
func (m PixelMode) String() string {
	switch m {
	case ModeMono:
		return "Mono"
	case ModeGray:
		return "Gray"
	case ModeBGRA:
		return "BGRA"
	case ModeLCD:
		return "LCD"
	case ModeLCDV:
		return "LCDV"
	default:
		return "Unknown"
	}
}

// LCDOptions describe how LCD subpixel triples are encoded.
type LCDOptions struct {
	// BGR is true when the subpixel order is blue-green-red.
	BGR bool

	// GammaR, GammaG and GammaB are optional per-channel lookup
	// tables applied to coverage values while packing. Nil means
	// identity.
	GammaR, GammaG, GammaB *[256]uint8
}

// Bitmap is an externally rasterized glyph image. Pitch is the signed
// byte distance between consecutive rows: a negative pitch means the
// rows are stored bottom-up in Buffer, while row(0) is always the
// visually topmost row.
type Bitmap struct {
	Mode  PixelMode
	Width int // in subpixel units for ModeLCD (3x the pixel width)
	Rows  int // in subpixel units for ModeLCDV (3x the pixel height)
	Pitch int

	// Left and Top place the bitmap relative to the glyph origin:
	// Left is the leftmost column, Top the number of rows the top edge
	// sits above the origin (y grows upward, as fonts measure).
	Left, Top int

	Buffer []byte

	LCD LCDOptions
}

// rowBytes returns the unsigned row stride.
func (b *Bitmap) rowBytes() int {
	if b.Pitch < 0 {
		return -b.Pitch
	}
	return b.Pitch
}

// storageRows returns the number of stored rows (subpixel rows for
// ModeLCDV).
func (b *Bitmap) storageRows() int {
	return b.Rows
}

// row returns the y-th visual row, topmost first, honoring negative
// pitch.
func (b *Bitmap) row(y int) []byte {
	if b.Pitch < 0 {
		return b.Buffer[(b.storageRows()-1-y)*-b.Pitch:]
	}
	return b.Buffer[y*b.Pitch:]
}

// applyLUT runs a coverage byte through an optional gamma table.
func applyLUT(v uint8, table *[256]uint8) uint8 {
	if table == nil {
		return v
	}
	return table[v]
}
