// Package mask converts externally rasterized glyph bitmaps into the
// renderer's pixel mask formats and scales color bitmaps to a target
// size.
//
// A Mask is a caller-owned destination buffer; this package only ever
// writes into it. A Bitmap describes source pixels as they arrive from
// the rasterizer, including placement, negative row pitch, and LCD
// subpixel layout.
package mask

import (
	"encoding/binary"
	"image"
)

// Format identifies a mask pixel format.
type Format uint8

const (
	// BW is 1-bit coverage, 8 pixels per byte, high bit leftmost.
	BW Format = iota
	// A8 is 8-bit alpha.
	A8
	// ARGB32 is 32-bit premultiplied color, R,G,B,A byte order.
	ARGB32
	// LCD16 is 16-bit packed 5-6-5 subpixel triples, little-endian.
	LCD16
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case BW:
		return "BW"
	case A8:
		return "A8"
	case ARGB32:
		return "ARGB32"
	case LCD16:
		return "LCD16"
	default:
		return "Unknown"
	}
}

// MinRowBytes returns the smallest valid row stride for a format and
// width.
func MinRowBytes(f Format, width int) int {
	switch f {
	case BW:
		return (width + 7) / 8
	case A8:
		return width
	case ARGB32:
		return width * 4
	case LCD16:
		return width * 2
	}
	return 0
}

// Mask is a destination pixel buffer with placement bounds. Bounds.Min
// is the top-left corner in device coordinates (y down); Min may be
// negative for glyphs extending above or left of the origin.
type Mask struct {
	Format   Format
	Bounds   image.Rectangle
	RowBytes int
	Image    []byte
}

// New allocates a mask with the minimal row stride for its format.
func New(f Format, bounds image.Rectangle) *Mask {
	rowBytes := MinRowBytes(f, bounds.Dx())
	return &Mask{
		Format:   f,
		Bounds:   bounds,
		RowBytes: rowBytes,
		Image:    make([]byte, rowBytes*bounds.Dy()),
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.Bounds.Dx() }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.Bounds.Dy() }

// row returns the y-th row of the buffer, y relative to the top.
func (m *Mask) row(y int) []byte {
	return m.Image[y*m.RowBytes:]
}

// Pixel16 reads the LCD16 pixel at (x, y), both relative to the
// top-left corner.
func (m *Mask) Pixel16(x, y int) uint16 {
	return binary.LittleEndian.Uint16(m.row(y)[2*x:])
}

// put16 writes an LCD16 pixel into a row slice.
func put16(row []byte, x int, v uint16) {
	binary.LittleEndian.PutUint16(row[2*x:], v)
}
