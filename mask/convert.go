package mask

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/colr"
)

// ErrUnsupportedConversion reports a source/destination format pair
// the converter has no rule for. The caller controls which pairs are
// requested, so hitting this is a configuration error; the destination
// buffer contents are undefined afterwards.
var ErrUnsupportedConversion = errors.New("mask: unsupported conversion")

// pack565 packs an 8-bit R,G,B triple into 5-6-5 bits.
func pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// grayTo565 replicates one coverage byte into all three subpixels.
func grayTo565(v uint8) uint16 {
	return pack565(v, v, v)
}

// bittst returns the x-th bit of a 1-bit row, leftmost pixel in the
// high bit.
func bittst(row []byte, x int) int {
	return int(row[x>>3]>>(^x&7)) & 1
}

// Convert copies a source bitmap into a mask of the same pixel
// dimensions.
//
// Supported pairs: Mono→BW, Gray→A8, Mono→A8, BGRA→ARGB32, and
// {Mono, Gray, LCD, LCDV}→LCD16. Anything else returns
// ErrUnsupportedConversion.
func Convert(src *Bitmap, dst *Mask) error {
	if dst.Format == LCD16 {
		return convertLCD16(src, dst, 0, 0, 0, 0, dst.Width(), dst.Height())
	}

	width := src.Width
	height := src.Rows
	srcRowBytes := src.rowBytes()

	switch {
	case src.Mode == ModeMono && dst.Format == BW,
		src.Mode == ModeGray && dst.Format == A8:
		common := srcRowBytes
		if dst.RowBytes < common {
			common = dst.RowBytes
		}
		for y := 0; y < height; y++ {
			copy(dst.row(y)[:common], src.row(y)[:common])
		}
		return nil

	case src.Mode == ModeMono && dst.Format == A8:
		for y := 0; y < height; y++ {
			srcRow := src.row(y)
			dstRow := dst.row(y)
			for x := 0; x < width; x++ {
				if bittst(srcRow, x) != 0 {
					dstRow[x] = 0xFF
				} else {
					dstRow[x] = 0x00
				}
			}
		}
		return nil

	case src.Mode == ModeBGRA && dst.Format == ARGB32:
		// BGRA arrives premultiplied; only the channel order changes.
		for y := 0; y < height; y++ {
			srcRow := src.row(y)
			dstRow := dst.row(y)
			for x := 0; x < width; x++ {
				b := srcRow[4*x+0]
				g := srcRow[4*x+1]
				r := srcRow[4*x+2]
				a := srcRow[4*x+3]
				dstRow[4*x+0] = r
				dstRow[4*x+1] = g
				dstRow[4*x+2] = b
				dstRow[4*x+3] = a
			}
		}
		return nil
	}

	colr.Logger().Warn("unsupported mask conversion",
		"src", src.Mode.String(), "dst", dst.Format.String())
	return fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, src.Mode, dst.Format)
}

// ConvertAligned converts into an LCD16 mask whose bounds may differ
// from the bitmap's placement. The top-left origins are aligned first
// by trimming rows and columns from whichever side extends further,
// then the extents are clamped so neither buffer is touched out of
// bounds. A disjoint bitmap converts nothing and is not an error.
//
// Non-LCD16 destinations require equal extents; they are forwarded to
// Convert.
func ConvertAligned(src *Bitmap, dst *Mask) error {
	if dst.Format != LCD16 {
		return Convert(src, dst)
	}

	hScale, vScale := 1, 1
	switch src.Mode {
	case ModeLCD:
		hScale = 3
	case ModeLCDV:
		vScale = 3
	}

	srcRect := image.Rect(src.Left, -src.Top,
		src.Left+src.Width/hScale, -src.Top+src.Rows/vScale)
	overlap := srcRect.Intersect(dst.Bounds)
	if overlap.Empty() {
		return nil
	}

	return convertLCD16(src, dst,
		overlap.Min.X-srcRect.Min.X, overlap.Min.Y-srcRect.Min.Y,
		overlap.Min.X-dst.Bounds.Min.X, overlap.Min.Y-dst.Bounds.Min.Y,
		overlap.Dx(), overlap.Dy())
}

// convertLCD16 packs source coverage into 5-6-5 LCD pixels. Offsets
// and extents are in mask pixels; the LCD subpixel expansion is
// applied internally.
func convertLCD16(src *Bitmap, dst *Mask, srcX, srcY, dstX, dstY, width, height int) error {
	opts := src.LCD

	switch src.Mode {
	case ModeMono:
		for y := 0; y < height; y++ {
			srcRow := src.row(srcY + y)
			dstRow := dst.row(dstY + y)
			for x := 0; x < width; x++ {
				var v uint16
				if bittst(srcRow, srcX+x) != 0 {
					v = 0xFFFF
				}
				put16(dstRow, dstX+x, v)
			}
		}
		return nil

	case ModeGray:
		for y := 0; y < height; y++ {
			srcRow := src.row(srcY + y)
			dstRow := dst.row(dstY + y)
			for x := 0; x < width; x++ {
				put16(dstRow, dstX+x, grayTo565(srcRow[srcX+x]))
			}
		}
		return nil

	case ModeLCD:
		for y := 0; y < height; y++ {
			srcRow := src.row(srcY + y)
			dstRow := dst.row(dstY + y)
			for x := 0; x < width; x++ {
				triple := srcRow[3*(srcX+x):]
				r, g, b := triple[0], triple[1], triple[2]
				if opts.BGR {
					r, b = b, r
				}
				put16(dstRow, dstX+x, pack565(
					applyLUT(r, opts.GammaR),
					applyLUT(g, opts.GammaG),
					applyLUT(b, opts.GammaB)))
			}
		}
		return nil

	case ModeLCDV:
		for y := 0; y < height; y++ {
			base := 3 * (srcY + y)
			rowR := src.row(base)
			rowG := src.row(base + 1)
			rowB := src.row(base + 2)
			if opts.BGR {
				rowR, rowB = rowB, rowR
			}
			dstRow := dst.row(dstY + y)
			for x := 0; x < width; x++ {
				put16(dstRow, dstX+x, pack565(
					applyLUT(rowR[srcX+x], opts.GammaR),
					applyLUT(rowG[srcX+x], opts.GammaG),
					applyLUT(rowB[srcX+x], opts.GammaB)))
			}
		}
		return nil
	}

	colr.Logger().Warn("unsupported mask conversion",
		"src", src.Mode.String(), "dst", dst.Format.String())
	return fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, src.Mode, dst.Format)
}

// oneBitThreshold is the minimum 8-bit alpha that packs to a set bit.
const oneBitThreshold = 0xC0

// convert8To1 maps one alpha byte to a single coverage bit.
func convert8To1(v uint8) uint8 {
	if v >= oneBitThreshold {
		return 1
	}
	return 0
}

// pack8To1 packs eight alpha bytes into one, leftmost pixel in the
// high bit.
func pack8To1(alpha []byte) uint8 {
	var bits uint8
	for i := 0; i < 8; i++ {
		bits <<= 1
		bits |= convert8To1(alpha[i])
	}
	return bits
}

// PackA8ToA1 packs an 8-bit alpha buffer into a 1-bit mask of the same
// pixel dimensions.
func PackA8ToA1(dst *Mask, src []byte, srcRowBytes int) {
	width := dst.Width()
	height := dst.Height()
	octs := width >> 3
	leftOverBits := width & 7

	for y := 0; y < height; y++ {
		srcRow := src[y*srcRowBytes:]
		dstRow := dst.row(y)
		for i := 0; i < octs; i++ {
			dstRow[i] = pack8To1(srcRow[8*i:])
		}
		if leftOverBits > 0 {
			var bits uint8
			shift := 7
			for i := 0; i < leftOverBits; i++ {
				bits |= convert8To1(srcRow[8*octs+i]) << shift
				shift--
			}
			dstRow[octs] = bits
		}
	}
}
