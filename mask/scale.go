package mask

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/colr"
)

// DrawScaled converts a source bitmap into the mask while applying an
// affine transform, typically scaling an embedded bitmap glyph to the
// requested size.
//
// The bitmap is first converted at its native size into an
// intermediate in its natural mask format (alpha for mono and gray,
// premultiplied color for BGRA), then resampled with a linear filter.
// BW and LCD16 destinations resample through an 8-bit intermediate and
// re-quantize afterwards: bit packing for BW, gray replication for
// LCD16. An identity transform degenerates to a plain Convert.
func DrawScaled(src *Bitmap, dst *Mask, transform colr.Matrix) error {
	if transform.IsIdentity() {
		return Convert(src, dst)
	}

	// Native-format intermediate at the bitmap's own size.
	srcW, srcH := src.Width, src.Rows
	var srcImg image.Image
	switch src.Mode {
	case ModeBGRA:
		rgba := image.NewRGBA(image.Rect(0, 0, srcW, srcH))
		alias := &Mask{
			Format:   ARGB32,
			Bounds:   rgba.Rect,
			RowBytes: rgba.Stride,
			Image:    rgba.Pix,
		}
		if err := Convert(src, alias); err != nil {
			return err
		}
		srcImg = rgba
	default:
		alpha := image.NewAlpha(image.Rect(0, 0, srcW, srcH))
		alias := &Mask{
			Format:   A8,
			Bounds:   alpha.Rect,
			RowBytes: alpha.Stride,
			Image:    alpha.Pix,
		}
		if err := Convert(src, alias); err != nil {
			return err
		}
		srcImg = alpha
	}

	width := dst.Width()
	height := dst.Height()

	// Resample target. A8 and ARGB32 masks are drawn into directly;
	// BW and LCD16 need an 8-bit intermediate to re-quantize from.
	var dstImg xdraw.Image
	var tmp *image.Alpha
	switch dst.Format {
	case A8:
		clear(dst.Image)
		dstImg = &image.Alpha{
			Pix:    dst.Image,
			Stride: dst.RowBytes,
			Rect:   image.Rect(0, 0, width, height),
		}
	case ARGB32:
		clear(dst.Image)
		dstImg = &image.RGBA{
			Pix:    dst.Image,
			Stride: dst.RowBytes,
			Rect:   image.Rect(0, 0, width, height),
		}
	case BW, LCD16:
		tmp = image.NewAlpha(image.Rect(0, 0, width, height))
		dstImg = tmp
	}

	// Position the bitmap at its own origin, apply the caller's
	// transform, then shift into the mask's pixel grid.
	m := colr.Translate(float64(-dst.Bounds.Min.X), float64(-dst.Bounds.Min.Y)).
		Multiply(transform).
		Multiply(colr.Translate(float64(src.Left), float64(-src.Top)))

	xdraw.BiLinear.Transform(dstImg,
		f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F},
		srcImg, srcImg.Bounds(), xdraw.Over, nil)

	switch dst.Format {
	case BW:
		PackA8ToA1(dst, tmp.Pix, tmp.Stride)
	case LCD16:
		for y := 0; y < height; y++ {
			srcRow := tmp.Pix[y*tmp.Stride:]
			dstRow := dst.row(y)
			for x := 0; x < width; x++ {
				put16(dstRow, x, grayTo565(srcRow[x]))
			}
		}
	}
	return nil
}
