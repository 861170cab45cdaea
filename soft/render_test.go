package soft_test

import (
	"image"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/colr"
	"github.com/gogpu/colr/memfont"
	"github.com/gogpu/colr/soft"
)

func squareOutline(size float64) *memfont.Outline {
	o := &memfont.Outline{}
	o.MoveTo(colr.Pt(0, 0))
	o.LineTo(colr.Pt(size, 0))
	o.LineTo(colr.Pt(size, size))
	o.LineTo(colr.Pt(0, size))
	return o
}

func opaque(index uint16) colr.ColorIndex {
	return colr.ColorIndex{PaletteIndex: index, Alpha: colr.F2Dot14One}
}

// TestRenderSolidGlyph tests an end-to-end render of a flat-filled
// square onto the software canvas.
func TestRenderSolidGlyph(t *testing.T) {
	font := memfont.NewFont()
	font.SetOutline(1, squareOutline(10))
	fill := font.AddPaint(colr.PaintSolid{Color: opaque(0)})
	font.SetRoot(1, font.AddPaint(colr.PaintGlyph{GlyphID: 1, Inner: fill}))

	r := &colr.Renderer{
		Source:  font,
		Palette: colr.Palette{{R: 0xFF, A: 0xFF}},
	}

	canvas := soft.NewCanvas(16, 16)
	// Outlines render above the baseline; shift the origin down so the
	// glyph lands on the canvas.
	canvas.Concat(colr.Translate(2, 12))
	if err := r.RenderGlyph(canvas, 1, colr.RenderOptions{}); err != nil {
		t.Fatalf("RenderGlyph: %v", err)
	}

	img := canvas.Image()
	if got := img.RGBAAt(7, 7); got.R != 0xFF || got.A != 0xFF {
		t.Errorf("glyph interior = %v, want opaque red", got)
	}
	if got := img.RGBAAt(1, 15); got.A != 0 {
		t.Errorf("outside glyph = %v, want transparent", got)
	}
}

// TestRenderCompositeMultiply tests a composite node through real
// layers: a mid gray multiplied onto white reproduces the gray.
func TestRenderCompositeMultiply(t *testing.T) {
	font := memfont.NewFont()
	font.SetOutline(1, squareOutline(10))
	white := font.AddPaint(colr.PaintSolid{Color: opaque(0)})
	gray := font.AddPaint(colr.PaintSolid{Color: opaque(1)})
	backdrop := font.AddPaint(colr.PaintGlyph{GlyphID: 1, Inner: white})
	source := font.AddPaint(colr.PaintGlyph{GlyphID: 1, Inner: gray})
	font.SetRoot(1, font.AddPaint(colr.PaintComposite{
		Backdrop: backdrop,
		Source:   source,
		Mode:     colr.BlendMultiply,
	}))

	r := &colr.Renderer{
		Source: font,
		Palette: colr.Palette{
			{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			{R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
		},
	}

	canvas := soft.NewCanvas(16, 16)
	canvas.Concat(colr.Translate(2, 12))
	if err := r.RenderGlyph(canvas, 1, colr.RenderOptions{}); err != nil {
		t.Fatalf("RenderGlyph: %v", err)
	}

	got := canvas.Image().RGBAAt(7, 7)
	if got.R != 0x80 || got.G != 0x80 || got.B != 0x80 || got.A != 0xFF {
		t.Errorf("composited pixel = %v, want opaque 0x80 gray", got)
	}
	if got := canvas.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("outside glyph = %v, want transparent", got)
	}
}

// TestRenderGradientGlyph tests a linear gradient fill across a glyph.
func TestRenderGradientGlyph(t *testing.T) {
	font := memfont.NewFont()
	font.SetOutline(1, squareOutline(10))
	grad := font.AddPaint(colr.PaintLinearGradient{
		P0: colr.FixedPoint{X: 0, Y: 0},
		P1: colr.FixedPoint{X: colr.FixedFromFloat(10), Y: 0},
		P2: colr.FixedPoint{X: 0, Y: colr.FixedFromFloat(10)},
		Line: colr.ColorLine{
			Extend: colr.ExtendPad,
			Stops: []colr.RawStop{
				{Offset: 0, Color: opaque(0)},
				{Offset: colr.F2Dot14One, Color: opaque(1)},
			},
		},
	})
	font.SetRoot(1, font.AddPaint(colr.PaintGlyph{GlyphID: 1, Inner: grad}))

	r := &colr.Renderer{
		Source: font,
		Palette: colr.Palette{
			{A: 0xFF},
			{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		},
	}

	canvas := soft.NewCanvas(16, 16)
	canvas.Concat(colr.Translate(2, 12))
	if err := r.RenderGlyph(canvas, 1, colr.RenderOptions{}); err != nil {
		t.Fatalf("RenderGlyph: %v", err)
	}

	img := canvas.Image()
	left := img.RGBAAt(3, 7)
	right := img.RGBAAt(11, 7)
	if left.R >= right.R {
		t.Errorf("gradient direction wrong: left=%v right=%v", left, right)
	}
	if left.A != 0xFF || right.A != 0xFF {
		t.Errorf("gradient fill not opaque: left=%v right=%v", left, right)
	}
}

// TestConcurrentRenders tests that one renderer serves several
// canvases in parallel and produces identical output.
func TestConcurrentRenders(t *testing.T) {
	font := memfont.NewFont()
	font.SetOutline(1, squareOutline(10))
	fill := font.AddPaint(colr.PaintSolid{Color: opaque(0)})
	font.SetRoot(1, font.AddPaint(colr.PaintGlyph{GlyphID: 1, Inner: fill}))

	r := &colr.Renderer{
		Source:  font,
		Palette: colr.Palette{{R: 0xFF, A: 0xFF}},
	}

	const workers = 8
	images := make([]*image.RGBA, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			canvas := soft.NewCanvas(16, 16)
			canvas.Concat(colr.Translate(2, 12))
			if err := r.RenderGlyph(canvas, 1, colr.RenderOptions{}); err != nil {
				return err
			}
			images[i] = canvas.Image()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent render: %v", err)
	}

	for i := 1; i < workers; i++ {
		for p := range images[0].Pix {
			if images[i].Pix[p] != images[0].Pix[p] {
				t.Fatalf("image %d differs from image 0 at byte %d", i, p)
			}
		}
	}
}
