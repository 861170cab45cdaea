package soft

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/colr"
)

// Canvas renders onto a premultiplied RGBA image. It implements
// colr.Canvas.
//
// A Canvas is not safe for concurrent use; renders that run in
// parallel each need their own Canvas.
type Canvas struct {
	width, height int

	// layers[0] is the base surface; PushLayer appends.
	layers []*layer

	ctm  colr.Matrix
	clip []uint8 // per-pixel clip coverage; nil means unclipped

	states []state
}

type layer struct {
	img     *image.RGBA
	mode    colr.BlendMode
	opacity float64
}

type state struct {
	ctm  colr.Matrix
	clip []uint8
}

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	base := &layer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	return &Canvas{
		width:  width,
		height: height,
		layers: []*layer{base},
		ctm:    colr.Identity(),
	}
}

// Image returns the base surface. Valid once all layers are popped.
func (c *Canvas) Image() *image.RGBA {
	return c.layers[0].img
}

// Save implements colr.Canvas.
func (c *Canvas) Save() {
	c.states = append(c.states, state{ctm: c.ctm, clip: c.clip})
}

// Restore implements colr.Canvas.
func (c *Canvas) Restore() {
	if len(c.states) == 0 {
		return
	}
	top := c.states[len(c.states)-1]
	c.states = c.states[:len(c.states)-1]
	c.ctm = top.ctm
	c.clip = top.clip
}

// Concat implements colr.Canvas.
func (c *Canvas) Concat(m colr.Matrix) {
	c.ctm = c.ctm.Multiply(m)
}

// ClipPath intersects the current clip with the path's anti-aliased
// coverage. Clip coverage slices are never mutated after creation, so
// saved states can share them.
func (c *Canvas) ClipPath(p *colr.Path) {
	cov := c.rasterize(p)
	if c.clip != nil {
		for i, v := range c.clip {
			cov[i] = mulDiv255(cov[i], v)
		}
	}
	c.clip = cov
}

// FillPath implements colr.Canvas.
func (c *Canvas) FillPath(p *colr.Path, b colr.Brush) {
	cov := c.rasterize(p)
	if c.clip != nil {
		for i, v := range c.clip {
			cov[i] = mulDiv255(cov[i], v)
		}
	}
	c.fillCoverage(cov, b)
}

// FillSurface implements colr.Canvas.
func (c *Canvas) FillSurface(b colr.Brush) {
	cov := c.clip
	if cov == nil {
		cov = make([]uint8, c.width*c.height)
		for i := range cov {
			cov[i] = 255
		}
	}
	c.fillCoverage(cov, b)
}

// PushLayer implements colr.Canvas.
func (c *Canvas) PushLayer(mode colr.BlendMode, opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.layers = append(c.layers, &layer{
		img:     image.NewRGBA(image.Rect(0, 0, c.width, c.height)),
		mode:    mode,
		opacity: opacity,
	})
}

// PopLayer composites the top layer onto the layer below it using the
// blend mode and opacity given at push time.
func (c *Canvas) PopLayer() {
	if len(c.layers) < 2 {
		return
	}
	top := c.layers[len(c.layers)-1]
	c.layers = c.layers[:len(c.layers)-1]
	dst := c.layers[len(c.layers)-1].img

	opacity := uint8(top.opacity*255 + 0.5)
	for i := 0; i < len(dst.Pix); i += 4 {
		s := pixel{top.img.Pix[i], top.img.Pix[i+1], top.img.Pix[i+2], top.img.Pix[i+3]}
		if opacity != 255 {
			s = scalePixel(s, opacity)
		}
		d := pixel{dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3]}
		o := blendPixel(top.mode, s, d)
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = o[0], o[1], o[2], o[3]
	}
}

// rasterize scan-converts a user-space path through the current
// transform into per-pixel coverage (non-zero winding, anti-aliased).
func (c *Canvas) rasterize(p *colr.Path) []uint8 {
	r := vector.NewRasterizer(c.width, c.height)
	for _, elem := range p.Transform(c.ctm).Elements() {
		switch e := elem.(type) {
		case colr.MoveTo:
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case colr.LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case colr.QuadTo:
			r.QuadTo(float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case colr.CubicTo:
			r.CubeTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case colr.Close:
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst.Pix
}

// fillCoverage blends the brush onto the top layer wherever coverage
// is non-zero. Brushes are sampled in user space, so device pixel
// centers are mapped back through the inverse transform.
func (c *Canvas) fillCoverage(cov []uint8, b colr.Brush) {
	img := c.layers[len(c.layers)-1].img

	solid, isSolid := b.(colr.SolidBrush)
	var sp pixel
	if isSolid {
		sp = premul(solid.Color)
	}
	inv := c.ctm.Invert()

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			v := cov[y*c.width+x]
			if v == 0 {
				continue
			}
			s := sp
			if !isSolid {
				pt := inv.TransformPoint(colr.Pt(float64(x)+0.5, float64(y)+0.5))
				s = premul(b.ColorAt(pt.X, pt.Y))
			}
			s = scalePixel(s, v)

			i := img.PixOffset(x, y)
			d := pixel{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
			o := sourceOver(s, d)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = o[0], o[1], o[2], o[3]
		}
	}
}
