package colr

// PathBuilder is an OutlineSink that accumulates segments into a Path,
// flipping from the font's upward-y convention to the renderer's
// downward-y convention.
//
// Zero-length segments are skipped rather than emitted. A contour is
// closed when the next MoveTo arrives or when Path is called.
type PathBuilder struct {
	path    *Path
	open    bool
	current Point
}

// NewPathBuilder creates an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

func flipY(p Point) Point {
	return Point{X: p.X, Y: -p.Y}
}

// MoveTo implements OutlineSink.
func (b *PathBuilder) MoveTo(p Point) {
	if b.open {
		b.path.Close()
	}
	pt := flipY(p)
	b.path.MoveTo(pt.X, pt.Y)
	b.current = pt
	b.open = true
}

// LineTo implements OutlineSink.
func (b *PathBuilder) LineTo(p Point) {
	pt := flipY(p)
	if pt == b.current {
		return
	}
	b.path.LineTo(pt.X, pt.Y)
	b.current = pt
}

// QuadTo implements OutlineSink.
func (b *PathBuilder) QuadTo(ctrl, p Point) {
	c := flipY(ctrl)
	pt := flipY(p)
	if c == b.current && pt == b.current {
		return
	}
	b.path.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
	b.current = pt
}

// CubicTo implements OutlineSink.
func (b *PathBuilder) CubicTo(ctrl1, ctrl2, p Point) {
	c1 := flipY(ctrl1)
	c2 := flipY(ctrl2)
	pt := flipY(p)
	if c1 == b.current && c2 == b.current && pt == b.current {
		return
	}
	b.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
	b.current = pt
}

// Path closes any open contour and returns the accumulated path.
// The builder must not be reused afterwards.
func (b *PathBuilder) Path() *Path {
	if b.open {
		b.path.Close()
		b.open = false
	}
	return b.path
}
