package memfont

import "github.com/gogpu/colr"

type segOp uint8

const (
	opMove segOp = iota
	opLine
	opQuad
	opCubic
)

type segment struct {
	op  segOp
	pts [3]colr.Point
}

// Outline is a recorded glyph outline in font units (y up). It
// implements colr.OutlineSink, so it can be filled directly or capture
// the output of another decomposer.
type Outline struct {
	segs []segment
}

// MoveTo implements colr.OutlineSink.
func (o *Outline) MoveTo(p colr.Point) {
	o.segs = append(o.segs, segment{op: opMove, pts: [3]colr.Point{p}})
}

// LineTo implements colr.OutlineSink.
func (o *Outline) LineTo(p colr.Point) {
	o.segs = append(o.segs, segment{op: opLine, pts: [3]colr.Point{p}})
}

// QuadTo implements colr.OutlineSink.
func (o *Outline) QuadTo(ctrl, p colr.Point) {
	o.segs = append(o.segs, segment{op: opQuad, pts: [3]colr.Point{ctrl, p}})
}

// CubicTo implements colr.OutlineSink.
func (o *Outline) CubicTo(ctrl1, ctrl2, p colr.Point) {
	o.segs = append(o.segs, segment{op: opCubic, pts: [3]colr.Point{ctrl1, ctrl2, p}})
}

// Replay streams the recorded segments into a sink.
func (o *Outline) Replay(sink colr.OutlineSink) {
	for _, s := range o.segs {
		switch s.op {
		case opMove:
			sink.MoveTo(s.pts[0])
		case opLine:
			sink.LineTo(s.pts[0])
		case opQuad:
			sink.QuadTo(s.pts[0], s.pts[1])
		case opCubic:
			sink.CubicTo(s.pts[0], s.pts[1], s.pts[2])
		}
	}
}
