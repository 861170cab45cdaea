package memfont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colr"
)

// SFNTOutliner adapts an sfnt font's glyf/CFF outlines to the
// Outliner interface. Glyphs are loaded at the font's design grid, so
// coordinates come out in font units.
//
// sfnt emits y growing downward; the adapter negates y to match the
// sink's upward-y convention.
type SFNTOutliner struct {
	font *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewSFNTOutliner parses an OpenType font from src.
func NewSFNTOutliner(src []byte) (*SFNTOutliner, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("memfont: parse font: %w", err)
	}
	return &SFNTOutliner{font: f}, nil
}

// Decompose implements Outliner.
func (o *SFNTOutliner) Decompose(glyphID uint16, sink colr.OutlineSink) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	upem := fixed.Int26_6(o.font.UnitsPerEm()) << 6
	segs, err := o.font.LoadGlyph(&o.buf, sfnt.GlyphIndex(glyphID), upem, nil)
	if err != nil {
		return fmt.Errorf("memfont: load glyph %d: %w", glyphID, err)
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			sink.MoveTo(upPoint(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			sink.LineTo(upPoint(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			sink.QuadTo(upPoint(s.Args[0]), upPoint(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			sink.CubicTo(upPoint(s.Args[0]), upPoint(s.Args[1]), upPoint(s.Args[2]))
		}
	}
	return nil
}

func upPoint(p fixed.Point26_6) colr.Point {
	return colr.Pt(float64(p.X)/64, -float64(p.Y)/64)
}
