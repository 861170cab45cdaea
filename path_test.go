package colr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestPathBuilding tests basic path construction.
func TestPathBuilding(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0, 10)
	p.Close()

	want := []PathElement{
		MoveTo{Point: Pt(0, 0)},
		LineTo{Point: Pt(10, 0)},
		QuadTo{Control: Pt(15, 5), Point: Pt(10, 10)},
		CubicTo{Control1: Pt(8, 12), Control2: Pt(2, 12), Point: Pt(0, 10)},
		Close{},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

// TestPathTransform tests that Transform maps every point of every element.
func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.QuadraticTo(3, 1, 3, 2)
	p.Close()

	got := p.Transform(Scale(2, 2))
	want := []PathElement{
		MoveTo{Point: Pt(2, 2)},
		LineTo{Point: Pt(4, 2)},
		QuadTo{Control: Pt(6, 2), Point: Pt(6, 4)},
		Close{},
	}
	if diff := cmp.Diff(want, got.Elements()); diff != "" {
		t.Errorf("transformed elements mismatch (-want +got):\n%s", diff)
	}
	// The original path is untouched.
	if first := p.Elements()[0].(MoveTo); first.Point != Pt(1, 1) {
		t.Errorf("Transform mutated the receiver: %v", first.Point)
	}
}

// TestPathQuad tests the four-corner quadrilateral helper.
func TestPathQuad(t *testing.T) {
	p := NewPath()
	p.Quad([4]Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)})

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("quad is not closed: last element %T", elems[4])
	}
}

// TestPathBoundingBox tests the conservative bounding box.
func TestPathBoundingBox(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Path
		want  Rect
		ok    bool
	}{
		{
			name: "rectangle",
			build: func() *Path {
				p := NewPath()
				p.Rectangle(1, 2, 3, 4)
				return p
			},
			want: Rect{Min: Pt(1, 2), Max: Pt(4, 6)},
			ok:   true,
		},
		{
			name: "control points widen the box",
			build: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.QuadraticTo(10, -5, 0, 10)
				return p
			},
			want: Rect{Min: Pt(0, -5), Max: Pt(10, 10)},
			ok:   true,
		},
		{
			name:  "empty path",
			build: NewPath,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.build().BoundingBox()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("BoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestPathBuilderFlipsY tests that outline decomposition flips to y-down.
func TestPathBuilderFlipsY(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(Pt(0, 10))
	b.LineTo(Pt(5, 10))
	b.LineTo(Pt(5, 0))
	p := b.Path()

	want := []PathElement{
		MoveTo{Point: Pt(0, -10)},
		LineTo{Point: Pt(5, -10)},
		LineTo{Point: Pt(5, 0)},
		Close{},
	}
	if diff := cmp.Diff(want, p.Elements()); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

// TestPathBuilderSkipsDegenerate tests that zero-length segments are dropped.
func TestPathBuilderSkipsDegenerate(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(Pt(1, 1))
	b.LineTo(Pt(1, 1)) // no-op
	b.LineTo(Pt(2, 1))
	b.QuadTo(Pt(2, 1), Pt(2, 1)) // no-op
	p := b.Path()

	if n := len(p.Elements()); n != 3 {
		t.Errorf("got %d elements, want 3 (MoveTo, LineTo, Close)", n)
	}
}

// TestPathBuilderClosesContours tests that a MoveTo closes the open contour.
func TestPathBuilderClosesContours(t *testing.T) {
	b := NewPathBuilder()
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.MoveTo(Pt(5, 5))
	b.LineTo(Pt(6, 5))
	p := b.Path()

	var closes int
	for _, e := range p.Elements() {
		if _, ok := e.(Close); ok {
			closes++
		}
	}
	if closes != 2 {
		t.Errorf("got %d Close elements, want 2", closes)
	}
}
