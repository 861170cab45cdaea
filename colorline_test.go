package colr

import (
	"errors"
	"testing"
)

// TestResolveColorIndex tests palette lookup, foreground substitution
// and alpha modulation.
func TestResolveColorIndex(t *testing.T) {
	palette := Palette{
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0x80},
	}
	foreground := Color{B: 0xFF, A: 0xFF}

	tests := []struct {
		name    string
		ci      ColorIndex
		want    Color
		wantErr error
	}{
		{
			name: "palette entry",
			ci:   ColorIndex{PaletteIndex: 0, Alpha: F2Dot14One},
			want: Color{R: 0xFF, A: 0xFF},
		},
		{
			name: "foreground index",
			ci:   ColorIndex{PaletteIndex: ForegroundIndex, Alpha: F2Dot14One},
			want: Color{B: 0xFF, A: 0xFF},
		},
		{
			name: "half alpha modulates",
			ci:   ColorIndex{PaletteIndex: 0, Alpha: F2Dot14One / 2},
			want: Color{R: 0xFF, A: 0x7F},
		},
		{
			name: "alpha stacks on palette alpha",
			ci:   ColorIndex{PaletteIndex: 1, Alpha: F2Dot14One / 2},
			want: Color{G: 0xFF, A: 0x40},
		},
		{
			name: "negative alpha clamps to zero",
			ci:   ColorIndex{PaletteIndex: 0, Alpha: -1},
			want: Color{R: 0xFF, A: 0},
		},
		{
			name:    "out of range index",
			ci:      ColorIndex{PaletteIndex: 2, Alpha: F2Dot14One},
			wantErr: ErrPaletteIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveColorIndex(tt.ci, palette, foreground)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestResolveStops tests stop decoding, sorting and error cases.
func TestResolveStops(t *testing.T) {
	palette := Palette{
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
	}

	t.Run("sorted by offset", func(t *testing.T) {
		line := ColorLine{
			Stops: []RawStop{
				{Offset: F2Dot14One, Color: ColorIndex{PaletteIndex: 1, Alpha: F2Dot14One}},
				{Offset: 0, Color: ColorIndex{PaletteIndex: 0, Alpha: F2Dot14One}},
			},
		}
		stops, err := resolveStops(line, palette, Transparent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stops[0].Offset != 0 || stops[1].Offset != 1 {
			t.Errorf("stops not sorted: %v", stops)
		}
		if stops[0].Color.R != 0xFF {
			t.Errorf("stop 0 color = %v, want red", stops[0].Color)
		}
	})

	t.Run("equal offsets keep arrival order", func(t *testing.T) {
		line := ColorLine{
			Stops: []RawStop{
				{Offset: F2Dot14One / 2, Color: ColorIndex{PaletteIndex: 0, Alpha: F2Dot14One}},
				{Offset: F2Dot14One / 2, Color: ColorIndex{PaletteIndex: 1, Alpha: F2Dot14One}},
			},
		}
		stops, err := resolveStops(line, palette, Transparent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stops[0].Color.R != 0xFF || stops[1].Color.G != 0xFF {
			t.Errorf("stable order lost: %v", stops)
		}
	})

	t.Run("empty line", func(t *testing.T) {
		_, err := resolveStops(ColorLine{}, palette, Transparent)
		if !errors.Is(err, ErrEmptyColorLine) {
			t.Errorf("err = %v, want ErrEmptyColorLine", err)
		}
	})

	t.Run("bad palette index propagates", func(t *testing.T) {
		line := ColorLine{
			Stops: []RawStop{{Color: ColorIndex{PaletteIndex: 9}}},
		}
		_, err := resolveStops(line, palette, Transparent)
		if !errors.Is(err, ErrPaletteIndex) {
			t.Errorf("err = %v, want ErrPaletteIndex", err)
		}
	})
}

// TestForegroundStops tests the single-palette-plus-foreground scenario:
// a red palette entry at offset 0 and the blue foreground at offset 1.
func TestForegroundStops(t *testing.T) {
	palette := Palette{{R: 0xFF, A: 0xFF}}
	foreground := Color{B: 0xFF, A: 0xFF}
	line := ColorLine{
		Stops: []RawStop{
			{Offset: 0, Color: ColorIndex{PaletteIndex: 0, Alpha: F2Dot14One}},
			{Offset: F2Dot14One, Color: ColorIndex{PaletteIndex: ForegroundIndex, Alpha: F2Dot14One}},
		},
	}

	stops, err := resolveStops(line, palette, foreground)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stops[0].Color != (Color{R: 0xFF, A: 0xFF}) {
		t.Errorf("stop 0 = %v, want red", stops[0].Color)
	}
	if stops[1].Color != foreground {
		t.Errorf("stop 1 = %v, want foreground blue", stops[1].Color)
	}
}
