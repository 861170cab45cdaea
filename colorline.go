package colr

import (
	"fmt"
	"sort"
)

// resolveColorIndex looks up a ColorIndex against the palette, with
// foreground substitution, and modulates the result by the index's own
// alpha fraction.
func resolveColorIndex(ci ColorIndex, palette Palette, foreground Color) (Color, error) {
	var base Color
	switch {
	case ci.PaletteIndex == ForegroundIndex:
		base = foreground
	case int(ci.PaletteIndex) < len(palette):
		base = palette[ci.PaletteIndex]
	default:
		return Color{}, fmt.Errorf("%w: index %d, palette size %d",
			ErrPaletteIndex, ci.PaletteIndex, len(palette))
	}
	return base.ModulateAlpha(ci.Alpha), nil
}

// resolveStops resolves a color line's raw stops into sorted ColorStops.
// Each stop's color comes from the palette (or the foreground for the
// reserved index) with alpha modulated by the stop's alpha fraction.
// The sort is stable so equal-offset stops keep their arrival order.
func resolveStops(line ColorLine, palette Palette, foreground Color) ([]ColorStop, error) {
	if len(line.Stops) == 0 {
		return nil, ErrEmptyColorLine
	}

	stops := make([]ColorStop, len(line.Stops))
	for i, raw := range line.Stops {
		c, err := resolveColorIndex(raw.Color, palette, foreground)
		if err != nil {
			return nil, err
		}
		stops[i] = ColorStop{
			Offset: raw.Offset.Float(),
			Color:  c,
		}
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
	return stops, nil
}
