package colr

import "testing"

// TestFixedFloat tests 16.16 conversions in both directions.
func TestFixedFloat(t *testing.T) {
	tests := []struct {
		name string
		f    Fixed
		want float64
	}{
		{"one", FixedOne, 1},
		{"minus one", -FixedOne, -1},
		{"half", FixedOne / 2, 0.5},
		{"zero", 0, 0},
		{"smallest step", 1, 1.0 / 65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Float(); got != tt.want {
				t.Errorf("Float() = %v, want %v", got, tt.want)
			}
			if got := FixedFromFloat(tt.want); got != tt.f {
				t.Errorf("FixedFromFloat(%v) = %v, want %v", tt.want, got, tt.f)
			}
		})
	}
}

// TestF2Dot14Clamped tests the alpha fraction clamp.
func TestF2Dot14Clamped(t *testing.T) {
	tests := []struct {
		name string
		f    F2Dot14
		want F2Dot14
	}{
		{"in range", F2Dot14One / 4, F2Dot14One / 4},
		{"negative", -100, 0},
		{"above one", F2Dot14One + 1, F2Dot14One},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.clamped(); got != tt.want {
				t.Errorf("clamped() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestVisitedSetMirrorsStack tests that add/remove leave the set empty.
func TestVisitedSetMirrorsStack(t *testing.T) {
	v := make(visitedSet)
	a := PaintRef{Handle: 1}
	b := PaintRef{Handle: 2}

	v.add(a)
	v.add(b)
	if !v.contains(a) || !v.contains(b) {
		t.Fatal("refs missing after add")
	}
	v.remove(b)
	if v.contains(b) {
		t.Error("ref still present after remove")
	}
	v.remove(a)
	if len(v) != 0 {
		t.Errorf("set not empty after balanced add/remove: %v", v)
	}
}

// TestVisitedSetDistinguishesRootFlag tests that the same handle with a
// different root flag is a distinct path entry.
func TestVisitedSetDistinguishesRootFlag(t *testing.T) {
	v := make(visitedSet)
	v.add(PaintRef{Handle: 1, RootTransform: true})
	if v.contains(PaintRef{Handle: 1}) {
		t.Error("bare ref conflated with its root-transform variant")
	}
}
