package sprites

import "testing"

func TestHeartDotDecodes(t *testing.T) {
	// 0x0000000800000000: a single pixel in row 3, column 4.
	f := HeartDot.Frame()

	if !f.On(4, 3) {
		t.Error("expected pixel (4,3) lit")
	}
	lit := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if f.On(x, y) {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Errorf("lit pixels = %d, want 1", lit)
	}
}

func TestCrossFullIsSymmetric(t *testing.T) {
	f := CrossFull.Frame()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if f.On(x, y) != f.On(7-x, 7-y) {
				t.Fatalf("cross not symmetric at (%d,%d)", x, y)
			}
		}
	}
}

func TestTextColumns(t *testing.T) {
	cols := TextColumns("1")

	// 8 columns of lead-in, the 5-column glyph, 1 spacing column, 8 of
	// lead-out.
	if len(cols) != 8+5+1+8 {
		t.Fatalf("len = %d, want %d", len(cols), 8+5+1+8)
	}
	for i := 0; i < 8; i++ {
		if cols[i] != 0 {
			t.Errorf("lead-in column %d = %#02x, want blank", i, cols[i])
		}
	}
	if cols[10] != 0x7f {
		t.Errorf("glyph column = %#02x, want 0x7f", cols[10])
	}

	// Spaces become two blank columns, unknown runes one.
	if got := len(TextColumns(" ")); got != 8+2+8 {
		t.Errorf("space strip len = %d, want %d", got, 8+2+8)
	}
	if got := len(TextColumns("~")); got != 8+1+8 {
		t.Errorf("unknown rune strip len = %d, want %d", got, 8+1+8)
	}
}
