package core

import "testing"

func TestFrameSetAndOn(t *testing.T) {
	var f Frame

	f.Set(0, 0)
	f.Set(7, 7)
	f.Set(3, 4)

	if !f.On(0, 0) || !f.On(7, 7) || !f.On(3, 4) {
		t.Error("expected set pixels to be lit")
	}
	if f.On(1, 0) {
		t.Error("unset pixel reported lit")
	}

	rows := f.Rows()
	if rows[0] != 0x80 {
		t.Errorf("row 0 = %#02x, want 0x80 (MSB is leftmost)", rows[0])
	}
	if rows[7] != 0x01 {
		t.Errorf("row 7 = %#02x, want 0x01", rows[7])
	}
	if rows[4] != 0x10 {
		t.Errorf("row 4 = %#02x, want 0x10", rows[4])
	}
}

func TestFrameClipsOutOfRange(t *testing.T) {
	var f Frame

	// The snake's head may leave the grid; these must be ignored, not panic.
	f.Set(-1, 4)
	f.Set(8, 4)
	f.Set(4, -1)
	f.Set(4, 8)

	if f.Rows() != [FrameSize]byte{} {
		t.Error("out-of-range Set modified the frame")
	}
	if f.On(-1, 4) || f.On(4, 8) {
		t.Error("out-of-range On reported lit")
	}
}

func TestFrameLoadPattern(t *testing.T) {
	f := FrameFromPattern(0x8000000000000001)

	if !f.On(0, 0) {
		t.Error("expected top-left pixel lit")
	}
	if !f.On(7, 7) {
		t.Error("expected bottom-right pixel lit")
	}

	f.Clear()
	if f.Rows() != [FrameSize]byte{} {
		t.Error("Clear left pixels lit")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirNone, 0, 0},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestPointMove(t *testing.T) {
	p := Point{X: 4, Y: 4}

	if got := p.Move(DirUp); got != (Point{X: 4, Y: 3}) {
		t.Errorf("Move(up) = %v", got)
	}
	if got := p.Move(DirNone); got != p {
		t.Errorf("Move(none) = %v, want unchanged", got)
	}
}
