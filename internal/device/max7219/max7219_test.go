package max7219

import (
	"testing"

	"github.com/vovakirdan/led-arcade/internal/core"
)

func TestReverseBits(t *testing.T) {
	tests := []struct{ in, want byte }{
		{0x00, 0x00},
		{0xff, 0xff},
		{0x80, 0x01},
		{0x01, 0x80},
		{0xa5, 0xa5},
		{0xc0, 0x03},
	}
	for _, tt := range tests {
		if got := reverseBits(tt.in); got != tt.want {
			t.Errorf("reverseBits(%#02x) = %#02x, want %#02x", tt.in, got, tt.want)
		}
	}
}

func TestRotate180(t *testing.T) {
	var rows [core.FrameSize]byte
	rows[0] = 0x80 // top-left pixel

	got := rotate180(rows)

	if got[7] != 0x01 {
		t.Errorf("rotated bottom row = %#02x, want 0x01 (bottom-right)", got[7])
	}
	if got[0] != 0 {
		t.Errorf("rotated top row = %#02x, want blank", got[0])
	}

	// Rotating twice is the identity.
	if rotate180(got) != rows {
		t.Error("double rotation is not the identity")
	}
}
