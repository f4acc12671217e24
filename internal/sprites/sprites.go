// Package sprites holds the 8x8 bitmaps and the scroll font used by the
// display animations. Each sprite is a 64-bit pattern: the most significant
// byte is the top row, the MSB of each byte the leftmost pixel.
package sprites

import "github.com/vovakirdan/led-arcade/internal/core"

// Sprite identifies a named 8x8 bitmap.
type Sprite int

const (
	FaceRight Sprite = iota
	FaceLeft
	FaceWink
	HeartFull
	HeartHalf
	HeartQuarter
	HeartDot
	CrossFull
	CrossHalf
	CrossQuarter
	CrossDot
	Empty
	Full
)

var patterns = map[Sprite]uint64{
	FaceRight:    0x003c4200006c6c00,
	FaceLeft:     0x003c420000363600,
	FaceWink:     0x003c4200006c6000,
	HeartFull:    0x081c3e7f7f7f3600,
	HeartHalf:    0x00081c3e3e140000,
	HeartQuarter: 0x0000081c14000000,
	HeartDot:     0x0000000800000000,
	CrossFull:    0x8142241818244281,
	CrossHalf:    0x0042241818244200,
	CrossQuarter: 0x0000241818240000,
	CrossDot:     0x0000001818000000,
	Empty:        0x0000000000000000,
	Full:         0xffffffffffffffff,
}

// Pattern returns the raw 64-bit bitmap for the sprite.
func (s Sprite) Pattern() uint64 {
	return patterns[s]
}

// Frame decodes the sprite into a display frame.
func (s Sprite) Frame() *core.Frame {
	return core.FrameFromPattern(patterns[s])
}
