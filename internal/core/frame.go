package core

// FrameSize is the width and height of the LED matrix in pixels.
const FrameSize = 8

// Frame is a monochrome 8x8 pixel buffer, one byte per row with the MSB as
// the leftmost pixel. This matches the MAX7219 digit registers, so a frame
// can be shipped to the device without repacking.
type Frame struct {
	rows [FrameSize]byte
}

// Set lights the pixel at (x, y). Coordinates outside the matrix are
// silently ignored: the snake's head is allowed to walk off-grid, so
// renderers must clip rather than panic.
func (f *Frame) Set(x, y int) {
	if x < 0 || x >= FrameSize || y < 0 || y >= FrameSize {
		return
	}
	f.rows[y] |= 1 << (FrameSize - 1 - x)
}

// On reports whether the pixel at (x, y) is lit. Out-of-range coordinates
// are dark.
func (f *Frame) On(x, y int) bool {
	if x < 0 || x >= FrameSize || y < 0 || y >= FrameSize {
		return false
	}
	return f.rows[y]&(1<<(FrameSize-1-x)) != 0
}

// Clear turns every pixel off.
func (f *Frame) Clear() {
	f.rows = [FrameSize]byte{}
}

// Rows returns the raw row bytes, top row first.
func (f *Frame) Rows() [FrameSize]byte {
	return f.rows
}

// LoadPattern replaces the frame contents with a 64-bit sprite pattern:
// the most significant byte is the top row, MSB the leftmost pixel.
func (f *Frame) LoadPattern(pattern uint64) {
	for y := 0; y < FrameSize; y++ {
		f.rows[y] = byte(pattern >> (56 - y*8))
	}
}

// FrameFromPattern builds a frame from a 64-bit sprite pattern.
func FrameFromPattern(pattern uint64) *Frame {
	var f Frame
	f.LoadPattern(pattern)
	return &f
}
