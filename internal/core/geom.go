// Package core provides fundamental types shared by the game engines and the
// I/O layers. It contains no external dependencies (especially no Bubble Tea
// and no periph.io) to keep game logic pure and testable.
package core

// Point represents a cell coordinate on the matrix grid.
type Point struct {
	X, Y int
}

// Move returns the point shifted one cell in the given direction.
func (p Point) Move(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
