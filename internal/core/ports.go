package core

import (
	"context"
	"time"
)

// InputSource produces discrete direction signals from a physical or
// simulated joystick. Implementations are expected to be used from a single
// goroutine: the driving loop.
type InputSource interface {
	// Sample returns the current deflection as a direction, or DirNone when
	// both axes sit inside the dead-zone. When both axes deflect at once the
	// horizontal axis wins.
	Sample() Direction

	// Poll samples at a fixed short interval until the window elapses or ctx
	// is cancelled, and returns the last non-DirNone direction observed
	// (DirNone if there was none). The window doubles as the game's tick
	// clock, so callers need no additional sleep.
	Poll(ctx context.Context, window time.Duration) Direction

	// ButtonPressed reports whether the joystick button is currently pressed.
	ButtonPressed() bool
}

// Presenter consumes frames and named animation cues and produces pixel
// output. Animation cues block cooperatively: they poll stop at a fixed short
// interval and return as soon as it reports true.
type Presenter interface {
	// RenderFrame displays one 8x8 frame. Out-of-range pixels never reach a
	// frame (Frame.Set clips), so implementations just blit.
	RenderFrame(f *Frame) error

	// PlayIntro loops the attract animation until stop reports true.
	PlayIntro(stop func() bool) error

	// PlayGameOver plays the round-over animation and scrolls the score
	// until stop reports true.
	PlayGameOver(score int, stop func() bool) error

	// Clear blanks the display. Called on shutdown so an interrupt leaves
	// the matrix dark.
	Clear() error
}
