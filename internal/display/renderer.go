// Package display implements the Presenter contract on top of any device
// that can show an 8x8 frame. The animation cues (intro, game over, score
// crawl) live here so the LED matrix and the terminal simulator share them.
package display

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/sprites"
)

// Device is the minimal output surface the renderer draws on.
type Device interface {
	// Show displays the given rows, top row first, MSB leftmost.
	Show(rows [core.FrameSize]byte) error
	// Clear blanks the display.
	Clear() error
}

const (
	// scrollInterval paces the text crawl, one column per step.
	scrollInterval = 75 * time.Millisecond
	// stopPollInterval is how often blocking cues re-check their stop
	// predicate while holding a frame.
	stopPollInterval = 50 * time.Millisecond
)

// Renderer drives a Device with game frames and animation cues.
type Renderer struct {
	dev    Device
	logger *log.Logger
}

// New creates a renderer for the given device.
func New(dev Device, logger *log.Logger) *Renderer {
	return &Renderer{dev: dev, logger: logger}
}

// RenderFrame displays one game frame.
func (r *Renderer) RenderFrame(f *core.Frame) error {
	return r.dev.Show(f.Rows())
}

// PlayIntro scrolls the title and loops the face sprites until stop reports
// true.
func (r *Renderer) PlayIntro(stop func() bool) error {
	faces := []struct {
		sprite sprites.Sprite
		hold   time.Duration
	}{
		{sprites.FaceLeft, 400 * time.Millisecond},
		{sprites.FaceRight, 400 * time.Millisecond},
		{sprites.FaceLeft, 400 * time.Millisecond},
		{sprites.FaceWink, 250 * time.Millisecond},
	}

	for {
		done, err := r.scrollText("SNAKE!", stop)
		if err != nil || done {
			return err
		}
		for _, step := range faces {
			if err := r.dev.Show(step.sprite.Frame().Rows()); err != nil {
				return err
			}
			if r.hold(step.hold, stop) {
				return nil
			}
		}
	}
}

// PlayGameOver drains a heart, collapses a cross and then scrolls the score
// until stop reports true.
func (r *Renderer) PlayGameOver(score int, stop func() bool) error {
	r.logger.Debug("game over cue", "score", score)

	drain := []sprites.Sprite{
		sprites.HeartFull, sprites.HeartHalf, sprites.HeartQuarter, sprites.HeartDot,
		sprites.CrossDot, sprites.CrossQuarter, sprites.CrossHalf, sprites.CrossFull,
	}
	for _, s := range drain {
		if err := r.dev.Show(s.Frame().Rows()); err != nil {
			return err
		}
		if r.hold(200*time.Millisecond, stop) {
			return nil
		}
	}

	msg := fmt.Sprintf("SCORE %d", score)
	for {
		done, err := r.scrollText(msg, stop)
		if err != nil || done {
			return err
		}
		if r.hold(300*time.Millisecond, stop) {
			return nil
		}
	}
}

// Clear blanks the display.
func (r *Renderer) Clear() error {
	return r.dev.Clear()
}

// ScrollText crawls an arbitrary message once across the display, stopping
// early if stop reports true. The demo command uses it; the game cues
// compose the same crawl internally.
func (r *Renderer) ScrollText(text string, stop func() bool) error {
	_, err := r.scrollText(text, stop)
	return err
}

// scrollText crawls the message right-to-left across the matrix, one column
// per scroll interval. Returns true as soon as stop reports true.
func (r *Renderer) scrollText(text string, stop func() bool) (bool, error) {
	cols := sprites.TextColumns(text)

	for offset := 0; offset+core.FrameSize <= len(cols); offset++ {
		if stop() {
			return true, nil
		}

		var f core.Frame
		for x := 0; x < core.FrameSize; x++ {
			col := cols[offset+x]
			for y := 0; y < core.FrameSize; y++ {
				if col&(1<<y) != 0 {
					f.Set(x, y)
				}
			}
		}
		if err := r.dev.Show(f.Rows()); err != nil {
			return false, err
		}
		time.Sleep(scrollInterval)
	}
	return false, nil
}

// hold keeps the current frame on screen for the given duration, re-checking
// stop at the poll interval. Returns true if stop fired.
func (r *Renderer) hold(d time.Duration, stop func() bool) bool {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if stop() {
			return true
		}
		time.Sleep(stopPollInterval)
	}
	return stop()
}
