// Package term provides a terminal simulator for the LED arcade: a Bubble
// Tea program that stands in for both the matrix (an 8x8 block of cells) and
// the joystick (arrow/WASD keys, space as the button). It lets the games run
// without any hardware attached.
package term

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// ErrClosed is returned when frames are pushed after the simulator exited.
var ErrClosed = errors.New("term: simulator closed")

// minCols/minRows is what the 8x8 cell grid with its border needs.
const (
	minCols = 22
	minRows = 12
)

// Platform is the simulator. It implements display.Device on the output side
// and core.InputSource on the input side.
type Platform struct {
	prog   *tea.Program
	dirs   chan core.Direction
	button atomic.Bool
	done   chan struct{}
	runErr error
	logger *log.Logger
}

// New builds the simulator after checking the terminal is large enough.
func New(logger *log.Logger) (*Platform, error) {
	if w, h, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < minCols || h < minRows {
			return nil, fmt.Errorf("term: terminal %dx%d too small, need at least %dx%d", w, h, minCols, minRows)
		}
	}

	p := &Platform{
		dirs:   make(chan core.Direction, 8),
		done:   make(chan struct{}),
		logger: logger,
	}
	p.prog = tea.NewProgram(newModel(p), tea.WithAltScreen())
	return p, nil
}

// Start runs the Bubble Tea program in the background. Done is closed when
// the user quits or the program fails.
func (p *Platform) Start() {
	p.logger.Debug("terminal simulator starting")
	go func() {
		_, err := p.prog.Run()
		p.runErr = err
		close(p.done)
	}()
}

// Stop asks the program to quit and waits for it.
func (p *Platform) Stop() {
	p.prog.Quit()
	<-p.done
}

// Done is closed once the simulator exits.
func (p *Platform) Done() <-chan struct{} {
	return p.done
}

// Err reports why the simulator exited. Only valid after Done is closed.
func (p *Platform) Err() error {
	return p.runErr
}

// Show implements display.Device.
func (p *Platform) Show(rows [core.FrameSize]byte) error {
	select {
	case <-p.done:
		return ErrClosed
	default:
	}
	p.prog.Send(frameMsg(rows))
	return nil
}

// Clear implements display.Device.
func (p *Platform) Clear() error {
	return p.Show([core.FrameSize]byte{})
}

// Sample implements core.InputSource: it drains the most recent key-derived
// direction, or DirNone when no key arrived since the last call.
func (p *Platform) Sample() core.Direction {
	last := core.DirNone
	for {
		select {
		case d := <-p.dirs:
			last = d
		default:
			return last
		}
	}
}

// Poll implements core.InputSource: it collects key presses until the window
// elapses and returns the last direction seen.
func (p *Platform) Poll(ctx context.Context, window time.Duration) core.Direction {
	last := core.DirNone
	timer := time.NewTimer(window)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return last
		case <-p.done:
			return last
		case <-timer.C:
			return last
		case d := <-p.dirs:
			last = d
		}
	}
}

// ButtonPressed implements core.InputSource. Keyboard input is edge
// triggered, so a press is consumed by the first caller that sees it.
func (p *Platform) ButtonPressed() bool {
	return p.button.Swap(false)
}

// pushDirection hands a key-derived direction to the game loop, dropping it
// if the loop is behind; only the freshest input matters.
func (p *Platform) pushDirection(d core.Direction) {
	select {
	case p.dirs <- d:
	default:
	}
}
