// Package joystick turns two MCP3008 channels and a push button into the
// InputSource the game loop consumes.
package joystick

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// ADC reads a normalized [0, 1] sample from one channel. *mcp3008.Device
// satisfies this; tests use stubs.
type ADC interface {
	ReadNorm(channel int) (float64, error)
}

// Button reports the momentary state of a push button.
type Button interface {
	Pressed() bool
}

// Config tunes the axis mapping and polling.
type Config struct {
	XChannel     int           // ADC channel of the VRX axis
	YChannel     int           // ADC channel of the VRY axis
	DeadZone     float64       // Deflection from 0.5 treated as centered
	PollInterval time.Duration // Sampling interval inside Poll
}

// Joystick implements core.InputSource.
type Joystick struct {
	adc    ADC
	button Button
	cfg    Config
	logger *log.Logger
}

// New assembles a joystick from an ADC and a button.
func New(adc ADC, button Button, cfg Config, logger *log.Logger) *Joystick {
	if cfg.DeadZone <= 0 {
		cfg.DeadZone = 0.1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 50 * time.Millisecond
	}
	return &Joystick{adc: adc, button: button, cfg: cfg, logger: logger}
}

// Sample reads both axes once and maps the deflection to a direction.
// Read failures are logged and reported as DirNone; the display path is the
// one that surfaces fatal mid-game I/O errors.
func (j *Joystick) Sample() core.Direction {
	x, err := j.adc.ReadNorm(j.cfg.XChannel)
	if err != nil {
		j.logger.Error("joystick x read failed", "error", err)
		return core.DirNone
	}
	y, err := j.adc.ReadNorm(j.cfg.YChannel)
	if err != nil {
		j.logger.Error("joystick y read failed", "error", err)
		return core.DirNone
	}

	dir := mapDirection(x, y, j.cfg.DeadZone)
	j.logger.Debug("joystick sample", "x", fmt.Sprintf("%.2f", x), "y", fmt.Sprintf("%.2f", y), "dir", dir)
	return dir
}

// Poll samples at the configured interval until the window elapses or ctx is
// cancelled, returning the last real direction seen.
func (j *Joystick) Poll(ctx context.Context, window time.Duration) core.Direction {
	last := core.DirNone
	deadline := time.Now().Add(window)

	for time.Now().Before(deadline) {
		if d := j.Sample(); d != core.DirNone {
			last = d
		}
		select {
		case <-ctx.Done():
			return last
		case <-time.After(j.cfg.PollInterval):
		}
	}
	return last
}

// ButtonPressed reports the button's current state.
func (j *Joystick) ButtonPressed() bool {
	return j.button.Pressed()
}

// mapDirection converts axis readings around a 0.5 center into a direction.
// The horizontal axis is checked first, so a diagonal deflection resolves to
// left/right.
func mapDirection(x, y, deadZone float64) core.Direction {
	const mid = 0.5
	switch {
	case x < mid-deadZone:
		return core.DirLeft
	case x > mid+deadZone:
		return core.DirRight
	case y < mid-deadZone:
		return core.DirUp
	case y > mid+deadZone:
		return core.DirDown
	default:
		return core.DirNone
	}
}

// gpioButton reads a pull-up wired push button: pressed pulls the line low.
type gpioButton struct {
	pin gpio.PinIn
}

// OpenButton claims the button GPIO with the internal pull-up enabled.
func OpenButton(bcm int) (Button, error) {
	p := gpioreg.ByName(fmt.Sprintf("GPIO%d", bcm))
	if p == nil {
		return nil, fmt.Errorf("joystick: button: no pin GPIO%d", bcm)
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("joystick: button: %w", err)
	}
	return &gpioButton{pin: p}, nil
}

func (b *gpioButton) Pressed() bool {
	return b.pin.Read() == gpio.Low
}
