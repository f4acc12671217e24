package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"periph.io/x/host/v3"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/device/max7219"
	"github.com/vovakirdan/led-arcade/internal/display"
	"github.com/vovakirdan/led-arcade/internal/sprites"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Exercise the LED matrix",
	Long: `Cycles a rectangle outline, a letter and a scrolling message on the
matrix until interrupted. Useful to verify the wiring before wiring the
joystick.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("gpio host init: %w", err)
	}

	matrix, err := max7219.Open(max7219.Config{
		ClockPin:      cfg.Matrix.ClockPin,
		DataPin:       cfg.Matrix.DataPin,
		ChipSelectPin: cfg.Matrix.ChipSelectPin,
		Intensity:     cfg.Matrix.Brightness,
		Rotate180:     cfg.Matrix.Rotate180,
	})
	if err != nil {
		return err
	}
	defer matrix.Close() //nolint:errcheck // blanked below

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := display.New(matrix, logger)
	defer renderer.Clear() //nolint:errcheck // best effort on shutdown

	logger.Info("matrix demo running, interrupt to exit")

	cancelled := func() bool { return ctx.Err() != nil }

	for ctx.Err() == nil {
		if err := renderer.RenderFrame(rectangleFrame()); err != nil {
			return err
		}
		if !sleepCtx(ctx, 2*time.Second) {
			break
		}

		if err := renderer.RenderFrame(letterFrame('A')); err != nil {
			return err
		}
		if !sleepCtx(ctx, 2*time.Second) {
			break
		}

		if err := renderer.ScrollText("SNAKE GAME!", cancelled); err != nil {
			return err
		}
	}

	logger.Info("cleaning up")
	return nil
}

// rectangleFrame lights the outline of the matrix.
func rectangleFrame() *core.Frame {
	var f core.Frame
	for i := 0; i < core.FrameSize; i++ {
		f.Set(i, 0)
		f.Set(i, core.FrameSize-1)
		f.Set(0, i)
		f.Set(core.FrameSize-1, i)
	}
	return &f
}

// letterFrame renders one font glyph, roughly centered.
func letterFrame(r rune) *core.Frame {
	var f core.Frame
	glyph, ok := sprites.Glyph(r)
	if !ok {
		return &f
	}
	offset := (core.FrameSize - len(glyph)) / 2
	for x, col := range glyph {
		for y := 0; y < core.FrameSize; y++ {
			if col&(1<<y) != 0 {
				f.Set(offset+x, y)
			}
		}
	}
	return &f
}

// sleepCtx waits for d, returning false early if ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
