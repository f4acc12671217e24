package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"periph.io/x/host/v3"

	"github.com/vovakirdan/led-arcade/internal/arcade"
	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/device/joystick"
	"github.com/vovakirdan/led-arcade/internal/device/max7219"
	"github.com/vovakirdan/led-arcade/internal/device/mcp3008"
	"github.com/vovakirdan/led-arcade/internal/display"
	"github.com/vovakirdan/led-arcade/internal/platform/term"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

On the matrix the joystick steers and its button starts or skips screens.
With --driver term a terminal simulator replaces the hardware:

  Arrows/WASD - steer
  Space/Enter - joystick button
  Q/Ctrl+C    - quit

Examples:
  ledarcade play snake
  ledarcade play snake --driver term
  ledarcade play snake --seed 7 --config ./my-rig.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", "led", "Output driver: led or term")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'ledarcade list' to see available games", gameID)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	rt := core.RuntimeConfig{
		BoardSize: cfg.Game.BoardSize,
		Seed:      flagSeed,
	}

	// An interrupt cancels the context; the session clears the display on
	// the way out so the matrix goes dark.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch flagDriver {
	case "led":
		return playOnMatrix(ctx, game, cfg, rt)
	case "term":
		return playInTerminal(ctx, game, cfg, rt)
	default:
		return fmt.Errorf("unknown driver %q (want led or term)", flagDriver)
	}
}

// playOnMatrix wires the physical devices. Any init failure is fatal before
// a round starts.
func playOnMatrix(ctx context.Context, game registry.Game, cfg config.Config, rt core.RuntimeConfig) error {
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
	defer matrix.Close() //nolint:errcheck // display is blanked by the session

	adc, err := mcp3008.Open(mcp3008.Config{
		ClockPin:      cfg.ADC.ClockPin,
		MosiPin:       cfg.ADC.MosiPin,
		MisoPin:       cfg.ADC.MisoPin,
		ChipSelectPin: cfg.ADC.ChipSelectPin,
	})
	if err != nil {
		return err
	}

	button, err := joystick.OpenButton(cfg.Button.Pin)
	if err != nil {
		return err
	}

	stick := joystick.New(adc, button, joystick.Config{
		XChannel:     cfg.ADC.XChannel,
		YChannel:     cfg.ADC.YChannel,
		DeadZone:     cfg.Game.DeadZone,
		PollInterval: cfg.Game.PollInterval(),
	}, logger)

	session := &arcade.Session{
		Game:   game,
		Input:  stick,
		Output: display.New(matrix, logger),
		Config: rt,
		Tick:   cfg.Game.Tick(),
		Logger: logger,
	}
	return session.Run(ctx)
}

// playInTerminal wires the Bubble Tea simulator in place of the hardware.
func playInTerminal(ctx context.Context, game registry.Game, cfg config.Config, rt core.RuntimeConfig) error {
	plat, err := term.New(logger)
	if err != nil {
		return err
	}
	plat.Start()
	defer plat.Stop()

	// Quitting the simulator ends the session the same way an interrupt
	// does.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-plat.Done()
		cancel()
	}()

	// The alternate screen owns the terminal; route session logs nowhere.
	quiet := log.New(io.Discard)

	session := &arcade.Session{
		Game:   game,
		Input:  plat,
		Output: display.New(plat, quiet),
		Config: rt,
		Tick:   cfg.Game.Tick(),
		Logger: quiet,
	}
	if err := session.Run(ctx); err != nil && !errors.Is(err, term.ErrClosed) {
		return err
	}
	plat.Stop()
	return plat.Err()
}
