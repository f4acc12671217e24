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
	"github.com/vovakirdan/led-arcade/internal/device/joystick"
	"github.com/vovakirdan/led-arcade/internal/device/mcp3008"
)

var joytestCmd = &cobra.Command{
	Use:   "joytest",
	Short: "Print joystick readings",
	Long: `Reads the joystick axes and button at the configured poll interval
and prints raw values, the mapped direction and the button state until
interrupted. Useful to verify the MCP3008 wiring and the dead-zone.`,
	RunE: runJoytest,
}

func runJoytest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("gpio host init: %w", err)
	}

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("reading joystick, interrupt to exit")

	for ctx.Err() == nil {
		x, err := adc.Read(cfg.ADC.XChannel)
		if err != nil {
			return fmt.Errorf("x axis: %w", err)
		}
		y, err := adc.Read(cfg.ADC.YChannel)
		if err != nil {
			return fmt.Errorf("y axis: %w", err)
		}

		logger.Info("joystick",
			"x", x,
			"y", y,
			"dir", stick.Sample(),
			"button", stick.ButtonPressed(),
		)

		select {
		case <-ctx.Done():
		case <-time.After(cfg.Game.PollInterval()):
		}
	}

	fmt.Println("\nExiting...")
	return nil
}
