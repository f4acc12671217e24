package config

import (
	_ "embed"
)

//go:embed defaults/ledarcade.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the wiring the
// project was developed against.
func Default() Config {
	return Config{
		Matrix: MatrixConfig{
			ClockPin:      16,
			DataPin:       20,
			ChipSelectPin: 21,
			Brightness:    4,
			Rotate180:     true,
		},
		ADC: ADCConfig{
			ClockPin:      23,
			MosiPin:       25,
			MisoPin:       24,
			ChipSelectPin: 12,
			XChannel:      0,
			YChannel:      1,
		},
		Button: ButtonConfig{
			Pin: 26,
		},
		Game: GameConfig{
			BoardSize:      8,
			TickMs:         500,
			PollIntervalMs: 50,
			DeadZone:       0.1,
		},
	}
}
