// Package config provides YAML-based configuration for the arcade: GPIO pin
// assignments, joystick tuning and game pacing.
package config

import "time"

// Config is the full arcade configuration.
type Config struct {
	Matrix MatrixConfig `yaml:"matrix"`
	ADC    ADCConfig    `yaml:"adc"`
	Button ButtonConfig `yaml:"button"`
	Game   GameConfig   `yaml:"game"`
}

// MatrixConfig wires the MAX7219 matrix. Pins are BCM numbers; the defaults
// sit at the bottom of the GPIO header to stay clear of common hats.
type MatrixConfig struct {
	ClockPin      int  `yaml:"clock_pin"`
	DataPin       int  `yaml:"data_pin"`
	ChipSelectPin int  `yaml:"cs_pin"`
	Brightness    int  `yaml:"brightness"` // 0..15
	Rotate180     bool `yaml:"rotate_180"`
}

// ADCConfig wires the MCP3008 reading the joystick axes.
type ADCConfig struct {
	ClockPin      int `yaml:"clock_pin"`
	MosiPin       int `yaml:"mosi_pin"`
	MisoPin       int `yaml:"miso_pin"`
	ChipSelectPin int `yaml:"cs_pin"`
	XChannel      int `yaml:"x_channel"`
	YChannel      int `yaml:"y_channel"`
}

// ButtonConfig wires the joystick push button (pull-up, pressed
// pulls the line low).
type ButtonConfig struct {
	Pin int `yaml:"pin"`
}

// GameConfig tunes the game loop.
type GameConfig struct {
	BoardSize      int     `yaml:"board_size"`
	TickMs         int     `yaml:"tick_ms"`          // Input poll window per tick
	PollIntervalMs int     `yaml:"poll_interval_ms"` // Sampling interval inside the window
	DeadZone       float64 `yaml:"dead_zone"`        // Joystick dead-zone around center
}

// Tick returns the per-tick input poll window.
func (g GameConfig) Tick() time.Duration {
	return time.Duration(g.TickMs) * time.Millisecond
}

// PollInterval returns the joystick sampling interval.
func (g GameConfig) PollInterval() time.Duration {
	return time.Duration(g.PollIntervalMs) * time.Millisecond
}
