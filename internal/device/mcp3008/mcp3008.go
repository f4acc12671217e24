// Package mcp3008 reads the MCP3008 10-bit ADC over bit-banged SPI.
//
// Like the matrix driver this avoids the hardware SPI controller; the four
// lines can sit on any free GPIOs. Wiring (BCM numbering, config defaults):
//
//	VDD/VREF -> 3.3V, AGND/DGND -> GND,
//	CLK -> GPIO23, DIN (MOSI) -> GPIO25, DOUT (MISO) -> GPIO24, CS -> GPIO12
package mcp3008

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

const channels = 8

// Config selects the GPIO pins.
type Config struct {
	ClockPin      int // BCM number of the CLK line
	MosiPin       int // BCM number of the DIN line (data to the chip)
	MisoPin       int // BCM number of the DOUT line (data from the chip)
	ChipSelectPin int // BCM number of the CS line
}

// Device is an open MCP3008.
type Device struct {
	clk, mosi, cs gpio.PinOut
	miso          gpio.PinIn
}

// Open claims the four SPI lines.
func Open(cfg Config) (*Device, error) {
	clk, err := outputPin(cfg.ClockPin)
	if err != nil {
		return nil, fmt.Errorf("mcp3008: clock: %w", err)
	}
	mosi, err := outputPin(cfg.MosiPin)
	if err != nil {
		return nil, fmt.Errorf("mcp3008: mosi: %w", err)
	}
	cs, err := outputPin(cfg.ChipSelectPin)
	if err != nil {
		return nil, fmt.Errorf("mcp3008: chip select: %w", err)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("mcp3008: chip select idle: %w", err)
	}

	miso := gpioreg.ByName(fmt.Sprintf("GPIO%d", cfg.MisoPin))
	if miso == nil {
		return nil, fmt.Errorf("mcp3008: miso: no pin GPIO%d", cfg.MisoPin)
	}
	if err := miso.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("mcp3008: miso: %w", err)
	}

	return &Device{clk: clk, mosi: mosi, miso: miso, cs: cs}, nil
}

// Read samples one channel (0..7) and returns the raw 10-bit value.
func (d *Device) Read(channel int) (uint16, error) {
	if channel < 0 || channel >= channels {
		return 0, fmt.Errorf("mcp3008: channel %d out of range", channel)
	}

	if err := d.cs.Out(gpio.Low); err != nil {
		return 0, err
	}
	defer d.cs.Out(gpio.High) //nolint:errcheck // best effort release

	// Control word: start bit, single-ended mode, three channel bits.
	ctrl := byte(0x18 | channel)
	for i := 4; i >= 0; i-- {
		if err := d.mosi.Out(gpio.Level(ctrl&(1<<i) != 0)); err != nil {
			return 0, err
		}
		if err := d.pulseClock(); err != nil {
			return 0, err
		}
	}

	// One null bit, then ten data bits, MSB first.
	var value uint16
	for i := 0; i < 11; i++ {
		if err := d.pulseClock(); err != nil {
			return 0, err
		}
		value <<= 1
		if d.miso.Read() == gpio.High {
			value |= 1
		}
	}

	return value & 0x3ff, nil
}

// ReadNorm samples one channel and normalizes it to [0, 1], matching what
// the joystick mapping expects (center rests near 0.5).
func (d *Device) ReadNorm(channel int) (float64, error) {
	raw, err := d.Read(channel)
	if err != nil {
		return 0, err
	}
	return float64(raw) / 1023.0, nil
}

func (d *Device) pulseClock() error {
	if err := d.clk.Out(gpio.High); err != nil {
		return err
	}
	return d.clk.Out(gpio.Low)
}

func outputPin(bcm int) (gpio.PinOut, error) {
	p := gpioreg.ByName(fmt.Sprintf("GPIO%d", bcm))
	if p == nil {
		return nil, fmt.Errorf("no pin GPIO%d", bcm)
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, err
	}
	return p, nil
}
