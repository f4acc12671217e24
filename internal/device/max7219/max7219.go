// Package max7219 drives a MAX7219 8x8 LED matrix over bit-banged SPI.
//
// Software SPI keeps the hardware SPI controller free for other hats; any
// three GPIO pins work. Wiring (BCM numbering, defaults from the config):
//
//	VCC -> 5V, GND -> GND, DIN -> GPIO20, CS -> GPIO21, CLK -> GPIO16
package max7219

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// MAX7219 register addresses.
const (
	regDigit0      = 0x01
	regDecodeMode  = 0x09
	regIntensity   = 0x0a
	regScanLimit   = 0x0b
	regShutdown    = 0x0c
	regDisplayTest = 0x0f
)

// Config selects the GPIO pins and display options.
type Config struct {
	ClockPin      int // BCM number of the CLK line
	DataPin       int // BCM number of the DIN line
	ChipSelectPin int // BCM number of the CS/LOAD line
	Intensity     int // Brightness 0..15
	Rotate180     bool
}

// Device is an open MAX7219 matrix.
type Device struct {
	clk, din, cs gpio.PinOut
	rotate180    bool
}

// Open claims the pins and initializes the chip: display test off, no BCD
// decode, all eight rows scanned, brightness set, shutdown released.
func Open(cfg Config) (*Device, error) {
	clk, err := outputPin(cfg.ClockPin)
	if err != nil {
		return nil, fmt.Errorf("max7219: clock: %w", err)
	}
	din, err := outputPin(cfg.DataPin)
	if err != nil {
		return nil, fmt.Errorf("max7219: data: %w", err)
	}
	cs, err := outputPin(cfg.ChipSelectPin)
	if err != nil {
		return nil, fmt.Errorf("max7219: chip select: %w", err)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("max7219: chip select idle: %w", err)
	}

	d := &Device{clk: clk, din: din, cs: cs, rotate180: cfg.Rotate180}

	setup := []struct{ reg, data byte }{
		{regDisplayTest, 0x00},
		{regScanLimit, 0x07},
		{regDecodeMode, 0x00},
		{regIntensity, byte(core.Clamp(cfg.Intensity, 0, 15))},
		{regShutdown, 0x01},
	}
	for _, s := range setup {
		if err := d.write(s.reg, s.data); err != nil {
			return nil, fmt.Errorf("max7219: init: %w", err)
		}
	}
	if err := d.Clear(); err != nil {
		return nil, fmt.Errorf("max7219: init: %w", err)
	}

	return d, nil
}

// Show writes the frame rows into the digit registers.
func (d *Device) Show(rows [core.FrameSize]byte) error {
	if d.rotate180 {
		rows = rotate180(rows)
	}
	for i, row := range rows {
		if err := d.write(regDigit0+byte(i), row); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks all rows.
func (d *Device) Clear() error {
	return d.Show([core.FrameSize]byte{})
}

// SetIntensity adjusts the brightness (0..15).
func (d *Device) SetIntensity(level int) error {
	return d.write(regIntensity, byte(core.Clamp(level, 0, 15)))
}

// Close blanks the display and puts the chip into shutdown.
func (d *Device) Close() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.write(regShutdown, 0x00)
}

// write clocks one 16-bit register/data word out, MSB first, and latches it
// with the CS line.
func (d *Device) write(reg, data byte) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.shiftOut(reg); err != nil {
		return err
	}
	if err := d.shiftOut(data); err != nil {
		return err
	}
	return d.cs.Out(gpio.High)
}

func (d *Device) shiftOut(b byte) error {
	for i := 7; i >= 0; i-- {
		if err := d.clk.Out(gpio.Low); err != nil {
			return err
		}
		if err := d.din.Out(gpio.Level(b&(1<<i) != 0)); err != nil {
			return err
		}
		if err := d.clk.Out(gpio.High); err != nil {
			return err
		}
	}
	return d.clk.Out(gpio.Low)
}

// rotate180 flips the frame for matrices mounted upside down (the original
// rig needed rotate=2).
func rotate180(rows [core.FrameSize]byte) [core.FrameSize]byte {
	var out [core.FrameSize]byte
	for i, row := range rows {
		out[core.FrameSize-1-i] = reverseBits(row)
	}
	return out
}

func reverseBits(b byte) byte {
	var out byte
	for i := 0; i < 8; i++ {
		if b&(1<<i) != 0 {
			out |= 1 << (7 - i)
		}
	}
	return out
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
