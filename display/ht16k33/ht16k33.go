// Package ht16k33 drives a six-character 14-segment LED display through a
// Holtek HT16K33 matrix controller on I2C.
//
// Each digit occupies two bytes of display RAM (low byte first), so the
// controller's eight COM lines cover up to eight characters; only the first
// core.DisplaySlots are used.
package ht16k33

import (
	"segloop/core"

	"tinygo.org/x/drivers"
)

const (
	// Address is the default 7-bit I2C address (A0-A2 open)
	Address = 0x70

	cmdOscillatorOn = 0x21
	cmdDisplayOn    = 0x81 // display on, blink off
	cmdBrightness   = 0xE0
	ramStart        = 0x00

	maxDigits     = 8
	maxBrightness = 15
)

// StatusBusError is returned by Init when the controller does not respond
const StatusBusError int32 = 1

// Device is an HT16K33 with a 14-segment display attached
type Device struct {
	bus     drivers.I2C
	addr    uint16
	frame   [1 + maxDigits*2]byte
	cmd     [1]byte
	errors  uint32
	lastErr error
}

// New creates a device on bus at addr. Nothing is sent until Init.
func New(bus drivers.I2C, addr uint16) *Device {
	return &Device{bus: bus, addr: addr}
}

// Init starts the oscillator, turns the display on at full brightness, and
// blanks display RAM. It returns 0 or StatusBusError.
func (d *Device) Init() int32 {
	for _, c := range []byte{cmdOscillatorOn, cmdDisplayOn, cmdBrightness | maxBrightness} {
		if err := d.command(c); err != nil {
			return StatusBusError
		}
	}
	if err := d.flush(core.DisplayBuffer{}); err != nil {
		return StatusBusError
	}
	return core.StatusOK
}

// SetBrightness sets the PWM duty in 16 steps; levels above 15 clamp.
func (d *Device) SetBrightness(level uint8) error {
	if level > maxBrightness {
		level = maxBrightness
	}
	return d.command(cmdBrightness | level)
}

// WriteSegments shows one glyph per slot. Bus errors are counted, not
// returned.
func (d *Device) WriteSegments(buf *core.DisplayBuffer) {
	d.record(d.flush(*buf))
}

// WriteString shows text left-aligned, truncated to the display width.
func (d *Device) WriteString(text string) {
	var buf core.DisplayBuffer
	for i := 0; i < len(buf) && i < len(text); i++ {
		buf[i] = CharGlyph(text[i])
	}
	d.record(d.flush(buf))
}

// Clear blanks every slot
func (d *Device) Clear() {
	d.record(d.flush(core.DisplayBuffer{}))
}

// Glyphs returns the segment rotation table
func (d *Device) Glyphs() core.GlyphTable {
	return Rotation()
}

// Errors returns the number of failed frame writes since creation
func (d *Device) Errors() uint32 {
	return d.errors
}

// LastError returns the most recent bus error, or nil
func (d *Device) LastError() error {
	return d.lastErr
}

func (d *Device) command(c byte) error {
	d.cmd[0] = c
	return d.bus.Tx(d.addr, d.cmd[:], nil)
}

// flush writes a whole frame in one transaction starting at RAM address 0.
// Digits past the buffer are blanked.
func (d *Device) flush(buf core.DisplayBuffer) error {
	d.frame[0] = ramStart
	for i := 0; i < maxDigits; i++ {
		var g core.Glyph
		if i < len(buf) {
			g = buf[i]
		}
		d.frame[1+i*2] = byte(g)
		d.frame[2+i*2] = byte(g >> 8)
	}
	return d.bus.Tx(d.addr, d.frame[:], nil)
}

func (d *Device) record(err error) {
	if err != nil {
		d.errors++
		d.lastErr = err
	}
}
