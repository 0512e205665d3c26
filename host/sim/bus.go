package sim

import (
	"errors"
	"fmt"
	"sync"

	"segloop/core"
)

// ErrNoDevice is returned for transfers to an address nothing answers on
var ErrNoDevice = errors.New("sim: no device at address")

// HT16K33 emulates the controller's command set and display RAM behind a
// drivers.I2C bus
type HT16K33 struct {
	Addr uint16

	// OnFrame, when set, is called with the first display slots after every
	// RAM write
	OnFrame func(core.DisplayBuffer)

	mu         sync.Mutex
	oscillator bool
	displayOn  bool
	blink      uint8
	brightness uint8
	ram        [16]byte
}

// NewHT16K33 creates a powered-down controller at addr
func NewHT16K33(addr uint16) *HT16K33 {
	return &HT16K33{Addr: addr}
}

// Tx implements drivers.I2C. Only writes are supported.
func (d *HT16K33) Tx(addr uint16, w, r []byte) error {
	if addr != d.Addr {
		return fmt.Errorf("%w %#x", ErrNoDevice, addr)
	}
	if len(r) > 0 {
		return errors.New("sim: HT16K33 reads not supported")
	}
	if len(w) == 0 {
		return nil
	}

	d.mu.Lock()
	cmd := w[0]
	var frame core.DisplayBuffer
	ramWrite := false

	switch cmd & 0xF0 {
	case 0x20:
		d.oscillator = cmd&0x01 != 0
	case 0x80:
		d.displayOn = cmd&0x01 != 0
		d.blink = (cmd >> 1) & 0x03
	case 0xE0:
		d.brightness = cmd & 0x0F
	case 0x00:
		start := int(cmd & 0x0F)
		for i, b := range w[1:] {
			d.ram[(start+i)%len(d.ram)] = b
		}
		frame = d.frameLocked()
		ramWrite = true
	default:
		d.mu.Unlock()
		return fmt.Errorf("sim: unsupported HT16K33 command %#02x", cmd)
	}
	onFrame := d.OnFrame
	d.mu.Unlock()

	if ramWrite && onFrame != nil {
		onFrame(frame)
	}
	return nil
}

// ReadRegister is unsupported on the emulated controller
func (d *HT16K33) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return d.Tx(uint16(addr), []byte{r}, buf)
}

// WriteRegister writes buf starting at register r
func (d *HT16K33) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return d.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

// Frame returns the current display slots
func (d *HT16K33) Frame() core.DisplayBuffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frameLocked()
}

// Lit reports whether the controller would show anything
func (d *HT16K33) Lit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.oscillator && d.displayOn
}

// Brightness returns the last brightness level, 0-15
func (d *HT16K33) Brightness() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.brightness
}

func (d *HT16K33) frameLocked() core.DisplayBuffer {
	var buf core.DisplayBuffer
	for i := range buf {
		buf[i] = core.Glyph(d.ram[i*2]) | core.Glyph(d.ram[i*2+1])<<8
	}
	return buf
}
