// Package led drives the board's indicator LEDs through plain output pins.
package led

import "segloop/core"

// StatusNoSuchLED is returned by Init when the mask names an LED that has
// no pin on this board
const StatusNoSuchLED int32 = 2

// Pin is an output pin already configured by the target.
// machine.Pin satisfies it.
type Pin interface {
	Set(high bool)
	Get() bool
}

// Bank is the set of LEDs available on a board
type Bank struct {
	pins map[core.LEDID]Pin
}

// NewBank creates a bank from the target's pin map
func NewBank(pins map[core.LEDID]Pin) *Bank {
	return &Bank{pins: pins}
}

// Init turns off every LED selected by mask. The all-LEDs selector only
// touches LEDs that exist; an explicit bit for a missing LED reports
// StatusNoSuchLED after the rest are initialized.
func (b *Bank) Init(mask core.LEDMask) int32 {
	status := core.StatusOK
	for id := core.LEDID(0); id < 32; id++ {
		if mask&id.Mask() == 0 {
			continue
		}
		pin, ok := b.pins[id]
		if !ok {
			if mask != core.LEDAll {
				status = StatusNoSuchLED
			}
			continue
		}
		pin.Set(false)
	}
	return status
}

// Toggle inverts one LED; unknown ids are ignored
func (b *Bank) Toggle(id core.LEDID) {
	pin, ok := b.pins[id]
	if !ok {
		return
	}
	pin.Set(!pin.Get())
}
