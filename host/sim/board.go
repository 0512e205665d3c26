package sim

import (
	"io"

	"segloop/core"
	"segloop/display/ht16k33"
	"segloop/host/render"
	"segloop/led"
)

// Board is a full simulated board: clock, two LEDs, and an HT16K33 display
type Board struct {
	Clock      *Clock
	Red, Green *Pin
	Controller *HT16K33
	Display    *ht16k33.Device
	LEDs       *led.Bank
}

// NewBoard wires a simulated board that reports to out. Frames are drawn
// with render.Frame.
func NewBoard(out io.Writer) *Board {
	b := &Board{
		Clock:      NewClock(),
		Red:        NewPin("red", out),
		Green:      NewPin("green", out),
		Controller: NewHT16K33(ht16k33.Address),
	}
	if out != nil {
		b.Controller.OnFrame = func(buf core.DisplayBuffer) {
			io.WriteString(out, render.Frame(buf))
		}
	}
	b.Display = ht16k33.New(b.Controller, ht16k33.Address)
	b.LEDs = led.NewBank(map[core.LEDID]led.Pin{
		core.LEDRed:   b.Red,
		core.LEDGreen: b.Green,
	})
	return b
}

// Register installs the board's drivers into core
func (b *Board) Register() {
	core.SetClockDriver(b.Clock)
	core.SetLEDDriver(b.LEDs)
	core.SetDisplayDriver(b.Display)
}
