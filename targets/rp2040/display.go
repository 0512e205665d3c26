//go:build rp2040

package main

import (
	"machine"
	"segloop/display/ht16k33"
)

const displayBusHz = 400000

// RPDisplay is the HT16K33 display on a TinyGo I2C bus. The bus is brought
// up in Init so it runs after the I2C block leaves reset.
type RPDisplay struct {
	*ht16k33.Device
	bus *machine.I2C
}

// NewRPDisplay constructs the display on bus at addr
func NewRPDisplay(bus *machine.I2C, addr uint16) *RPDisplay {
	return &RPDisplay{
		Device: ht16k33.New(bus, addr),
		bus:    bus,
	}
}

// Init configures I2C (SDA=GP4, SCL=GP5) and then the controller
func (d *RPDisplay) Init() int32 {
	err := d.bus.Configure(machine.I2CConfig{
		Frequency: displayBusHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})
	if err != nil {
		DebugPrintln("display: i2c configure failed")
		return ht16k33.StatusBusError
	}
	return d.Device.Init()
}
