//go:build rp2040

package main

import (
	"machine"
	"segloop/core"
	"segloop/display/ht16k33"
	"segloop/led"
)

// Pico wiring
var (
	greenLED = machine.LED  // on-board LED, GP25
	redLED   = machine.GP15 // external LED through 330R to GND
)

func main() {
	// Debug UART first so boot status lines are not lost
	InitDebugUART()

	core.SetClockDriver(NewRPClockDriver())

	core.SetLEDDriver(led.NewBank(map[core.LEDID]led.Pin{
		core.LEDGreen: configureOutput(greenLED),
		core.LEDRed:   configureOutput(redLED),
	}))

	core.SetDisplayDriver(NewRPDisplay(machine.I2C0, ht16k33.Address))

	cfg := core.DefaultConfig()
	cfg.PeripheralBus = resetIOBank0 | resetPadsBank0 | resetI2C0
	cfg.PeripheralExtra = resetSysCfg

	// Never returns
	core.Run(cfg)
}

func configureOutput(pin machine.Pin) machine.Pin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return pin
}
