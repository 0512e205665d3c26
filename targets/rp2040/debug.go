//go:build rp2040

package main

import (
	"machine"
	"segloop/core"
)

var (
	debugUART    *machine.UART
	debugEnabled bool
)

// InitDebugUART initializes UART0 on GP0 (TX) and GP1 (RX) for debugging
// and routes core debug output to it. Baud rate: 115200
func InitDebugUART() {
	debugUART = machine.UART0

	err := debugUART.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	if err != nil {
		debugEnabled = false
		return
	}

	debugEnabled = true
	core.SetDebugWriter(DebugPrintln)
	core.SetDebugEnabled(true)

	DebugPrintln("=== segloop debug UART ===")
}

// DebugPrintln writes a string to the debug UART with newline
func DebugPrintln(s string) {
	if !debugEnabled || debugUART == nil {
		return
	}
	debugUART.Write([]byte(s))
	debugUART.Write([]byte("\r\n"))
}
