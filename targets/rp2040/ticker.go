//go:build rp2040

package main

import "segloop/core"

// SysTick fires at core.TickRate once StartTicker has run
//
//export SysTick_Handler
func sysTickHandler() {
	core.Tick()
}
