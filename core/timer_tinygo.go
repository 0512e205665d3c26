//go:build tinygo

package core

import "runtime/volatile"

var systemTicks volatile.Register32

// incSystemTicks is called from interrupt context only
func incSystemTicks() {
	systemTicks.Set(systemTicks.Get() + 1)
}

// getSystemTicks returns the current system ticks
func getSystemTicks() uint32 {
	return systemTicks.Get()
}

// setSystemTicks sets the system ticks
func setSystemTicks(ticks uint32) {
	systemTicks.Set(ticks)
}
