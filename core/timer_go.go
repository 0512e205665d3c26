//go:build !tinygo

package core

import "sync/atomic"

// On regular Go the "interrupt" is a goroutine, so the counter needs real
// atomics to stay race-free.
var systemTicks atomic.Uint32

func incSystemTicks() {
	systemTicks.Add(1)
}

// getSystemTicks returns the current system ticks (regular Go implementation)
func getSystemTicks() uint32 {
	return systemTicks.Load()
}

// setSystemTicks sets the system ticks (regular Go implementation)
func setSystemTicks(ticks uint32) {
	systemTicks.Store(ticks)
}
