//go:build rp2040

package main

import (
	"device/arm"
	"machine"
	"runtime/volatile"
	"segloop/core"
	"unsafe"
)

// RP2040 RESETS peripheral memory map
const (
	resetsBase      = 0x4000C000
	resetsRESET     = resetsBase + 0x00
	resetsRESETDONE = resetsBase + 0x08
	atomicClear     = 0x3000 // write-1-to-clear alias
)

// Peripheral reset bits used as clock domain selectors
const (
	resetI2C0      core.PeripheralMask = 1 << 3
	resetIOBank0   core.PeripheralMask = 1 << 5
	resetPadsBank0 core.PeripheralMask = 1 << 8
	resetSysCfg    core.PeripheralMask = 1 << 18
)

var (
	resetClr  = (*volatile.Register32)(unsafe.Pointer(uintptr(resetsRESET + atomicClear)))
	resetDone = (*volatile.Register32)(unsafe.Pointer(uintptr(resetsRESETDONE)))
)

// RPClockDriver implements core.ClockDriver for the RP2040
type RPClockDriver struct{}

// NewRPClockDriver constructs the driver
func NewRPClockDriver() *RPClockDriver {
	return &RPClockDriver{}
}

// SetCoreClock reports the system clock. The TinyGo runtime has already
// started XOSC and PLL_SYS before main, and reprogramming PLL_SYS under it
// would break its timer and UART baud math, so the source and dividers are
// only logged.
func (d *RPClockDriver) SetCoreClock(src core.ClockSource, div core.Dividers) uint32 {
	if src != core.ClockDefault {
		DebugPrintln("clock: source override ignored, runtime owns PLL_SYS")
	}
	return machine.CPUFrequency()
}

// StartTicker arms SysTick to fire every reload core cycles
func (d *RPClockDriver) StartTicker(reload uint32) error {
	return arm.SetupSystemTimer(reload)
}

// EnablePeripheralClocks takes the selected peripherals out of reset and
// waits until they report ready. On the RP2040 a block's clock is gated by
// its reset line.
func (d *RPClockDriver) EnablePeripheralClocks(bus, extra core.PeripheralMask) {
	mask := uint32(bus | extra)
	if mask == 0 {
		return
	}
	resetClr.Set(mask)
	for resetDone.Get()&mask != mask {
	}
}
