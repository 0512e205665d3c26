package core

// ClockSource selects the oscillator that feeds the core clock
type ClockSource uint8

const (
	// ClockDefault keeps whatever source the runtime already selected
	ClockDefault ClockSource = iota
	ClockInternal
	ClockExternal
)

// Dividers are the prescalers applied between the clock source and the core
type Dividers struct {
	PLLM uint8
	PLLN uint8
	PLLR uint8
}

// PeripheralMask is an opaque, target-defined set of clock domains
type PeripheralMask uint32

// ClockDriver is the clock tree interface that core code uses.
type ClockDriver interface {
	// SetCoreClock configures the core clock and returns its frequency in Hz
	SetCoreClock(src ClockSource, div Dividers) uint32

	// StartTicker arms the periodic interrupt that calls Tick.
	// reload is the number of core clock cycles between interrupts.
	StartTicker(reload uint32) error

	// EnablePeripheralClocks ungates the selected clock domains
	EnablePeripheralClocks(bus, extra PeripheralMask)
}

var clockDriver ClockDriver

// SetClockDriver is called by target-specific code to register its driver.
func SetClockDriver(d ClockDriver) {
	clockDriver = d
}

// MustClock returns the configured driver or panics if missing.
func MustClock() ClockDriver {
	if clockDriver == nil {
		panic("clock driver not configured")
	}
	return clockDriver
}
