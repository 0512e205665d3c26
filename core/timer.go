package core

// Tick rate of the system counter
const (
	TickRate = 1000 // 1kHz, one tick per millisecond
)

// TickSource is anything that exposes a free-running tick counter
type TickSource interface {
	Ticks() uint32
}

// SystemTicks is the TickSource backed by the process-wide counter
type SystemTicks struct{}

// Ticks returns the current value of the process-wide counter
func (SystemTicks) Ticks() uint32 {
	return getSystemTicks()
}

// Tick is the body of the periodic timer interrupt.
// It must be the only writer of the counter.
func Tick() {
	incSystemTicks()
}

// Ticks returns the current system time in milliseconds since boot.
// The value wraps silently after 2^32 ticks.
func Ticks() uint32 {
	return getSystemTicks()
}

// SetTicks sets the current system time (for testing/hardware integration)
func SetTicks(ticks uint32) {
	state := disableInterrupts()
	setSystemTicks(ticks)
	restoreInterrupts(state)
}

// TickReload converts a core clock frequency into the timer reload value
// that fires at TickRate
func TickReload(coreHz uint32) uint32 {
	return coreHz / TickRate
}
