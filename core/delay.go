package core

// DelayFunc blocks for the given number of milliseconds
type DelayFunc func(ms uint32)

// Delay busy-waits until at least ms ticks of the system counter have
// elapsed. It never sleeps or yields; there is nothing else to schedule.
func Delay(ms uint32) {
	DelayOn(SystemTicks{}, ms)
}

// DelayOn busy-waits on src until at least ms ticks have elapsed.
// The unsigned subtraction keeps the comparison correct across a counter
// wraparound.
func DelayOn(src TickSource, ms uint32) {
	start := src.Ticks()
	for src.Ticks()-start < ms {
		spin()
	}
}
