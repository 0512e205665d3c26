package core

// LEDID identifies a single board LED
type LEDID uint8

// LEDMask selects a set of LEDs, one bit per LEDID
type LEDMask uint32

const (
	LEDRed LEDID = iota
	LEDGreen
)

// LEDAll selects every LED the board may have
const LEDAll LEDMask = 0xFFFFFFFF

// Mask returns the selector bit for id
func (id LEDID) Mask() LEDMask {
	return 1 << id
}

// LEDDriver is the abstract LED interface that core code uses.
type LEDDriver interface {
	// Init configures the LEDs selected by mask and returns a status code
	Init(mask LEDMask) int32

	// Toggle inverts one LED
	Toggle(id LEDID)
}

var ledDriver LEDDriver

// SetLEDDriver is called by target-specific code to register its driver.
func SetLEDDriver(d LEDDriver) {
	ledDriver = d
}

// MustLED returns the configured driver or panics if missing.
func MustLED() LEDDriver {
	if ledDriver == nil {
		panic("LED driver not configured")
	}
	return ledDriver
}
