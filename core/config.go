package core

// Config holds the board bring-up parameters for Boot
type Config struct {
	// Core clock source and prescalers
	ClockSource ClockSource
	Dividers    Dividers

	// Peripheral clock domains to ungate, target-defined
	PeripheralBus   PeripheralMask
	PeripheralExtra PeripheralMask

	// Greeting is shown once after the display comes up
	Greeting string

	// GreetingHold is how long the greeting stays up, in milliseconds
	GreetingHold uint32

	// FrameInterval is the pause between animation frames, in milliseconds
	FrameInterval uint32
}

// DefaultConfig returns the stock configuration for the demo
func DefaultConfig() Config {
	return Config{
		ClockSource:   ClockDefault,
		Greeting:      "hello",
		GreetingHold:  10000,
		FrameInterval: 2000,
	}
}
