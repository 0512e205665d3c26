package core

import "errors"

// Initialization status codes shared by the collaborators
const (
	StatusUnset int32 = -1
	StatusOK    int32 = 0
)

// ErrTickerFailed is returned by Boot when the tick interrupt cannot be armed
var ErrTickerFailed = errors.New("tick timer could not be configured")

// initStatus records the most recent collaborator init result.
// Nothing in core acts on it; it is kept for diagnostics.
var initStatus = StatusUnset

// InitStatus returns the last recorded initialization status
func InitStatus() int32 {
	return initStatus
}

// ResetInitStatus restores the "not yet set" sentinel
func ResetInitStatus() {
	initStatus = StatusUnset
}

func recordInitStatus(stage string, status int32) {
	initStatus = status
	DebugPrintln("boot status=" + itoa(int(status)) + " stage=" + stage)
}

// Boot brings the board up once using the registered drivers, shows the
// greeting, and returns the animator that takes over from there.
// Collaborator init failures are recorded, never acted on.
func Boot(cfg Config) (*Animator, error) {
	clock := MustClock()
	leds := MustLED()
	display := MustDisplay()

	hz := clock.SetCoreClock(cfg.ClockSource, cfg.Dividers)
	DebugPrintln("boot clock_hz=" + utoa(hz))

	if err := clock.StartTicker(TickReload(hz)); err != nil {
		DebugPrintln("boot ticker_error")
		return nil, errors.Join(ErrTickerFailed, err)
	}

	clock.EnablePeripheralClocks(cfg.PeripheralBus, cfg.PeripheralExtra)

	recordInitStatus("led", leds.Init(LEDAll))
	recordInitStatus("display", display.Init())

	leds.Toggle(LEDGreen)

	display.WriteString(cfg.Greeting)
	Delay(cfg.GreetingHold)
	display.Clear()

	return NewAnimator(display.Glyphs(), display, Delay, cfg.FrameInterval), nil
}

// Run boots the board and animates the display forever. If the tick timer
// cannot be started there is no clock to pace anything, so it halts.
func Run(cfg Config) {
	anim, err := Boot(cfg)
	if err != nil {
		for {
			spin()
		}
	}
	anim.Run()
}
