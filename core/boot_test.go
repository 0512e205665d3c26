package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setupBootDrivers(ledResult, displayResult int32) (*recordingClock, *recordingLEDs, *recordingDisplay) {
	display := &recordingDisplay{
		table:      GlyphTable{0x1, 0x2, 0x4},
		initResult: displayResult,
	}
	clock := &recordingClock{calls: &display.calls, hz: 48000000}
	leds := &recordingLEDs{calls: &display.calls, initResult: ledResult}

	SetClockDriver(clock)
	SetLEDDriver(leds)
	SetDisplayDriver(display)
	ResetInitStatus()

	return clock, leds, display
}

func quickConfig() Config {
	cfg := DefaultConfig()
	cfg.GreetingHold = 0
	return cfg
}

func TestBootSequence(t *testing.T) {
	clock, leds, display := setupBootDrivers(0, 0)

	cfg := quickConfig()
	cfg.PeripheralBus = 0x30
	cfg.PeripheralExtra = 0x40000

	anim, err := Boot(cfg)
	if err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	if anim == nil {
		t.Fatal("Boot returned nil animator")
	}

	got := strings.Join(display.calls, ",")
	want := strings.Join([]string{
		"clock.set_core",
		"clock.start_ticker",
		"clock.enable_peripherals",
		"led.init",
		"display.init",
		"led.toggle",
		"display.write_string",
		"display.clear",
	}, ",")
	if got != want {
		t.Errorf("Boot call order:\n got  %s\n want %s", got, want)
	}

	if clock.reload != 48000 {
		t.Errorf("Expected ticker reload 48000 for 48MHz, got %d", clock.reload)
	}
	if clock.bus != 0x30 || clock.extra != 0x40000 {
		t.Errorf("Peripheral clocks got (%#x, %#x)", clock.bus, clock.extra)
	}
	if leds.initMask != LEDAll {
		t.Errorf("Expected LED init with LEDAll, got %#x", leds.initMask)
	}
	if len(leds.toggled) != 1 || leds.toggled[0] != LEDGreen {
		t.Errorf("Expected a single green toggle, got %v", leds.toggled)
	}
	if len(display.text) != 1 || display.text[0] != "hello" {
		t.Errorf("Expected greeting \"hello\", got %v", display.text)
	}
	if len(display.frames) != 0 {
		t.Errorf("Boot must not render animation frames, got %d", len(display.frames))
	}

	// The returned animator runs over the display's table
	anim.delay = func(uint32) {}
	anim.Step()
	if display.frames[0] != (DisplayBuffer{1, 1, 1, 1, 1, 1}) {
		t.Errorf("First frame %v", display.frames[0])
	}
}

func TestBootInitStatusLastWriteWins(t *testing.T) {
	setupBootDrivers(0, 7)

	if InitStatus() != StatusUnset {
		t.Fatalf("Expected sentinel -1 before boot, got %d", InitStatus())
	}

	if _, err := Boot(quickConfig()); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	if InitStatus() != 7 {
		t.Errorf("Expected display status 7 to overwrite LED status, got %d", InitStatus())
	}
}

func TestBootRecordsLEDStatus(t *testing.T) {
	var statuses []int32
	_, leds, display := setupBootDrivers(0, 0)

	// Observe the record right after each init through the debug stream
	SetDebugWriter(func(s string) {
		if strings.HasPrefix(s, "boot status=") {
			statuses = append(statuses, InitStatus())
		}
	})
	SetDebugEnabled(true)
	defer func() {
		SetDebugEnabled(false)
		SetDebugWriter(func(string) {})
	}()

	leds.initResult = 0
	display.initResult = 3

	if _, err := Boot(quickConfig()); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	if len(statuses) != 2 || statuses[0] != 0 || statuses[1] != 3 {
		t.Errorf("Expected statuses [0 3], got %v", statuses)
	}
}

func TestBootContinuesOnInitFailure(t *testing.T) {
	_, _, display := setupBootDrivers(5, 9)

	anim, err := Boot(quickConfig())
	if err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	if anim == nil {
		t.Fatal("Expected an animator despite init failures")
	}
	if len(display.text) != 1 {
		t.Errorf("Expected greeting to be written despite failures")
	}
}

func TestBootTickerFailure(t *testing.T) {
	clock, _, display := setupBootDrivers(0, 0)
	clock.tickerErr = errNoTimer

	anim, err := Boot(quickConfig())
	if err == nil {
		t.Fatal("Expected error when ticker cannot start")
	}
	if !errors.Is(err, ErrTickerFailed) || !errors.Is(err, errNoTimer) {
		t.Errorf("Expected wrapped ticker errors, got %v", err)
	}
	if anim != nil {
		t.Error("Expected nil animator on ticker failure")
	}
	for _, c := range display.calls {
		if strings.HasPrefix(c, "led.") || strings.HasPrefix(c, "display.") {
			t.Errorf("No collaborator should be touched after ticker failure, saw %s", c)
		}
	}
}

func TestBootHoldsGreeting(t *testing.T) {
	setupBootDrivers(0, 0)
	SetTicks(0)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				Tick()
				time.Sleep(20 * time.Microsecond)
			}
		}
	}()

	cfg := DefaultConfig()
	cfg.GreetingHold = 25

	start := Ticks()
	_, err := Boot(cfg)
	end := Ticks()

	close(stop)
	<-done

	if err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	if end-start < 25 {
		t.Errorf("Greeting held for %d ticks, expected at least 25", end-start)
	}
}

func TestMustDriversPanicWhenMissing(t *testing.T) {
	SetClockDriver(nil)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic with no clock driver")
		}
	}()
	MustClock()
}
