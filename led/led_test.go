package led

import (
	"testing"

	"segloop/core"
)

type mockPin struct {
	high bool
	sets int
}

func (p *mockPin) Set(high bool) {
	p.high = high
	p.sets++
}

func (p *mockPin) Get() bool {
	return p.high
}

func TestInitAllTurnsOff(t *testing.T) {
	red := &mockPin{high: true}
	green := &mockPin{high: true}
	bank := NewBank(map[core.LEDID]Pin{core.LEDRed: red, core.LEDGreen: green})

	if status := bank.Init(core.LEDAll); status != core.StatusOK {
		t.Errorf("Init(LEDAll) = %d, expected 0", status)
	}
	if red.high || green.high {
		t.Error("Expected both LEDs off after Init")
	}
}

func TestInitMissingLED(t *testing.T) {
	green := &mockPin{high: true}
	bank := NewBank(map[core.LEDID]Pin{core.LEDGreen: green})

	status := bank.Init(core.LEDRed.Mask() | core.LEDGreen.Mask())
	if status != StatusNoSuchLED {
		t.Errorf("Expected StatusNoSuchLED, got %d", status)
	}
	if green.high {
		t.Error("Green should still be initialized")
	}
}

func TestInitMaskSelectsOnly(t *testing.T) {
	red := &mockPin{high: true}
	green := &mockPin{high: true}
	bank := NewBank(map[core.LEDID]Pin{core.LEDRed: red, core.LEDGreen: green})

	bank.Init(core.LEDGreen.Mask())

	if red.sets != 0 {
		t.Error("Red was not selected and must not be touched")
	}
	if green.high {
		t.Error("Green should be off")
	}
}

func TestToggle(t *testing.T) {
	green := &mockPin{}
	bank := NewBank(map[core.LEDID]Pin{core.LEDGreen: green})

	bank.Toggle(core.LEDGreen)
	if !green.high {
		t.Error("Expected green on after first toggle")
	}
	bank.Toggle(core.LEDGreen)
	if green.high {
		t.Error("Expected green off after second toggle")
	}

	// Unknown LED is a no-op
	bank.Toggle(core.LEDRed)
}
