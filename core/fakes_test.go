package core

import "errors"

// recordingDisplay captures every call made against the display driver
type recordingDisplay struct {
	calls      []string
	frames     []DisplayBuffer
	text       []string
	table      GlyphTable
	initResult int32
}

func (d *recordingDisplay) Init() int32 {
	d.calls = append(d.calls, "display.init")
	return d.initResult
}

func (d *recordingDisplay) WriteString(text string) {
	d.calls = append(d.calls, "display.write_string")
	d.text = append(d.text, text)
}

func (d *recordingDisplay) WriteSegments(buf *DisplayBuffer) {
	d.calls = append(d.calls, "display.write_segments")
	d.frames = append(d.frames, *buf)
}

func (d *recordingDisplay) Clear() {
	d.calls = append(d.calls, "display.clear")
}

func (d *recordingDisplay) Glyphs() GlyphTable {
	return d.table
}

type recordingLEDs struct {
	calls      *[]string
	initMask   LEDMask
	toggled    []LEDID
	initResult int32
}

func (l *recordingLEDs) Init(mask LEDMask) int32 {
	*l.calls = append(*l.calls, "led.init")
	l.initMask = mask
	return l.initResult
}

func (l *recordingLEDs) Toggle(id LEDID) {
	*l.calls = append(*l.calls, "led.toggle")
	l.toggled = append(l.toggled, id)
}

type recordingClock struct {
	calls     *[]string
	hz        uint32
	reload    uint32
	bus       PeripheralMask
	extra     PeripheralMask
	tickerErr error
}

func (c *recordingClock) SetCoreClock(src ClockSource, div Dividers) uint32 {
	*c.calls = append(*c.calls, "clock.set_core")
	return c.hz
}

func (c *recordingClock) StartTicker(reload uint32) error {
	*c.calls = append(*c.calls, "clock.start_ticker")
	c.reload = reload
	return c.tickerErr
}

func (c *recordingClock) EnablePeripheralClocks(bus, extra PeripheralMask) {
	*c.calls = append(*c.calls, "clock.enable_peripherals")
	c.bus = bus
	c.extra = extra
}

var errNoTimer = errors.New("no timer")
