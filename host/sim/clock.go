// Package sim provides host-side collaborators so the firmware core can run
// on a PC: a goroutine stands in for the tick interrupt, pins print their
// state, and an emulated HT16K33 renders frames as ASCII.
package sim

import (
	"errors"
	"sync"
	"time"

	"segloop/core"
)

// DefaultCoreHz is the core clock the simulated board reports
const DefaultCoreHz = 48000000

// ErrTickerRunning is returned when StartTicker is called twice
var ErrTickerRunning = errors.New("sim: ticker already running")

// Clock implements core.ClockDriver with a time.Ticker goroutine calling
// core.Tick
type Clock struct {
	// Hz is the frequency SetCoreClock reports
	Hz uint32

	// Speed runs simulated time faster than wall time; 1 is real time
	Speed uint32

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	enabled core.PeripheralMask
}

// NewClock creates a real-time clock at DefaultCoreHz
func NewClock() *Clock {
	return &Clock{Hz: DefaultCoreHz, Speed: 1}
}

// SetCoreClock reports Hz; the host has no clock tree to program
func (c *Clock) SetCoreClock(src core.ClockSource, div core.Dividers) uint32 {
	return c.Hz
}

// StartTicker starts calling core.Tick at the rate implied by reload
func (c *Clock) StartTicker(reload uint32) error {
	if reload == 0 {
		return errors.New("sim: ticker reload must be non-zero")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return ErrTickerRunning
	}

	speed := c.Speed
	if speed == 0 {
		speed = 1
	}
	period := time.Duration(uint64(reload) * uint64(time.Second) / uint64(c.Hz) / uint64(speed))
	if period <= 0 {
		period = time.Microsecond
	}

	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(period, c.stop, c.done)
	return nil
}

func (c *Clock) run(period time.Duration, stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			core.Tick()
		}
	}
}

// Stop halts the tick goroutine and waits for it to exit
func (c *Clock) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// EnablePeripheralClocks records the ungated domains
func (c *Clock) EnablePeripheralClocks(bus, extra core.PeripheralMask) {
	c.mu.Lock()
	c.enabled |= bus | extra
	c.mu.Unlock()
}

// Enabled returns every domain enabled so far
func (c *Clock) Enabled() core.PeripheralMask {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}
