package sim

import (
	"fmt"
	"io"
	"sync"
)

// Pin is an output pin that reports every level change to a writer.
// It satisfies led.Pin.
type Pin struct {
	Name string

	mu   sync.Mutex
	out  io.Writer
	high bool
}

// NewPin creates a low pin that logs to out; out may be nil
func NewPin(name string, out io.Writer) *Pin {
	return &Pin{Name: name, out: out}
}

// Set drives the pin
func (p *Pin) Set(high bool) {
	p.mu.Lock()
	changed := p.high != high
	p.high = high
	p.mu.Unlock()

	if changed && p.out != nil {
		fmt.Fprintf(p.out, "led %s=%s\n", p.Name, level(high))
	}
}

// Get reads the pin
func (p *Pin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.high
}

func level(high bool) string {
	if high {
		return "on"
	}
	return "off"
}
