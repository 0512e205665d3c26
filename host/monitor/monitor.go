// Package monitor decodes the firmware's debug line stream.
package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"segloop/core"
)

// EventKind identifies a debug line type
type EventKind uint8

const (
	EventBootClock EventKind = iota + 1
	EventBootStatus
	EventTickerError
	EventFrame
)

// Event is one decoded debug line
type Event struct {
	Kind   EventKind
	Hz     uint32     // EventBootClock
	Status int32      // EventBootStatus
	Stage  string     // EventBootStatus
	Index  uint32     // EventFrame
	Glyph  core.Glyph // EventFrame
}

// ParseLine decodes a single debug line. Lines that are not boot or frame
// records report false.
func ParseLine(line string) (Event, bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 2 {
		return Event{}, false
	}

	switch fields[0] {
	case "boot":
		if fields[1] == "ticker_error" {
			return Event{Kind: EventTickerError}, true
		}
		kv := keyValues(fields[1:])
		if v, ok := kv["clock_hz"]; ok {
			hz, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return Event{}, false
			}
			return Event{Kind: EventBootClock, Hz: uint32(hz)}, true
		}
		if v, ok := kv["status"]; ok {
			status, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return Event{}, false
			}
			return Event{Kind: EventBootStatus, Status: int32(status), Stage: kv["stage"]}, true
		}
	case "frame":
		kv := keyValues(fields[1:])
		idx, err := strconv.ParseUint(kv["idx"], 10, 32)
		if err != nil {
			return Event{}, false
		}
		glyph, err := strconv.ParseUint(strings.TrimPrefix(kv["glyph"], "0x"), 16, 32)
		if err != nil {
			return Event{}, false
		}
		return Event{Kind: EventFrame, Index: uint32(idx), Glyph: core.Glyph(glyph)}, true
	}
	return Event{}, false
}

func keyValues(fields []string) map[string]string {
	kv := make(map[string]string, len(fields))
	for _, f := range fields {
		k, v, ok := strings.Cut(f, "=")
		if ok {
			kv[k] = v
		}
	}
	return kv
}

// State is what the host knows about the board so far
type State struct {
	ClockHz    uint32
	InitStatus int32
	TickerDown bool
	Frames     uint32
	LastIndex  uint32
	Skipped    uint32 // frames whose index did not follow the previous one
}

// NewState returns a state with the initialization status unset
func NewState() *State {
	return &State{InitStatus: core.StatusUnset}
}

// Apply folds one event into the state. tableLen is the glyph rotation
// length used to check frame continuity.
func (s *State) Apply(ev Event, tableLen uint32) {
	switch ev.Kind {
	case EventBootClock:
		s.ClockHz = ev.Hz
	case EventBootStatus:
		s.InitStatus = ev.Status
	case EventTickerError:
		s.TickerDown = true
	case EventFrame:
		if s.Frames > 0 && tableLen > 0 && ev.Index != (s.LastIndex+1)%tableLen {
			s.Skipped++
		}
		s.Frames++
		s.LastIndex = ev.Index
	}
}

// Monitor reads debug lines from a board
type Monitor struct {
	State    *State
	TableLen uint32

	// Raw, when set, receives lines that are not boot or frame records
	Raw func(line string)
}

// New creates a monitor for a rotation of tableLen glyphs
func New(tableLen uint32) *Monitor {
	return &Monitor{State: NewState(), TableLen: tableLen}
}

// Run scans r line by line, updating the state and calling handle for each
// decoded event, until r is exhausted or ctx is done.
func (m *Monitor) Run(ctx context.Context, r io.Reader, handle func(Event)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		ev, ok := ParseLine(line)
		if !ok {
			if m.Raw != nil {
				m.Raw(line)
			}
			continue
		}

		m.State.Apply(ev, m.TableLen)
		if handle != nil {
			handle(ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading debug stream: %w", err)
	}
	return ctx.Err()
}
