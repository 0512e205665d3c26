package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"segloop/core"
	"segloop/display/ht16k33"
	"segloop/host/monitor"
	"segloop/host/render"
	"segloop/host/serial"
	"segloop/host/sim"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device of the board's debug UART")
	baud    = flag.Int("baud", 115200, "Baud rate of the debug UART")
	simMode = flag.Bool("sim", false, "Run the firmware core on this machine instead of monitoring a board")
	speed   = flag.Uint("speed", 1, "Simulation speed multiplier (with -sim)")
	verbose = flag.Bool("verbose", false, "Print non-record debug lines and core debug output")
)

func main() {
	flag.Parse()

	if *simMode {
		runSim()
		return
	}

	if err := runMonitor(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSim boots the core against a simulated board. It never returns;
// interrupt the process to stop it.
func runSim() {
	fmt.Println("segloop simulator")
	fmt.Println("=================")

	board := sim.NewBoard(os.Stdout)
	board.Clock.Speed = uint32(*speed)
	board.Register()

	if *verbose {
		core.SetDebugWriter(func(s string) { fmt.Fprintln(os.Stderr, s) })
		core.SetDebugEnabled(true)
	}

	core.Run(core.DefaultConfig())
}

func runMonitor() error {
	fmt.Printf("Connecting to board on %s...\n", *device)

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Unblock the read when interrupted
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	m := monitor.New(uint32(len(ht16k33.Rotation())))
	if *verbose {
		m.Raw = func(line string) { fmt.Println("  |", line) }
	}

	err = m.Run(ctx, port, func(ev monitor.Event) {
		printEvent(ev, m.State)
	})
	if ctx.Err() != nil {
		fmt.Println("\nStopped.")
		return nil
	}
	return err
}

func printEvent(ev monitor.Event, s *monitor.State) {
	switch ev.Kind {
	case monitor.EventBootClock:
		fmt.Printf("Board booted, core clock %d Hz\n", ev.Hz)
	case monitor.EventBootStatus:
		fmt.Printf("Init %s: status %d\n", ev.Stage, ev.Status)
	case monitor.EventTickerError:
		fmt.Println("Board halted: tick timer failed to start")
	case monitor.EventFrame:
		var buf core.DisplayBuffer
		buf.Fill(ev.Glyph)
		fmt.Printf("Frame %d (index %d, glyph 0x%04x, skipped %d)\n", s.Frames, ev.Index, uint32(ev.Glyph), s.Skipped)
		fmt.Print(render.Frame(buf))
	}
}
