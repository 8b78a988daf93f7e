// main.go - host wiring example for the CORE library (§6.1), grounded on
// the teacher's main.go argument-parsing/component-construction order
// (system bus, sound chip, video chip, then drive execution) adapted from
// the teacher's two-CPU-mode boot into a single ROM-path + optional
// -debug flag that boots an Emulator and runs it to completion.
package main

import (
	"fmt"
	"os"
)

func usage() {
	fmt.Println("Usage: saturncore [-debug] [-pal] <rom-path>")
}

func main() {
	var debug, pal bool
	var romPath string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-debug":
			debug = true
		case "-pal":
			pal = true
		default:
			romPath = arg
		}
	}

	if romPath == "" {
		usage()
		os.Exit(1)
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Printf("failed to read ROM: %v\n", err)
		os.Exit(1)
	}

	cfg := Config{ROM: rom}
	if pal {
		cfg.TVStandard = TVStandardPAL
	}

	emu, err := Init(cfg)
	if err != nil {
		fmt.Printf("failed to initialize emulator: %v\n", err)
		os.Exit(1)
	}
	defer emu.Close()

	if debug {
		console := NewDebugConsole(emu.Master)
		if err := console.Run(); err != nil {
			fmt.Printf("debug console error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	emu.Run(cyclesPerFrame * 60 * 60) // one minute of frames at 60fps
}
