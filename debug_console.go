// debug_console.go - optional raw-terminal interactive debugger front-end
// for the host-facing API (§6.1), grounded on the teacher's
// terminal_host.go raw-mode stdin reader: same term.MakeRaw/term.Restore
// shape, driving single-keystroke debugger commands instead of routing
// bytes into a guest MMIO device.
package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// DebugConsole drives a DebuggableCPU from raw stdin keystrokes: step,
// step-over, continue, register dump. Only
// instantiated by main.go's -debug flag — never from tests.
type DebugConsole struct {
	cpu DebuggableCPU
	fd  int
}

// NewDebugConsole wires a console onto the given core (normally
// Emulator.Master).
func NewDebugConsole(cpu DebuggableCPU) *DebugConsole {
	return &DebugConsole{cpu: cpu, fd: int(os.Stdin.Fd())}
}

// Run puts stdin into raw mode and services single-key commands until 'q'
// is pressed or stdin closes, restoring the terminal on exit regardless of
// how the loop ends.
func (d *DebugConsole) Run() error {
	oldState, err := term.MakeRaw(d.fd)
	if err != nil {
		return fmt.Errorf("debug console: failed to set raw mode: %w", err)
	}
	defer term.Restore(d.fd, oldState)

	reader := bufio.NewReader(os.Stdin)
	d.printHelp()
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return nil
		}
		switch b {
		case 'q':
			return nil
		case 's':
			d.cpu.StepInto()
			d.printStatus()
		case 'o':
			d.cpu.StepOver()
			d.printStatus()
		case 'c':
			d.cpu.SetDebugStatus(DebugRunning)
			fmt.Print("\r\ncontinuing\r\n")
		case 'r':
			d.printStatus()
		case '?':
			d.printHelp()
		}
	}
}

func (d *DebugConsole) printHelp() {
	fmt.Print("\r\nsaturncore-debug: s=step o=step-over c=continue r=registers q=quit\r\n")
}

func (d *DebugConsole) printStatus() {
	regs := d.cpu.Registers()
	fmt.Printf("\r\n[%s] PC=%08X SR=%08X depth=%d\r\n", d.cpu.Label(), d.cpu.CurrentPC(), d.cpu.StatusWord(), d.cpu.CallStackDepth())
	for i, r := range regs {
		fmt.Printf("R%-2d=%08X ", i, r)
		if i%4 == 3 {
			fmt.Print("\r\n")
		}
	}
}
