// sh2_debug.go - debugger-facing adapter over an SH2 core, grounded on the
// teacher's debug_interface.go/debug_cpu_z80.go adapters (§6.1).
package main

// DebuggableCPU is the interface the host-facing API (§6.1) and the
// terminal debugger (debug_console.go's DebugConsole) use to inspect and control a
// running core without depending on SH2 internals directly.
type DebuggableCPU interface {
	Label() string
	CurrentPC() uint32
	Registers() [16]uint32
	StatusWord() uint32
	AddBreakpoint(addr uint32)
	RemoveBreakpoint(addr uint32)
	SetDebugStatus(status DebugStatus)
	GetDebugStatus() DebugStatus
	StepOver()
	StepInto()
	CallStackDepth() int
}

func (s *SH2) Label() string { return s.Name }

func (s *SH2) CurrentPC() uint32 { return s.PC }

func (s *SH2) Registers() [16]uint32 { return s.R }

func (s *SH2) StatusWord() uint32 { return s.SR.Pack() }

// AddBreakpoint registers addr as a PC value that forces DebugPaused the
// instant Step reaches it (§6.1 add_breakpoint).
func (s *SH2) AddBreakpoint(addr uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Breakpoints[addr] = true
}

func (s *SH2) RemoveBreakpoint(addr uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Breakpoints, addr)
}

func (s *SH2) SetDebugStatus(status DebugStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Debug = status
}

func (s *SH2) GetDebugStatus() DebugStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Debug
}

// StepOver arms the step-over state machine (§4.2.2): the next Step call
// will detect whether the current opcode is a subroutine call and, if so,
// run to its return rather than stopping inside it.
func (s *SH2) StepOver() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Debug = DebugStepOver
}

// StepInto runs exactly one opcode (plus delay slot) and pauses.
func (s *SH2) StepInto() {
	s.mu.Lock()
	s.Debug = DebugRunning
	s.mu.Unlock()
	s.Step()
	s.mu.Lock()
	s.Debug = DebugPaused
	s.mu.Unlock()
}

func (s *SH2) CallStackDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.CallStack)
}
