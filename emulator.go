// emulator.go - host-facing API (§6.1): a single owning struct wiring the
// memory bus, both SH2 cores, the interrupt controllers, VDP2, SCSP, and
// the pacer, replacing the original's process-wide global state (§9
// redesign note).
package main

const (
	defaultVRAMSize = 512 * 1024 // 4 Mbit-class VDP2 VRAM config
	defaultCRAMSize = 4096
	defaultSCSPRAM  = 512 * 1024
)

// Emulator owns every CORE component and is the only type host code
// constructs directly (§6.1, §9 "replace with a root struct that owns all
// components").
type Emulator struct {
	cfg Config

	Bus *MemoryBus

	MainIC  *InterruptController
	SoundIC *InterruptController

	Master *SH2
	Slave  *SH2

	VDP2 *VDP2
	SCSP *SCSP

	Pacer *Pacer

	audioBackend *OtoBackend
}

// Init constructs and wires every component per cfg, loads the ROM image
// at the fixed boot address, and leaves the master CPU paused at its reset
// vector (§6.1, §6.4); the slave CPU stays in its power-on Reset state.
func Init(cfg Config) (*Emulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bus := NewMemoryBus(defaultVRAMSize, defaultCRAMSize)

	e := &Emulator{
		cfg:     cfg,
		Bus:     bus,
		MainIC:  NewInterruptController(),
		SoundIC: NewInterruptController(),
	}

	e.Master = NewSH2("master", bus, e.MainIC)
	e.Slave = NewSH2("slave", bus, e.MainIC)

	e.VDP2 = NewVDP2(bus, e.MainIC)
	bus.AttachVDP2Regs(e.VDP2)

	// Headless vs. real audio output is selected at build time by the
	// "headless" tag (scsp_backend_headless.go vs. scsp_backend_oto.go),
	// both exposing the same OtoBackend constructor shape.
	backend, err := NewOtoBackend(scspSampleRate)
	var sink AudioBackend
	if err != nil {
		corelog.Warnf("emulator: audio backend init failed, continuing silent: %v", err)
		backend = nil
	} else {
		sink = backend
	}
	e.audioBackend = backend

	e.SCSP = NewSCSP(defaultSCSPRAM, e.MainIC, e.SoundIC, sink)
	bus.AttachSCSPRegs(e.SCSP)

	e.Pacer = NewPacer(e.Master, e.Slave, e.VDP2, e.SCSP)
	e.Pacer.parallelDecode = cfg.ParallelCellDecode

	e.loadROM()

	if cfg.VBROverride != nil {
		e.Master.VBR = *cfg.VBROverride
	}
	reset := uint32(0x0600_0000)
	if cfg.ResetVectorOverride != nil {
		reset = *cfg.ResetVectorOverride
	}
	e.Master.PC = reset
	e.Master.Debug = DebugPaused

	return e, nil
}

func (e *Emulator) loadROM() {
	for i, b := range e.cfg.ROM {
		addr := uint32(0x0600_0000 + i)
		e.Bus.Write8(addr, b)
	}
}

// Step runs the pacer for one opcode's worth of cycles (§6.1 step, §4.6).
func (e *Emulator) Step() uint64 {
	if e.Master.GetDebugStatus() == DebugPaused {
		return 0
	}
	before := e.Pacer.frameCycles
	c := e.Master.Step()
	e.Pacer.advance(int(c))
	_ = before
	return c
}

// Run resumes execution and drives the pacer for cyclesBudget cycles
// (§6.1).
func (e *Emulator) Run(cyclesBudget int) {
	e.Master.SetDebugStatus(DebugRunning)
	e.Pacer.Run(cyclesBudget)
}

func (e *Emulator) ReadMemory(addr uint32, width int) uint32 {
	switch width {
	case 1:
		return uint32(e.Bus.Read8(addr))
	case 2:
		return uint32(e.Bus.Read16(addr))
	default:
		return e.Bus.Read32(addr)
	}
}

func (e *Emulator) WriteMemory(addr uint32, width int, value uint32) {
	switch width {
	case 1:
		e.Bus.Write8(addr, uint8(value))
	case 2:
		e.Bus.Write16(addr, uint16(value))
	default:
		e.Bus.Write32(addr, value)
	}
}

func (e *Emulator) AddBreakpoint(addr uint32) { e.Master.AddBreakpoint(addr) }

func (e *Emulator) SetDebugStatus(status DebugStatus) { e.Master.SetDebugStatus(status) }

// GetRenderParts implements §6.1's get_render_parts for the host GPU
// layer to consume.
func (e *Emulator) GetRenderParts(screen ScrollScreen) []RenderPart {
	return e.VDP2.GetRenderParts(screen)
}

// SendMIDI feeds a byte from an external MIDI device into the guest's
// MIDI-in FIFO (§4.3.5); the guest drains it via the MIDI data register.
func (e *Emulator) SendMIDI(b byte) { e.SCSP.MidiInSend(b) }

// ReadMIDIOut drains one byte the guest has written to the MIDI-out FIFO,
// for a host to forward to a real MIDI device (§4.3.5).
func (e *Emulator) ReadMIDIOut() (byte, bool) { return e.SCSP.MidiOutRead() }

// Close releases the audio backend.
func (e *Emulator) Close() {
	if e.audioBackend != nil {
		e.audioBackend.Close()
	}
}
