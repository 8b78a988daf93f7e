package main

import "testing"

func newTestPacer() (*Pacer, *MemoryBus) {
	bus := NewMemoryBus(64*1024, 4096)
	mainIC := NewInterruptController()
	soundIC := NewInterruptController()
	master := NewSH2("master", bus, mainIC)
	slave := NewSH2("slave", bus, mainIC)
	vdp2 := NewVDP2(bus, mainIC)
	scsp := NewSCSP(64*1024, mainIC, soundIC, nil)
	return NewPacer(master, slave, vdp2, scsp), bus
}

// §4.5 "On crossing the active-frame threshold: set VBlank, raise
// VBlank-in": crossing cyclesPerActiveFrame (not the full cyclesPerFrame)
// raises VBlank-in; §4.6 "Ordering guarantees ... monotonic frame
// numbering" only advances FrameNumber at the later full-frame wrap.
func TestPacer_ActiveFrameThresholdRaisesVBlankIn(t *testing.T) {
	p, _ := newTestPacer()
	if p.FrameNumber() != 0 {
		t.Fatalf("FrameNumber at start = %d, want 0", p.FrameNumber())
	}

	p.advance(cyclesPerActiveFrame + 1)

	if p.FrameNumber() != 0 {
		t.Fatalf("FrameNumber after only crossing the active-frame threshold = %d, want 0", p.FrameNumber())
	}
	// Checked via the pending mask directly: this cycle count also
	// crosses the active-line threshold, raising HBlank-in (lower
	// index) alongside VBlank-in, which would win Highest()'s
	// lowest-index tie-break at the shared default interrupt level.
	if p.VDP2.IC.pending&(1<<uint(vdp2IntVBlankIn)) == 0 {
		t.Fatalf("VBlank-in not raised at the active-frame threshold")
	}
}

// Crossing the full cyclesPerFrame threshold raises VBlank-out and
// increments FrameNumber exactly once.
func TestPacer_FullFrameWrapRaisesVBlankOutAndIncrementsFrameNumber(t *testing.T) {
	p, _ := newTestPacer()

	p.advance(cyclesPerFrame + 1)

	if p.FrameNumber() != 1 {
		t.Fatalf("FrameNumber after one frame's cycles = %d, want 1", p.FrameNumber())
	}
	if p.VDP2.IC.pending&(1<<uint(vdp2IntVBlankOut)) == 0 {
		t.Fatalf("VBlank-out not raised at the full-frame wrap")
	}
}

// §4.5: crossing the active-line threshold raises HBlank-in every line,
// not once per frame.
func TestPacer_LineBoundaryRaisesHBlankEveryLine(t *testing.T) {
	p, _ := newTestPacer()

	// Driven one cycle at a time, matching how Run() feeds per-opcode
	// cycle counts to advance(); a multi-hundred-cycle single jump can
	// straddle a line's active-then-full-wrap pair within one call,
	// which (correctly, per the original) suppresses the next line's
	// raise until the following call.
	raises := 0
	for i := 0; i < 2*cyclesPerLine; i++ {
		p.advance(1)
		if _, idx, ok := p.VDP2.IC.Highest(); ok && idx == vdp2IntHBlankIn {
			raises++
			p.VDP2.IC.Clear(vdp2IntHBlankIn)
		}
	}
	if raises != 2 {
		t.Fatalf("HBlank-in raised %d times over two lines, want 2", raises)
	}
	if p.currentLine != 2 {
		t.Fatalf("currentLine after two lines = %d, want 2", p.currentLine)
	}
}

// §4.5 "increment timer-0 compare": the timer-0 counter increments on
// every HBlank-in and fires vdp2IntTimer0 exactly on a match. Checked via
// the controller's pending mask directly since HBlank-in is also pending
// (both default to interrupt level 0) and would otherwise win the
// lowest-index tie-break in Highest().
func TestPacer_Timer0FiresOnCompareMatch(t *testing.T) {
	p, _ := newTestPacer()
	p.Timer0Compare = 2

	p.advance(cyclesPerActiveLine + 1) // crosses active-line threshold, timer0Counter = 1
	if p.VDP2.IC.pending&(1<<uint(vdp2IntTimer0)) != 0 {
		t.Fatalf("timer-0 fired before reaching the compare value")
	}

	p.advance(cyclesPerLine - cyclesPerActiveLine) // crosses the full-line wrap, clears hblankCurrent
	p.advance(cyclesPerActiveLine + 1)             // crosses active-line threshold again, timer0Counter = 2
	if p.VDP2.IC.pending&(1<<uint(vdp2IntTimer0)) == 0 {
		t.Fatalf("timer-0 not raised on reaching the compare value")
	}
}

func TestPacer_RunStopsOnMasterDebugPause(t *testing.T) {
	p, bus := newTestPacer()
	p.Master.PC = 0x0600_0000
	bus.Write16(0x0600_0000, 0x0009) // NOP
	p.Master.SetDebugStatus(DebugPaused)

	p.Run(1000)
	if p.Master.CyclesElapsed != 0 {
		t.Fatalf("Run executed a step while master was paused")
	}
}
