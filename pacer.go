// pacer.go - Frame/Line Pacer (§2, §4.5, §4.6, §5): drives C2's line/
// VBlank state machine and C3's per-sample tick from a shared cycle
// counter, grounded on the teacher's ANTIC scanline-advance/VSync-callback
// shape generalized to call into both the video and audio subsystems.
package main

// TV timing constants (§4.5): one video line is ~63.5us, NTSC has 263
// total lines with 224 active; these are approximations sufficient to
// drive HBlank/VBlank boundaries, not a pixel-exact video timing model
// (§1 Non-goals: "cycle-exact pipelined CPU modeling"). Grounded on
// Vdp2::run's two independent thresholds per axis
// (_examples/original_source/saturnin/src/video/vdp2.cpp): the active
// portion of a line/frame is crossed first (raising HBlank-in/VBlank-in),
// then the full line/frame period wraps (clearing the blank flag, or for
// the frame axis raising VBlank-out and resetting the timer-0 counter).
const (
	cyclesPerActiveLine  = 352 // cycles_per_hactive_
	cyclesPerLine        = 455 // cycles_per_line_ = cycles_per_hactive_ + cycles_per_hblank_
	activeLines          = 224
	totalLines           = 263
	cyclesPerActiveFrame = cyclesPerLine * activeLines // cycles_per_vactive_
	cyclesPerFrame       = cyclesPerLine * totalLines  // cycles_per_frame_
	samplesPerFrame      = scspSampleRate / 60
)

// Pacer owns the shared cycle counter and notifies C2/C3 at the
// documented boundaries (§4.6 "Suspension points").
type Pacer struct {
	Master *SH2
	Slave  *SH2
	VDP2   *VDP2
	SCSP   *SCSP

	frameCycles int
	lineCycles  int
	currentLine int
	frameNumber uint64

	hblankCurrent bool
	vblankCurrent bool

	// Timer0Compare is the SCU timer-0 compare value (§4.5 "increment
	// timer-0 compare"): timer0Counter increments on every HBlank-in and
	// is compared against it, firing vdp2IntTimer0 on a match. Zero
	// disables the comparison (no SCU register file models its source
	// in this core; a host sets it directly, grounded on the original's
	// getTimer0CompareValue() being SCU-register-backed).
	Timer0Compare int
	timer0Counter int

	parallelDecode bool

	LeftBuf, RightBuf []int16
}

func NewPacer(master, slave *SH2, vdp2 *VDP2, scsp *SCSP) *Pacer {
	return &Pacer{
		Master:  master,
		Slave:   slave,
		VDP2:    vdp2,
		SCSP:    scsp,
		LeftBuf: make([]int16, samplesPerFrame),
		RightBuf: make([]int16, samplesPerFrame),
	}
}

// Run drives opcode execution until cyclesBudget has been spent, yielding
// to C2/C3 at line and frame boundaries (§4.6 step 3, §5 ordering
// guarantees). It stops early if the master CPU enters DebugPaused; a
// paused slave is skipped while the master keeps running.
func (p *Pacer) Run(cyclesBudget int) {
	spent := 0
	for spent < cyclesBudget {
		if p.Master.GetDebugStatus() == DebugPaused {
			return
		}
		c := p.Master.Step()
		if p.Slave != nil && p.Slave.GetDebugStatus() != DebugPaused {
			p.Slave.Step()
		}
		spent += int(c)
		p.advance(int(c))
	}
}

// advance mirrors Vdp2::run's two-axis, two-threshold shape: the frame
// axis is checked before the line axis, and a full-frame wrap returns
// early without also walking the line axis that tick (matching the
// original's early `return` at the VBlank-out branch).
func (p *Pacer) advance(cycles int) {
	p.frameCycles += cycles

	if p.frameCycles > cyclesPerActiveFrame && !p.vblankCurrent {
		p.vblankCurrent = true
		p.onVBlankIn()
	}

	if p.frameCycles > cyclesPerFrame {
		p.frameCycles = 0
		p.vblankCurrent = false
		p.lineCycles = 0
		p.hblankCurrent = false
		p.currentLine = 0
		p.frameNumber++
		p.onVBlankOut()
		return
	}

	p.lineCycles += cycles

	if p.lineCycles > cyclesPerActiveLine && !p.hblankCurrent {
		p.hblankCurrent = true
		p.currentLine++
		p.onHBlankIn()
	}

	if p.lineCycles > cyclesPerLine {
		p.lineCycles = 0
		p.hblankCurrent = false
	}
}

// onHBlankIn implements §4.5's "On crossing the active-line threshold:
// set HBlank, raise HBlank-in, increment timer-0 compare": it fires once
// per line, every line, not once per frame.
func (p *Pacer) onHBlankIn() {
	p.VDP2.IC.Raise(vdp2IntHBlankIn)
	p.timer0Counter++
	if p.Timer0Compare > 0 && p.timer0Counter == p.Timer0Compare {
		p.VDP2.IC.Raise(vdp2IntTimer0)
	}
}

// onVBlankIn fires when the active-frame threshold is crossed (line
// activeLines), distinct from the full-frame wrap, and per §4.5/§4.6
// ("On crossing the active-frame threshold: set VBlank, raise VBlank-in
// ... run §4.6"; §4.6 "On VBlank-in:") is where the render-part rebuild
// and audio render window handoff happen.
func (p *Pacer) onVBlankIn() {
	p.VDP2.IC.Raise(vdp2IntVBlankIn)
	p.SCSP.Update(p.LeftBuf, p.RightBuf, samplesPerFrame)
	p.VDP2.PopulateRenderData(p.parallelDecode)
}

// onVBlankOut implements the full-frame wraparound: clears VBlank, raises
// VBlank-out, and resets the timer-0 counter, matching the original's
// same-branch reset of timer_0_counter_.
func (p *Pacer) onVBlankOut() {
	p.VDP2.IC.Raise(vdp2IntVBlankOut)
	p.timer0Counter = 0
}

// FrameNumber reports the pacer's monotonic frame count (§4.6 "Ordering
// guarantees ... monotonic frame numbering").
func (p *Pacer) FrameNumber() uint64 { return p.frameNumber }

const (
	vdp2IntHBlankIn  = 8
	vdp2IntVBlankIn  = 9
	vdp2IntVBlankOut = 10
	vdp2IntTimer0    = 11
)
