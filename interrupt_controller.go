// interrupt_controller.go - bitmask interrupt source tracking per CPU,
// feeding the SH2's §4.2.5 interrupt-acceptance check.
package main

// InterruptSource names one of the Saturn's SCU/on-chip interrupt causes.
// Level and vector are fixed by hardware; VDP2 and SCSP each raise a
// handful of these.
type InterruptSource struct {
	Name   string
	Level  uint8 // 0 (lowest) .. 15 (highest), matches SR's interrupt-mask field
	Vector uint8
}

// InterruptController tracks, per CPU, which sources are currently pending
// and which are enabled, and resolves the highest-priority pending+enabled
// source for delivery (§2 "Interrupt Controller").
type InterruptController struct {
	pending uint32 // bit i set => source i pending
	enabled uint32 // bit i set => source i enabled
	sources [32]InterruptSource
}

func NewInterruptController() *InterruptController {
	return &InterruptController{enabled: 0xFFFFFFFF}
}

// Register associates a source index with its level/vector. Indices are
// stable small integers assigned by the owning component (VDP2, SCSP).
func (ic *InterruptController) Register(index int, src InterruptSource) {
	ic.sources[index] = src
}

func (ic *InterruptController) Raise(index int) {
	ic.pending |= 1 << uint(index)
}

func (ic *InterruptController) Clear(index int) {
	ic.pending &^= 1 << uint(index)
}

func (ic *InterruptController) SetEnabled(index int, on bool) {
	if on {
		ic.enabled |= 1 << uint(index)
	} else {
		ic.enabled &^= 1 << uint(index)
	}
}

// Highest returns the pending+enabled source with the greatest level, and
// whether one was found. On a level tie the lowest index wins, matching
// the Saturn's fixed interrupt priority ordering.
func (ic *InterruptController) Highest() (InterruptSource, int, bool) {
	active := ic.pending & ic.enabled
	if active == 0 {
		return InterruptSource{}, -1, false
	}
	bestLevel := -1
	bestIdx := -1
	for i := 0; i < 32; i++ {
		if active&(1<<uint(i)) == 0 {
			continue
		}
		if int(ic.sources[i].Level) > bestLevel {
			bestLevel = int(ic.sources[i].Level)
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return InterruptSource{}, -1, false
	}
	return ic.sources[bestIdx], bestIdx, true
}

// Acceptable reports whether the controller's highest pending source clears
// the CPU status word's interrupt-mask level (§4.2.5: "when the SR mask
// level permits").
func (ic *InterruptController) Acceptable(srMask uint8) (InterruptSource, int, bool) {
	src, idx, ok := ic.Highest()
	if !ok || src.Level <= uint8(srMask) {
		return InterruptSource{}, -1, false
	}
	return src, idx, true
}
