// scsp_slot.go - per-voice state and the per-sample render step (§3.2,
// §4.3.1, §4.3.2). The reference implementation special-cases all sixteen
// {FM, AM, 8/16-bit, left, right} combinations as separate tight loops;
// here the same flags gate a single renderSample path, since Go's
// inliner and branch predictor make the split purely a source-size
// tradeoff, not a behavioral one.
package main

// EnvPhase is the envelope generator's state, replacing the original's
// per-slot next-phase function pointer with an explicit transition table
// (§9 redesign note on SCSP's envelope callback).
type EnvPhase int

const (
	EnvAttack EnvPhase = iota
	EnvDecay
	EnvSustain
	EnvRelease
)

func (p EnvPhase) next() EnvPhase {
	switch p {
	case EnvAttack:
		return EnvDecay
	case EnvDecay:
		return EnvSustain
	default:
		return EnvRelease
	}
}

// Envelope mirrors §3.2's per-slot envelope sub-state.
type Envelope struct {
	Counter   int32
	Increment int32
	Threshold int32
	Phase     EnvPhase
}

// LFO mirrors §3.2's per-slot LFO sub-state.
type LFO struct {
	Counter  int32
	Increment int32
	FreqWave  *[scspLFOLen]int32
	EnvWave   *[scspLFOLen]int32
	FreqSens  uint8
	EnvSens   uint8
}

// Slot is one of the 32 independent SCSP voice generators (§3.2).
type Slot struct {
	StartAddr uint32
	LoopStart uint32
	LoopEnd   uint32
	Is8Bit    bool
	LoopEnabled bool

	PhaseCounter   uint32
	PhaseIncrement uint32

	Env Envelope
	Lfo LFO

	AttackRate  uint8
	Decay1Rate  uint8
	Decay2Rate  uint8
	ReleaseRate uint8
	SustainLevel uint8
	TotalLevel  int32

	KeyOnBit bool

	// KeyPressed is the §3.2 key-state sub-state machine's "key-pressed"
	// flag: set by KeyOn, cleared by KeyOff. KeyOnBit above is the
	// register-latched "key-held" half of the same pair (what KYONB last
	// asked for). KeyPressed gates KeyOn's re-arm so that a key-on to an
	// already-pressed slot is a no-op (§8.2 "Key-on idempotence": the
	// transition only fires release->attack).
	KeyPressed bool

	FMOn bool
	AMOn bool

	LeftEnabled  bool
	RightEnabled bool
	LeftLevel    uint8
	RightLevel   uint8

	Muted bool
}

// KeyOn starts the slot's envelope at attack (§4.3.1). A key-on to a slot
// that is already pressed is a no-op (§8.2 "Key-on idempotence": the
// transition only fires release->attack), since otherwise every KYONEX
// write would re-arm phase and envelope on an already-playing slot.
func (sl *Slot) KeyOn() {
	if sl.KeyPressed {
		return
	}
	sl.KeyPressed = true
	sl.PhaseCounter = 0
	sl.Env = Envelope{
		Counter:   scspEnvAttackStart,
		Increment: attackRate[sl.AttackRate<<1],
		Threshold: scspEnvAttackEnd,
		Phase:     EnvAttack,
	}
}

// KeyOff forces the slot directly to the release phase (§4.3.1). If the
// slot was still in attack, the attack progress is transposed into decay
// space so release ramps from the slot's actual current amplitude rather
// than jumping from wherever attack had reached.
func (sl *Slot) KeyOff() {
	sl.KeyPressed = false
	if sl.Env.Phase == EnvAttack {
		sl.Env.Counter = scspEnvDecayEnd - sl.Env.Counter
	}
	sl.Env.Increment = decayRate[sl.ReleaseRate<<1]
	sl.Env.Threshold = scspEnvDecayEnd
	sl.Env.Phase = EnvRelease
}

// Dead reports whether the slot is in release and its envelope has reached
// decay-end, so it contributes silence (§8.1 quantified invariant).
func (sl *Slot) Dead() bool {
	return sl.Env.Phase == EnvRelease && sl.Env.Counter >= scspEnvDecayEnd
}

func (sl *Slot) advancePhase(fmSample int32) bool {
	inc := sl.PhaseIncrement
	if sl.FMOn {
		mod := sl.Lfo.FreqWave[(uint32(sl.Lfo.Counter)>>scspLFOLB)&scspLFOMask]
		inc += uint32(int32(mod) << sl.Lfo.FreqSens)
	}
	sl.PhaseCounter += inc
	loopLen := sl.LoopEnd - sl.LoopStart
	if loopLen == 0 {
		loopLen = 1
	}
	if sl.PhaseCounter>>scspFreqLB >= sl.LoopEnd {
		if sl.LoopEnabled {
			sl.PhaseCounter -= loopLen << scspFreqLB
		} else {
			sl.Env.Counter = scspEnvDecayEnd
			return false
		}
	}
	return true
}

const scspFreqLB = 10

func (sl *Slot) advanceEnvelope() {
	sl.Env.Counter += sl.Env.Increment
	if sl.Env.Counter < sl.Env.Threshold {
		return
	}
	switch sl.Env.Phase {
	case EnvAttack:
		sl.Env.Phase = EnvDecay
		sl.Env.Counter = scspEnvDecayStart
		sl.Env.Increment = decayRate[sl.Decay1Rate<<1]
		sl.Env.Threshold = scspEnvDecayStart + int32(sl.SustainLevel)<<(scspEnvLB+4)
	case EnvDecay:
		sl.Env.Phase = EnvSustain
		sl.Env.Increment = decayRate[sl.Decay2Rate<<1]
		sl.Env.Threshold = scspEnvDecayEnd
	case EnvSustain:
		sl.Env.Counter = scspEnvDecayEnd
	case EnvRelease:
		sl.Env.Counter = scspEnvDecayEnd
	}
}

// advanceLFO steps the LFO counter using the LFO's own step increment
// (§4.3.2 step 6), once per sample. The doubled advance on the FM path
// applies to the phase counter, not the LFO: see advancePhaseAndEnvAndLFO
// below and §9's open question on SCSP_UPDATE_PHASE_LFO.
func (sl *Slot) advanceLFO() {
	sl.Lfo.Counter += sl.Lfo.Increment
}

// envValue returns the slot's current envelope amplitude (0 = silence),
// less its total level and optionally modulated by
// the LFO's envelope waveform (§4.3.2 step 2).
func (sl *Slot) envValue() int32 {
	base := envTable[uint32(sl.Env.Counter)>>scspEnvLB] - sl.TotalLevel
	if sl.AMOn {
		base -= sl.Lfo.EnvWave[(uint32(sl.Lfo.Counter)>>scspLFOLB)&scspLFOMask] >> sl.Lfo.EnvSens
	}
	return base
}

// renderSample advances the slot by one sample and returns its signed PCM
// contribution with the envelope applied; the per-side level scale is
// folded in by the caller (§4.3.2). fetchFn reads the raw sample at the
// current integer phase.
func (sl *Slot) renderSample(fetchFn func(phaseHi uint32) int32) int32 {
	if sl.Dead() || sl.Muted {
		return 0
	}
	raw := fetchFn(sl.PhaseCounter >> scspFreqLB)
	env := sl.envValue()
	if env <= 0 {
		sl.advancePhaseAndEnvAndLFO()
		return 0
	}

	attenuated := applyAttenuation(raw, env)

	sl.advancePhaseAndEnvAndLFO()
	return attenuated
}

// advancePhaseAndEnvAndLFO folds together the three per-sample counter
// advances (§4.3.2 steps 4-6). The original SCSP core's FM path advances
// the phase counter twice per sample (once in a macro, once in the
// surrounding if-test expansion); that quirk is reproduced here rather
// than silently corrected, since guest content tuned against the real
// chip (or against the buggy reference) may rely on the doubled rate.
func (sl *Slot) advancePhaseAndEnvAndLFO() {
	sl.advancePhase(0)
	if sl.FMOn {
		sl.advancePhase(0)
	}
	sl.advanceEnvelope()
	sl.advanceLFO()
}

// applyAttenuation maps a raw 8/16-bit signed sample and a 10-bit
// envelope amplitude (0 = silence, scspEnvMask = full volume) onto the
// signed 16-bit output range using the envelope table's linear scale.
func applyAttenuation(raw int32, env int32) int32 {
	if env < 0 {
		env = 0
	}
	if env > int32(scspEnvMask) {
		env = int32(scspEnvMask)
	}
	return (raw * env) >> scspEnvHB
}
