package main

import "testing"

func newTestSCSP() (*SCSP, *InterruptController, *InterruptController) {
	mainIC := NewInterruptController()
	soundIC := NewInterruptController()
	s := NewSCSP(512*1024, mainIC, soundIC, nil)
	return s, mainIC, soundIC
}

// §8.3.3: slot 0 with AR=0x1F, D1R=0x1F, SL=0, KYONB=1+KYONEX=1. After
// rendering 1024 samples, the envelope has reached sustain.
func TestSCSP_EnvelopeReachesSustainAfter1024Samples(t *testing.T) {
	s, _, _ := newTestSCSP()
	sl := &s.Slots[0]
	sl.AttackRate = 0x1F
	sl.Decay1Rate = 0x1F
	sl.Decay2Rate = 0x1F
	sl.SustainLevel = 0

	// KYONB=1, KYONEX=1: bits 11 and 12 of slot control word 0x00.
	s.writeSlotReg(0x00, 2, (1<<11)|(1<<12))
	if sl.Env.Phase != EnvAttack {
		t.Fatalf("Phase after key-on = %v, want EnvAttack", sl.Env.Phase)
	}

	for i := 0; i < 1024; i++ {
		sl.advanceEnvelope()
	}
	if sl.Env.Phase != EnvSustain {
		t.Fatalf("Phase after 1024 samples = %v, want EnvSustain", sl.Env.Phase)
	}
}

// §8.3.4: TACTL prescale 0 (1:1), TIMA=0xFE. After update_timer(512), timer
// A's interrupt fires exactly once on both CPUs and the count wraps.
func TestSCSP_TimerA_FiresOnceAndWraps(t *testing.T) {
	s, mainIC, soundIC := newTestSCSP()
	s.writeCommonReg(0x0A, 1, 0)    // TACTL: prescale 1:1
	s.writeCommonReg(0x04, 2, 0xFE) // TIMA

	s.UpdateTimers(512)

	if _, _, ok := mainIC.Highest(); !ok {
		t.Fatalf("timer A interrupt not raised on main IC")
	}
	if _, _, ok := soundIC.Highest(); !ok {
		t.Fatalf("timer A interrupt not raised on sound IC")
	}
	if s.pendingMain&(1<<scspIntBitTimerA) == 0 {
		t.Fatalf("pendingMain timer A bit not set")
	}
	if s.TimerA.Count > 0xFF {
		t.Fatalf("TimerA.Count = %d, did not wrap to 8 bits", s.TimerA.Count)
	}

	mainIC.Clear(scspIntTimerAMain)
	soundIC.Clear(scspIntTimerASound)
	s.pendingMain &^= 1 << scspIntBitTimerA
	s.pendingSound &^= 1 << scspIntBitTimerA

	// A single further UpdateTimers(1) should not re-raise until the
	// wrapped count climbs back past the limit.
	s.UpdateTimers(1)
	if mainIC.pending&(1<<uint(scspIntTimerAMain)) != 0 {
		t.Fatalf("timer A re-fired after a single sample post-wrap")
	}
}

func TestSCSP_MIDIIn_PushPopAndOverflow(t *testing.T) {
	s, mainIC, _ := newTestSCSP()
	s.MidiInSend(0x90)
	if _, _, ok := mainIC.Highest(); !ok {
		t.Fatalf("MIDI-in interrupt not raised on first push into empty FIFO")
	}
	mainIC.Clear(scspIntMIDIInMain)

	s.MidiInSend(0x40)
	s.MidiInSend(0x7F)
	s.MidiInSend(0x01) // FIFO now full (4 bytes)
	if s.MIDIIn.Overflow {
		t.Fatalf("FIFO reported overflow before it was actually full")
	}
	s.MidiInSend(0xFF) // overflow: FIFO already full
	if !s.MIDIIn.Overflow {
		t.Fatalf("overflow flag not set on push into full FIFO")
	}

	b, ok := s.MidiInRead()
	if !ok || b != 0x90 {
		t.Fatalf("MidiInRead = (0x%02X, %v), want (0x90, true)", b, ok)
	}
}

// §8.2 "Key-on idempotence": a key-on to an already-pressed slot is a
// no-op and must not re-arm phase/envelope on an already-playing slot.
func TestSCSP_KeyOnIdempotentWhileAlreadyPressed(t *testing.T) {
	s, _, _ := newTestSCSP()
	sl := &s.Slots[0]
	sl.AttackRate = 0x1F
	sl.Decay1Rate = 0x1F

	s.writeSlotReg(0x00, 2, (1<<11)|(1<<12)) // KYONB=1, KYONEX=1: first key-on
	if !sl.KeyPressed {
		t.Fatalf("KeyPressed not set after key-on")
	}

	for i := 0; i < 100; i++ {
		sl.advanceEnvelope()
	}
	advancedCounter := sl.Env.Counter
	advancedPhase := sl.Env.Phase

	s.writeSlotReg(0x00, 2, (1<<11)|(1<<12)) // a second KYONEX with KYONB still 1
	if sl.Env.Counter != advancedCounter || sl.Env.Phase != advancedPhase {
		t.Fatalf("second key-on while pressed re-armed envelope: counter %d->%d, phase %v->%v",
			advancedCounter, sl.Env.Counter, advancedPhase, sl.Env.Phase)
	}

	s.writeSlotReg(0x00, 2, 1<<12) // KYONB=0, KYONEX=1: key-off
	if sl.KeyPressed {
		t.Fatalf("KeyPressed still set after key-off")
	}

	s.writeSlotReg(0x00, 2, (1<<11)|(1<<12)) // released -> pressed: must actually fire
	if sl.Env.Phase != EnvAttack || sl.Env.Counter != scspEnvAttackStart {
		t.Fatalf("key-on after key-off did not re-arm: phase=%v counter=%d", sl.Env.Phase, sl.Env.Counter)
	}
}

// §4.3.1: a key-off issued while still in attack transposes the attack
// progress into decay space rather than jumping straight to decay-end.
func TestSCSP_KeyOffDuringAttackTransposesEnvelopeCounter(t *testing.T) {
	s, _, _ := newTestSCSP()
	sl := &s.Slots[0]
	sl.AttackRate = 2 // slow attack so it's still mid-attack after a few steps
	sl.ReleaseRate = 0x1F

	s.writeSlotReg(0x00, 2, (1<<11)|(1<<12)) // key-on
	for i := 0; i < 5; i++ {
		sl.advanceEnvelope()
	}
	if sl.Env.Phase != EnvAttack {
		t.Fatalf("precondition failed: slot left attack phase too early")
	}
	midAttack := sl.Env.Counter

	s.writeSlotReg(0x00, 2, 1<<12) // key-off (KYONB=0, KYONEX=1)

	if sl.Env.Phase != EnvRelease {
		t.Fatalf("Phase after key-off = %v, want EnvRelease", sl.Env.Phase)
	}
	want := int32(scspEnvDecayEnd) - midAttack
	if sl.Env.Counter != want {
		t.Fatalf("Env.Counter after key-off during attack = %d, want %d (decayEnd - %d)", sl.Env.Counter, want, midAttack)
	}
}

// §4.3.5: the MIDI data register wires the guest side of the FIFOs
// (writes push onto MIDI-out, reads drain MIDI-in), not just the
// host-facing MidiInSend/MidiOutRead methods.
func TestSCSP_MIDIDataRegisterWiresGuestFIFOs(t *testing.T) {
	s, _, _ := newTestSCSP()

	s.writeCommonReg(scspRegMIDIData, 1, 0x45)
	b, ok := s.MidiOutRead()
	if !ok || b != 0x45 {
		t.Fatalf("byte written to MIDI data register did not reach MIDI-out FIFO: (0x%02X, %v)", b, ok)
	}

	s.MidiInSend(0x7F)
	got := s.readCommonReg(scspRegMIDIData, 1)
	if got != 0x7F {
		t.Fatalf("MIDI data register read = 0x%02X, want 0x7F", got)
	}
}

// §8.1 DMA idempotence: two successive ExecuteDMA calls with the same
// descriptor produce the same result.
func TestSCSP_DMA_IdempotentAndWired(t *testing.T) {
	s, mainIC, soundIC := newTestSCSP()
	s.RAM[0] = 0xAA
	s.RAM[1] = 0xBB

	s.writeCommonReg(0x12, 4, 0)      // DMA.Src = 0
	s.writeCommonReg(0x14, 4, 0x10)   // DMA.Dst = 0x10
	s.writeCommonReg(0x16, 4, 2|(1<<13)) // len=2, ToSCSPRAM=false, Execute=1

	if s.DSPRegFile[0x10] != 0xAA || s.DSPRegFile[0x11] != 0xBB {
		t.Fatalf("DMA via register write did not copy RAM -> DSPRegFile")
	}
	if _, _, ok := mainIC.Highest(); !ok {
		t.Fatalf("DMA-end interrupt not raised on main IC")
	}
	if _, _, ok := soundIC.Highest(); !ok {
		t.Fatalf("DMA-end interrupt not raised on sound IC")
	}

	first := append([]byte(nil), s.DSPRegFile[0x10:0x12]...)
	s.DMA.Execute = true
	s.ExecuteDMA(s.DSPRegFile)
	second := s.DSPRegFile[0x10:0x12]
	if first[0] != second[0] || first[1] != second[1] {
		t.Fatalf("repeated DMA execute changed result: %v vs %v", first, second)
	}
}
