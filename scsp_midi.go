// scsp_midi.go - 4-byte MIDI in/out FIFOs (§4.3.5).
package main

// MidiInSend pushes a byte into the MIDI-in FIFO. Per §4.3.5, a push that
// transitions the FIFO from empty raises the MIDI-in interrupt; a push
// into an already-full FIFO sets the overflow flag without disturbing the
// bytes already queued.
func (s *SCSP) MidiInSend(b byte) {
	wasEmpty := s.MIDIIn.Push(b)
	if wasEmpty {
		s.raiseMain(scspIntBitMIDIIn, scspIntMIDIInMain)
		s.raiseSound(scspIntBitMIDIIn, scspIntMIDIInSound)
	}
}

// MidiInRead pops the oldest byte from the MIDI-in FIFO, shifting the
// remainder down, and re-raises the MIDI-in interrupt if bytes remain
// (§4.3.5).
func (s *SCSP) MidiInRead() (byte, bool) {
	b, ok := s.MIDIIn.Pop()
	if ok && !s.MIDIIn.Empty() {
		s.raiseMain(scspIntBitMIDIIn, scspIntMIDIInMain)
		s.raiseSound(scspIntBitMIDIIn, scspIntMIDIInSound)
	}
	return b, ok
}

// MidiOutSend pushes a byte into the MIDI-out FIFO for the host to drain.
func (s *SCSP) MidiOutSend(b byte) {
	s.MIDIOut.Push(b)
}

// MidiOutRead pops a byte from the MIDI-out FIFO; completely draining it
// raises the MIDI-out-empty interrupt (§4.3.5).
func (s *SCSP) MidiOutRead() (byte, bool) {
	b, ok := s.MIDIOut.Pop()
	if ok && s.MIDIOut.Empty() {
		s.raiseMain(scspIntBitMIDIOutEmpty, scspIntMIDIOutMain)
		s.raiseSound(scspIntBitMIDIOutEmpty, scspIntMIDIOutSound)
	}
	return b, ok
}
