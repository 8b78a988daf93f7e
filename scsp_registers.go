// scsp_registers.go - SCSP register-bank decode (§3.3, §4.4, §4.7): 32
// slot pages of 32 bytes each, common control, and the DSP region, with
// byte/word access and the documented XOR swizzle for big-endian-in-RAM
// register storage.
package main

import "fmt"

// Interrupt bit positions within the SCSP's own pending/enable masks, and
// the shared InterruptController indices each is registered under for the
// main (SH2) and sound (68K-role) CPUs. Bit numbering follows the
// hardware's ISR layout; index numbering is local bookkeeping.
const (
	scspIntBitMIDIIn       = 0
	scspIntBitMIDIOutEmpty = 2
	scspIntBitDMAEnd       = 3
	scspIntBitTimerA       = 6
	scspIntBitTimerB       = 7
	scspIntBitTimerC       = 8
	scspIntBitSample       = 9

	scspIntMIDIInMain, scspIntMIDIInSound           = 16, 0
	scspIntMIDIOutMain, scspIntMIDIOutSound         = 17, 1
	scspIntDMAEndMain, scspIntDMAEndSound           = 18, 2
	scspIntTimerAMain, scspIntTimerASound           = 19, 3
	scspIntTimerBMain, scspIntTimerBSound           = 20, 4
	scspIntTimerCMain, scspIntTimerCSound           = 21, 5
	scspIntSampleMain, scspIntSampleSound           = 22, 6
)

const (
	scspRegSlotBase   = 0x000
	scspRegSlotSize   = 0x20
	scspRegSlotCount  = 32
	scspRegCommonBase = 0x400
	scspRegCommonEnd  = 0x42F
	scspRegDSPBase    = 0x700
	scspRegDSPEnd     = 0xEE3

	// scspRegMIDIData is the common-region MIDI data register (§4.3.5): a
	// guest read drains the MIDI-in FIFO, a guest write pushes onto the
	// MIDI-out FIFO.
	scspRegMIDIData = 0x10
)

// swizzle applies the documented byte-XOR-3/word-XOR-2 big-endian
// register addressing (§3.3) to a register-bank-relative offset.
func swizzle(offset uint32, width int) uint32 {
	switch width {
	case 1:
		return offset ^ 3
	case 2:
		return offset ^ 2
	default:
		return offset
	}
}

// ReadReg implements RegisterHandler for the SCSP's register bank.
func (s *SCSP) ReadReg(addr uint32, width int) uint32 {
	off := swizzle(addr, width)
	switch {
	case off < scspRegSlotSize*scspRegSlotCount:
		return s.readSlotReg(off, width)
	case off >= scspRegCommonBase && off <= scspRegCommonEnd:
		return s.readCommonReg(off-scspRegCommonBase, width)
	case off >= scspRegDSPBase && off <= scspRegDSPEnd:
		return 0
	default:
		corelog.WarnOnce(fmt.Sprintf("scsp-unmapped-read-%03X", off), "scsp: read from unmapped register offset 0x%03X", off)
		return 0
	}
}

func (s *SCSP) WriteReg(addr uint32, width int, value uint32) {
	off := swizzle(addr, width)
	switch {
	case off < scspRegSlotSize*scspRegSlotCount:
		s.writeSlotReg(off, width, value)
	case off >= scspRegCommonBase && off <= scspRegCommonEnd:
		s.writeCommonReg(off-scspRegCommonBase, width, value)
	case off >= scspRegDSPBase && off <= scspRegDSPEnd:
		// DSP coefficient/address RAM: not modeled beyond DMA targeting.
	default:
		corelog.WarnOnce(fmt.Sprintf("scsp-unmapped-write-%03X", off), "scsp: write to unmapped register offset 0x%03X", off)
	}
}

func (s *SCSP) readSlotReg(off uint32, width int) uint32 {
	idx := off / scspRegSlotSize
	if int(idx) >= len(s.Slots) {
		return 0
	}
	sl := &s.Slots[idx]
	reg := off % scspRegSlotSize
	switch reg {
	case 0x00:
		v := uint32(0)
		if sl.KeyOnBit {
			v |= 1 << 11
		}
		if sl.Is8Bit {
			v |= 1 << 7
		}
		if sl.LoopEnabled {
			v |= 1 << 9
		}
		return v
	case 0x08:
		return sl.StartAddr
	default:
		return 0
	}
}

func (s *SCSP) writeSlotReg(off uint32, width int, value uint32) {
	idx := off / scspRegSlotSize
	if int(idx) >= len(s.Slots) {
		return
	}
	sl := &s.Slots[idx]
	reg := off % scspRegSlotSize
	switch reg {
	case 0x00: // KYONB/KYONEX/SBCTL/SSCTL/LPCTL/PCM8B
		keyOnEx := value&(1<<12) != 0
		sl.KeyOnBit = value&(1<<11) != 0
		sl.Is8Bit = value&(1<<7) != 0
		sl.LoopEnabled = value&(1<<9) != 0
		if keyOnEx {
			if sl.KeyOnBit {
				sl.KeyOn()
			} else {
				sl.KeyOff()
			}
		}
	case 0x04: // SA (start address, high bits)
		sl.StartAddr = (sl.StartAddr &^ 0xFFFF0000) | (value << 16)
	case 0x08: // SA (start address, low bits)
		sl.StartAddr = (sl.StartAddr &^ 0xFFFF) | (value & 0xFFFF)
	case 0x0C:
		sl.LoopStart = value & 0xFFFF
	case 0x0E:
		sl.LoopEnd = value & 0xFFFF
	case 0x10: // AR/D1R
		sl.AttackRate = uint8(value>>8) & 0x1F
		sl.Decay1Rate = uint8(value) & 0x1F
	case 0x12: // D2R/RR
		sl.Decay2Rate = uint8(value>>8) & 0x1F
		sl.ReleaseRate = uint8(value) & 0x1F
	case 0x14:
		sl.SustainLevel = uint8(value>>8) & 0x1F
		sl.TotalLevel = int32(value&0xFF) << (scspEnvLB - 1)
	case 0x18: // OCT/FNS -> phase increment
		sl.PhaseIncrement = phaseIncrementFromOctFNS(value)
	case 0x1A: // LFORE/LFOF/PLFOWS/PLFOS/ALFOWS/ALFOS
		s.writeLFOControl(sl, value)
	case 0x1C: // ISEL/DISDL, OFDL/EFDL
		sl.LeftLevel = uint8(value>>8) & 0x1F
		sl.LeftEnabled = sl.LeftLevel < 31
		sl.RightLevel = uint8(value) & 0x1F
		sl.RightEnabled = sl.RightLevel < 31
	}
}

// phaseIncrementFromOctFNS derives a fixed-point phase increment from the
// slot's octave/fraction register pair; OCT is a signed 4-bit octave
// shift and FNS is an 10-bit fractional multiplier on the 44.1 kHz base
// rate (§3.2 "phase accumulator").
func phaseIncrementFromOctFNS(value uint32) uint32 {
	oct := int32(int8(uint8(value>>11)<<4) >> 4) // sign-extend 4 bits
	fns := value & 0x3FF
	base := uint32(1024+fns) << scspFreqLB >> 10
	if oct >= 0 {
		return base << uint(oct)
	}
	return base >> uint(-oct)
}

func (s *SCSP) writeLFOControl(sl *Slot, value uint32) {
	sl.Lfo.Counter = 0
	sl.Lfo.FreqSens = uint8(value>>5) & 0x7
	sl.Lfo.EnvSens = uint8(value) & 0x7

	switch (value >> 8) & 0x3 {
	case 0:
		sl.Lfo.FreqWave = &lfoSawtoothFreq
	case 1:
		sl.Lfo.FreqWave = &lfoSquareFreq
	case 2:
		sl.Lfo.FreqWave = &lfoTriangleFreq
	default:
		sl.Lfo.FreqWave = &lfoNoiseFreq
	}
	switch (value >> 3) & 0x3 {
	case 0:
		sl.Lfo.EnvWave = &lfoSawtoothEnv
	case 1:
		sl.Lfo.EnvWave = &lfoSquareEnv
	case 2:
		sl.Lfo.EnvWave = &lfoTriangleEnv
	default:
		sl.Lfo.EnvWave = &lfoNoiseEnv
	}
	sl.Lfo.Increment = lfoStep[(value>>10)&0x1F]
}

func (s *SCSP) readCommonReg(off uint32, width int) uint32 {
	switch off {
	case 0x00:
		return uint32(s.MasterVolume)
	case 0x18:
		return s.pendingMain
	case scspRegMIDIData: // guest drains a byte off the MIDI-in FIFO (§4.3.5)
		b, _ := s.MidiInRead()
		return uint32(b)
	default:
		return 0
	}
}

func (s *SCSP) writeCommonReg(off uint32, width int, value uint32) {
	switch off {
	case 0x00:
		s.MasterVolume = uint8(value) & 0xF
	case 0x04:
		s.TimerA.Count = uint16(value) & 0xFF
	case 0x06:
		s.TimerB.Count = uint16(value) & 0xFF
	case 0x08:
		s.TimerC.Count = uint16(value) & 0xFF
	case 0x0A:
		s.TimerA.Prescale = uint8(value) & 0x7
	case 0x0C:
		s.TimerB.Prescale = uint8(value) & 0x7
	case 0x0E:
		s.TimerC.Prescale = uint8(value) & 0x7
	case 0x12:
		s.DMA.Src = value
	case 0x14:
		s.DMA.Dst = value & 0x7FF
	case 0x16:
		s.DMA.Len = value & 0xFFF
		s.DMA.ToSCSPRAM = value&(1<<12) != 0
		s.DMA.Execute = value&(1<<13) != 0
		if s.DMA.Execute {
			s.ExecuteDMA(s.DSPRegFile)
		}
	case 0x1C:
		s.enabledMain = value
	case 0x1E:
		s.pendingMain &^= value
	case scspRegMIDIData: // guest sends a byte out over the MIDI-out FIFO (§4.3.5)
		s.MidiOutSend(byte(value))
	default:
		corelog.WarnOnce(fmt.Sprintf("scsp-common-unimpl-%03X", off), "scsp: unimplemented common register offset 0x%03X", off)
	}
}
