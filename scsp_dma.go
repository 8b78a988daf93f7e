// scsp_dma.go - SCSP RAM <-> DSP register-file DMA (§4.3.4).
package main

// scspDSPRegFileSize is the size of the region DMA can target; real
// hardware DMAs into the DSP's coefficient/address RAM, modeled here as a
// plain byte slice the register decoder also exposes (§4.4 "DSP" range).
const scspDSPRegFileSize = 0x800

// ExecuteDMA runs the descriptor currently latched in s.DMA: a byte-for-
// byte copy between SCSP RAM and the DSP register file in the direction
// the gate bit selects, followed by a DMA-end interrupt on both CPUs
// (§4.3.4). Two successive calls with the same descriptor produce the
// same result (§8.1 DMA idempotence), since the copy has no side effect
// beyond overwriting its destination.
func (s *SCSP) ExecuteDMA(dspRegFile []byte) {
	if !s.DMA.Execute {
		return
	}
	n := int(s.DMA.Len)
	if s.DMA.ToSCSPRAM {
		src, dst := s.DMA.Src, s.DMA.Dst
		for i := 0; i < n; i++ {
			if int(dst)+i >= len(s.RAM) || int(src)+i >= len(dspRegFile) {
				break
			}
			s.RAM[int(dst)+i] = dspRegFile[int(src)+i]
		}
	} else {
		src, dst := s.DMA.Src, s.DMA.Dst
		for i := 0; i < n; i++ {
			if int(dst)+i >= len(dspRegFile) || int(src)+i >= len(s.RAM) {
				break
			}
			dspRegFile[int(dst)+i] = s.RAM[int(src)+i]
		}
	}
	s.DMA.Execute = false

	const dmaEndBit = 3
	s.raiseMain(dmaEndBit, scspIntDMAEndMain)
	s.raiseSound(dmaEndBit, scspIntDMAEndSound)
}
