// sh2_instructions.go - SH-2 opcode handlers (§4.2.2, §4.2.6). Each handler
// advances PC by 2 unless it is a branch, and sets CyclesElapsed to the
// opcode's nominal cycle count: 1 for most, 2 for branches, 3 for memory+
// branch combos, 4 for test-and-set, 8 for trap.
package main

func regN(op uint16) uint16 { return (op >> 8) & 0xF }
func regM(op uint16) uint16 { return (op >> 4) & 0xF }

func signExtend8(v uint8) int32  { return int32(int8(v)) }
func signExtend12(v uint16) int32 {
	v &= 0x0FFF
	if v&0x0800 != 0 {
		return int32(v) - 0x1000
	}
	return int32(v)
}

func opNOP(s *SH2) {
	s.PC += 2
	s.CyclesElapsed = 1
}

func opSETT(s *SH2) { s.SR.T = true; s.PC += 2; s.CyclesElapsed = 1 }
func opCLRT(s *SH2) { s.SR.T = false; s.PC += 2; s.CyclesElapsed = 1 }

func opSLEEP(s *SH2) {
	s.halted = true
	s.PC += 2
	s.CyclesElapsed = 4
}

// --- data movement ---

func opMOVImm(s *SH2) {
	n := regN(s.Opcode)
	imm := uint32(signExtend8(uint8(s.Opcode & 0xFF)))
	s.R[n] = imm
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVRegReg(s *SH2) {
	s.R[regN(s.Opcode)] = s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVBRegInd(s *SH2) {
	s.Bus.Write8(s.R[regN(s.Opcode)], uint8(s.R[regM(s.Opcode)]))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVWRegInd(s *SH2) {
	s.Bus.Write16(s.R[regN(s.Opcode)], uint16(s.R[regM(s.Opcode)]))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVLRegInd(s *SH2) {
	s.Bus.Write32(s.R[regN(s.Opcode)], s.R[regM(s.Opcode)])
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVBIndReg(s *SH2) {
	s.R[regN(s.Opcode)] = uint32(signExtend8(s.Bus.Read8(s.R[regM(s.Opcode)])))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVWIndReg(s *SH2) {
	v := s.Bus.Read16(s.R[regM(s.Opcode)])
	s.R[regN(s.Opcode)] = uint32(int32(int16(v)))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVLIndReg(s *SH2) {
	s.R[regN(s.Opcode)] = s.Bus.Read32(s.R[regM(s.Opcode)])
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVWPCRel(s *SH2) {
	d := uint32(s.Opcode & 0xFF)
	addr := (s.PC + 4 &^ 3) + d*2
	v := s.Bus.Read16(addr)
	s.R[regN(s.Opcode)] = uint32(int32(int16(v)))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVLPCRel(s *SH2) {
	d := uint32(s.Opcode & 0xFF)
	base := (s.PC + 4) &^ 3
	addr := base + d*4
	s.R[regN(s.Opcode)] = s.Bus.Read32(addr)
	s.PC += 2
	s.CyclesElapsed = 1
}

func opMOVT(s *SH2) {
	if s.SR.T {
		s.R[regN(s.Opcode)] = 1
	} else {
		s.R[regN(s.Opcode)] = 0
	}
	s.PC += 2
	s.CyclesElapsed = 1
}

// --- arithmetic ---

func opADDImm(s *SH2) {
	n := regN(s.Opcode)
	imm := uint32(signExtend8(uint8(s.Opcode & 0xFF)))
	s.R[n] += imm
	s.PC += 2
	s.CyclesElapsed = 1
}

func opADDReg(s *SH2) {
	s.R[regN(s.Opcode)] += s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opADDC(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	var carryIn uint64
	if s.SR.T {
		carryIn = 1
	}
	sum := uint64(s.R[n]) + uint64(s.R[m]) + carryIn
	s.R[n] = uint32(sum)
	s.SR.T = sum>>32 != 0
	s.PC += 2
	s.CyclesElapsed = 1
}

func opSUBReg(s *SH2) {
	s.R[regN(s.Opcode)] -= s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opSUBC(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	var borrowIn uint64
	if s.SR.T {
		borrowIn = 1
	}
	diff := uint64(s.R[n]) - uint64(s.R[m]) - borrowIn
	s.R[n] = uint32(diff)
	s.SR.T = diff>>32 != 0
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPEQImm(s *SH2) {
	imm := uint32(signExtend8(uint8(s.Opcode & 0xFF)))
	s.SR.T = s.R[0] == imm
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPEQReg(s *SH2) {
	s.SR.T = s.R[regN(s.Opcode)] == s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPGTReg(s *SH2) {
	s.SR.T = int32(s.R[regN(s.Opcode)]) > int32(s.R[regM(s.Opcode)])
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPGEReg(s *SH2) {
	s.SR.T = int32(s.R[regN(s.Opcode)]) >= int32(s.R[regM(s.Opcode)])
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPHIReg(s *SH2) {
	s.SR.T = s.R[regN(s.Opcode)] > s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPHSReg(s *SH2) {
	s.SR.T = s.R[regN(s.Opcode)] >= s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPPZ(s *SH2) {
	s.SR.T = int32(s.R[regN(s.Opcode)]) >= 0
	s.PC += 2
	s.CyclesElapsed = 1
}

func opCMPPL(s *SH2) {
	s.SR.T = int32(s.R[regN(s.Opcode)]) > 0
	s.PC += 2
	s.CyclesElapsed = 1
}

func opDT(s *SH2) {
	n := regN(s.Opcode)
	s.R[n]--
	s.SR.T = s.R[n] == 0
	s.PC += 2
	s.CyclesElapsed = 1
}

// --- logic ---

func opANDReg(s *SH2) {
	s.R[regN(s.Opcode)] &= s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opANDImm(s *SH2) {
	s.R[0] &= uint32(s.Opcode & 0xFF)
	s.PC += 2
	s.CyclesElapsed = 1
}

func opORReg(s *SH2) {
	s.R[regN(s.Opcode)] |= s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opORImm(s *SH2) {
	s.R[0] |= uint32(s.Opcode & 0xFF)
	s.PC += 2
	s.CyclesElapsed = 1
}

func opXORReg(s *SH2) {
	s.R[regN(s.Opcode)] ^= s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opXORImm(s *SH2) {
	s.R[0] ^= uint32(s.Opcode & 0xFF)
	s.PC += 2
	s.CyclesElapsed = 1
}

func opNOT(s *SH2) {
	s.R[regN(s.Opcode)] = ^s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opNEG(s *SH2) {
	s.R[regN(s.Opcode)] = -s.R[regM(s.Opcode)]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opTSTReg(s *SH2) {
	s.SR.T = s.R[regN(s.Opcode)]&s.R[regM(s.Opcode)] == 0
	s.PC += 2
	s.CyclesElapsed = 1
}

func opEXTUB(s *SH2) {
	s.R[regN(s.Opcode)] = uint32(uint8(s.R[regM(s.Opcode)]))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opEXTUW(s *SH2) {
	s.R[regN(s.Opcode)] = uint32(uint16(s.R[regM(s.Opcode)]))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opEXTSB(s *SH2) {
	s.R[regN(s.Opcode)] = uint32(signExtend8(uint8(s.R[regM(s.Opcode)])))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opEXTSW(s *SH2) {
	s.R[regN(s.Opcode)] = uint32(int32(int16(s.R[regM(s.Opcode)])))
	s.PC += 2
	s.CyclesElapsed = 1
}

func opSWAPB(s *SH2) {
	v := s.R[regM(s.Opcode)]
	s.R[regN(s.Opcode)] = (v &^ 0xFFFF) | ((v & 0xFF00) >> 8) | ((v & 0x00FF) << 8)
	s.PC += 2
	s.CyclesElapsed = 1
}

func opSWAPW(s *SH2) {
	v := s.R[regM(s.Opcode)]
	s.R[regN(s.Opcode)] = (v << 16) | (v >> 16)
	s.PC += 2
	s.CyclesElapsed = 1
}

func opXTRCT(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	s.R[n] = (s.R[n] >> 16) | (s.R[m] << 16)
	s.PC += 2
	s.CyclesElapsed = 1
}

// --- shifts/rotates ---

func opSHLL(s *SH2) {
	n := regN(s.Opcode)
	s.SR.T = s.R[n]&0x80000000 != 0
	s.R[n] <<= 1
	s.PC += 2
	s.CyclesElapsed = 1
}

func opSHLR(s *SH2) {
	n := regN(s.Opcode)
	s.SR.T = s.R[n]&1 != 0
	s.R[n] >>= 1
	s.PC += 2
	s.CyclesElapsed = 1
}

func opSHLL2(s *SH2) { n := regN(s.Opcode); s.R[n] <<= 2; s.PC += 2; s.CyclesElapsed = 1 }
func opSHLR2(s *SH2) { n := regN(s.Opcode); s.R[n] >>= 2; s.PC += 2; s.CyclesElapsed = 1 }
func opSHLL8(s *SH2) { n := regN(s.Opcode); s.R[n] <<= 8; s.PC += 2; s.CyclesElapsed = 1 }
func opSHLR8(s *SH2) { n := regN(s.Opcode); s.R[n] >>= 8; s.PC += 2; s.CyclesElapsed = 1 }
func opSHLL16(s *SH2) { n := regN(s.Opcode); s.R[n] <<= 16; s.PC += 2; s.CyclesElapsed = 1 }
func opSHLR16(s *SH2) { n := regN(s.Opcode); s.R[n] >>= 16; s.PC += 2; s.CyclesElapsed = 1 }

func opROTL(s *SH2) {
	n := regN(s.Opcode)
	top := s.R[n]&0x80000000 != 0
	s.R[n] <<= 1
	if top {
		s.R[n] |= 1
		s.SR.T = true
	} else {
		s.SR.T = false
	}
	s.PC += 2
	s.CyclesElapsed = 1
}

func opROTR(s *SH2) {
	n := regN(s.Opcode)
	bot := s.R[n]&1 != 0
	s.R[n] >>= 1
	if bot {
		s.R[n] |= 0x80000000
		s.SR.T = true
	} else {
		s.SR.T = false
	}
	s.PC += 2
	s.CyclesElapsed = 1
}

// --- multiply / divide (§4.2.6) ---

func opMULL(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	s.MACL = s.R[n] * s.R[m]
	s.PC += 2
	s.CyclesElapsed = 1
}

func opDMULU(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	prod := uint64(s.R[n]) * uint64(s.R[m])
	s.MACH = uint32(prod >> 32)
	s.MACL = uint32(prod)
	s.PC += 2
	s.CyclesElapsed = 1
}

func opDMULS(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	prod := int64(int32(s.R[n])) * int64(int32(s.R[m]))
	s.MACH = uint32(prod >> 32)
	s.MACL = uint32(prod)
	s.PC += 2
	s.CyclesElapsed = 1
}

// opDIV0U/opDIV0S prime the Q/M/T bits that opDIV1 consumes, 32 iterations
// per division (§4.2.6 and SPEC_FULL.md B.3).
func opDIV0U(s *SH2) {
	s.SR.Q = false
	s.SR.M = false
	s.SR.T = false
	s.PC += 2
	s.CyclesElapsed = 1
}

func opDIV0S(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	s.SR.Q = s.R[n]&0x80000000 != 0
	s.SR.M = s.R[m]&0x80000000 != 0
	s.SR.T = s.SR.Q != s.SR.M
	s.PC += 2
	s.CyclesElapsed = 1
}

// opDIV1 performs one step of the 64-bit/32-bit iterative division
// algorithm; called 32 times by guest code to complete a full division.
func opDIV1(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	oldQ := s.SR.Q
	s.SR.Q = s.R[n]&0x80000000 != 0
	s.R[n] = (s.R[n] << 1) | b2u32(s.SR.T)

	var tmp uint32
	if !oldQ && !s.SR.M {
		tmp = s.R[n]
		s.R[n] -= s.R[m]
		borrow := s.R[n] > tmp
		newQ := borrow
		if s.SR.Q {
			newQ = !borrow
		} else {
			newQ = borrow
		}
		s.SR.Q = newQ
	} else if !oldQ && s.SR.M {
		tmp = s.R[n]
		s.R[n] += s.R[m]
		carry := s.R[n] < tmp
		if s.SR.Q {
			s.SR.Q = carry
		} else {
			s.SR.Q = !carry
		}
	} else if oldQ && !s.SR.M {
		tmp = s.R[n]
		s.R[n] += s.R[m]
		carry := s.R[n] < tmp
		if s.SR.Q {
			s.SR.Q = !carry
		} else {
			s.SR.Q = carry
		}
	} else {
		tmp = s.R[n]
		s.R[n] -= s.R[m]
		borrow := s.R[n] > tmp
		if s.SR.Q {
			s.SR.Q = borrow
		} else {
			s.SR.Q = !borrow
		}
	}

	s.SR.T = s.SR.Q == s.SR.M
	s.PC += 2
	s.CyclesElapsed = 1
}

func b2u32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// --- test-and-set (§4.2.6, 4-cycle opcode) ---

func opTASB(s *SH2) {
	n := regN(s.Opcode)
	v := s.Bus.Read8(s.R[n])
	s.SR.T = v == 0
	s.Bus.Write8(s.R[n], v|0x80)
	s.PC += 2
	s.CyclesElapsed = 4
}

// --- system registers ---

func opLDSMACH(s *SH2) { s.MACH = s.R[regM(s.Opcode)]; s.PC += 2; s.CyclesElapsed = 1 }
func opLDSMACL(s *SH2) { s.MACL = s.R[regM(s.Opcode)]; s.PC += 2; s.CyclesElapsed = 1 }
func opLDSPR(s *SH2)   { s.PR = s.R[regM(s.Opcode)]; s.PC += 2; s.CyclesElapsed = 1 }
func opSTSMACH(s *SH2) { s.R[regN(s.Opcode)] = s.MACH; s.PC += 2; s.CyclesElapsed = 1 }
func opSTSMACL(s *SH2) { s.R[regN(s.Opcode)] = s.MACL; s.PC += 2; s.CyclesElapsed = 1 }
func opSTSPR(s *SH2)   { s.R[regN(s.Opcode)] = s.PR; s.PC += 2; s.CyclesElapsed = 1 }

// opLDSMMACL is a deliberate port of a bug in the original implementation:
// LDS.L @Rm+,MACL writes to MACH instead of MACL (§9 Open Question). The
// emulator may depend on this bug in guest code that was only ever tested
// against the buggy reference; diverge only after testing against real
// guests (see DESIGN.md).
func opLDSMMACL(s *SH2) {
	m := regM(s.Opcode)
	s.MACH = s.Bus.Read32(s.R[m])
	s.R[m] += 4
	s.PC += 2
	s.CyclesElapsed = 1
}

func opLDSMMACH(s *SH2) {
	m := regM(s.Opcode)
	s.MACH = s.Bus.Read32(s.R[m])
	s.R[m] += 4
	s.PC += 2
	s.CyclesElapsed = 1
}

func opLDSMPR(s *SH2) {
	m := regM(s.Opcode)
	s.PR = s.Bus.Read32(s.R[m])
	s.R[m] += 4
	s.PC += 2
	s.CyclesElapsed = 1
}

// --- MAC (§4.2.6: 48-bit accumulate, saturating when S is set) ---

const (
	mac48Max = int64(1) << 47
	mac32Max = int64(1) << 31
)

func opMACL(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	a := int32(s.Bus.Read32(s.R[n]))
	s.R[n] += 4
	b := int32(s.Bus.Read32(s.R[m]))
	s.R[m] += 4

	product := int64(a) * int64(b)
	acc := (int64(int32(s.MACH))<<32 | int64(s.MACL)) + product

	if s.SR.S {
		if acc > mac48Max-1 {
			acc = mac48Max - 1
		} else if acc < -mac48Max {
			acc = -mac48Max
		}
	}
	s.MACH = uint32(acc >> 32)
	s.MACL = uint32(acc)
	s.PC += 2
	s.CyclesElapsed = 3
}

func opMACW(s *SH2) {
	n, m := regN(s.Opcode), regM(s.Opcode)
	a := int32(int16(s.Bus.Read16(s.R[n])))
	s.R[n] += 2
	b := int32(int16(s.Bus.Read16(s.R[m])))
	s.R[m] += 2

	product := int64(a) * int64(b)
	if s.SR.S {
		acc := int64(int32(s.MACL)) + product
		if acc > mac32Max-1 {
			acc = mac32Max - 1
			s.MACH |= 1
		} else if acc < -mac32Max {
			acc = -mac32Max
			s.MACH |= 1
		}
		s.MACL = uint32(acc)
	} else {
		acc := (int64(int32(s.MACH))<<32 | int64(s.MACL)) + product
		s.MACH = uint32(acc >> 32)
		s.MACL = uint32(acc)
	}
	s.PC += 2
	s.CyclesElapsed = 3
}

// --- branches (§4.2.3, §4.2.4) ---

func opBRA(s *SH2) {
	disp := signExtend12(s.Opcode)
	target := uint32(int32(s.PC) + 4 + disp*2)
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	s.PC = target
	s.CyclesElapsed += 1
}

func opBSR(s *SH2) {
	disp := signExtend12(s.Opcode)
	callerPC := s.PC
	target := uint32(int32(s.PC) + 4 + disp*2)
	returnPC := s.PC + 4
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	s.PR = returnPC
	s.pushCallFrame(callerPC, returnPC)
	s.PC = target
	s.CyclesElapsed += 1
}

func opBRAF(s *SH2) {
	m := regM(s.Opcode)
	target := s.PC + 4 + s.R[m]
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	s.PC = target
	s.CyclesElapsed += 1
}

func opBSRF(s *SH2) {
	m := regM(s.Opcode)
	callerPC := s.PC
	target := s.PC + 4 + s.R[m]
	returnPC := s.PC + 4
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	s.PR = returnPC
	s.pushCallFrame(callerPC, returnPC)
	s.PC = target
	s.CyclesElapsed += 1
}

func opJMP(s *SH2) {
	n := regN(s.Opcode)
	target := s.R[n]
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	s.PC = target
	s.CyclesElapsed += 1
}

func opJSR(s *SH2) {
	n := regN(s.Opcode)
	callerPC := s.PC
	target := s.R[n]
	returnPC := s.PC + 4
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	s.PR = returnPC
	s.pushCallFrame(callerPC, returnPC)
	s.PC = target
	s.CyclesElapsed += 1
}

func opRTS(s *SH2) {
	target := s.PR
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	s.popCallFrame()
	s.PC = target
	s.CyclesElapsed += 1
}

// opRTE restores SR+PC from the stack and clears the CPU-local interrupt
// latch. It does not call the interrupt controller (§4.2.5 — the
// controller was already cleared at acceptance time).
func opRTE(s *SH2) {
	slotPC := s.PC + 2
	s.delaySlot(slotPC)
	if s.halted {
		return
	}
	pc := s.Bus.Read32(s.R[15])
	s.R[15] += 4
	sr := s.Bus.Read32(s.R[15])
	s.R[15] += 4
	s.SR.Unpack(sr)
	s.PC = pc
	s.Interrupt.IsInterrupted = false
	if s.Interrupt.CurrentSource >= 0 && s.Interrupt.CurrentSource < 16 {
		s.Interrupt.PerLevel[s.Interrupt.CurrentSource] = false
	}
	s.CyclesElapsed += 1
}

func opBT(s *SH2) {
	if s.SR.T {
		disp := int32(signExtend8(uint8(s.Opcode & 0xFF)))
		s.PC = uint32(int32(s.PC) + 4 + disp*2)
		s.CyclesElapsed = 2
	} else {
		s.PC += 2
		s.CyclesElapsed = 1
	}
}

func opBF(s *SH2) {
	if !s.SR.T {
		disp := int32(signExtend8(uint8(s.Opcode & 0xFF)))
		s.PC = uint32(int32(s.PC) + 4 + disp*2)
		s.CyclesElapsed = 2
	} else {
		s.PC += 2
		s.CyclesElapsed = 1
	}
}

func opBTS(s *SH2) {
	taken := s.SR.T
	disp := int32(signExtend8(uint8(s.Opcode & 0xFF)))
	target := uint32(int32(s.PC) + 4 + disp*2)
	slotPC := s.PC + 2
	if taken {
		s.delaySlot(slotPC)
		if s.halted {
			return
		}
		s.PC = target
		s.CyclesElapsed += 1
	} else {
		s.PC += 2
		s.CyclesElapsed = 1
	}
}

func opBFS(s *SH2) {
	taken := !s.SR.T
	disp := int32(signExtend8(uint8(s.Opcode & 0xFF)))
	target := uint32(int32(s.PC) + 4 + disp*2)
	slotPC := s.PC + 2
	if taken {
		s.delaySlot(slotPC)
		if s.halted {
			return
		}
		s.PC = target
		s.CyclesElapsed += 1
	} else {
		s.PC += 2
		s.CyclesElapsed = 1
	}
}

// opTRAPA pushes SR+PC and jumps through the vector table, 8-cycle opcode.
func opTRAPA(s *SH2) {
	imm := uint32(s.Opcode & 0xFF)
	s.R[15] -= 4
	s.Bus.Write32(s.R[15], s.SR.Pack())
	s.R[15] -= 4
	s.Bus.Write32(s.R[15], s.PC+2)
	s.PC = s.Bus.Read32(s.VBR + imm*4)
	s.CyclesElapsed = 8
}
