// sh2_dispatch.go - construction of the two 65536-entry opcode lookup
// tables described in §4.2.1, built the same way the teacher's Z80 core
// builds its 256-entry baseOps table (range/pattern loops over a handler
// map) but generalized to the full 16-bit opcode space and to an explicit
// (pattern, mask) table rather than ad-hoc range loops, since SH-2 opcode
// fields do not all fall on byte-aligned ranges.
package main

type sh2Handler func(*SH2)

type opcodeEntry struct {
	pattern          uint16
	mask             uint16
	handler          sh2Handler
	isSubroutineCall bool
	illegalInSlot    bool
}

var opcodesLUT [65536]sh2Handler
var illegalInDelaySlot [65536]bool
var subroutineCallLUT [65536]bool

func opcodeIsSubroutineCall(op uint16) bool {
	return subroutineCallLUT[op]
}

// opBadOpcode is the default handler for any 16-bit value no table entry
// claims (§4.2.1 "default to bad opcode handler").
func opBadOpcode(s *SH2) {
	corelog.Errorf("sh2 %s: bad opcode 0x%04X at PC 0x%08X", s.Name, s.Opcode, s.PC)
	s.Debug = DebugPaused
	s.CyclesElapsed = 1
	s.PC += 2
}

// sh2Opcodes is the static table of (pattern, mask, handler) entries from
// which the flat LUTs are built (§4.2.1). Order matters only in that the
// first matching entry for a given 16-bit value wins, so more specific
// masks (fewer wildcard bits) are listed first within each family.
var sh2Opcodes = []opcodeEntry{
	{0x0009, 0xFFFF, opNOP, false, false},
	{0x000B, 0xFFFF, opRTS, false, true},
	{0x002B, 0xFFFF, opRTE, false, true},
	{0x0018, 0xFFFF, opSETT, false, false},
	{0x0008, 0xFFFF, opCLRT, false, false},
	{0x001B, 0xFFFF, opSLEEP, false, false},
	{0x0019, 0xFFFF, opDIV0U, false, false},

	// MOV.L Rm,@Rn  0010nnnnmmmm0010
	{0x2002, 0xF00F, opMOVLRegInd, false, false},
	// MOV.W Rm,@Rn  0010nnnnmmmm0001
	{0x2001, 0xF00F, opMOVWRegInd, false, false},
	// MOV.B Rm,@Rn  0010nnnnmmmm0000
	{0x2000, 0xF00F, opMOVBRegInd, false, false},
	// MOV.L @Rm,Rn  0110nnnnmmmm0010
	{0x6002, 0xF00F, opMOVLIndReg, false, false},
	// MOV.W @Rm,Rn  0110nnnnmmmm0001
	{0x6001, 0xF00F, opMOVWIndReg, false, false},
	// MOV.B @Rm,Rn  0110nnnnmmmm0000
	{0x6000, 0xF00F, opMOVBIndReg, false, false},
	// MOV Rm,Rn     0110nnnnmmmm0011
	{0x6003, 0xF00F, opMOVRegReg, false, false},
	// MOV #imm,Rn   1110nnnniiiiiiii
	{0xE000, 0xF000, opMOVImm, false, false},
	// MOV.L @(disp,PC),Rn 1101nnnndddddddd
	{0xD000, 0xF000, opMOVLPCRel, false, false},
	// MOV.W @(disp,PC),Rn 1001nnnndddddddd
	{0x9000, 0xF000, opMOVWPCRel, false, false},

	// ADD #imm,Rn   0111nnnniiiiiiii
	{0x7000, 0xF000, opADDImm, false, false},
	// ADD Rm,Rn     0011nnnnmmmm1100
	{0x300C, 0xF00F, opADDReg, false, false},
	// ADDC Rm,Rn    0011nnnnmmmm1110
	{0x300E, 0xF00F, opADDC, false, false},
	// SUB Rm,Rn     0011nnnnmmmm1000
	{0x3008, 0xF00F, opSUBReg, false, false},
	// SUBC Rm,Rn    0011nnnnmmmm1010
	{0x300A, 0xF00F, opSUBC, false, false},
	// CMP/EQ #imm,R0 1000 1000 iiiiiiii
	{0x8800, 0xFF00, opCMPEQImm, false, false},
	// CMP/EQ Rm,Rn  0011nnnnmmmm0000
	{0x3000, 0xF00F, opCMPEQReg, false, false},
	// CMP/GT Rm,Rn  0011nnnnmmmm0111
	{0x3007, 0xF00F, opCMPGTReg, false, false},
	// CMP/GE Rm,Rn  0011nnnnmmmm0011
	{0x3003, 0xF00F, opCMPGEReg, false, false},
	// CMP/HI Rm,Rn  0011nnnnmmmm0110
	{0x3006, 0xF00F, opCMPHIReg, false, false},
	// CMP/HS Rm,Rn  0011nnnnmmmm0010
	{0x3002, 0xF00F, opCMPHSReg, false, false},
	// CMP/PZ Rn     0100nnnn00010001
	{0x4011, 0xF0FF, opCMPPZ, false, false},
	// CMP/PL Rn     0100nnnn00010101
	{0x4015, 0xF0FF, opCMPPL, false, false},

	// AND Rm,Rn     0010nnnnmmmm1001
	{0x2009, 0xF00F, opANDReg, false, false},
	// AND #imm,R0   11001001iiiiiiii
	{0xC900, 0xFF00, opANDImm, false, false},
	// OR Rm,Rn      0010nnnnmmmm1011
	{0x200B, 0xF00F, opORReg, false, false},
	// OR #imm,R0    11001011iiiiiiii
	{0xCB00, 0xFF00, opORImm, false, false},
	// XOR Rm,Rn     0010nnnnmmmm1010
	{0x200A, 0xF00F, opXORReg, false, false},
	// XOR #imm,R0   11001010iiiiiiii
	{0xCA00, 0xFF00, opXORImm, false, false},
	// NOT Rm,Rn     0110nnnnmmmm0111
	{0x6007, 0xF00F, opNOT, false, false},
	// NEG Rm,Rn     0110nnnnmmmm1011
	{0x600B, 0xF00F, opNEG, false, false},
	// TST Rm,Rn     0010nnnnmmmm1000
	{0x2008, 0xF00F, opTSTReg, false, false},
	// MOVT Rn       0000nnnn00101001
	{0x0029, 0xF0FF, opMOVT, false, false},
	// EXTU.B Rm,Rn  0110nnnnmmmm1100
	{0x600C, 0xF00F, opEXTUB, false, false},
	// EXTU.W Rm,Rn  0110nnnnmmmm1101
	{0x600D, 0xF00F, opEXTUW, false, false},
	// EXTS.B Rm,Rn  0110nnnnmmmm1110
	{0x600E, 0xF00F, opEXTSB, false, false},
	// EXTS.W Rm,Rn  0110nnnnmmmm1111
	{0x600F, 0xF00F, opEXTSW, false, false},
	// SWAP.B Rm,Rn  0110nnnnmmmm1000
	{0x6008, 0xF00F, opSWAPB, false, false},
	// SWAP.W Rm,Rn  0110nnnnmmmm1001
	{0x6009, 0xF00F, opSWAPW, false, false},
	// XTRCT Rm,Rn   0010nnnnmmmm1101
	{0x200D, 0xF00F, opXTRCT, false, false},
	// DT Rn         0100nnnn00010000
	{0x4010, 0xF0FF, opDT, false, false},

	// SHLL Rn       0100nnnn00000000
	{0x4000, 0xF0FF, opSHLL, false, false},
	// SHLR Rn       0100nnnn00000001
	{0x4001, 0xF0FF, opSHLR, false, false},
	// SHLL2 Rn      0100nnnn00001000
	{0x4008, 0xF0FF, opSHLL2, false, false},
	// SHLR2 Rn      0100nnnn00001001
	{0x4009, 0xF0FF, opSHLR2, false, false},
	// SHLL8 Rn      0100nnnn00011000
	{0x4018, 0xF0FF, opSHLL8, false, false},
	// SHLR8 Rn      0100nnnn00011001
	{0x4019, 0xF0FF, opSHLR8, false, false},
	// SHLL16 Rn     0100nnnn00101000
	{0x4028, 0xF0FF, opSHLL16, false, false},
	// SHLR16 Rn     0100nnnn00101001
	{0x4029, 0xF0FF, opSHLR16, false, false},
	// ROTL Rn       0100nnnn00000100
	{0x4004, 0xF0FF, opROTL, false, false},
	// ROTR Rn       0100nnnn00000101
	{0x4005, 0xF0FF, opROTR, false, false},

	// DIV0S Rm,Rn   0010nnnnmmmm0111
	{0x2007, 0xF00F, opDIV0S, false, false},
	// DIV1 Rm,Rn    0011nnnnmmmm0100
	{0x3004, 0xF00F, opDIV1, false, false},

	// MUL.L Rm,Rn   0000nnnnmmmm0111
	{0x0007, 0xF00F, opMULL, false, false},
	// DMULS.L Rm,Rn 0011nnnnmmmm1101
	{0x300D, 0xF00F, opDMULS, false, false},
	// DMULU.L Rm,Rn 0011nnnnmmmm0101
	{0x3005, 0xF00F, opDMULU, false, false},
	// MAC.L @Rm+,@Rn+ 0000nnnnmmmm1111
	{0x000F, 0xF00F, opMACL, false, true},
	// MAC.W @Rm+,@Rn+ 0100nnnnmmmm1111
	{0x400F, 0xF00F, opMACW, false, true},

	// TAS.B @Rn     0100nnnn00011011
	{0x401B, 0xF0FF, opTASB, false, false},

	// LDS Rm,MACH   0100mmmm00001010
	{0x400A, 0xF0FF, opLDSMACH, false, false},
	// LDS Rm,MACL   0100mmmm00011010
	{0x401A, 0xF0FF, opLDSMACL, false, false},
	// LDS Rm,PR     0100mmmm00101010
	{0x402A, 0xF0FF, opLDSPR, false, false},
	// STS MACH,Rn   0000nnnn00001010
	{0x000A, 0xF0FF, opSTSMACH, false, false},
	// STS MACL,Rn   0000nnnn00011010
	{0x001A, 0xF0FF, opSTSMACL, false, false},
	// STS PR,Rn     0000nnnn00101010
	{0x002A, 0xF0FF, opSTSPR, false, false},
	// LDS.L @Rm+,MACH 0100mmmm00000110
	{0x4006, 0xF0FF, opLDSMMACH, false, false},
	// LDS.L @Rm+,MACL 0100mmmm00010110
	{0x4016, 0xF0FF, opLDSMMACL, false, false},
	// LDS.L @Rm+,PR   0100mmmm00100110
	{0x4026, 0xF0FF, opLDSMPR, false, false},

	// BRA label    1010dddddddddddd
	{0xA000, 0xF000, opBRA, false, true},
	// BSR label    1011dddddddddddd
	{0xB000, 0xF000, opBSR, true, true},
	// BSRF Rm      0000mmmm00000011
	{0x0003, 0xF0FF, opBSRF, true, true},
	// BRAF Rm      0000mmmm00100011
	{0x0023, 0xF0FF, opBRAF, false, true},
	// JMP @Rm      0100mmmm00101011
	{0x402B, 0xF0FF, opJMP, false, true},
	// JSR @Rm      0100mmmm00001011
	{0x400B, 0xF0FF, opJSR, true, true},
	// BT label     10001001dddddddd
	{0x8900, 0xFF00, opBT, false, false},
	// BF label     10001011dddddddd
	{0x8B00, 0xFF00, opBF, false, false},
	// BT/S label   10001101dddddddd
	{0x8D00, 0xFF00, opBTS, false, true},
	// BF/S label   10001111dddddddd
	{0x8F00, 0xFF00, opBFS, false, true},

	// TRAPA #imm   11000011iiiiiiii
	{0xC300, 0xFF00, opTRAPA, false, true},
}

func init() {
	for i := range opcodesLUT {
		opcodesLUT[i] = opBadOpcode
	}
	for v := 0; v < 65536; v++ {
		op := uint16(v)
		for _, e := range sh2Opcodes {
			if op&e.mask == e.pattern {
				opcodesLUT[op] = e.handler
				illegalInDelaySlot[op] = e.illegalInSlot
				subroutineCallLUT[op] = e.isSubroutineCall
				break
			}
		}
	}
}
