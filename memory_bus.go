// memory_bus.go - address-decoded memory bus shared by the two SH2s, the
// 68000 and the VDP2/SCSP blocks.
package main

import (
	"encoding/binary"
	"sync"
)

// Region boundaries of the Saturn address map that the CORE owns directly.
// Everything else (CD block, SMPC, VDP1 framebuffer, cartridge RAM) is
// modelled as an opaque region forwarded to a registered handler.
const (
	WorkRAMLowBase  = 0x0020_0000
	WorkRAMLowSize  = 0x0010_0000
	WorkRAMHighBase = 0x0600_0000
	WorkRAMHighSize = 0x0010_0000

	VDP2VRAMBase = 0x0025_E0_0000
	VDP2CRAMBase = 0x0025_F0_0000
	VDP2RegBase  = 0x0025_F8_0000
	VDP2RegSize  = 0x0000_0200

	SCSPRAMBase = 0x0025_A0_0000
	SCSPRegBase = 0x0025_B0_0000
	SCSPRegSize = 0x0000_1000

	VRAMPageShift = 11 // page = 2KB, matches the VDP2 texture cache granularity
)

// Region identifies which owning component a decoded address belongs to.
type Region int

const (
	RegionUnmapped Region = iota
	RegionWorkRAMLow
	RegionWorkRAMHigh
	RegionVDP2VRAM
	RegionVDP2CRAM
	RegionVDP2Regs
	RegionSCSPRAM
	RegionSCSPRegs
)

// RegisterHandler receives register-window writes (§4.1 side effects).
type RegisterHandler interface {
	ReadReg(addr uint32, width int) uint32
	WriteReg(addr uint32, width int, value uint32)
}

// Bus is the Memory Bus interface described in §4.1: width-parameterized
// read/write plus the dirty-flag queries C2 samples at VBlank.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, value uint8)
	Write16(addr uint32, value uint16)
	Write32(addr uint32, value uint32)

	PageAccessed(page int) bool
	ClearPageAccessed(page int)
	CRAMAccessed() bool
	ClearCRAMAccessed()
}

// MemoryBus implements Bus. It is single-ported from the perspective of any
// one caller; mutual exclusion between the two SH2s and the 68K sound CPU
// is the caller's responsibility (§4.1), so the mutex here only protects
// the Go slices from data races when guest CPUs and the renderer run on
// different goroutines within one emulator tick.
type MemoryBus struct {
	mu sync.RWMutex

	workRAMLow  []byte
	workRAMHigh []byte

	vdp2VRAM []byte
	vdp2CRAM []byte
	scspRAM  []byte

	vdp2Regs RegisterHandler
	scspRegs RegisterHandler

	pageAccessed []bool
	cramAccessed bool

	unmappedWarned map[uint32]bool
}

// NewMemoryBus allocates work RAM and the VRAM/CRAM/SCSP-RAM pools sized per
// §3.3/§3.2. vramSize is in bytes (4 or 8 Mbit per §3.3); cramSize follows
// the configured color RAM mode.
func NewMemoryBus(vramSize, cramSize int) *MemoryBus {
	b := &MemoryBus{
		workRAMLow:     make([]byte, WorkRAMLowSize),
		workRAMHigh:    make([]byte, WorkRAMHighSize),
		vdp2VRAM:       make([]byte, vramSize),
		vdp2CRAM:       make([]byte, cramSize),
		scspRAM:        make([]byte, 512*1024),
		unmappedWarned: make(map[uint32]bool),
	}
	b.pageAccessed = make([]bool, (vramSize>>VRAMPageShift)+1)
	return b
}

// AttachVDP2Regs wires the register-decode handler C2 exposes for its
// memory-mapped window (§6.2).
func (b *MemoryBus) AttachVDP2Regs(h RegisterHandler) { b.vdp2Regs = h }

// AttachSCSPRegs wires the register-decode handler C3 exposes (§4.4/§6.2).
func (b *MemoryBus) AttachSCSPRegs(h RegisterHandler) { b.scspRegs = h }

func (b *MemoryBus) decode(addr uint32) (Region, uint32) {
	switch {
	case addr >= WorkRAMLowBase && addr < WorkRAMLowBase+WorkRAMLowSize:
		return RegionWorkRAMLow, addr - WorkRAMLowBase
	case addr >= WorkRAMHighBase && addr < WorkRAMHighBase+WorkRAMHighSize:
		return RegionWorkRAMHigh, addr - WorkRAMHighBase
	case addr >= VDP2VRAMBase && addr < VDP2VRAMBase+uint32(len(b.vdp2VRAM)):
		return RegionVDP2VRAM, addr - VDP2VRAMBase
	case addr >= VDP2CRAMBase && addr < VDP2CRAMBase+uint32(len(b.vdp2CRAM)):
		return RegionVDP2CRAM, addr - VDP2CRAMBase
	case addr >= VDP2RegBase && addr < VDP2RegBase+VDP2RegSize:
		return RegionVDP2Regs, addr - VDP2RegBase
	case addr >= SCSPRAMBase && addr < SCSPRAMBase+uint32(len(b.scspRAM)):
		return RegionSCSPRAM, addr - SCSPRAMBase
	case addr >= SCSPRegBase && addr < SCSPRegBase+SCSPRegSize:
		return RegionSCSPRegs, addr - SCSPRegBase
	default:
		return RegionUnmapped, addr
	}
}

func (b *MemoryBus) warnUnmapped(addr uint32) {
	if b.unmappedWarned[addr] {
		return
	}
	b.unmappedWarned[addr] = true
	corelog.Warnf("memory bus: unmapped address 0x%08X", addr)
}

func (b *MemoryBus) markVRAMPage(off uint32) {
	page := int(off >> VRAMPageShift)
	if page >= 0 && page < len(b.pageAccessed) {
		b.pageAccessed[page] = true
	}
}

func (b *MemoryBus) Read8(addr uint32) uint8 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	region, off := b.decode(addr)
	switch region {
	case RegionWorkRAMLow:
		return b.workRAMLow[off]
	case RegionWorkRAMHigh:
		return b.workRAMHigh[off]
	case RegionVDP2VRAM:
		return b.vdp2VRAM[off]
	case RegionVDP2CRAM:
		return b.vdp2CRAM[off]
	case RegionSCSPRAM:
		return b.scspRAM[off]
	case RegionVDP2Regs:
		if b.vdp2Regs != nil {
			return uint8(b.vdp2Regs.ReadReg(off, 8))
		}
	case RegionSCSPRegs:
		if b.scspRegs != nil {
			return uint8(b.scspRegs.ReadReg(off, 8))
		}
	default:
		b.warnUnmapped(addr)
	}
	return 0
}

func (b *MemoryBus) Write8(addr uint32, value uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	region, off := b.decode(addr)
	switch region {
	case RegionWorkRAMLow:
		b.workRAMLow[off] = value
	case RegionWorkRAMHigh:
		b.workRAMHigh[off] = value
	case RegionVDP2VRAM:
		b.vdp2VRAM[off] = value
		b.markVRAMPage(off)
	case RegionVDP2CRAM:
		b.vdp2CRAM[off] = value
		b.cramAccessed = true
	case RegionSCSPRAM:
		b.scspRAM[off] = value
	case RegionVDP2Regs:
		if b.vdp2Regs != nil {
			b.vdp2Regs.WriteReg(off, 8, uint32(value))
		}
	case RegionSCSPRegs:
		if b.scspRegs != nil {
			b.scspRegs.WriteReg(off, 8, uint32(value))
		}
	default:
		b.warnUnmapped(addr)
	}
}

func (b *MemoryBus) Read16(addr uint32) uint16 {
	if addr&1 != 0 {
		corelog.Warnf("memory bus: misaligned 16-bit read at 0x%08X", addr)
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	region, off := b.decode(addr)
	switch region {
	case RegionWorkRAMLow:
		return binary.BigEndian.Uint16(b.workRAMLow[off:])
	case RegionWorkRAMHigh:
		return binary.BigEndian.Uint16(b.workRAMHigh[off:])
	case RegionVDP2VRAM:
		return binary.BigEndian.Uint16(b.vdp2VRAM[off:])
	case RegionVDP2CRAM:
		return binary.BigEndian.Uint16(b.vdp2CRAM[off:])
	case RegionSCSPRAM:
		return binary.BigEndian.Uint16(b.scspRAM[off:])
	case RegionVDP2Regs:
		if b.vdp2Regs != nil {
			return uint16(b.vdp2Regs.ReadReg(off, 16))
		}
	case RegionSCSPRegs:
		if b.scspRegs != nil {
			return uint16(b.scspRegs.ReadReg(off, 16))
		}
	default:
		b.warnUnmapped(addr)
	}
	return 0
}

func (b *MemoryBus) Write16(addr uint32, value uint16) {
	if addr&1 != 0 {
		corelog.Warnf("memory bus: misaligned 16-bit write at 0x%08X (dropped)", addr)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	region, off := b.decode(addr)
	switch region {
	case RegionWorkRAMLow:
		binary.BigEndian.PutUint16(b.workRAMLow[off:], value)
	case RegionWorkRAMHigh:
		binary.BigEndian.PutUint16(b.workRAMHigh[off:], value)
	case RegionVDP2VRAM:
		binary.BigEndian.PutUint16(b.vdp2VRAM[off:], value)
		b.markVRAMPage(off)
	case RegionVDP2CRAM:
		binary.BigEndian.PutUint16(b.vdp2CRAM[off:], value)
		b.cramAccessed = true
	case RegionSCSPRAM:
		binary.BigEndian.PutUint16(b.scspRAM[off:], value)
	case RegionVDP2Regs:
		if b.vdp2Regs != nil {
			b.vdp2Regs.WriteReg(off, 16, uint32(value))
		}
	case RegionSCSPRegs:
		if b.scspRegs != nil {
			b.scspRegs.WriteReg(off, 16, uint32(value))
		}
	default:
		b.warnUnmapped(addr)
	}
}

// Read32/Write32 decompose into two 16-bit accesses at addr and addr+2, per
// the guest-facing memory map note in §6.2 for VDP2 and the general SH2 bus
// convention for 32-bit register windows.
func (b *MemoryBus) Read32(addr uint32) uint32 {
	if addr&3 != 0 {
		corelog.Warnf("memory bus: misaligned 32-bit read at 0x%08X", addr)
		return 0
	}
	hi := uint32(b.Read16(addr))
	lo := uint32(b.Read16(addr + 2))
	return hi<<16 | lo
}

func (b *MemoryBus) Write32(addr uint32, value uint32) {
	if addr&3 != 0 {
		corelog.Warnf("memory bus: misaligned 32-bit write at 0x%08X (dropped)", addr)
		return
	}
	b.Write16(addr, uint16(value>>16))
	b.Write16(addr+2, uint16(value))
}

func (b *MemoryBus) PageAccessed(page int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if page < 0 || page >= len(b.pageAccessed) {
		return false
	}
	return b.pageAccessed[page]
}

func (b *MemoryBus) ClearPageAccessed(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if page >= 0 && page < len(b.pageAccessed) {
		b.pageAccessed[page] = false
	}
}

func (b *MemoryBus) CRAMAccessed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cramAccessed
}

func (b *MemoryBus) ClearCRAMAccessed() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cramAccessed = false
}

// VRAM/CRAM/SCSPRAM give the rendering/audio components direct slice access
// for their own read paths (decoding cells, playing samples) without going
// through the width-dispatched Read/Write API on every byte.
func (b *MemoryBus) VRAM() []byte    { return b.vdp2VRAM }
func (b *MemoryBus) CRAM() []byte    { return b.vdp2CRAM }
func (b *MemoryBus) SCSPRAM() []byte { return b.scspRAM }
