package main

import "testing"

func newTestBus() *MemoryBus {
	return NewMemoryBus(512*1024, 4096)
}

func TestMemoryBus_WorkRAMRoundTrip(t *testing.T) {
	b := newTestBus()
	b.Write32(WorkRAMHighBase, 0xDEADBEEF)
	if got := b.Read32(WorkRAMHighBase); got != 0xDEADBEEF {
		t.Fatalf("Read32 = 0x%08X, want 0xDEADBEEF", got)
	}
	b.Write16(WorkRAMHighBase+4, 0x1234)
	if got := b.Read16(WorkRAMHighBase + 4); got != 0x1234 {
		t.Fatalf("Read16 = 0x%04X, want 0x1234", got)
	}
	b.Write8(WorkRAMHighBase+6, 0xAB)
	if got := b.Read8(WorkRAMHighBase + 6); got != 0xAB {
		t.Fatalf("Read8 = 0x%02X, want 0xAB", got)
	}
}

func TestMemoryBus_VRAMWriteSetsPageAccessed(t *testing.T) {
	b := newTestBus()
	page := 3
	addr := uint32(VDP2VRAMBase + page<<VRAMPageShift)
	if b.PageAccessed(page) {
		t.Fatalf("page %d accessed before any write", page)
	}
	b.Write8(addr, 0x42)
	if !b.PageAccessed(page) {
		t.Fatalf("page %d not marked accessed after write", page)
	}
	b.ClearPageAccessed(page)
	if b.PageAccessed(page) {
		t.Fatalf("page %d still marked accessed after clear", page)
	}
}

func TestMemoryBus_CRAMWriteSetsAccessedFlag(t *testing.T) {
	b := newTestBus()
	if b.CRAMAccessed() {
		t.Fatalf("cram accessed before any write")
	}
	b.Write16(VDP2CRAMBase, 0x7FFF)
	if !b.CRAMAccessed() {
		t.Fatalf("cram not marked accessed after write")
	}
	b.ClearCRAMAccessed()
	if b.CRAMAccessed() {
		t.Fatalf("cram still marked accessed after clear")
	}
}

func TestMemoryBus_MisalignedAccessLogsAndDefaults(t *testing.T) {
	b := newTestBus()
	b.Write32(WorkRAMHighBase, 0xFFFFFFFF)
	if got := b.Read16(WorkRAMHighBase + 1); got != 0 {
		t.Fatalf("misaligned Read16 = 0x%04X, want 0 (§7 degrade-to-zero)", got)
	}
	// A dropped misaligned write must not corrupt the aligned word already there.
	b.Write16(WorkRAMHighBase+1, 0xAAAA)
	if got := b.Read32(WorkRAMHighBase); got != 0xFFFFFFFF {
		t.Fatalf("misaligned write corrupted memory: Read32 = 0x%08X", got)
	}
}

func TestMemoryBus_UnmappedAddressReturnsZero(t *testing.T) {
	b := newTestBus()
	if got := b.Read32(0xFFFF0000); got != 0 {
		t.Fatalf("unmapped Read32 = 0x%08X, want 0", got)
	}
}
