package main

import "testing"

func TestEmulator_InitRejectsEmptyROM(t *testing.T) {
	_, err := Init(Config{})
	if err == nil {
		t.Fatalf("Init with an empty ROM should return an error")
	}
}

func TestEmulator_InitWiresComponentsAndPausesAtResetVector(t *testing.T) {
	reset := uint32(0x0600_1000)
	e, err := Init(Config{ROM: []byte{0x00, 0x09}, ResetVectorOverride: &reset})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer e.Close()

	if e.Master.PC != reset {
		t.Fatalf("Master.PC = 0x%08X, want reset vector override 0x%08X", e.Master.PC, reset)
	}
	if e.Master.GetDebugStatus() != DebugPaused {
		t.Fatalf("Master should start paused")
	}
	if e.Step() != 0 {
		t.Fatalf("Step() while paused should be a no-op returning 0 cycles")
	}
}

func TestEmulator_MemoryRoundTripAllWidths(t *testing.T) {
	e, err := Init(Config{ROM: []byte{0x00}})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer e.Close()

	e.WriteMemory(WorkRAMHighBase, 4, 0xCAFEBABE)
	if got := e.ReadMemory(WorkRAMHighBase, 4); got != 0xCAFEBABE {
		t.Fatalf("ReadMemory(32) = 0x%08X, want 0xCAFEBABE", got)
	}
	e.WriteMemory(WorkRAMHighBase+8, 1, 0x7F)
	if got := e.ReadMemory(WorkRAMHighBase+8, 1); got != 0x7F {
		t.Fatalf("ReadMemory(8) = 0x%02X, want 0x7F", got)
	}
}

func TestEmulator_LoadROMWritesAtFixedBootAddress(t *testing.T) {
	e, err := Init(Config{ROM: []byte{0xDE, 0xAD, 0xBE, 0xEF}})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer e.Close()

	if got := e.ReadMemory(0x0600_0000, 4); got != 0xDEADBEEF {
		t.Fatalf("ROM not loaded at 0x06000000: got 0x%08X", got)
	}
}

func TestEmulator_GetRenderPartsEmptyBeforeAnyVBlank(t *testing.T) {
	e, err := Init(Config{ROM: []byte{0x00}})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer e.Close()

	if parts := e.GetRenderParts(NBG0); len(parts) != 0 {
		t.Fatalf("GetRenderParts(NBG0) before any VBlank = %d parts, want 0", len(parts))
	}
}
