package main

import "testing"

func newTestVDP2(vramSize, cramSize int) (*VDP2, *MemoryBus) {
	bus := NewMemoryBus(vramSize, cramSize)
	ic := NewInterruptController()
	v := NewVDP2(bus, ic)
	bus.AttachVDP2Regs(v)
	return v, bus
}

// §8.3.5: NBG0 configured as a 16-color, 1-word-PND, 1x1-character-pattern,
// 2x2-plane background produces one render part per cell in the plane, with
// the character number, flip flags, and priority faithfully carried through
// from the first cell's pattern-name-data word.
func TestVDP2_NBG0CellRender_OneRenderPartPerCell(t *testing.T) {
	v, bus := newTestVDP2(128*1024, 4096)

	v.WriteReg(regBGON, 2, 1<<uint(NBG0)) // enable NBG0
	v.WriteReg(regPRI0, 2, 3)             // priority 3
	v.WriteReg(regCHCTLA, 2, 0)           // NBG0 color count = 16
	v.WriteReg(regPNCN0, 2, 1<<15)        // NBG0 1-word PND
	v.WriteReg(regPLSZ, 2, 3)             // NBG0 2x2 plane

	v.resolveScreens()
	st := &v.Screens[NBG0]
	if !st.Enabled {
		t.Fatalf("NBG0 not enabled after resolveScreens")
	}
	if st.Priority != 3 {
		t.Fatalf("NBG0 priority = %d, want 3", st.Priority)
	}
	st.PlaneStart[0] = 0x8000 // one plane's worth of pages, rest left unset

	// First cell of the first page: character number 5, horizontal flip.
	vram := bus.VRAM()
	vram[0x8000] = 0x04
	vram[0x8001] = 0x05 // word 0x0405 -> char 5, FlipH set

	v.RenderParts[NBG0] = v.walkScreen(NBG0, false)
	parts := v.GetRenderParts(NBG0)

	pw, ph := st.PlaneSize.dims()
	wantCells := pw * ph * st.PageSize * st.PageSize
	if len(parts) != wantCells {
		t.Fatalf("len(render parts) = %d, want %d (one per cell)", len(parts), wantCells)
	}

	first := parts[0]
	if first.TextureKey.Address != 5*32 {
		t.Fatalf("first part texture address = 0x%X, want 0x%X (char 5 * 32B/cell)", first.TextureKey.Address, 5*32)
	}
	if !first.FlipH || first.FlipV {
		t.Fatalf("first part flip flags = (H=%v,V=%v), want (true,false)", first.FlipH, first.FlipV)
	}
	if first.Priority != 3 {
		t.Fatalf("first part priority = %d, want 3", first.Priority)
	}
}

// §8.3.6: NBG0 configured at 2048 colors suppresses NBG2 even though NBG2's
// own BGON bit is set.
func TestVDP2_NBG2SuppressedByNBG0ColorCount(t *testing.T) {
	v, _ := newTestVDP2(64*1024, 4096)

	v.WriteReg(regBGON, 2, (1<<uint(NBG0))|(1<<uint(NBG2)))
	v.WriteReg(regCHCTLA, 2, 2) // NBG0 color count = 2048

	v.resolveScreens()

	if !v.Screens[NBG0].Enabled {
		t.Fatalf("NBG0 should remain enabled at 2048 colors")
	}
	if v.Screens[NBG2].Enabled {
		t.Fatalf("NBG2 should be suppressed when NBG0 is at 2048 colors")
	}
}

// §4.6: RBG0 configured at priority 0 disables every NBG screen.
func TestVDP2_RBG0PriorityZeroDisablesAllNBG(t *testing.T) {
	v, _ := newTestVDP2(64*1024, 4096)

	v.WriteReg(regBGON, 2, (1<<uint(NBG0))|(1<<uint(NBG1))|(1<<uint(RBG0)))
	v.WriteReg(regPRIR, 2, 0) // RBG0 priority 0
	v.WriteReg(regPRI0, 2, 5)
	v.WriteReg(regPRI1, 2, 5)

	v.resolveScreens()

	if !v.Screens[RBG0].Enabled {
		t.Fatalf("RBG0 should remain enabled")
	}
	if v.Screens[NBG0].Enabled || v.Screens[NBG1].Enabled {
		t.Fatalf("NBG0/NBG1 should be disabled when RBG0 is at priority 0")
	}
}

func TestVDP2_ColorRAM_16BitModeRoundTrip(t *testing.T) {
	v, bus := newTestVDP2(64*1024, 4096)
	cram := bus.CRAM()
	// 5/5/5 word at index 1: R=31, G=0, B=31.
	word := uint16(31)<<10 | uint16(31)
	cram[2] = byte(word >> 8)
	cram[3] = byte(word)

	r, g, b, a := v.LookupColor(ColorRAM1024x15, 1)
	if r != 255 || g != 0 || b != 255 || a != 255 {
		t.Fatalf("LookupColor = (%d,%d,%d,%d), want (255,0,255,255)", r, g, b, a)
	}
}
