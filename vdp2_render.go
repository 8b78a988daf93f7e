// vdp2_render.go - per-VBlank render-part emission (§4.6, §4.7, §4.8): the
// plane -> page -> pattern-name-data -> cell walk, and the top-level
// PopulateRenderData entry point the pacer calls at VBlank.
package main

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	cellTexels   = 8
	pageCells    = 64 // cells per page side
	planeMaxNBG  = 4
	planeMaxRBG  = 16
)

// PatternNameData is one decoded PND entry (§3.3 Glossary, §4.7 step 3-4).
type PatternNameData struct {
	CharacterNumber uint32
	PaletteNumber   uint16
	FlipH, FlipV    bool
}

// decodePND1Word decodes the common 10-bit-character-number 1-word PND
// format (§4.7: "1-word/2-word encodings").
func decodePND1Word(word uint16) PatternNameData {
	return PatternNameData{
		CharacterNumber: uint32(word & 0x03FF),
		PaletteNumber:   uint16(word>>12) & 0x7,
		FlipH:           word&0x0400 != 0,
		FlipV:           word&0x0800 != 0,
	}
}

// decodePND2Word decodes the 2-word PND format, which carries a full
// 15-bit character number and no flip compression (§4.7).
func decodePND2Word(lo, hi uint16) PatternNameData {
	return PatternNameData{
		CharacterNumber: uint32(lo) | uint32(hi&0x7FFF)<<16,
		PaletteNumber:   uint16(hi>>16) & 0x7F,
	}
}

func planeCountFor(screen ScrollScreen) int {
	if screen == RBG0 || screen == RBG1 {
		return planeMaxRBG
	}
	return planeMaxNBG
}

// cellByteSize returns a cell's VRAM footprint for a color count (§4.7
// step 5: "16 colors = 32 B/cell, 16M = 256 B/cell").
func cellByteSize(cc CharacterColorCount) int {
	switch cc {
	case Colors16:
		return 32
	case Colors256:
		return 64
	case Colors2048, Colors32K:
		return 128
	default:
		return 256
	}
}

// decodeCell reads one 8x8 cell from VRAM and resolves it to RGBA8 via
// color RAM, honoring the color-RAM access width independent of the
// screen's color count (§4.7 step 5).
func (v *VDP2) decodeCell(addr uint32, cc CharacterColorCount, paletteBase uint16) *DecodedTexture {
	vram := v.Bus.VRAM()
	size := cellByteSize(cc)
	if int(addr)+size > len(vram) {
		return &DecodedTexture{Width: cellTexels, Height: cellTexels, Pixels: make([]byte, cellTexels*cellTexels*4)}
	}
	mode := v.colorRAMMode()
	pixels := make([]byte, cellTexels*cellTexels*4)

	switch cc {
	case Colors16:
		for i := 0; i < 32; i++ {
			b := vram[int(addr)+i]
			hi, lo := b>>4, b&0xF
			writeTexel(pixels, i*2, v, mode, uint32(paletteBase)<<4|uint32(hi))
			writeTexel(pixels, i*2+1, v, mode, uint32(paletteBase)<<4|uint32(lo))
		}
	case Colors256:
		for i := 0; i < 64; i++ {
			writeTexel(pixels, i, v, mode, uint32(paletteBase)<<8|uint32(vram[int(addr)+i]))
		}
	default:
		for i := 0; i < 64; i++ {
			off := int(addr) + i*2
			idx := uint32(vram[off])<<8 | uint32(vram[off+1])
			writeTexel(pixels, i, v, mode, idx)
		}
	}
	return &DecodedTexture{Width: cellTexels, Height: cellTexels, Pixels: pixels}
}

func writeTexel(pixels []byte, i int, v *VDP2, mode ColorRAMMode, idx uint32) {
	r, g, b, a := v.LookupColor(mode, idx)
	pixels[i*4+0] = r
	pixels[i*4+1] = g
	pixels[i*4+2] = b
	pixels[i*4+3] = a
}

// decodeCharacterPattern emits the 1 or 4 cells of a character pattern in
// the flip-dependent read order required so a 2x2 pattern with H/V flips
// still composites correctly (§4.7 step 4).
func (v *VDP2) decodeCharacterPattern(st *ScrollScreenStatus, pnd PatternNameData, originX, originY int32, sourcePlane uint32) []RenderPart {
	cellAddr := pnd.CharacterNumber * uint32(cellByteSize(st.ColorCount))

	if st.CharPattern == CharPattern1x1 {
		key := TextureKey{Address: cellAddr, ColorCount: st.ColorCount, PaletteNum: pnd.PaletteNumber}
		if _, ok := v.Cache.Get(key); !ok {
			v.Cache.Insert(key, v.decodeCell(cellAddr, st.ColorCount, pnd.PaletteNumber))
		}
		return []RenderPart{{
			TextureKey: key, X: originX, Y: originY,
			Width: cellTexels, Height: cellTexels,
			Priority: st.Priority, ColorOffset: st.ColorOffsetSel,
			FlipH: pnd.FlipH, FlipV: pnd.FlipV, SourcePlane: sourcePlane,
		}}
	}

	// 2x2 character pattern: hardware lays the four cells out so that,
	// combined with the flip flags, the final image reads correctly once
	// the renderer mirrors each cell. The read order therefore varies
	// with FlipH/FlipV rather than always being raster order.
	order := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if pnd.FlipH {
		order[0], order[1] = order[1], order[0]
		order[2], order[3] = order[3], order[2]
	}
	if pnd.FlipV {
		order[0], order[2] = order[2], order[0]
		order[1], order[3] = order[3], order[1]
	}

	parts := make([]RenderPart, 0, 4)
	cellSize := uint32(cellByteSize(st.ColorCount))
	for i, cell := range order {
		addr := cellAddr + uint32(i)*cellSize
		key := TextureKey{Address: addr, ColorCount: st.ColorCount, PaletteNum: pnd.PaletteNumber}
		if _, ok := v.Cache.Get(key); !ok {
			v.Cache.Insert(key, v.decodeCell(addr, st.ColorCount, pnd.PaletteNumber))
		}
		parts = append(parts, RenderPart{
			TextureKey: key,
			X:          originX + int32(cell[0]*cellTexels),
			Y:          originY + int32(cell[1]*cellTexels),
			Width:      cellTexels, Height: cellTexels,
			Priority: st.Priority, ColorOffset: st.ColorOffsetSel,
			FlipH: pnd.FlipH, FlipV: pnd.FlipV, SourcePlane: sourcePlane,
		})
	}
	return parts
}

// walkPage enumerates one page's 64x64 (or 32x32) PND grid (§4.7 step 3).
func (v *VDP2) walkPage(st *ScrollScreenStatus, pageAddr uint32, originX, originY int32) []RenderPart {
	vram := v.Bus.VRAM()
	var out []RenderPart
	step := cellTexels
	if st.CharPattern == CharPattern2x2 {
		step = cellTexels * 2
	}
	cellsPerSide := st.PageSize
	for cy := 0; cy < cellsPerSide; cy++ {
		for cx := 0; cx < cellsPerSide; cx++ {
			pndOff := pageAddr + uint32((cy*cellsPerSide+cx)*2)
			if int(pndOff)+1 >= len(vram) {
				continue
			}
			word := uint16(vram[pndOff])<<8 | uint16(vram[pndOff+1])
			pnd := decodePND1Word(word)
			ox := originX + int32(cx*step)
			oy := originY + int32(cy*step)
			out = append(out, v.decodeCharacterPattern(st, pnd, ox, oy, pageAddr)...)
		}
	}
	return out
}

// walkScreen performs the full plane -> page walk for one cell-format
// scroll screen (§4.7 steps 1-3), or the single bitmap read for a
// bitmap-format screen.
func (v *VDP2) walkScreen(screen ScrollScreen, parallel bool) []RenderPart {
	st := &v.Screens[screen]
	if !st.Enabled || st.Priority == 0 {
		return nil
	}

	if st.IsBitmap {
		key := TextureKey{Address: st.BitmapStart, ColorCount: st.ColorCount, PaletteNum: st.PaletteNumber}
		if _, ok := v.Cache.Get(key); !ok {
			v.Cache.Insert(key, v.decodeBitmap(st))
		}
		return []RenderPart{{
			TextureKey: key, X: 0, Y: 0,
			Width: st.BitmapWidth, Height: st.BitmapHeight,
			Priority: st.Priority, ColorOffset: st.ColorOffsetSel,
			SourcePlane: st.BitmapStart,
		}}
	}

	pw, ph := st.PlaneSize.dims()
	planeCount := planeCountFor(screen)
	pageBytes := uint32(st.PageSize * st.PageSize * 2)
	planeBytes := pageBytes * uint32(pw*ph)

	type planeJob struct {
		idx  int
		addr uint32
	}
	var jobs []planeJob
	for i := 0; i < planeCount && i < len(st.PlaneStart); i++ {
		if st.PlaneStart[i] == 0 {
			continue
		}
		jobs = append(jobs, planeJob{idx: i, addr: st.PlaneStart[i]})
	}

	results := make([][]RenderPart, len(jobs))

	decodeOne := func(i int) {
		job := jobs[i]
		if job.addr%planeBytes != 0 {
			corelog.WarnOnce("vdp2-plane-align", "vdp2: plane start 0x%08X not a multiple of plane size", job.addr)
		}
		planeCol := job.idx % 4
		planeRow := job.idx / 4
		var parts []RenderPart
		for py := 0; py < ph; py++ {
			for px := 0; px < pw; px++ {
				pageAddr := job.addr + uint32(py*pw+px)*pageBytes
				originX := int32((planeCol*pw + px) * st.PageSize * cellTexels)
				originY := int32((planeRow*ph + py) * st.PageSize * cellTexels)
				parts = append(parts, v.walkPage(st, pageAddr, originX, originY)...)
			}
		}
		results[i] = parts
	}

	if parallel && len(jobs) > 1 {
		g, _ := errgroup.WithContext(context.Background())
		for i := range jobs {
			i := i
			g.Go(func() error {
				decodeOne(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range jobs {
			decodeOne(i)
		}
	}

	var all []RenderPart
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

func (v *VDP2) decodeBitmap(st *ScrollScreenStatus) *DecodedTexture {
	vram := v.Bus.VRAM()
	mode := v.colorRAMMode()
	pixels := make([]byte, st.BitmapWidth*st.BitmapHeight*4)
	bytesPerPixel := 1
	if st.ColorCount == Colors16M {
		bytesPerPixel = 4
	} else if st.ColorCount != Colors16 {
		bytesPerPixel = 2
	}
	for i := 0; i < st.BitmapWidth*st.BitmapHeight; i++ {
		off := int(st.BitmapStart) + i*bytesPerPixel
		if off+bytesPerPixel > len(vram) {
			break
		}
		var idx uint32
		switch bytesPerPixel {
		case 1:
			idx = uint32(vram[off])
		case 2:
			idx = uint32(vram[off])<<8 | uint32(vram[off+1])
		default:
			idx = uint32(vram[off])<<24 | uint32(vram[off+1])<<16 | uint32(vram[off+2])<<8 | uint32(vram[off+3])
		}
		writeTexel(pixels, i, v, mode, idx)
	}
	return &DecodedTexture{Width: st.BitmapWidth, Height: st.BitmapHeight, Pixels: pixels}
}

// PopulateRenderData is the §4.6 per-VBlank entry point: invalidate dirty
// textures, resolve scroll-screen status, then walk each screen in
// hardware priority order and rebuild its render-part list.
func (v *VDP2) PopulateRenderData(parallel bool) {
	anyDirty := false
	for page := 0; page < len(v.Bus.pageAccessed); page++ {
		if v.Bus.PageAccessed(page) {
			anyDirty = true
			v.Bus.ClearPageAccessed(page)
		}
	}
	if v.Bus.CRAMAccessed() {
		anyDirty = true
		v.Bus.ClearCRAMAccessed()
	}
	if anyDirty {
		v.Cache.InvalidateAll()
	}

	v.resolveScreens()

	for _, screen := range []ScrollScreen{RBG1, RBG0, NBG0, NBG1, NBG2, NBG3} {
		v.RenderParts[screen] = v.walkScreen(screen, parallel)
	}
}

// GetRenderParts implements §6.1's get_render_parts host API.
func (v *VDP2) GetRenderParts(screen ScrollScreen) []RenderPart {
	return v.RenderParts[screen]
}
