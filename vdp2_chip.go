// vdp2_chip.go - VDP2 top-level state (§3.3): register file, resolved
// per-screen status, render-part lists, cache-dirty tracking.
package main

// ScrollScreen identifies one of the six compositable layers (§3.3
// Glossary).
type ScrollScreen int

const (
	NBG0 ScrollScreen = iota
	NBG1
	NBG2
	NBG3
	RBG0
	RBG1
	scrollScreenCount
)

// PlaneSize enumerates the plane dimensions in pages (§3.3).
type PlaneSize int

const (
	Plane1x1 PlaneSize = iota
	Plane2x1
	Plane2x2
)

func (p PlaneSize) dims() (w, h int) {
	switch p {
	case Plane1x1:
		return 1, 1
	case Plane2x1:
		return 2, 1
	default:
		return 2, 2
	}
}

// CharacterColorCount enumerates per-cell palette depths (§3.3).
type CharacterColorCount int

const (
	Colors16 CharacterColorCount = iota
	Colors256
	Colors2048
	Colors32K
	Colors16M
)

// CharPatternSize is 1x1 or 2x2 cells per character pattern (§3.3, §4.7).
type CharPatternSize int

const (
	CharPattern1x1 CharPatternSize = iota
	CharPattern2x2
)

// ColorOffset is the signed R/G/B triple applied at render-part emission
// (§3.3, §4.8), stored both as the raw sign-extended register value and
// the normalized float the renderer consumes.
type ColorOffset struct {
	R, G, B int32
}

func (c ColorOffset) Normalized() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// ScrollScreenStatus is the fully resolved per-layer state (§3.3).
type ScrollScreenStatus struct {
	Enabled      bool
	Transparent  bool
	Priority     uint8
	PlaneSize    PlaneSize
	PageSize     int // cells per page side (64 or 32)
	ColorCount   CharacterColorCount
	CharPattern  CharPatternSize
	IsBitmap     bool
	BitmapWidth  int
	BitmapHeight int
	BitmapStart  uint32

	ScrollX, ScrollY         int32 // integer part, pixels
	ScrollFracX, ScrollFracY uint32

	ColorOffsetSel ColorOffset

	PlaneStart [16]uint32 // up to 16 planes (RBG); NBG uses [0:4]

	PaletteNumber uint16
}

// RenderPart is one emitted drawable primitive (§4.8).
type RenderPart struct {
	TextureKey  TextureKey
	X, Y        int32
	Width       int
	Height      int
	Priority    uint8
	ColorOffset ColorOffset
	FlipH       bool
	FlipV       bool
	SourcePlane uint32
}

// VDP2 implements the tile/bitmap background compositor (§3.3, §4.5-§4.9).
type VDP2 struct {
	Bus *MemoryBus

	Regs [0x120]uint16 // register window, §6.2 16-bit-addressed

	Screens [scrollScreenCount]ScrollScreenStatus

	RenderParts [scrollScreenCount][]RenderPart

	Cache *TextureCache

	HiRes bool // TVMD resolution selects the per-timeslot suppression rules

	IC *InterruptController
}

func NewVDP2(bus *MemoryBus, ic *InterruptController) *VDP2 {
	v := &VDP2{
		Bus:   bus,
		Cache: NewTextureCache(),
		IC:    ic,
	}
	return v
}
