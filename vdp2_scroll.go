// vdp2_scroll.go - per-VBlank scroll-screen resolution (§4.5, §4.6 step 3,
// §9 Open Question: hi-res per-VRAM-timeslot suppression is implemented).
package main

// vramCycleSlots is the 8-timeslot-per-bank VRAM cycle pattern budget a
// frame's active scroll screens compete for (§4.6: "the VRAM cycle-pattern
// ... must contain enough cycles to satisfy the reads this screen needs").
const vramCycleSlots = 8

// cyclesRequired returns how many VRAM cycle-pattern timeslots a screen's
// current color count needs per §4.6's worked examples.
func cyclesRequired(cc CharacterColorCount) int {
	switch cc {
	case Colors16:
		return 1
	case Colors256:
		return 2
	case Colors2048:
		return 4
	case Colors32K:
		return 4
	default: // Colors16M: "allows only no reduction"
		return 8
	}
}

// resolveScreens rebuilds every ScrollScreenStatus from the register file
// and applies the VRAM-cycle-pattern budget, hi-res suppression, and
// cross-screen NBG0/NBG1-vs-NBG2/NBG3 and RBG0-priority-0 rules (§4.6
// step 3). Screens are processed in hardware priority order so an earlier
// screen can exhaust the shared cycle budget or disable a later one
// (§8.3.6).
func (v *VDP2) resolveScreens() {
	order := []ScrollScreen{RBG1, RBG0, NBG0, NBG1, NBG2, NBG3}
	budget := vramCycleSlots
	rbg0DisablesNBG := v.regBGONBit(RBG0) && v.regPriority(RBG0) == 0

	for _, screen := range order {
		st := &v.Screens[screen]
		st.Enabled = v.regBGONBit(screen)
		if screen != RBG0 && screen != RBG1 && rbg0DisablesNBG {
			// "RBG0 at priority 0 disables all NBG screens" (§4.6). Computed
			// once up front so a later screen's own BGON bit can't undo it.
			st.Enabled = false
		}
		if !st.Enabled {
			continue
		}
		st.Priority = v.regPriority(screen)
		st.ColorCount = v.resolveColorCount(screen)
		st.ColorOffsetSel = v.regColorOffset(screen)

		if (screen == NBG2 || screen == NBG3) && !v.nbg01CompatibleWith(screen) {
			st.Enabled = false
			continue
		}

		need := cyclesRequired(st.ColorCount)
		if !v.isScreenDisplayed(screen, need, budget) {
			st.Enabled = false
			continue
		}
		budget -= need

		st.IsBitmap = v.regIsBitmap(screen)
		if st.IsBitmap {
			st.BitmapWidth, st.BitmapHeight = v.regBitmapDims(screen)
			st.BitmapStart = v.regBitmapStart(screen)
			st.PaletteNumber = v.regBitmapPaletteNumber(screen)
			continue
		}

		st.PlaneSize = v.regPlaneSize(screen)
		st.PageSize = v.regPageSize(screen)
		st.CharPattern = v.regCharPatternSize(screen)
		st.PlaneStart = v.regPlaneStarts(screen, st.PageSize)
	}
}

// nbg01CompatibleWith implements §4.6's "NBG2/NBG3 additionally require
// that NBG0/NBG1 are not configured with color counts >= 2048" (§8.3.6 is
// the concrete scenario: NBG0 at 2048 colors suppresses NBG2 with no error
// logged). Only color counts are checked; reduction settings are not
// modeled, so they never suppress NBG2/NBG3.
func (v *VDP2) nbg01CompatibleWith(screen ScrollScreen) bool {
	for _, nbg := range [...]ScrollScreen{NBG0, NBG1} {
		st := &v.Screens[nbg]
		if !st.Enabled {
			continue
		}
		cc := v.resolveColorCount(nbg)
		if cc == Colors2048 || cc == Colors32K || cc == Colors16M {
			return false
		}
	}
	return true
}

// isScreenDisplayed applies the hi-res per-timeslot limitation the
// original core leaves commented out (§9): above a certain resolution,
// only VRAM banks/timeslots T0-T3 are available at all (halving the
// effective budget), and a screen whose need exceeds what remains is
// suppressed without logging an error, matching §8.3.6's "no error is
// logged" requirement.
func (v *VDP2) isScreenDisplayed(screen ScrollScreen, need, budgetRemaining int) bool {
	effective := budgetRemaining
	if v.HiRes {
		effective = budgetRemaining - vramCycleSlots/2
	}
	return need <= effective
}

func (v *VDP2) resolveColorCount(screen ScrollScreen) CharacterColorCount {
	var reg uint16
	switch screen {
	case NBG0:
		reg = (v.Regs[regCHCTLA/2]) & 0x7
	case NBG1:
		reg = (v.Regs[regCHCTLA/2] >> 8) & 0x3
	case NBG2:
		reg = v.Regs[regCHCTLB/2] & 0x1
	case NBG3:
		reg = (v.Regs[regCHCTLB/2] >> 4) & 0x1
	default:
		reg = (v.Regs[regCHCTLB/2] >> 8) & 0x7
	}
	switch reg {
	case 0:
		return Colors16
	case 1:
		return Colors256
	case 2:
		return Colors2048
	case 3:
		return Colors32K
	default:
		return Colors16M
	}
}
