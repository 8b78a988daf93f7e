// config.go - host-facing configuration (§6.1, SPEC_FULL.md B.1 ambient
// configuration surface).
package main

import "fmt"

// TVStandard records the host's TV timing choice (§4.5). The pacer does not
// read it: HBlank/VBlank timing always uses the NTSC constants in pacer.go.
type TVStandard int

const (
	TVStandardNTSC TVStandard = iota
	TVStandardPAL
)

// Config bundles everything a host needs to bring up an Emulator: the
// guest ROM image, TV timing, the optional master-CPU VBR/reset-vector
// overrides test fixtures use to boot synthetic images instead of a BIOS,
// and the parallel cell-decode switch. The audio backend is not configured
// here; it is chosen at build time by the "headless" tag.
type Config struct {
	ROM []byte

	TVStandard TVStandard

	VBROverride        *uint32
	ResetVectorOverride *uint32

	ParallelCellDecode bool
}

// Validate reports a host-triggered configuration error, as opposed to a
// guest-triggered condition the CORE degrades from at runtime (§7,
// SPEC_FULL.md B.1 error-handling split).
func (c *Config) Validate() error {
	if len(c.ROM) == 0 {
		return fmt.Errorf("config: ROM image is empty")
	}
	return nil
}
