// Package dci packs Downlink Control Information payloads for the PDCCH,
// as specified by TS 38.212 §7.3.1, and the DCI size-alignment procedure of
// TS 38.212 §7.3.1.0 that keeps DCI 0_0 and 1_0 the same length within a
// search space.
//
// Every Pack function is a pure function of its input descriptor: no I/O,
// no shared state, no allocation beyond the returned payload. A malformed
// descriptor (an out-of-range field, a payload_size inconsistent with the
// variant's field widths) is a scheduler wiring bug, not a runtime
// failure, so these functions panic rather than return an error.
package dci

import "github.com/pd0mz/go-nr-dci/bit"

// Payload is a packed DCI bitstring, MSB-first. Bit 0 is the first bit
// carried over the air.
type Payload = bit.Bits

// Config is the BWP/CORESET configuration a cell or UE's active BWP
// supplies to the size aligner. It corresponds to dci_config in TS 38.212
// §7.3.1.0.
type Config struct {
	// NRbDLBWPInitial is the resource-block count of the initial DL BWP.
	NRbDLBWPInitial int
	// NRbDLBWPActive is the resource-block count of the active DL BWP.
	NRbDLBWPActive int
	// NRbULBWPInitial is the resource-block count of the initial UL BWP.
	NRbULBWPInitial int
	// NRbULBWPActive is the resource-block count of the active UL BWP.
	NRbULBWPActive int
	// Coreset0BW is the size of CORESET#0 in resource blocks, or 0 if
	// CORESET#0 is not configured.
	Coreset0BW int
	// EnableSUL indicates the cell is configured with a Supplementary
	// Uplink, adding the 1-bit UL/SUL indicator to DCI 0_0 in USS.
	EnableSUL bool
}

// Sizes holds the four payload sizes the size-aligner equalizes within
// each search space: DCI 0_0 and DCI 1_0 have equal length in CSS, and
// again (possibly a different length) in USS.
type Sizes struct {
	// Format00Common is the DCI 0_0 (TC-RNTI, Msg3) size in the common
	// search space.
	Format00Common int
	// Format10Common is the DCI 1_0 (TC-RNTI, Msg4) size in the common
	// search space.
	Format10Common int
	// Format00UESpecific is the DCI 0_0 (C-RNTI/CS-RNTI/MCS-C-RNTI) size
	// in the UE-specific search space.
	Format00UESpecific int
	// Format10UESpecific is the DCI 1_0 (C-RNTI/CS-RNTI/MCS-C-RNTI) size
	// in the UE-specific search space.
	Format10UESpecific int
}

// dlBWPForCSS returns N_rb^DL,BWP for the common search space: CORESET#0's
// size if it is configured, otherwise the initial DL BWP size.
func (c Config) dlBWPForCSS() int {
	if c.Coreset0BW > 0 {
		return c.Coreset0BW
	}
	return c.NRbDLBWPInitial
}
