package dci

import "fmt"

// Fixed (non-frequency-resource) bit counts of the two variant pairs the
// size aligner equalizes.
//
// cssFixedBits00 is DCI 0_0 scrambled by TC-RNTI (§4.3.2): format id,
// time resource, frequency-hopping flag, MCS, RV, TPC - no NDI, no HARQ
// process number, no UL/SUL indicator.
const cssFixedBits00 = dciFormatIDBits + timeResourceBits + frequencyHoppingFlagBits + mcsBits + redundancyVersionBits + tpcCommandBits

// cssFixedBits10 is DCI 1_0 scrambled by TC-RNTI, i.e. Msg4 (§4.3.7): the
// C-RNTI field set (§4.3.3) minus the downlink assignment index.
const cssFixedBits10 = dciFormatIDBits + timeResourceBits + vrbToPRBMappingBits + mcsBits + newDataIndicatorBits + redundancyVersionBits + harqProcessNumberBits + tpcCommandBits + pucchResourceIndicatorBits + pdschHARQFbTimingBits

// ussFixedBits00 is DCI 0_0 scrambled by C-RNTI/CS-RNTI/MCS-C-RNTI
// (§4.3.1), excluding the optional UL/SUL indicator.
const ussFixedBits00 = dciFormatIDBits + timeResourceBits + frequencyHoppingFlagBits + mcsBits + newDataIndicatorBits + redundancyVersionBits + harqProcessNumberBits + tpcCommandBits

// ussFixedBits10 is DCI 1_0 scrambled by C-RNTI/CS-RNTI/MCS-C-RNTI
// (§4.3.3).
const ussFixedBits10 = dciFormatIDBits + timeResourceBits + vrbToPRBMappingBits + mcsBits + newDataIndicatorBits + redundancyVersionBits + harqProcessNumberBits + dlAssignmentIndexBits + tpcCommandBits + pucchResourceIndicatorBits + pdschHARQFbTimingBits

// ComputeSizes implements the DCI size-alignment procedure of TS 38.212
// §7.3.1.0 for a given BWP/CORESET configuration.
//
// CSS alignment pads the shorter of the Msg3 (DCI 0_0/TC-RNTI) and Msg4
// (DCI 1_0/TC-RNTI) raw sizes up to the longer one, by growing that
// variant's frequency-resource field. DCI 1_0 scrambled by P-RNTI,
// SI-RNTI or RA-RNTI is sized independently by its own fixed field
// layout (§4.3.4-4.3.6) and is not part of this alignment: those formats
// have no DCI 0_0 counterpart monitored alongside them.
//
// USS alignment never resizes DCI 1_0: TS 38.212 §7.3.1.0 fixes DCI 1_0 in
// USS as the target and pads-or-truncates DCI 0_0's frequency-resource
// field to match it. That field can be truncated narrower than
// FrequencyResourceBits(NRbULBWPActive) would otherwise allow - packers
// validate frequency_resource against the truncated width actually
// available, so a value that fits the BWP but not the truncated field is
// rejected before packing starts.
func ComputeSizes(cfg Config) Sizes {
	if cfg.NRbULBWPInitial < 1 || cfg.NRbULBWPActive < 1 || cfg.NRbDLBWPInitial < 1 || cfg.NRbDLBWPActive < 1 {
		panic(fmt.Sprintf("dci: BWP sizes must be positive, got %+v", cfg))
	}
	if cfg.Coreset0BW < 0 {
		panic(fmt.Sprintf("dci: negative CORESET#0 size %d", cfg.Coreset0BW))
	}

	nRbULCSS := cfg.NRbULBWPInitial
	nRbDLCSS := cfg.dlBWPForCSS()

	css00Raw := cssFixedBits00 + FrequencyResourceBits(nRbULCSS)
	css10Raw := cssFixedBits10 + FrequencyResourceBits(nRbDLCSS)
	cssSize := max(css00Raw, css10Raw)

	uss00Fixed := ussFixedBits00
	if cfg.EnableSUL {
		uss00Fixed += ulSULIndicatorBits
	}
	// DCI 1_0 is never resized; DCI 0_0 pads or truncates its
	// frequency-resource field to match it. uss00Fixed alone (without a
	// frequency-resource contribution) must still leave room for at
	// least a 0-bit field, or no BWP size could ever be aligned.
	ussSize := ussFixedBits10 + FrequencyResourceBits(cfg.NRbDLBWPActive)
	if uss00Fixed > ussSize {
		panic(fmt.Sprintf("dci: USS target size %d too small for DCI 0_0's fixed fields (%d bits)", ussSize, uss00Fixed))
	}

	return Sizes{
		Format00Common:     cssSize,
		Format10Common:     cssSize,
		Format00UESpecific: ussSize,
		Format10UESpecific: ussSize,
	}
}
