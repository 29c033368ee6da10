package dci

import (
	"fmt"
	"math/bits"
)

// Fixed field widths shared across variants, TS 38.212 §7.3.1.
const (
	dciFormatIDBits                = 1
	timeResourceBits               = 4
	vrbToPRBMappingBits            = 1
	mcsBits                        = 5
	newDataIndicatorBits           = 1
	redundancyVersionBits          = 2
	harqProcessNumberBits          = 4
	tpcCommandBits                 = 2
	dlAssignmentIndexBits          = 2
	pucchResourceIndicatorBits     = 3
	pdschHARQFbTimingBits          = 3
	ulSULIndicatorBits             = 1
	frequencyHoppingFlagBits       = 1
	tbScalingBits                  = 2
	shortMessagesIndicatorBits     = 2
	shortMessagesBits              = 8
	systemInformationIndicatorBits = 1
)

// FrequencyResourceBits returns the bit width of the frequency-domain
// resource assignment field for a BWP of nRB resource blocks:
// ⌈log₂(nRB·(nRB+1)/2)⌉, per TS 38.214 §5.1.2.2.2 / §6.1.2.2.2.
//
// nRB == 1 is the one case the standard leaves implicit: a single-RB BWP
// has exactly one possible resource assignment, so the field carries no
// information and this returns 0.
func FrequencyResourceBits(nRB int) int {
	if nRB < 1 {
		panic(fmt.Sprintf("dci: invalid BWP size %d RBs", nRB))
	}
	combinations := nRB * (nRB + 1) / 2
	if combinations <= 1 {
		return 0
	}
	return bits.Len(uint(combinations - 1))
}

// maxFrequencyResource returns the largest legal frequency_resource value
// for a BWP of nRB resource blocks: N_rb·(N_rb+1)/2 - 1.
func maxFrequencyResource(nRB int) uint64 {
	if nRB < 1 {
		panic(fmt.Sprintf("dci: invalid BWP size %d RBs", nRB))
	}
	return uint64(nRB*(nRB+1)/2 - 1)
}

// checkFrequencyResource validates value against a BWP's own, untruncated
// frequency-resource range. Used by the variants whose field width is
// always exactly FrequencyResourceBits(nRB) - the ones with no
// size-alignment step of their own (P-RNTI, SI-RNTI, RA-RNTI) - and,
// together with checkFrequencyResourceWidth, by DCI 0_0/C-RNTI.
func checkFrequencyResource(value uint64, nRB int) {
	if max := maxFrequencyResource(nRB); value > max {
		panic(fmt.Sprintf("dci: frequency_resource %d exceeds maximum %d for a %d-RB BWP", value, max, nRB))
	}
}

// checkFrequencyResourceWidth validates value against the field width a
// size-aligned packer actually allocated to it, which alignment may have
// padded wider or truncated narrower than FrequencyResourceBits(nRB).
// Used by the four 0_0/1_0 packers that go through ComputeSizes.
func checkFrequencyResourceWidth(value uint64, width int) {
	if width <= 0 {
		if value != 0 {
			panic(fmt.Sprintf("dci: frequency_resource %d does not fit in a 0-bit field", value))
		}
		return
	}
	if limit := uint64(1)<<uint(width) - 1; value > limit {
		panic(fmt.Sprintf("dci: frequency_resource %d exceeds %d-bit field maximum %d", value, width, limit))
	}
}

// HoppingBits validates a caller-resolved hopping-offset field width
// against the frequencyHoppingOffsetLists rule of §4.3.1: a 2-entry list
// gives a 1-bit field, a 4-entry list gives a 2-bit field. Returns width
// unchanged so callers can use it inline.
func HoppingBits(width int) int {
	if width != 1 && width != 2 {
		panic(fmt.Sprintf("dci: N_ul_hop must be 1 or 2, got %d", width))
	}
	return width
}

// HoppingBitsForULBWP returns the hopping-offset field width used when no
// frequencyHoppingOffsetLists is configured, per §4.3.2 (the Msg3 grant):
// 1 bit below a 50-RB UL BWP, 2 bits at or above.
func HoppingBitsForULBWP(nRbULBWP int) int {
	if nRbULBWP < 50 {
		return 1
	}
	return 2
}
