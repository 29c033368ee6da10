package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// Format00CRNTIConfig describes a DCI format 0_0 UL grant scrambled by
// C-RNTI, CS-RNTI or MCS-C-RNTI, monitored in the UE-specific search
// space. Field order and widths are defined in TS 38.212 §7.3.1.1.1.
type Format00CRNTIConfig struct {
	// PayloadSize is the aligned size from ComputeSizes
	// (Sizes.Format00UESpecific).
	PayloadSize int
	// NULHop is the number of bits the frequency-resource field devotes
	// to the hopping offset when FrequencyHoppingFlag is set: 1 if the
	// configured frequencyHoppingOffsetLists has 2 entries, 2 if it has
	// 4. Ignored when hopping is disabled.
	NULHop int
	// HoppingOffset indexes frequencyHoppingOffsetLists. Ignored when
	// hopping is disabled.
	HoppingOffset uint64
	// NRbULBWP is N_rb^UL,BWP: the active UL BWP size.
	NRbULBWP int
	// FrequencyResource is the resource assignment value, bounded by
	// N_rb·(N_rb+1)/2 - 1. When hopping is enabled this carries only the
	// non-hopping remainder; HoppingOffset carries the top NULHop bits.
	FrequencyResource uint64
	TimeResource      uint64
	// FrequencyHoppingFlag is 0 or 1.
	FrequencyHoppingFlag uint64
	MCS                  uint64
	NewDataIndicator     uint64
	RedundancyVersion    uint64
	HARQProcessNumber    uint64
	TPCCommand           uint64
	// ULSULIndicator is present iff the cell has a Supplementary Uplink
	// configured. A nil pointer means absent, never zero.
	ULSULIndicator *bool
}

// PackFormat00CRNTI packs a DCI format 0_0 scrambled by C-RNTI, CS-RNTI or
// MCS-C-RNTI.
func PackFormat00CRNTI(cfg Format00CRNTIConfig) Payload {
	fixed := ussFixedBits00
	if cfg.ULSULIndicator != nil {
		fixed += ulSULIndicatorBits
	}
	freqWidth := cfg.PayloadSize - fixed
	if freqWidth < 0 {
		panic(fmt.Sprintf("dci: format 0_0/C-RNTI payload_size %d too small for fixed fields (%d bits)", cfg.PayloadSize, fixed))
	}

	remainderWidth := freqWidth
	if cfg.FrequencyHoppingFlag == 1 {
		HoppingBits(cfg.NULHop)
		if cfg.HoppingOffset >= 1<<uint(cfg.NULHop) {
			panic(fmt.Sprintf("dci: hopping_offset %d out of range for N_ul_hop=%d", cfg.HoppingOffset, cfg.NULHop))
		}
		remainderWidth = freqWidth - cfg.NULHop
	}
	checkFrequencyResource(cfg.FrequencyResource, cfg.NRbULBWP)
	checkFrequencyResourceWidth(cfg.FrequencyResource, remainderWidth)

	b := bit.NewBuilder()
	b.Append(0, dciFormatIDBits) // 0 == UL
	if cfg.FrequencyHoppingFlag == 1 {
		b.Append(cfg.HoppingOffset, cfg.NULHop)
		b.Append(cfg.FrequencyResource, remainderWidth)
	} else {
		b.Append(cfg.FrequencyResource, freqWidth)
	}
	b.Append(cfg.TimeResource, timeResourceBits)
	b.Append(cfg.FrequencyHoppingFlag, frequencyHoppingFlagBits)
	b.Append(cfg.MCS, mcsBits)
	b.Append(cfg.NewDataIndicator, newDataIndicatorBits)
	b.Append(cfg.RedundancyVersion, redundancyVersionBits)
	b.Append(cfg.HARQProcessNumber, harqProcessNumberBits)
	b.Append(cfg.TPCCommand, tpcCommandBits)

	padTarget := cfg.PayloadSize
	if cfg.ULSULIndicator != nil {
		padTarget -= ulSULIndicatorBits
	}
	if b.Len() > padTarget {
		panic(fmt.Sprintf("dci: format 0_0/C-RNTI fixed fields overflow payload_size %d", cfg.PayloadSize))
	}
	b.AppendZeros(padTarget - b.Len())

	if cfg.ULSULIndicator != nil {
		var v uint64
		if *cfg.ULSULIndicator {
			v = 1
		}
		b.Append(v, ulSULIndicatorBits)
	}

	out := b.Finalize()
	if len(out) != cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 0_0/C-RNTI packed %d bits, want payload_size %d", len(out), cfg.PayloadSize))
	}
	return out
}
