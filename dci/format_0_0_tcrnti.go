package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// Format00TCRNTIConfig describes a DCI format 0_0 UL grant scrambled by
// TC-RNTI (the Msg3 retransmission grant), monitored in the common search
// space. Identical to the C-RNTI variant minus the new-data indicator,
// HARQ process number and UL/SUL indicator, per TS 38.212 §7.3.1.1.1.
type Format00TCRNTIConfig struct {
	// PayloadSize is the aligned size from ComputeSizes
	// (Sizes.Format00Common).
	PayloadSize int
	// NULHop is 1 if NRbULBWP < 50, else 2, per TS 38.212 §7.3.1.1.1.
	NULHop        int
	HoppingOffset uint64
	// NRbULBWP is N_rb^UL,BWP: the initial UL BWP size.
	NRbULBWP             int
	FrequencyResource    uint64
	TimeResource         uint64
	FrequencyHoppingFlag uint64
	MCS                  uint64
	RedundancyVersion    uint64
	TPCCommand           uint64
}

// PackFormat00TCRNTI packs a DCI format 0_0 scrambled by TC-RNTI.
func PackFormat00TCRNTI(cfg Format00TCRNTIConfig) Payload {
	wantHop := HoppingBitsForULBWP(cfg.NRbULBWP)
	freqWidth := cfg.PayloadSize - cssFixedBits00
	if freqWidth < 0 {
		panic(fmt.Sprintf("dci: format 0_0/TC-RNTI payload_size %d too small for fixed fields (%d bits)", cfg.PayloadSize, cssFixedBits00))
	}

	remainderWidth := freqWidth
	if cfg.FrequencyHoppingFlag == 1 {
		if cfg.NULHop != wantHop {
			panic(fmt.Sprintf("dci: N_ul_hop must be %d for a %d-RB UL BWP, got %d", wantHop, cfg.NRbULBWP, cfg.NULHop))
		}
		if cfg.HoppingOffset >= 1<<uint(cfg.NULHop) {
			panic(fmt.Sprintf("dci: hopping_offset %d out of range for N_ul_hop=%d", cfg.HoppingOffset, cfg.NULHop))
		}
		remainderWidth = freqWidth - cfg.NULHop
	}
	checkFrequencyResourceWidth(cfg.FrequencyResource, remainderWidth)

	b := bit.NewBuilder()
	b.Append(0, dciFormatIDBits)
	if cfg.FrequencyHoppingFlag == 1 {
		b.Append(cfg.HoppingOffset, cfg.NULHop)
		b.Append(cfg.FrequencyResource, remainderWidth)
	} else {
		b.Append(cfg.FrequencyResource, freqWidth)
	}
	b.Append(cfg.TimeResource, timeResourceBits)
	b.Append(cfg.FrequencyHoppingFlag, frequencyHoppingFlagBits)
	b.Append(cfg.MCS, mcsBits)
	b.Append(cfg.RedundancyVersion, redundancyVersionBits)
	b.Append(cfg.TPCCommand, tpcCommandBits)

	if b.Len() > cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 0_0/TC-RNTI fixed fields overflow payload_size %d", cfg.PayloadSize))
	}
	b.AppendZeros(cfg.PayloadSize - b.Len())

	out := b.Finalize()
	if len(out) != cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 0_0/TC-RNTI packed %d bits, want payload_size %d", len(out), cfg.PayloadSize))
	}
	return out
}
