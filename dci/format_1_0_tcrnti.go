package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// Format10TCRNTIConfig describes a DCI format 1_0 DL assignment scrambled
// by TC-RNTI (Msg4), monitored in the common search space. Identical to
// the C-RNTI variant (§7.3.1.2.1) minus the downlink assignment index.
type Format10TCRNTIConfig struct {
	// PayloadSize is the aligned size from ComputeSizes
	// (Sizes.Format10Common).
	PayloadSize int
	// NRbDLBWP is N_rb^DL,BWP: the CORESET#0 size.
	NRbDLBWP               int
	FrequencyResource      uint64
	TimeResource           uint64
	VRBToPRBMapping        uint64
	MCS                    uint64
	NewDataIndicator       uint64
	RedundancyVersion      uint64
	HARQProcessNumber      uint64
	TPCCommand             uint64
	PUCCHResourceIndicator uint64
	PDSCHHARQFbTiming      uint64
}

// PackFormat10TCRNTI packs a DCI format 1_0 scrambled by TC-RNTI.
func PackFormat10TCRNTI(cfg Format10TCRNTIConfig) Payload {
	freqWidth := cfg.PayloadSize - cssFixedBits10
	if freqWidth < 0 {
		panic(fmt.Sprintf("dci: format 1_0/TC-RNTI payload_size %d too small for fixed fields (%d bits)", cfg.PayloadSize, cssFixedBits10))
	}
	checkFrequencyResourceWidth(cfg.FrequencyResource, freqWidth)

	b := bit.NewBuilder()
	b.Append(1, dciFormatIDBits)
	b.Append(cfg.FrequencyResource, freqWidth)
	b.Append(cfg.TimeResource, timeResourceBits)
	b.Append(cfg.VRBToPRBMapping, vrbToPRBMappingBits)
	b.Append(cfg.MCS, mcsBits)
	b.Append(cfg.NewDataIndicator, newDataIndicatorBits)
	b.Append(cfg.RedundancyVersion, redundancyVersionBits)
	b.Append(cfg.HARQProcessNumber, harqProcessNumberBits)
	b.Append(cfg.TPCCommand, tpcCommandBits)
	b.Append(cfg.PUCCHResourceIndicator, pucchResourceIndicatorBits)
	b.Append(cfg.PDSCHHARQFbTiming, pdschHARQFbTimingBits)

	if b.Len() > cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 1_0/TC-RNTI fixed fields overflow payload_size %d", cfg.PayloadSize))
	}
	b.AppendZeros(cfg.PayloadSize - b.Len())

	out := b.Finalize()
	if len(out) != cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 1_0/TC-RNTI packed %d bits, want payload_size %d", len(out), cfg.PayloadSize))
	}
	return out
}
