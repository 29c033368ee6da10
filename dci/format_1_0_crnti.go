package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// Format10CRNTIConfig describes a DCI format 1_0 DL assignment scrambled
// by C-RNTI, CS-RNTI or MCS-C-RNTI, monitored in the UE-specific search
// space. Field order and widths are defined in TS 38.212 §7.3.1.2.1.
type Format10CRNTIConfig struct {
	// PayloadSize is the aligned size from ComputeSizes
	// (Sizes.Format10UESpecific).
	PayloadSize int
	// NRbDLBWP is N_rb^DL,BWP: the active DL BWP size.
	NRbDLBWP               int
	FrequencyResource      uint64
	TimeResource           uint64
	VRBToPRBMapping        uint64
	MCS                    uint64
	NewDataIndicator       uint64
	RedundancyVersion      uint64
	HARQProcessNumber      uint64
	DLAssignmentIndex      uint64
	TPCCommand             uint64
	PUCCHResourceIndicator uint64
	PDSCHHARQFbTiming      uint64
}

// PackFormat10CRNTI packs a DCI format 1_0 scrambled by C-RNTI, CS-RNTI or
// MCS-C-RNTI.
func PackFormat10CRNTI(cfg Format10CRNTIConfig) Payload {
	freqWidth := cfg.PayloadSize - ussFixedBits10
	if freqWidth < 0 {
		panic(fmt.Sprintf("dci: format 1_0/C-RNTI payload_size %d too small for fixed fields (%d bits)", cfg.PayloadSize, ussFixedBits10))
	}
	checkFrequencyResourceWidth(cfg.FrequencyResource, freqWidth)

	b := bit.NewBuilder()
	b.Append(1, dciFormatIDBits) // 1 == DL
	b.Append(cfg.FrequencyResource, freqWidth)
	b.Append(cfg.TimeResource, timeResourceBits)
	b.Append(cfg.VRBToPRBMapping, vrbToPRBMappingBits)
	b.Append(cfg.MCS, mcsBits)
	b.Append(cfg.NewDataIndicator, newDataIndicatorBits)
	b.Append(cfg.RedundancyVersion, redundancyVersionBits)
	b.Append(cfg.HARQProcessNumber, harqProcessNumberBits)
	b.Append(cfg.DLAssignmentIndex, dlAssignmentIndexBits)
	b.Append(cfg.TPCCommand, tpcCommandBits)
	b.Append(cfg.PUCCHResourceIndicator, pucchResourceIndicatorBits)
	b.Append(cfg.PDSCHHARQFbTiming, pdschHARQFbTimingBits)

	if b.Len() > cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 1_0/C-RNTI fixed fields overflow payload_size %d", cfg.PayloadSize))
	}
	b.AppendZeros(cfg.PayloadSize - b.Len())

	out := b.Finalize()
	if len(out) != cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 1_0/C-RNTI packed %d bits, want payload_size %d", len(out), cfg.PayloadSize))
	}
	return out
}
