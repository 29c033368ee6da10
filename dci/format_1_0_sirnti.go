package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// Format10SIRNTIConfig describes a DCI format 1_0 SI broadcast scrambled
// by SI-RNTI, per TS 38.212 §7.3.1.2.1. NRbDLBWP is always CORESET#0's
// size, since SI-RNTI is only monitored in Type0-PDCCH CSS.
type Format10SIRNTIConfig struct {
	// PayloadSize must equal ComputeFormat10SIRNTISize(NRbDLBWP); the
	// packer validates it rather than deriving it, per the same
	// payload_size contract every other size-bearing variant carries.
	PayloadSize                int
	NRbDLBWP                   int
	FrequencyResource          uint64
	TimeResource               uint64
	VRBToPRBMapping            uint64
	MCS                        uint64
	RedundancyVersion          uint64
	SystemInformationIndicator uint64
}

const format10SIRNTIReservedBits = 15

// ComputeFormat10SIRNTISize returns the fixed DCI format 1_0/SI-RNTI
// payload size for a given CORESET#0 size.
func ComputeFormat10SIRNTISize(nRbDLBWP int) int {
	return FrequencyResourceBits(nRbDLBWP) + timeResourceBits + vrbToPRBMappingBits + mcsBits +
		redundancyVersionBits + systemInformationIndicatorBits + format10SIRNTIReservedBits
}

// PackFormat10SIRNTI packs a DCI format 1_0 scrambled by SI-RNTI.
func PackFormat10SIRNTI(cfg Format10SIRNTIConfig) Payload {
	if want := ComputeFormat10SIRNTISize(cfg.NRbDLBWP); cfg.PayloadSize != want {
		panic(fmt.Sprintf("dci: format 1_0/SI-RNTI payload_size %d does not match alignment-derived size %d", cfg.PayloadSize, want))
	}
	checkFrequencyResource(cfg.FrequencyResource, cfg.NRbDLBWP)

	b := bit.NewBuilder()
	b.Append(cfg.FrequencyResource, FrequencyResourceBits(cfg.NRbDLBWP))
	b.Append(cfg.TimeResource, timeResourceBits)
	b.Append(cfg.VRBToPRBMapping, vrbToPRBMappingBits)
	b.Append(cfg.MCS, mcsBits)
	b.Append(cfg.RedundancyVersion, redundancyVersionBits)
	b.Append(cfg.SystemInformationIndicator, systemInformationIndicatorBits)
	b.AppendZeros(format10SIRNTIReservedBits)

	out := b.Finalize()
	if len(out) != cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 1_0/SI-RNTI packed %d bits, want payload_size %d", len(out), cfg.PayloadSize))
	}
	return out
}
