package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// Format10RARNTIConfig describes a DCI format 1_0 random-access response
// grant scrambled by RA-RNTI, per TS 38.212 §7.3.1.2.1.
type Format10RARNTIConfig struct {
	// PayloadSize must equal ComputeFormat10RARNTISize(NRbDLBWP); the
	// packer validates it rather than deriving it, per the same
	// payload_size contract every other size-bearing variant carries.
	PayloadSize int
	// NRbDLBWP is CORESET#0's size if configured, otherwise the initial
	// DL BWP size.
	NRbDLBWP          int
	FrequencyResource uint64
	TimeResource      uint64
	VRBToPRBMapping   uint64
	MCS               uint64
	// TBScaling must not be 0b11, reserved per TS 38.214 Table 5.1.3.2-2.
	TBScaling uint64
}

const format10RARNTIReservedBits = 16

// ComputeFormat10RARNTISize returns the fixed DCI format 1_0/RA-RNTI
// payload size for the governing DL BWP size.
func ComputeFormat10RARNTISize(nRbDLBWP int) int {
	return FrequencyResourceBits(nRbDLBWP) + timeResourceBits + vrbToPRBMappingBits + mcsBits +
		tbScalingBits + format10RARNTIReservedBits
}

// PackFormat10RARNTI packs a DCI format 1_0 scrambled by RA-RNTI.
func PackFormat10RARNTI(cfg Format10RARNTIConfig) Payload {
	if want := ComputeFormat10RARNTISize(cfg.NRbDLBWP); cfg.PayloadSize != want {
		panic(fmt.Sprintf("dci: format 1_0/RA-RNTI payload_size %d does not match alignment-derived size %d", cfg.PayloadSize, want))
	}
	if cfg.TBScaling == 0b11 {
		panic("dci: tb_scaling value 0b11 is reserved")
	}
	checkFrequencyResource(cfg.FrequencyResource, cfg.NRbDLBWP)

	b := bit.NewBuilder()
	b.Append(cfg.FrequencyResource, FrequencyResourceBits(cfg.NRbDLBWP))
	b.Append(cfg.TimeResource, timeResourceBits)
	b.Append(cfg.VRBToPRBMapping, vrbToPRBMappingBits)
	b.Append(cfg.MCS, mcsBits)
	b.Append(cfg.TBScaling, tbScalingBits)
	b.AppendZeros(format10RARNTIReservedBits)

	out := b.Finalize()
	if len(out) != cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 1_0/RA-RNTI packed %d bits, want payload_size %d", len(out), cfg.PayloadSize))
	}
	return out
}
