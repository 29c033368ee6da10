package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// ShortMessagesIndicator gates which fields of a DCI format 1_0/P-RNTI
// payload are meaningful versus reserved, per TS 38.212 Table 7.3.1.2.1-1.
type ShortMessagesIndicator uint8

const (
	// SchedulingInformation indicates only paging scheduling information
	// is present; ShortMessages is reserved.
	SchedulingInformation ShortMessagesIndicator = 1
	// ShortMessagesOnly indicates only the short message is present;
	// the scheduling fields are reserved.
	ShortMessagesOnly ShortMessagesIndicator = 2
	// Both indicates scheduling information and a short message are
	// both present.
	Both ShortMessagesIndicator = 3
)

// Format10PRNTIConfig describes a DCI format 1_0 paging message scrambled
// by P-RNTI, per TS 38.212 §7.3.1.2.1.
type Format10PRNTIConfig struct {
	// PayloadSize must equal ComputeFormat10PRNTISize(NRbDLBWP); the
	// packer validates it rather than deriving it, per the same
	// payload_size contract every other size-bearing variant carries.
	PayloadSize int
	// NRbDLBWP is N_rb^DL,BWP: the CORESET#0 size.
	NRbDLBWP               int
	ShortMessagesIndicator ShortMessagesIndicator
	// ShortMessages is meaningful iff ShortMessagesIndicator is
	// ShortMessagesOnly or Both; packed as zero otherwise.
	ShortMessages uint64
	// FrequencyResource, TimeResource, VRBToPRBMapping, MCS and
	// TBScaling are meaningful iff ShortMessagesIndicator is
	// SchedulingInformation or Both; packed as zero otherwise.
	FrequencyResource uint64
	TimeResource      uint64
	VRBToPRBMapping   uint64
	MCS               uint64
	// TBScaling must not be 0b11, reserved per TS 38.214 Table 5.1.3.2-2.
	TBScaling uint64
}

const format10PRNTIReservedBits = 6

// ComputeFormat10PRNTISize returns the fixed DCI format 1_0/P-RNTI payload
// size for a given CORESET#0 (or initial DL BWP) size.
func ComputeFormat10PRNTISize(nRbDLBWP int) int {
	return shortMessagesIndicatorBits + shortMessagesBits + FrequencyResourceBits(nRbDLBWP) +
		timeResourceBits + vrbToPRBMappingBits + mcsBits + tbScalingBits + format10PRNTIReservedBits
}

// PackFormat10PRNTI packs a DCI format 1_0 scrambled by P-RNTI.
func PackFormat10PRNTI(cfg Format10PRNTIConfig) Payload {
	if want := ComputeFormat10PRNTISize(cfg.NRbDLBWP); cfg.PayloadSize != want {
		panic(fmt.Sprintf("dci: format 1_0/P-RNTI payload_size %d does not match alignment-derived size %d", cfg.PayloadSize, want))
	}

	switch cfg.ShortMessagesIndicator {
	case SchedulingInformation, ShortMessagesOnly, Both:
	default:
		panic(fmt.Sprintf("dci: invalid short_messages_indicator %d", cfg.ShortMessagesIndicator))
	}

	schedulingPresent := cfg.ShortMessagesIndicator == SchedulingInformation || cfg.ShortMessagesIndicator == Both
	shortMessagePresent := cfg.ShortMessagesIndicator == ShortMessagesOnly || cfg.ShortMessagesIndicator == Both

	if schedulingPresent && cfg.TBScaling == 0b11 {
		panic("dci: tb_scaling value 0b11 is reserved")
	}
	if schedulingPresent {
		checkFrequencyResource(cfg.FrequencyResource, cfg.NRbDLBWP)
	}

	freqWidth := FrequencyResourceBits(cfg.NRbDLBWP)

	b := bit.NewBuilder()
	b.Append(uint64(cfg.ShortMessagesIndicator), shortMessagesIndicatorBits)
	if shortMessagePresent {
		b.Append(cfg.ShortMessages, shortMessagesBits)
	} else {
		b.AppendZeros(shortMessagesBits)
	}
	if schedulingPresent {
		b.Append(cfg.FrequencyResource, freqWidth)
		b.Append(cfg.TimeResource, timeResourceBits)
		b.Append(cfg.VRBToPRBMapping, vrbToPRBMappingBits)
		b.Append(cfg.MCS, mcsBits)
		b.Append(cfg.TBScaling, tbScalingBits)
	} else {
		b.AppendZeros(freqWidth + timeResourceBits + vrbToPRBMappingBits + mcsBits + tbScalingBits)
	}
	b.AppendZeros(format10PRNTIReservedBits)

	out := b.Finalize()
	if len(out) != cfg.PayloadSize {
		panic(fmt.Sprintf("dci: format 1_0/P-RNTI packed %d bits, want payload_size %d", len(out), cfg.PayloadSize))
	}
	return out
}
