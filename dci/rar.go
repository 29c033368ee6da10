package dci

import (
	"fmt"

	"github.com/pd0mz/go-nr-dci/bit"
)

// RARConfig collects the Random Access Response grant content fields
// described by TS 38.213 Table 8.2-1. It is not a PDCCH DCI proper -
// there is no RNTI scrambling, no search space, and no size-alignment
// step - but it shares the bit-packing substrate with the DCI formats
// above and always packs to a fixed 27 bits.
type RARConfig struct {
	FrequencyHoppingFlag uint64
	// FrequencyResource is the PUSCH frequency resource allocation.
	FrequencyResource uint64
	// TimeResource is the PUSCH time resource allocation.
	TimeResource uint64
	MCS          uint64
	TPC          uint64
	CSIRequest   uint64
}

const (
	rarFrequencyResourceBits = 14
	rarTimeResourceBits      = 4
	rarMCSBits               = 4
	rarTPCBits               = 3
	rarCSIRequestBits        = 1
	// RARPayloadSize is the fixed size of a Random Access Response UL
	// grant, per TS 38.213 Table 8.2-1.
	RARPayloadSize = frequencyHoppingFlagBits + rarFrequencyResourceBits + rarTimeResourceBits + rarMCSBits + rarTPCBits + rarCSIRequestBits
)

// PackRAR packs a Random Access Response UL grant.
func PackRAR(cfg RARConfig) Payload {
	b := bit.NewBuilder()
	b.Append(cfg.FrequencyHoppingFlag, frequencyHoppingFlagBits)
	b.Append(cfg.FrequencyResource, rarFrequencyResourceBits)
	b.Append(cfg.TimeResource, rarTimeResourceBits)
	b.Append(cfg.MCS, rarMCSBits)
	b.Append(cfg.TPC, rarTPCBits)
	b.Append(cfg.CSIRequest, rarCSIRequestBits)

	out := b.Finalize()
	if len(out) != RARPayloadSize {
		panic(fmt.Sprintf("dci: RAR grant packed %d bits, want %d", len(out), RARPayloadSize))
	}
	return out
}
