package dci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackFormat10TCRNTI_FieldOrderOmitsAssignmentIndex(t *testing.T) {
	cfg := Format10TCRNTIConfig{
		PayloadSize:            cssFixedBits10 + FrequencyResourceBits(24),
		NRbDLBWP:               24,
		FrequencyResource:      50,
		TimeResource:           4,
		VRBToPRBMapping:        0,
		MCS:                    9,
		NewDataIndicator:       0,
		RedundancyVersion:      0,
		TPCCommand:             1,
		PUCCHResourceIndicator: 2,
		PDSCHHARQFbTiming:      3,
	}
	p := PackFormat10TCRNTI(cfg)
	require.Len(t, p, cfg.PayloadSize)

	offset := dciFormatIDBits + FrequencyResourceBits(24) + timeResourceBits + vrbToPRBMappingBits + mcsBits +
		newDataIndicatorBits + redundancyVersionBits
	// No dl_assignment_index field: HARQ process number sits where it
	// would otherwise be followed by the index in the C-RNTI variant.
	assert.Equal(t, cfg.TPCCommand, p.Field(offset+harqProcessNumberBits, tpcCommandBits))
}
