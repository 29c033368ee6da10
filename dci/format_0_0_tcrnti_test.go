package dci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackFormat00TCRNTI_HoppingSplitBelow50RBs(t *testing.T) {
	cfg := Format00TCRNTIConfig{
		PayloadSize:          cssFixedBits00 + FrequencyResourceBits(49),
		NULHop:               1,
		HoppingOffset:        1,
		NRbULBWP:             49,
		FrequencyResource:    10,
		TimeResource:         2,
		FrequencyHoppingFlag: 1,
		MCS:                  3,
		RedundancyVersion:    1,
		TPCCommand:           0,
	}
	p := PackFormat00TCRNTI(cfg)
	require.Len(t, p, cfg.PayloadSize)
	assert.Equal(t, cfg.HoppingOffset, p.Field(dciFormatIDBits, 1))
}

func TestPackFormat00TCRNTI_HoppingSplitAt50RBs(t *testing.T) {
	assert.Panics(t, func() {
		PackFormat00TCRNTI(Format00TCRNTIConfig{
			PayloadSize:          cssFixedBits00 + FrequencyResourceBits(50),
			NULHop:               1, // wrong: must be 2 at N_rb == 50
			NRbULBWP:             50,
			FrequencyHoppingFlag: 1,
		})
	})

	p := PackFormat00TCRNTI(Format00TCRNTIConfig{
		PayloadSize:          cssFixedBits00 + FrequencyResourceBits(50),
		NULHop:               2,
		NRbULBWP:             50,
		FrequencyHoppingFlag: 1,
	})
	require.NotNil(t, p)
}

func TestPackFormat00TCRNTI_OmitsNDIAndHARQ(t *testing.T) {
	p := PackFormat00TCRNTI(Format00TCRNTIConfig{
		PayloadSize: cssFixedBits00 + FrequencyResourceBits(10),
		NRbULBWP:    10,
		MCS:         1,
	})
	require.Len(t, p, cssFixedBits00+FrequencyResourceBits(10))
}
