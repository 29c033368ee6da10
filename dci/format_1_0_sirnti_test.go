package dci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackFormat10SIRNTI_Coreset48(t *testing.T) {
	cfg := Format10SIRNTIConfig{
		PayloadSize:                ComputeFormat10SIRNTISize(48),
		NRbDLBWP:                   48,
		FrequencyResource:          7,
		TimeResource:               3,
		VRBToPRBMapping:            1,
		MCS:                        17,
		RedundancyVersion:          2,
		SystemInformationIndicator: 1,
	}
	require.Equal(t, 39, cfg.PayloadSize)

	p := PackFormat10SIRNTI(cfg)
	require.Len(t, p, 39)

	offset := 0
	assert.Equal(t, cfg.FrequencyResource, p.Field(offset, FrequencyResourceBits(48)))
	offset += FrequencyResourceBits(48)
	assert.Equal(t, cfg.TimeResource, p.Field(offset, timeResourceBits))
	offset += timeResourceBits
	assert.Equal(t, cfg.VRBToPRBMapping, p.Field(offset, vrbToPRBMappingBits))
	offset += vrbToPRBMappingBits
	assert.Equal(t, cfg.MCS, p.Field(offset, mcsBits))
	offset += mcsBits
	assert.Equal(t, cfg.RedundancyVersion, p.Field(offset, redundancyVersionBits))
	offset += redundancyVersionBits
	assert.Equal(t, cfg.SystemInformationIndicator, p.Field(offset, systemInformationIndicatorBits))
	offset += systemInformationIndicatorBits

	for i := offset; i < len(p); i++ {
		assert.EqualValuesf(t, 0, p[i], "reserved bit %d must be zero", i)
	}
}

func TestPackFormat10SIRNTI_RejectsMismatchedPayloadSize(t *testing.T) {
	assert.Panics(t, func() {
		PackFormat10SIRNTI(Format10SIRNTIConfig{PayloadSize: ComputeFormat10SIRNTISize(48) + 1, NRbDLBWP: 48})
	})
}
