package dci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSizesEqualizesEachSearchSpace(t *testing.T) {
	cfg := Config{
		NRbULBWPInitial: 24,
		NRbULBWPActive:  48,
		NRbDLBWPInitial: 24,
		NRbDLBWPActive:  48,
		Coreset0BW:      24,
		EnableSUL:       false,
	}
	sizes := ComputeSizes(cfg)

	assert.Equal(t, sizes.Format00Common, sizes.Format10Common, "CSS DCI 0_0 and 1_0 must have equal length")
	assert.Equal(t, sizes.Format00UESpecific, sizes.Format10UESpecific, "USS DCI 0_0 and 1_0 must have equal length")
	assert.Equal(t, 35, sizes.Format00Common)
	assert.Equal(t, 39, sizes.Format00UESpecific)
}

func TestComputeSizesEnableSULAffectsOnlyUSS0_0RawSize(t *testing.T) {
	base := Config{
		NRbULBWPInitial: 24,
		NRbULBWPActive:  48,
		NRbDLBWPInitial: 24,
		NRbDLBWPActive:  48,
		Coreset0BW:      24,
	}
	withoutSUL := ComputeSizes(base)
	base.EnableSUL = true
	withSUL := ComputeSizes(base)

	// DCI 1_0 in USS is never resized by the SUL indicator, and DCI 0_0
	// always matches it: the extra bit is absorbed by the alignment
	// padding rather than growing the search space's aligned length.
	assert.Equal(t, withoutSUL.Format00UESpecific, withSUL.Format00UESpecific)
	assert.Equal(t, withoutSUL.Format10UESpecific, withSUL.Format10UESpecific)
}

func TestPackFormat00CRNTI_TruncatedUSSFrequencyField(t *testing.T) {
	cfg := Config{
		NRbULBWPInitial: 24,
		NRbULBWPActive:  275,
		NRbDLBWPInitial: 1,
		NRbDLBWPActive:  1,
		Coreset0BW:      1,
	}
	sizes := ComputeSizes(cfg)

	// The untruncated frequency_resource range for a 275-RB UL BWP needs
	// 16 bits, but the USS target here only leaves 8 bits for it once
	// truncated to match DCI 1_0. A value that fits the untruncated range
	// but not the truncated field width must be rejected up front, not
	// mid-pack.
	assert.Panics(t, func() {
		PackFormat00CRNTI(Format00CRNTIConfig{
			PayloadSize:       sizes.Format00UESpecific,
			NRbULBWP:          cfg.NRbULBWPActive,
			FrequencyResource: 300,
		})
	})

	p := PackFormat00CRNTI(Format00CRNTIConfig{
		PayloadSize:       sizes.Format00UESpecific,
		NRbULBWP:          cfg.NRbULBWPActive,
		FrequencyResource: 255,
	})
	assert.Len(t, p, sizes.Format00UESpecific)
}

func TestComputeSizesRejectsZeroBWP(t *testing.T) {
	assert.Panics(t, func() {
		ComputeSizes(Config{NRbULBWPInitial: 0, NRbULBWPActive: 1, NRbDLBWPInitial: 1, NRbDLBWPActive: 1})
	})
}

func TestFrequencyResourceBitsBoundary(t *testing.T) {
	assert.Equal(t, 0, FrequencyResourceBits(1))
	assert.Equal(t, 11, FrequencyResourceBits(48))
	assert.Equal(t, 9, FrequencyResourceBits(24))
	assert.Equal(t, 11, FrequencyResourceBits(50))
}

func TestFrequencyResourceBitsMonotonic(t *testing.T) {
	prev := FrequencyResourceBits(1)
	for n := 2; n <= 275; n++ {
		got := FrequencyResourceBits(n)
		assert.GreaterOrEqual(t, got, prev, "width must not decrease as N_rb grows (n=%d)", n)
		prev = got
	}
}

func TestFrequencyResourceBitsRejectsZero(t *testing.T) {
	assert.Panics(t, func() { FrequencyResourceBits(0) })
}
