package dcicache

import (
	"testing"

	"github.com/pd0mz/go-nr-dci/dci"
	"github.com/stretchr/testify/assert"
)

func TestCacheRecomputesOnlyOnConfigChange(t *testing.T) {
	c := New(nil)
	cfg := dci.Config{NRbULBWPInitial: 24, NRbULBWPActive: 48, NRbDLBWPInitial: 24, NRbDLBWPActive: 48, Coreset0BW: 24}

	first := c.Sizes(cfg)
	second := c.Sizes(cfg)
	assert.Equal(t, first, second)

	cfg.NRbDLBWPActive = 100
	third := c.Sizes(cfg)
	assert.NotEqual(t, first, third)
}

func TestCacheInvalidateForcesRecompute(t *testing.T) {
	c := New(nil)
	cfg := dci.Config{NRbULBWPInitial: 24, NRbULBWPActive: 48, NRbDLBWPInitial: 24, NRbDLBWPActive: 48, Coreset0BW: 24}
	first := c.Sizes(cfg)
	c.Invalidate()
	second := c.Sizes(cfg)
	assert.Equal(t, first, second)
}
