// Package dcicache caches the DCI size-alignment result for the BWP
// configuration currently in effect: the scheduler reads aligned sizes on
// every scheduling decision, but they only change when RRC pushes a new
// BWP configuration. This is a single-writer (RRC/config-update path),
// multiple-reader (scheduler) cache, so the read path needs no lock.
package dcicache

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/pd0mz/go-nr-dci/dci"
)

type entry struct {
	cfg   dci.Config
	sizes dci.Sizes
}

// Cache holds the most recently computed dci.Sizes for a BWP
// configuration, recomputing only when the configuration changes.
type Cache struct {
	current atomic.Pointer[entry]
	logger  *log.Logger
}

// New returns an empty Cache. logger may be nil, in which case cache
// updates are not logged.
func New(logger *log.Logger) *Cache {
	return &Cache{logger: logger}
}

// Sizes returns the aligned sizes for cfg, recomputing and caching them if
// cfg differs from the last configuration seen.
func (c *Cache) Sizes(cfg dci.Config) dci.Sizes {
	if e := c.current.Load(); e != nil && e.cfg == cfg {
		return e.sizes
	}
	sizes := dci.ComputeSizes(cfg)
	c.current.Store(&entry{cfg: cfg, sizes: sizes})
	if c.logger != nil {
		c.logger.Info("BWP configuration changed, recomputed DCI sizes",
			"css_0_0", sizes.Format00Common,
			"css_1_0", sizes.Format10Common,
			"uss_0_0", sizes.Format00UESpecific,
			"uss_1_0", sizes.Format10UESpecific,
		)
	}
	return sizes
}

// Invalidate drops the cached entry, forcing the next Sizes call to
// recompute regardless of whether the configuration has actually changed.
// Used when a caller suspects the cache and the live configuration have
// drifted, e.g. after restoring from a snapshot.
func (c *Cache) Invalidate() {
	c.current.Store(nil)
}
