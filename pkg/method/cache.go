package method

import (
	"sync"

	"github.com/spinsolve/nmrpath/pkg/spin"
	"github.com/spinsolve/nmrpath/pkg/transition"
)

// universeCache memoizes transition universes keyed by the system's
// shape fingerprint. The universe depends only on the sequence of site
// multiplicities, so systems of the same shape share one entry. Safe
// for concurrent use.
type universeCache struct {
	mu sync.RWMutex
	m  map[string][]transition.Transition
}

func newUniverseCache() *universeCache {
	return &universeCache{m: make(map[string][]transition.Transition)}
}

func (c *universeCache) get(sys *spin.System) []transition.Transition {
	key := sys.ShapeFingerprint()

	c.mu.RLock()
	universe, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		return universe
	}

	universe = transition.Universe(sys)

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have filled the entry meanwhile; both
	// values are identical, keeping the first is enough.
	if cached, ok := c.m[key]; ok {
		return cached
	}
	c.m[key] = universe
	return universe
}
