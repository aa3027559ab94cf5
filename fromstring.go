package paintkit

import (
	"sync"

	"github.com/gogpu/paintkit/cache"
)

// parseCacheCapacity is the per-shard capacity of the gradient parse cache.
// Styling layers tend to reuse a small set of gradient strings, so a modest
// cache absorbs nearly all repeat parses.
const parseCacheCapacity = 64

var (
	parseCacheOnce sync.Once
	parseCache     *cache.Sharded[string, *Gradient]
)

// FromString parses a linear-gradient string through a process-wide memo:
// the first parse of a given string does the work, repeats return the
// cached result. Only successful parses are cached.
//
// The returned *Gradient is shared between callers and must be treated as
// read-only. Callers that need a private mutable copy should use
// [ParseLinearGradient] directly.
func FromString(s string) (*Gradient, error) {
	parseCacheOnce.Do(func() {
		parseCache = cache.NewSharded[string, *Gradient](parseCacheCapacity, cache.StringHasher)
	})
	if g, ok := parseCache.Get(s); ok {
		return g, nil
	}
	g, err := ParseLinearGradient(s)
	if err != nil {
		return nil, err
	}
	parseCache.Set(s, g)
	return g, nil
}
