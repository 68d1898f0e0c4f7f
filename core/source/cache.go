package source

import (
	"context"
	"sync"
	"time"

	"csvdiff/core/reconcile"

	"golang.org/x/sync/singleflight"
)

// snapshotCache keeps loaded remote snapshots for a short time and collapses
// concurrent loads of the same location into one.
// Cached datasets are shared and must not be modified.
type snapshotCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
}

type cacheEntry struct {
	ds     *reconcile.Dataset
	loaded time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *snapshotCache) fresh(key string) (*reconcile.Dataset, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.loaded) > c.ttl {
		return nil, false
	}
	return e.ds, true
}

// getOrLoad returns the cached dataset for key, or runs load once for all
// concurrent callers and stores its result. The shared load keeps the values
// of ctx but not its cancellation, so one caller going away does not fail
// the others waiting on the same key.
func (c *snapshotCache) getOrLoad(ctx context.Context, key string, load func(context.Context) (*reconcile.Dataset, error)) (*reconcile.Dataset, bool, error) {
	if ds, ok := c.fresh(key); ok {
		return ds, true, nil
	}

	v, err, shared := c.sf.Do(key, func() (any, error) {
		// Double-check after acquiring singleflight lock
		if ds, ok := c.fresh(key); ok {
			return ds, nil
		}

		ds, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{ds: ds, loaded: c.now()}
		c.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*reconcile.Dataset), shared, nil
}

func (c *snapshotCache) invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
