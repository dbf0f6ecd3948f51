/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package groupcache holds resolved asset group listings for the lifetime of
// a hook. Entries are written once and never evicted or expired.
package groupcache

import (
	"sync"

	"bennypowers.dev/cartero/manifest"
)

// Cache maps asset group ids to their listings.
type Cache interface {
	// Get retrieves a cached listing by group id.
	// Returns the cached listing and true if found, nil and false otherwise.
	Get(groupID string) (*manifest.Listing, bool)

	// Set stores a listing, keyed by group id. An id that is already
	// cached keeps its first listing.
	Set(groupID string, listing *manifest.Listing)

	// GetOrLoad retrieves from cache or loads using the provided function.
	// Concurrent callers for the same id share one loader call; a failed
	// load is not cached.
	GetOrLoad(groupID string, loader func() (*manifest.Listing, error)) (*manifest.Listing, error)
}

// inflight coordinates concurrent loads of one group.
type inflight struct {
	listing *manifest.Listing
	err     error
	once    sync.Once
}

// MemoryCache is a thread-safe in-memory implementation of Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	cache   map[string]*manifest.Listing
	loading sync.Map // map[string]*inflight
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string]*manifest.Listing),
	}
}

// Get retrieves a cached listing by group id.
func (c *MemoryCache) Get(groupID string) (*manifest.Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.cache[groupID]
	return l, ok
}

// Set stores a listing unless the group is already cached.
func (c *MemoryCache) Set(groupID string, listing *manifest.Listing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.cache[groupID]; !ok {
		c.cache[groupID] = listing
	}
}

// Len returns the number of cached groups.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// GetOrLoad retrieves from cache or loads using the provided function.
// Only one goroutine runs the loader for a given id; others wait for its result.
func (c *MemoryCache) GetOrLoad(groupID string, loader func() (*manifest.Listing, error)) (*manifest.Listing, error) {
	if l, ok := c.Get(groupID); ok {
		return l, nil
	}

	actual, _ := c.loading.LoadOrStore(groupID, &inflight{})
	entry := actual.(*inflight)

	entry.once.Do(func() {
		defer c.loading.CompareAndDelete(groupID, entry)

		// A previous loader may have finished between the fast path and LoadOrStore.
		if l, ok := c.Get(groupID); ok {
			entry.listing = l
			return
		}
		entry.listing, entry.err = loader()
		if entry.err == nil {
			c.Set(groupID, entry.listing)
		}
	})

	if entry.err != nil {
		return nil, entry.err
	}
	return entry.listing, nil
}
