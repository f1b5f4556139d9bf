package csvstore

import (
	"os"
	"sync"
	"time"

	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// Cache memoizes parsed tables keyed by path. An entry remembers the file
// modification time it was parsed at; GetOrLoad re-reads the file when the
// modtime has moved, so editing a CSV on disk is picked up on the next
// interaction without restarting the process.
type Cache struct {
	loader *Loader

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	table   *table.Table
}

// NewCache builds a cache over the given loader.
func NewCache(loader *Loader) *Cache {
	return &Cache{
		loader:  loader,
		entries: make(map[string]cacheEntry),
	}
}

// GetOrLoad returns the cached table for path, loading (or reloading) it
// when there is no entry or the file changed since the entry was made.
// Stat and load errors are returned as-is; a failed load leaves any stale
// entry removed rather than served.
func (c *Cache) GetOrLoad(path string) (*table.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		c.Invalidate(path)
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok && e.modTime.Equal(info.ModTime()) {
		return e.table, nil
	}

	t, err := c.loader.Load(path)
	if err != nil {
		delete(c.entries, path)
		return nil, err
	}
	c.entries[path] = cacheEntry{modTime: info.ModTime(), table: t}
	return t, nil
}

// Invalidate drops the cached entry for path, if any.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
