// Package names resolves Confluence account ids to display names,
// memoizing results for the lifetime of one batch run.
package names

// Cache maps account ids to display names for a single batch run.
// It is constructed once at batch start, passed by handle into the resolver,
// and discarded with the process. Entries are never evicted or persisted.
// Not safe for concurrent use; the batch is single-threaded.
type Cache struct {
	entries map[string]string
}

// NewCache creates an empty display-name cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]string),
	}
}

// Get retrieves a cached display name by account id.
func (c *Cache) Get(accountID string) (string, bool) {
	name, ok := c.entries[accountID]
	if ok {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
	return name, ok
}

// Set stores a display name keyed by account id.
func (c *Cache) Set(accountID, displayName string) {
	c.entries[accountID] = displayName
	CacheEntries.Set(float64(len(c.entries)))
}

// Len returns the number of cached names.
func (c *Cache) Len() int {
	return len(c.entries)
}
