package server

import "sync"

// readCache memoizes query results keyed by name, with each entry
// carrying the logical tags it depends on. Mutations call invalidate
// with the affected tags before returning, so a read that follows a
// mutation always recomputes.
type readCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value any
	tags  []string
}

const (
	tagGames    = "games"
	tagSessions = "sessions"
)

func newReadCache() *readCache {
	return &readCache{entries: make(map[string]cacheEntry)}
}

func (c *readCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return entry.value, true
}

func (c *readCache) put(key string, value any, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, tags: tags}
}

func (c *readCache) invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if hasAnyTag(entry.tags, tags) {
			delete(c.entries, key)
		}
	}
}

func hasAnyTag(have, want []string) bool {
	for _, tag := range have {
		for _, candidate := range want {
			if tag == candidate {
				return true
			}
		}
	}
	return false
}
