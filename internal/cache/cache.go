// Package cache is an explicit query-result cache keyed by
// (operation, owner, parameters). Mutating operations call InvalidateOwner so
// listings observe their own writes; nothing here relies on ambient refresh.
package cache

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

type entry struct {
	ownerID uuid.UUID
	value   any
}

// Cache is a mutex-guarded map. Values are stored as-is; callers own the
// type assertion on the way out.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Key builds a stable cache key from an operation name, the owner, and
// optional parameters.
func Key(op string, ownerID uuid.UUID, params ...string) string {
	parts := append([]string{op, ownerID.String()}, params...)
	return strings.Join(parts, "|")
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, ownerID uuid.UUID, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{ownerID: ownerID, value: value}
}

// InvalidateOwner drops every cached result belonging to one owner.
func (c *Cache) InvalidateOwner(ownerID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.ownerID == ownerID {
			delete(c.entries, k)
		}
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
