package memcache

import (
	"sync"
	"time"
)

// SettingsCache holds the branding/settings snapshot so every recommendation
// request does not hit the database. Entries expire after the TTL; admins can
// invalidate explicitly after saving changes.
type SettingsCache struct {
	mu    sync.RWMutex
	items map[string]cacheItem
	ttl   time.Duration
	now   func() time.Time
}

type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

const DefaultSettingsTTL = 5 * time.Minute

func NewSettingsCache(ttl time.Duration) *SettingsCache {
	if ttl <= 0 {
		ttl = DefaultSettingsTTL
	}
	return &SettingsCache{
		items: make(map[string]cacheItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

// SetClock overrides the time source. Test helper.
func (c *SettingsCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *SettingsCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *SettingsCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	now := c.now()
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if now.After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.value, true
}

func (c *SettingsCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}
