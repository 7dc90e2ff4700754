package internal

import (
	"sync"
	"time"
)

// CacheTTL is how long a catalog fetch stays fresh
const CacheTTL = 300 * time.Second

type cacheEntry struct {
	payload  any
	storedAt time.Time
}

// Cache is an in-memory time-expiring cache shielding catalog fetches.
// Staleness is checked lazily on read; stale entries stay resident until
// overwritten or invalidated, they are simply reported as absent.
// There is no size bound and no background eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache creates a cache with the standard TTL
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     CacheTTL,
		now:     time.Now,
	}
}

// Get returns the cached payload when it is still fresh
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.payload, true
}

// Put stores payload under key, unconditionally replacing any prior entry
// and resetting its write time
func (c *Cache) Put(key string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{payload: payload, storedAt: c.now()}
}

// Invalidate removes one entry
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll removes every entry
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// The three catalog namespaces share the one key space

func charactersCacheKey(category string) string {
	return "characters_" + category
}

const storiesCacheKey = "stories"

func privateCharactersCacheKey(userID string) string {
	return "private_" + userID
}

// CachedCharacters returns the fresh character list for a category, if any
func (c *Cache) CachedCharacters(category string) ([]Character, bool) {
	payload, ok := c.Get(charactersCacheKey(category))
	if !ok {
		return nil, false
	}
	characters, ok := payload.([]Character)
	return characters, ok
}

// PutCharacters caches a category's character list
func (c *Cache) PutCharacters(characters []Character, category string) {
	c.Put(charactersCacheKey(category), characters)
}

// CachedStories returns the fresh story list, if any
func (c *Cache) CachedStories() ([]Story, bool) {
	payload, ok := c.Get(storiesCacheKey)
	if !ok {
		return nil, false
	}
	stories, ok := payload.([]Story)
	return stories, ok
}

// PutStories caches the story list
func (c *Cache) PutStories(stories []Story) {
	c.Put(storiesCacheKey, stories)
}

// CachedPrivateCharacters returns a user's fresh private characters, if any
func (c *Cache) CachedPrivateCharacters(userID string) ([]PrivateCharacter, bool) {
	payload, ok := c.Get(privateCharactersCacheKey(userID))
	if !ok {
		return nil, false
	}
	characters, ok := payload.([]PrivateCharacter)
	return characters, ok
}

// PutPrivateCharacters caches a user's private characters
func (c *Cache) PutPrivateCharacters(characters []PrivateCharacter, userID string) {
	c.Put(privateCharactersCacheKey(userID), characters)
}
