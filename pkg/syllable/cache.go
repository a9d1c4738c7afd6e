package syllable

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
)

type cacheKey struct {
	word   string
	custom bool
}

// Cache memoizes syllable lists by word and whether a custom hyphenator was
// supplied. maxEntries <= 0 means unbounded; otherwise the least recently
// used entry is evicted.
type Cache struct {
	entries     map[cacheKey][]string
	accessTime  map[cacheKey]int64
	accessCount int64
	hits        int64
	misses      int64
	maxEntries  int
	mu          sync.Mutex
}

// NewCache creates a cache holding at most maxEntries results.
func NewCache(maxEntries int) *Cache {
	size := maxEntries
	if size <= 0 {
		size = 64
	}
	return &Cache{
		entries:    make(map[cacheKey][]string, size),
		accessTime: make(map[cacheKey]int64, size),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached syllables.
func (c *Cache) Get(word string, custom bool) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{word: word, custom: custom}
	syllables, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.accessTime[key] = c.nextAccessTime()
	return append([]string(nil), syllables...), true
}

// Put stores a copy of syllables.
func (c *Cache) Put(word string, custom bool, syllables []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{word: word, custom: custom}
	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictLRU()
	}
	c.entries[key] = append([]string(nil), syllables...)
	c.accessTime[key] = c.nextAccessTime()
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats reports cache size and hit counters.
func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheEntries":    len(c.entries),
		"maxCacheEntries": c.maxEntries,
		"cacheHits":       int(c.hits),
		"cacheMisses":     int(c.misses),
	}
}

func (c *Cache) nextAccessTime() int64 {
	c.accessCount++
	return c.accessCount
}

func (c *Cache) evictLRU() {
	var oldest cacheKey
	var oldestTime int64 = math.MaxInt64
	found := false

	for key, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = key
			found = true
		}
	}

	if found {
		delete(c.entries, oldest)
		delete(c.accessTime, oldest)
		log.Debugf("Evicted '%s' from syllable cache", oldest.word)
	}
}
