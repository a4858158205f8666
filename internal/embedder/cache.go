package embedder

import "sync"

// default number of vectors kept in memory
const DefaultCacheCapacity = 100

// Cache memoizes embedding vectors for previously seen text fragments.
// Eviction is FIFO by insertion order, not least-recently-used. All
// methods are safe for concurrent use; eviction mutates shared state.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    []string
	entries  map[string][]float32
}

func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	return &Cache{
		capacity: capacity,
		entries:  make(map[string][]float32),
	}
}

// returns the cached vector for key, if present
func (c *Cache) Get(key string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vec, ok := c.entries[key]

	return vec, ok
}

// stores a vector, evicting the oldest inserted entry when at capacity
func (c *Cache) Put(key string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		// keep the original insertion position
		c.entries[key] = vec
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.order = append(c.order, key)
	c.entries[key] = vec
}

// drops every entry. Must be called whenever the embedding model or its
// output dimensionality changes - stale vectors of the wrong dimension
// are silently wrong, not just stale.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = c.order[:0]
	c.entries = make(map[string][]float32)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
