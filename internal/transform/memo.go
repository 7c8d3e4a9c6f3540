package transform

import (
	"container/list"
	"encoding/json"
	"fmt"
	"sync"

	"vizlens/domain/chart"
	"vizlens/domain/dataset"
)

// defaultCacheSize bounds the memoized transform results
const defaultCacheSize = 100

// lruCache is a bounded least-recently-used cache of transform results.
// Eviction policy: on insert beyond capacity, the least recently accessed
// entry is dropped.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
}

type cacheEntry struct {
	key   string
	value []dataset.Row
}

func newLRUCache(capacity int) *lruCache {
	if capacity <= 0 {
		capacity = defaultCacheSize
	}
	return &lruCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

func (c *lruCache) get(key string) ([]dataset.Row, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).value, true
}

func (c *lruCache) put(key string, value []dataset.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	elem := c.order.PushFront(&cacheEntry{key: key, value: value})
	c.entries[key] = elem

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}

func (c *lruCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
}

// cacheKey derives a stable key from the dataset version and the full config
func cacheKey(version string, config chart.Config) string {
	encoded, err := json.Marshal(config)
	if err != nil {
		// Unmarshalable configs never collide with real keys
		return fmt.Sprintf("%s:unkeyed:%p", version, &config)
	}
	return version + ":" + string(encoded)
}
