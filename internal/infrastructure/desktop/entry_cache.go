package desktop

import (
	"container/list"
	"sync"
	"time"
)

// defaultCacheSize covers a typical system plus user applications directory.
const defaultCacheSize = 2048

// parsedEntry is the outcome of parsing one desktop file, including rejections.
type parsedEntry struct {
	modTime  time.Time
	size     int64
	category string
	name     string
	command  string
	ok       bool
}

type cacheItem struct {
	path  string
	entry parsedEntry
}

// entryCache remembers parsed desktop files by path. A hit is only valid
// while the file keeps the modification time and size it was parsed with.
// The least recently used path is evicted at capacity.
type entryCache struct {
	capacity int
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List // front = most recent
}

func newEntryCache(capacity int) *entryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &entryCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *entryCache) get(path string, modTime time.Time, size int64) (parsedEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[path]
	if !ok {
		return parsedEntry{}, false
	}
	item := elem.Value.(*cacheItem)
	if !item.entry.modTime.Equal(modTime) || item.entry.size != size {
		c.order.Remove(elem)
		delete(c.items, path)
		return parsedEntry{}, false
	}
	c.order.MoveToFront(elem)
	return item.entry, true
}

func (c *entryCache) put(path string, e parsedEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[path]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheItem).entry = e
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheItem).path)
		}
	}
	c.items[path] = c.order.PushFront(&cacheItem{path: path, entry: e})
}

func (c *entryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
