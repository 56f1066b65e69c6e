package desktop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryCache_InvalidatesOnChange(t *testing.T) {
	c := newEntryCache(4)
	mtime := time.Unix(1700000000, 0)

	c.put("/a.desktop", parsedEntry{modTime: mtime, size: 10, name: "A", ok: true})

	got, ok := c.get("/a.desktop", mtime, 10)
	assert.True(t, ok)
	assert.Equal(t, "A", got.name)

	_, ok = c.get("/a.desktop", mtime.Add(time.Second), 10)
	assert.False(t, ok, "newer file must be reparsed")
	assert.Zero(t, c.len(), "stale entry is dropped")
}

func TestEntryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newEntryCache(2)
	mtime := time.Unix(1700000000, 0)

	c.put("/a", parsedEntry{modTime: mtime})
	c.put("/b", parsedEntry{modTime: mtime})
	_, _ = c.get("/a", mtime, 0)
	c.put("/c", parsedEntry{modTime: mtime})

	_, ok := c.get("/b", mtime, 0)
	assert.False(t, ok)
	_, ok = c.get("/a", mtime, 0)
	assert.True(t, ok)
	_, ok = c.get("/c", mtime, 0)
	assert.True(t, ok)
}
