package cache

import (
	"time"

	"github.com/dailyforge/journal_backend/internal/core/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// listKey is the single cache key for the full entry list.
const listKey = "all_entries"

// EntryListCache memoizes the full entry-list snapshot for a short TTL.
// The underlying expirable LRU is internally synchronized and evicts expired
// values, so the cache stays bounded for the process lifetime. Writers must
// call Invalidate after every successful mutation.
type EntryListCache struct {
	lru *expirable.LRU[string, []domain.Entry]
}

// NewEntryListCache creates a list cache whose snapshots live at most ttl.
func NewEntryListCache(ttl time.Duration) *EntryListCache {
	// Size 1: there is only ever the single fixed key.
	return &EntryListCache{
		lru: expirable.NewLRU[string, []domain.Entry](1, nil, ttl),
	}
}

// Get returns the cached snapshot and whether it was present and fresh.
func (c *EntryListCache) Get() ([]domain.Entry, bool) {
	return c.lru.Get(listKey)
}

// Set stores a freshly computed snapshot.
func (c *EntryListCache) Set(entries []domain.Entry) {
	c.lru.Add(listKey, entries)
}

// Invalidate drops the snapshot. Called after every successful entry
// mutation so reads never serve a stale list beyond the TTL.
func (c *EntryListCache) Invalidate() {
	c.lru.Remove(listKey)
}
