package cache_test

import (
	"testing"
	"time"

	"github.com/dailyforge/journal_backend/internal/core/domain"
	"github.com/dailyforge/journal_backend/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryListCache_MissThenHit(t *testing.T) {
	c := cache.NewEntryListCache(time.Minute)

	_, ok := c.Get()
	assert.False(t, ok)

	snapshot := []domain.Entry{{EntryID: "e1"}, {EntryID: "e2"}}
	c.Set(snapshot)

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, snapshot, got)
}

func TestEntryListCache_Invalidate(t *testing.T) {
	c := cache.NewEntryListCache(time.Minute)
	c.Set([]domain.Entry{{EntryID: "e1"}})

	c.Invalidate()

	_, ok := c.Get()
	assert.False(t, ok)
}

func TestEntryListCache_TTLExpiry(t *testing.T) {
	c := cache.NewEntryListCache(20 * time.Millisecond)
	c.Set([]domain.Entry{{EntryID: "e1"}})

	_, ok := c.Get()
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)

	_, ok = c.Get()
	assert.False(t, ok)
}

func TestEntryListCache_EmptySnapshotIsCacheable(t *testing.T) {
	c := cache.NewEntryListCache(time.Minute)
	c.Set([]domain.Entry{})

	got, ok := c.Get()
	require.True(t, ok)
	assert.Empty(t, got)
}
