package fitness

import "testing"

func TestLRUCacheGetPutRoundTrip(t *testing.T) {
	c := NewLRUCache(4)
	key := cacheKey("clang-format", "/tmp/a.cc", []byte("ColumnLimit: 80"))

	if _, ok := c.Get(key); ok {
		t.Fatalf("expected miss on empty cache")
	}

	c.Put(key, FileScore{EditDistance: 3, DeletedLines: 1})
	score, ok := c.Get(key)
	if !ok {
		t.Fatalf("expected hit after Put")
	}
	if score.EditDistance != 3 || score.DeletedLines != 1 {
		t.Fatalf("got %+v, want EditDistance=3 DeletedLines=1", score)
	}
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache(2)
	k1 := cacheKey("cmd", "a", []byte("1"))
	k2 := cacheKey("cmd", "b", []byte("2"))
	k3 := cacheKey("cmd", "c", []byte("3"))

	c.Put(k1, FileScore{EditDistance: 1})
	c.Put(k2, FileScore{EditDistance: 2})

	// Touch k1 so it is no longer the least recently used member.
	if _, ok := c.Get(k1); !ok {
		t.Fatalf("expected hit on k1")
	}

	c.Put(k3, FileScore{EditDistance: 3})

	if _, ok := c.Get(k2); ok {
		t.Fatalf("expected k2 to be evicted as least recently used")
	}
	if _, ok := c.Get(k1); !ok {
		t.Fatalf("expected k1 to survive eviction")
	}
	if _, ok := c.Get(k3); !ok {
		t.Fatalf("expected k3 to be present")
	}
}

func TestLRUCacheDefaultsCapacityWhenNonPositive(t *testing.T) {
	c := NewLRUCache(0)
	if c.Capacity != DefaultCacheCapacity {
		t.Fatalf("Capacity = %d, want DefaultCacheCapacity", c.Capacity)
	}
}

type mapCache struct {
	data map[string]FileScore
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string]FileScore)}
}

func (m *mapCache) Get(key string) (FileScore, bool) {
	score, ok := m.data[key]
	return score, ok
}

func (m *mapCache) Put(key string, score FileScore) {
	m.data[key] = score
}

func TestTieredCacheFallsBackToSecondaryAndBackfillsPrimary(t *testing.T) {
	primary := NewLRUCache(4)
	secondary := newMapCache()
	tiered := &TieredCache{Primary: primary, Secondary: secondary}

	key := "some-key"
	secondary.Put(key, FileScore{EditDistance: 9})

	score, ok := tiered.Get(key)
	if !ok || score.EditDistance != 9 {
		t.Fatalf("expected secondary hit with EditDistance=9, got %+v ok=%v", score, ok)
	}

	if _, ok := primary.Get(key); !ok {
		t.Fatalf("expected secondary hit to backfill primary")
	}
}

func TestTieredCacheWithoutSecondaryBehavesLikePrimary(t *testing.T) {
	primary := NewLRUCache(4)
	tiered := &TieredCache{Primary: primary}

	if _, ok := tiered.Get("missing"); ok {
		t.Fatalf("expected miss with no secondary configured")
	}
	tiered.Put("k", FileScore{EditDistance: 1})
	if _, ok := tiered.Get("k"); !ok {
		t.Fatalf("expected hit after Put with no secondary configured")
	}
}
