package fitness

import (
	"path/filepath"
	"testing"
)

func TestSQLiteCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := OpenSQLiteCache(path)
	if err != nil {
		t.Fatalf("OpenSQLiteCache: %v", err)
	}
	defer cache.Close()

	key := cacheKey("clang-format", "/tmp/a.cc", []byte("ColumnLimit: 100"))
	if _, ok := cache.Get(key); ok {
		t.Fatalf("expected miss before any Put")
	}

	want := FileScore{EditDistance: 5, DeletedLines: 2}
	cache.Put(key, want)

	got, ok := cache.Get(key)
	if !ok {
		t.Fatalf("expected hit after Put")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSQLiteCachePutOverwritesExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	cache, err := OpenSQLiteCache(path)
	if err != nil {
		t.Fatalf("OpenSQLiteCache: %v", err)
	}
	defer cache.Close()

	key := cacheKey("uncrustify", "/tmp/b.cc", []byte("nl_max=3"))
	cache.Put(key, FileScore{EditDistance: 1})
	cache.Put(key, FileScore{EditDistance: 9, Failed: true, Hard: true})

	got, ok := cache.Get(key)
	if !ok {
		t.Fatalf("expected hit after overwrite")
	}
	if got.EditDistance != 9 || !got.Failed || !got.Hard {
		t.Fatalf("got %+v, want overwritten score", got)
	}
}
