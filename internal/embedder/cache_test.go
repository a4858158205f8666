package embedder

import (
	"fmt"
	"testing"
)

func TestCacheGetPut(t *testing.T) {
	cache := NewCache(10)

	if _, ok := cache.Get("missing"); ok {
		t.Error("expected miss on empty cache")
	}

	cache.Put("key", []float32{1, 2, 3})

	vec, ok := cache.Get("key")
	if !ok {
		t.Fatal("expected hit after Put")
	}

	if len(vec) != 3 || vec[0] != 1 {
		t.Errorf("got %v, want [1 2 3]", vec)
	}
}

func TestCacheFIFOEviction(t *testing.T) {
	cache := NewCache(100)

	// insert 101 distinct keys
	for i := 0; i < 101; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), []float32{float32(i)})
	}

	if cache.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", cache.Len())
	}

	// the very first inserted key is evicted
	if _, ok := cache.Get("key-0"); ok {
		t.Error("oldest key should have been evicted")
	}

	// the 100 most recently inserted keys are retrievable
	for i := 1; i <= 100; i++ {
		if _, ok := cache.Get(fmt.Sprintf("key-%d", i)); !ok {
			t.Errorf("key-%d should still be cached", i)
		}
	}
}

func TestCacheEvictionIsInsertionOrderNotLRU(t *testing.T) {
	cache := NewCache(2)

	cache.Put("a", []float32{1})
	cache.Put("b", []float32{2})

	// touching "a" must not protect it from eviction
	cache.Get("a")

	cache.Put("c", []float32{3})

	if _, ok := cache.Get("a"); ok {
		t.Error("eviction should be FIFO by insertion, not LRU")
	}

	if _, ok := cache.Get("b"); !ok {
		t.Error("expected b to survive")
	}
}

func TestCacheOverwriteKeepsPosition(t *testing.T) {
	cache := NewCache(2)

	cache.Put("a", []float32{1})
	cache.Put("b", []float32{2})
	cache.Put("a", []float32{9}) // overwrite, no new slot

	vec, ok := cache.Get("a")
	if !ok || vec[0] != 9 {
		t.Fatalf("got %v, want overwritten value", vec)
	}

	// "a" retains its original insertion position and goes first
	cache.Put("c", []float32{3})

	if _, ok := cache.Get("a"); ok {
		t.Error("overwritten key should keep its original eviction order")
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache(10)

	cache.Put("a", []float32{1})
	cache.Put("b", []float32{2})
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", cache.Len())
	}

	// cleared cache accepts new entries
	cache.Put("c", []float32{3})

	if _, ok := cache.Get("c"); !ok {
		t.Error("expected hit after re-populating cleared cache")
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	cache := NewCache(0)

	for i := 0; i < DefaultCacheCapacity+1; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), []float32{1})
	}

	if cache.Len() != DefaultCacheCapacity {
		t.Errorf("Len() = %d, want %d", cache.Len(), DefaultCacheCapacity)
	}
}
