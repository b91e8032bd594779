package cache

import (
	"strconv"
	"sync"
	"testing"
)

// glyphKey mirrors how the shaper keys outlines.
type glyphKey struct {
	font string
	gid  uint16
	size float64
}

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c.Capacity() != 100 {
		t.Errorf("Capacity() = %d, want 100", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if got := New[string, int](0).Capacity(); got != DefaultCapacity {
		t.Errorf("New(0).Capacity() = %d, want %d", got, DefaultCapacity)
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[glyphKey, int](10)
	k := glyphKey{"Go", 36, 12}
	c.Set(k, 42)

	if val, ok := c.Get(k); !ok || val != 42 {
		t.Errorf("Get() = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get(glyphKey{"Go", 36, 13}); ok {
		t.Error("Get() found a key with a different size")
	}

	c.Set(k, 7)
	if val, _ := c.Get(k); val != 7 || c.Len() != 1 {
		t.Errorf("after overwrite Get() = %d, Len() = %d; want 7, 1", val, c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func(v int) func() int {
		return func() int { calls++; return v }
	}
	if got := c.GetOrCreate("a", create(100)); got != 100 {
		t.Errorf("GetOrCreate() = %d, want 100", got)
	}
	if got := c.GetOrCreate("a", create(200)); got != 100 {
		t.Errorf("GetOrCreate() = %d, want the cached 100", got)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	if !c.Delete("a") {
		t.Error("Delete(existing) = false")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get() found a deleted key")
	}
	if c.Delete("a") {
		t.Error("Delete(missing) = true")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	for i := range 3 {
		c.Set(strconv.Itoa(i), i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set("x", 1)
	if c.Len() != 1 {
		t.Errorf("Len() after reuse = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)
	c.Get(1) // 2 is now the oldest
	c.Set(4, 4)

	if _, ok := c.Get(2); ok {
		t.Error("least recently used entry survived")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d evicted", k)
		}
	}
	if st := c.Stats(); st.Evictions != 1 || st.Len != 3 {
		t.Errorf("Stats() = %+v, want 1 eviction and 3 entries", st)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Errorf("Hits, Misses = %d, %d; want 2, 1", st.Hits, st.Misses)
	}
	if st.HitRate < 0.66 || st.HitRate > 0.67 {
		t.Errorf("HitRate = %v, want 2/3", st.HitRate)
	}
	c.ResetStats()
	if st := c.Stats(); st.Hits != 0 || st.Misses != 0 || st.HitRate != 0 {
		t.Errorf("Stats() after reset = %+v", st)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](1000)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.GetOrCreate(n*100+j, func() int { return j })
				c.Get(j)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want the capacity 1000", c.Len())
	}
}

func TestSharded(t *testing.T) {
	c := NewSharded[glyphKey, int](10)
	if c.Capacity() != 10 || c.TotalCapacity() != 10*DefaultShardCount {
		t.Errorf("Capacity() = %d, TotalCapacity() = %d", c.Capacity(), c.TotalCapacity())
	}

	k := glyphKey{"Go", 1, 10}
	c.Set(k, 42)
	if val, ok := c.Get(k); !ok || val != 42 {
		t.Errorf("Get() = %d, %v; want 42, true", val, ok)
	}
	if got := c.GetOrCreate(k, func() int { return 0 }); got != 42 {
		t.Errorf("GetOrCreate() = %d, want 42", got)
	}
	c.Get(glyphKey{"Go", 2, 10})

	st := c.Stats()
	if st.Len != 1 || st.Hits != 2 || st.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 entry, 2 hits, 1 miss", st)
	}
	if !c.Delete(k) || c.Len() != 0 {
		t.Error("Delete() did not remove the entry")
	}
}

func TestShardedShardLen(t *testing.T) {
	c := NewSharded[int, int](1000)
	for i := range 500 {
		c.Set(i, i)
	}
	total, used := 0, 0
	for _, l := range c.ShardLen() {
		total += l
		if l > 0 {
			used++
		}
	}
	if total != 500 || c.Len() != 500 {
		t.Errorf("shard lengths sum %d, Len() %d; want 500", total, c.Len())
	}
	if used < 2 {
		t.Errorf("keys landed in %d shard(s), want a spread", used)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestShardedConcurrent(t *testing.T) {
	c := NewSharded[int, int](100)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.Set(n*100+j, j)
				c.Get(j)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() == 0 || c.Len() > c.TotalCapacity() {
		t.Errorf("Len() = %d, want within (0, %d]", c.Len(), c.TotalCapacity())
	}
	c.ResetStats()
	if st := c.Stats(); st.Hits+st.Misses+st.Evictions != 0 {
		t.Errorf("Stats() after reset = %+v", st)
	}
}

func TestLRUList(t *testing.T) {
	l := newLRUList[string]()
	a := l.PushFront("a")
	b := l.PushFront("b")
	l.PushFront("c")
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if oldest, ok := l.Oldest(); !ok || oldest != "a" {
		t.Errorf("Oldest() = %q, want a", oldest)
	}

	l.MoveToFront(a)
	if oldest, _ := l.Oldest(); oldest != "b" {
		t.Errorf("Oldest() after MoveToFront = %q, want b", oldest)
	}

	l.Remove(b)
	l.Remove(b)
	if l.Len() != 2 {
		t.Errorf("Len() after double Remove = %d, want 2", l.Len())
	}
	if removed, ok := l.RemoveOldest(); !ok || removed != "c" {
		t.Errorf("RemoveOldest() = %q, want c", removed)
	}
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d", l.Len())
	}
}

func TestLRUListEmpty(t *testing.T) {
	l := newLRUList[int]()
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest() on empty list = true")
	}
	if _, ok := l.Oldest(); ok {
		t.Error("Oldest() on empty list = true")
	}
	l.Remove(nil)
	l.MoveToFront(nil)
}

func BenchmarkCacheHit(b *testing.B) {
	c := New[glyphKey, int](256)
	k := glyphKey{"Go", 36, 12}
	c.Set(k, 1)
	for b.Loop() {
		c.Get(k)
	}
}

func BenchmarkShardedParallel(b *testing.B) {
	c := NewSharded[int, int](256)
	for i := range 1024 {
		c.Set(i, i)
	}
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.Get(i & 1023)
			i++
		}
	})
}
