package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T, capacity int) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s, err := New(Config{Capacity: capacity, TTL: DefaultTTL, Now: clock.Now})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, clock
}

func TestGetAfterSet(t *testing.T) {
	s, _ := newTestStore(t, DefaultCapacity)
	s.Set("creature:pikachu", "value")

	got, ok := s.Get("creature:pikachu")
	if !ok || got != "value" {
		t.Fatalf("Get() = %v, %v; want value, true", got, ok)
	}
	if _, ok := s.Get("creature:raichu"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	s, clock := newTestStore(t, DefaultCapacity)
	s.Set("k", 1)

	clock.Advance(DefaultTTL)
	if _, ok := s.Get("k"); ok {
		t.Fatal("expected entry to be expired")
	}
	if st := s.Stats(); st.Size != 0 || st.Expirations != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestGetSlidesExpiration(t *testing.T) {
	s, clock := newTestStore(t, DefaultCapacity)
	s.Set("k", 1)

	clock.Advance(9 * time.Minute)
	if _, ok := s.Get("k"); !ok {
		t.Fatal("expected hit before ttl")
	}
	clock.Advance(9 * time.Minute)
	if _, ok := s.Get("k"); !ok {
		t.Fatal("get should have refreshed the entry's age")
	}
	clock.Advance(DefaultTTL)
	if _, ok := s.Get("k"); ok {
		t.Fatal("expected expiry after a full idle ttl")
	}
}

func TestStatsReflectOnlyLiveEntries(t *testing.T) {
	s, clock := newTestStore(t, DefaultCapacity)
	s.Set("old", 1)
	clock.Advance(5 * time.Minute)
	s.Set("new", 2)
	clock.Advance(6 * time.Minute)

	st := s.Stats()
	if st.Size != 1 {
		t.Fatalf("expected 1 live entry, got %d", st.Size)
	}
	if st.Capacity != DefaultCapacity || st.TTL != DefaultTTL || st.TTLMillis != 600000 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestOverflowEvictsLeastRecentlyUsed(t *testing.T) {
	s, clock := newTestStore(t, DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		s.Set(fmt.Sprintf("k%d", i), i)
		clock.Advance(time.Millisecond)
	}

	s.Set("k120", 120)

	if _, ok := s.Get("k0"); ok {
		t.Fatal("expected k0 to be evicted")
	}
	for _, key := range []string{"k1", "k119", "k120"} {
		if _, ok := s.Get(key); !ok {
			t.Fatalf("expected %s to survive", key)
		}
	}
	if st := s.Stats(); st.Size != DefaultCapacity || st.Evictions != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestGetPromotesToMostRecentlyUsed(t *testing.T) {
	s, _ := newTestStore(t, 3)
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)

	if _, ok := s.Get("a"); !ok {
		t.Fatal("expected hit for a")
	}
	s.Set("d", 4)

	if _, ok := s.Get("b"); ok {
		t.Fatal("expected b to be evicted after a was touched")
	}
	if _, ok := s.Get("a"); !ok {
		t.Fatal("expected a to survive")
	}
}

func TestSetPrefersDroppingExpiredEntries(t *testing.T) {
	s, clock := newTestStore(t, 2)
	s.Set("stale", 1)
	clock.Advance(8 * time.Minute)
	s.Set("fresh", 2)
	clock.Advance(3 * time.Minute)

	s.Set("newest", 3)

	if st := s.Stats(); st.Evictions != 0 || st.Expirations != 1 || st.Size != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if _, ok := s.Get("fresh"); !ok {
		t.Fatal("live entry should not have been evicted")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{Capacity: 0, TTL: time.Minute}); err == nil {
		t.Fatal("expected error for zero capacity")
	}
	if _, err := New(Config{Capacity: 1}); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(t, 16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*31+i)%40)
				s.Set(key, i)
				s.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if st := s.Stats(); st.Size > 16 {
		t.Fatalf("size %d exceeds capacity", st.Size)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	s, _ := newTestStore(t, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t, DefaultCapacity)
	s.Set("creature:eevee", "value")

	if !s.Delete("creature:eevee") {
		t.Fatal("expected Delete to report a present key")
	}
	if s.Delete("creature:eevee") {
		t.Fatal("expected second Delete to report a missing key")
	}
	if _, ok := s.Get("creature:eevee"); ok {
		t.Fatal("deleted key is still readable")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
}
