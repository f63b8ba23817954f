// Package cache is the process-wide response cache: a fixed number of
// entries, each living for TTL since its last access, with least recently
// used eviction once capacity is reached.
package cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const (
	DefaultCapacity = 120
	DefaultTTL      = 10 * time.Minute
)

type Config struct {
	Capacity int
	TTL      time.Duration
	Now      func() time.Time // nil means time.Now
}

func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity, TTL: DefaultTTL}
}

type entry struct {
	value   any
	touched time.Time
}

// Store is safe for concurrent use. Every operation runs under one mutex,
// so reads, writes, expiry and eviction never interleave.
type Store struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[string, entry]
	capacity int
	ttl      time.Duration
	now      func() time.Time

	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64
}

type Stats struct {
	Size        int           `json:"size"`
	Capacity    int           `json:"capacity"`
	TTL         time.Duration `json:"-"`
	TTLMillis   int64         `json:"ttl_ms"`
	Hits        uint64        `json:"hits"`
	Misses      uint64        `json:"misses"`
	Evictions   uint64        `json:"evictions"`
	Expirations uint64        `json:"expirations"`
}

func New(cfg Config) (*Store, error) {
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("cache capacity must be positive, got %d", cfg.Capacity)
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", cfg.TTL)
	}
	l, err := simplelru.NewLRU[string, entry](cfg.Capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("new lru: %w", err)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Store{lru: l, capacity: cfg.Capacity, ttl: cfg.TTL, now: now}, nil
}

func MustNew(cfg Config) *Store {
	s, err := New(cfg)
	if err != nil {
		log.Fatalf("failed to create cache: %v", err)
	}
	return s
}

// Get returns the live value for key and refreshes both its age and its
// recency. Expired entries are removed and reported as absent.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.lru.Get(key)
	if !ok {
		s.misses++
		return nil, false
	}
	if s.expired(e, now) {
		s.lru.Remove(key)
		s.expirations++
		s.misses++
		return nil, false
	}
	e.touched = now
	s.lru.Add(key, e)
	s.hits++
	return e.value, true
}

// Set stores value under key. Expired entries are dropped first so a live
// entry is only evicted when the store is genuinely full.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)
	if s.lru.Add(key, entry{value: value, touched: now}) {
		s.evictions++
	}
}

// Delete removes key and reports whether it was present.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Remove(key)
}

// Purge removes every expired entry and returns how many were dropped.
func (s *Store) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purgeLocked(s.now())
}

// Len counts live entries only.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked(s.now())
	return s.lru.Len()
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked(s.now())
	return Stats{
		Size:        s.lru.Len(),
		Capacity:    s.capacity,
		TTL:         s.ttl,
		TTLMillis:   s.ttl.Milliseconds(),
		Hits:        s.hits,
		Misses:      s.misses,
		Evictions:   s.evictions,
		Expirations: s.expirations,
	}
}

// Run purges expired entries every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = s.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Purge(); n > 0 {
				log.Printf("[cache] purged %d expired entries", n)
			}
		}
	}
}

// purgeLocked pops from the LRU tail. Recency order equals touch order, so
// the first live entry from the tail means every newer one is live too.
func (s *Store) purgeLocked(now time.Time) int {
	n := 0
	for {
		key, e, ok := s.lru.GetOldest()
		if !ok || !s.expired(e, now) {
			return n
		}
		s.lru.Remove(key)
		s.expirations++
		n++
	}
}

func (s *Store) expired(e entry, now time.Time) bool {
	return now.Sub(e.touched) >= s.ttl
}
