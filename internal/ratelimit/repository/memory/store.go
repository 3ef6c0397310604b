package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"advisor-edge/internal/ratelimit"
)

// Store keeps entries in a bounded in-process LRU. The LRU's own TTL is a
// memory backstop; window expiry is decided by Entry.ResetTime.
type Store struct {
	cache *expirable.LRU[string, ratelimit.Entry]
}

// New creates a Store holding at most capacity keys, each evicted after ttl.
func New(capacity int, ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[string, ratelimit.Entry](capacity, nil, ttl),
	}
}

func (s *Store) Get(_ context.Context, key string) (ratelimit.Entry, bool, error) {
	e, ok := s.cache.Get(key)
	return e, ok, nil
}

func (s *Store) Set(_ context.Context, key string, entry ratelimit.Entry) error {
	s.cache.Add(key, entry)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

// Prune removes every entry whose window ended before now.
func (s *Store) Prune(_ context.Context, now time.Time) error {
	for _, key := range s.cache.Keys() {
		if e, ok := s.cache.Peek(key); ok && e.Expired(now) {
			s.cache.Remove(key)
		}
	}
	return nil
}

// Len returns the number of live keys.
func (s *Store) Len() int {
	return s.cache.Len()
}
