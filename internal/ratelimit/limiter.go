package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrInvalidConfig = errors.New("ratelimit: limit and window must be positive")

// Limiter caps calls per key within a fixed window that starts at the key's
// first call. The mutex serializes read-modify-write against the store within
// one process.
type Limiter struct {
	mu     sync.Mutex
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// New creates a Limiter over store.
func New(store Store, cfg Config) (*Limiter, error) {
	if cfg.Limit <= 0 || cfg.Window <= 0 {
		return nil, ErrInvalidConfig
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Limiter{
		store:  store,
		limit:  cfg.Limit,
		window: cfg.Window,
		now:    cfg.Now,
	}, nil
}

// Allow records a call for key and reports whether it is within the limit.
// A denied call does not increment the counter.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if p, ok := l.store.(Pruner); ok {
		if err := p.Prune(ctx, now); err != nil {
			return false, fmt.Errorf("ratelimit: prune: %w", err)
		}
	}

	entry, found, err := l.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("ratelimit: get: %w", err)
	}

	if !found || entry.Expired(now) {
		fresh := Entry{Count: 1, ResetTime: now.Add(l.window)}
		if err := l.store.Set(ctx, key, fresh); err != nil {
			return false, fmt.Errorf("ratelimit: set: %w", err)
		}
		return true, nil
	}

	if entry.Count >= l.limit {
		return false, nil
	}

	entry.Count++
	if err := l.store.Set(ctx, key, entry); err != nil {
		return false, fmt.Errorf("ratelimit: set: %w", err)
	}
	return true, nil
}
