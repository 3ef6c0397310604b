package ratelimit

import (
	"context"
	"time"
)

// Store persists rate-limit entries by key.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
	Delete(ctx context.Context, key string) error
}

// Pruner is implemented by stores that need an explicit sweep of expired
// entries. Stores with native expiry (Redis) do not implement it.
type Pruner interface {
	Prune(ctx context.Context, now time.Time) error
}

// Checker decides whether a keyed call may proceed.
//
//go:generate mockery --name Checker
type Checker interface {
	Allow(ctx context.Context, key string) (bool, error)
}
