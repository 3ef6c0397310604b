package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"advisor-edge/internal/ratelimit"
)

const (
	fieldCount = "count"
	fieldReset = "reset"
)

// Store keeps entries in Redis hashes that expire at the window's reset time.
// Keys are hashed so raw client fingerprints never leave the process.
type Store struct {
	client goredis.Cmdable
	prefix string
}

// New creates a Store. prefix namespaces keys, e.g. "advisor:rl:".
func New(client goredis.Cmdable, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) (ratelimit.Entry, bool, error) {
	fields, err := s.client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ratelimit.Entry{}, false, nil
		}
		return ratelimit.Entry{}, false, err
	}
	return decode(fields)
}

func (s *Store) Set(ctx context.Context, key string, entry ratelimit.Entry) error {
	k := s.key(key)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, k, encode(entry))
		pipe.PExpireAt(ctx, k, entry.ResetTime)
		return nil
	})
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *Store) key(key string) string {
	sum := sha256.Sum256([]byte(key))
	return s.prefix + hex.EncodeToString(sum[:])
}

func encode(e ratelimit.Entry) map[string]interface{} {
	return map[string]interface{}{
		fieldCount: e.Count,
		fieldReset: e.ResetTime.UnixMilli(),
	}
}

func decode(fields map[string]string) (ratelimit.Entry, bool, error) {
	if len(fields) == 0 {
		return ratelimit.Entry{}, false, nil
	}
	count, err := strconv.Atoi(fields[fieldCount])
	if err != nil {
		return ratelimit.Entry{}, false, err
	}
	resetMs, err := strconv.ParseInt(fields[fieldReset], 10, 64)
	if err != nil {
		return ratelimit.Entry{}, false, err
	}
	return ratelimit.Entry{Count: count, ResetTime: time.UnixMilli(resetMs)}, true, nil
}
