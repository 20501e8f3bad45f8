package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pressim:run:"

// RedisStore keeps runs as JSON documents with an expiry, so several API instances can share them.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore connects using a redis:// URL and pings the server once.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	log.Printf("[Store] Connected to redis at %s (ttl=%v)", opts.Addr, ttl)
	return NewRedisStoreWithClient(rdb, ttl), nil
}

func NewRedisStoreWithClient(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func runKey(id string) string {
	return keyPrefix + id
}

func (s *RedisStore) Save(ctx context.Context, r *Run) (string, error) {
	if r == nil {
		return "", errors.New("run is nil")
	}
	prepare(r, time.Now())

	raw, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode run: %w", err)
	}
	// 0 means no expiry in redis as well
	if err := s.rdb.Set(ctx, runKey(r.ID), raw, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set: %w", err)
	}
	return r.ID, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Run, error) {
	raw, err := s.rdb.Get(ctx, runKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var r Run
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode run %s: %w", id, err)
	}
	return &r, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
