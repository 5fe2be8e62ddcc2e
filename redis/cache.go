package redis

import (
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const CacheDB DB = 3

// SentenceCache stores rewritten sentences with a fixed time to live.
type SentenceCache struct {
	client Client
	ttl    time.Duration
}

func NewSentenceCache(client Client, ttl time.Duration) *SentenceCache {
	return &SentenceCache{client: client, ttl: ttl}
}

func (cache *SentenceCache) Get(key string) (string, bool, error) {
	value, err := cache.client.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (cache *SentenceCache) Set(key string, value string) error {
	return cache.client.client.Set(ctx, key, value, cache.ttl).Err()
}

func (cache *SentenceCache) Close() error {
	return cache.client.Close()
}
