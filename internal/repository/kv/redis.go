package kv

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/Taichi-iskw/tv-guide/internal/errors"
)

// RedisKeyPrefix namespaces every key the guide writes to redis
const RedisKeyPrefix = "tvguide:"

// RedisStore implements Store on a redis server
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to redisURL and verifies the connection with a ping
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidArg, "invalid redis URL")
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, apperrors.Wrap(err, apperrors.CodeUnavailable, "redis connection failed")
	}

	return &RedisStore{rdb: rdb}, nil
}

// Get retrieves the value stored under key
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", notFound(key)
	}
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to get value from redis")
	}
	return value, nil
}

// Set stores value under key without expiry
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, redisKey(key), value, 0).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to set value in redis")
	}
	return nil
}

// Close shuts down the Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func redisKey(key string) string {
	return RedisKeyPrefix + key
}
