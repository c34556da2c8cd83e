package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"portfolio-site/infrastructure/logger"
)

// RedisBackend stores cache entries in Redis under a namespace prefix so
// Clear only touches this application's keys.
type RedisBackend struct {
	client    *redis.Client
	namespace string
}

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func NewRedisBackend(client *redis.Client, namespace string) *RedisBackend {
	return &RedisBackend{client: client, namespace: namespace}
}

func (b *RedisBackend) key(key string) string {
	return fmt.Sprintf("%s:%s", b.namespace, key)
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	val, err := b.client.Get(ctx, b.key(key)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	// Expiry is handled by the Store's TTL check; Redis keeps the value so
	// stale entries remain available for the fallback path.
	return b.client.Set(ctx, b.key(key), value, 0).Err()
}

func (b *RedisBackend) Clear(ctx context.Context) error {
	iter := b.client.Scan(ctx, 0, b.namespace+":*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := b.client.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	logger.GetLogger().WithField("keys", len(keys)).Info("Redis cache namespace cleared")
	return nil
}
