// Package cache хранит в Redis соответствие hash публичной ссылки -> id владельца.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const keyPrefix = "linkkeeper:share:"

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "share_cache_hits_total",
		Help: "Total number of share hash cache hits",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "share_cache_misses_total",
		Help: "Total number of share hash cache misses",
	})
)

// NewRedisClient подключается к Redis и проверяет соединение.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
		IdleTimeout:  5 * time.Minute,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

// ShareCache реализует service.LinkCache поверх Redis.
type ShareCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewShareCache(client *redis.Client, ttl time.Duration) *ShareCache {
	return &ShareCache{client: client, ttl: ttl}
}

func key(hash string) string { return keyPrefix + hash }

func (c *ShareCache) Get(ctx context.Context, hash string) (int64, bool, error) {
	val, err := c.client.Get(ctx, key(hash)).Result()
	if errors.Is(err, redis.Nil) {
		cacheMisses.Inc()
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// мусор в кеше считаем промахом и удаляем
		_ = c.client.Del(ctx, key(hash)).Err()
		cacheMisses.Inc()
		return 0, false, nil
	}
	cacheHits.Inc()
	return id, true, nil
}

func (c *ShareCache) Set(ctx context.Context, hash string, userID int64) error {
	return c.client.Set(ctx, key(hash), strconv.FormatInt(userID, 10), c.ttl).Err()
}

func (c *ShareCache) Delete(ctx context.Context, hash string) error {
	return c.client.Del(ctx, key(hash)).Err()
}
