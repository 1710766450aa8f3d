package utils

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "boatyard:response:"

// ResponseCache - кэш JSON-ответов API в Redis. nil-кэш ничего не хранит.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache подключается к Redis. Без адреса или с нулевым TTL кэш выключен (nil, nil).
func NewResponseCache(ctx context.Context, endpoint, password string, ttl time.Duration) (*ResponseCache, error) {
	if endpoint == "" || ttl <= 0 {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     endpoint,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	logrus.Infof("redis response cache enabled, ttl=%s", ttl)
	return NewResponseCacheWithClient(client, ttl), nil
}

func NewResponseCacheWithClient(client *redis.Client, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, ttl: ttl}
}

// CacheKey - ключ ответа по методу и URI запроса
func CacheKey(method, requestURI string) string {
	return cacheKeyPrefix + method + ":" + requestURI
}

// Get - тело из кэша, ok=false при промахе
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	body, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (c *ResponseCache) Set(ctx context.Context, key string, body []byte) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, key, body, c.ttl).Err()
}

func (c *ResponseCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
