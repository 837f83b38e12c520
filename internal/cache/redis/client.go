package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/londailey6937/chapter-analysis/pkg/circuitbreaker"
	"github.com/londailey6937/chapter-analysis/pkg/logger"
	"github.com/londailey6937/chapter-analysis/pkg/retry"
)

// Client caches analysis reports keyed by document content hash. The core
// pipeline is a pure function, so a cache hit is always byte-equivalent to
// recomputation. All operations run behind a circuit breaker: when redis is
// down the caller falls through to recomputation instead of failing.
type Client struct {
	client  *redis.Client
	breaker *circuitbreaker.CircuitBreaker
	ttl     time.Duration
}

func NewClient(host string, port int, password string, db int, ttl time.Duration) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Report cache initialized", zap.String("addr", fmt.Sprintf("%s:%d", host, port)))

	return &Client{
		client: client,
		breaker: circuitbreaker.NewCircuitBreaker("report-cache", circuitbreaker.Config{
			FailureThreshold: 3,
			Timeout:          30 * time.Second,
		}),
		ttl: ttl,
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// SetReport stores a serialized report under the document key.
func (c *Client) SetReport(ctx context.Context, key string, report interface{}) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	err = c.breaker.Execute(ctx, func() error {
		return c.client.Set(ctx, "report:"+key, data, c.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}

	logger.Debug("Report cached", zap.String("key", key), zap.Duration("ttl", c.ttl))
	return nil
}

// GetReport loads a cached report into out. Returns false on miss or when
// the breaker is open.
func (c *Client) GetReport(ctx context.Context, key string, out interface{}) (bool, error) {
	var data []byte
	err := c.breaker.Execute(ctx, func() error {
		var inner error
		data, inner = c.client.Get(ctx, "report:"+key).Bytes()
		if inner == redis.Nil {
			data = nil
			return nil
		}
		return inner
	})
	if err != nil {
		return false, fmt.Errorf("failed to read report cache: %w", err)
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}

	logger.Debug("Report cache hit", zap.String("key", key))
	return true, nil
}

// Invalidate removes every cached report, used when extraction tunables
// change at runtime.
func (c *Client) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "report:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("Failed to delete cache key", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to iterate cache keys: %w", err)
	}

	logger.Info("Report cache invalidated")
	return nil
}
