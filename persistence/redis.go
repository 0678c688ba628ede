package persistence

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"

	"maizonmarie_server/structs"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// redisGateway stores the snapshot under one fixed key with no TTL.
type redisGateway struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func newRedisGateway(logger *gecho.Logger, cfg *structs.Config) *redisGateway {
	return &redisGateway{
		logger: logger,
		config: cfg,
		client: getRedisClient(cfg),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient(cfg *structs.Config) *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Address,
			Username: cfg.Store.Username,
			Password: cfg.Store.Password,
			DB:       cfg.Store.DB,

			// Connection pool settings
			PoolSize:        cfg.Store.PoolSize,
			MinIdleConns:    cfg.Store.MinIdleConns,
			MaxIdleConns:    cfg.Store.MaxIdleConns,
			PoolTimeout:     cfg.Store.PoolTimeout,
			ConnMaxIdleTime: cfg.Store.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Store.DialTimeout,
			ReadTimeout:  cfg.Store.ReadTimeout,
			WriteTimeout: cfg.Store.WriteTimeout,

			MaxRetries: cfg.Store.MaxRetries,
		})
	})
	return redisClient
}

func (g *redisGateway) Load(ctx context.Context) ([]byte, error) {
	var result []byte

	err := g.withRetry(func() error {
		val, err := g.client.Get(ctx, g.config.Store.SnapshotKey).Bytes()
		if err == redis.Nil {
			result = nil
			return nil // key absent is not an error, let the caller seed
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, g.config.Store.MaxRetries)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (g *redisGateway) Save(ctx context.Context, payload []byte) error {
	return g.withRetry(func() error {
		return g.client.Set(ctx, g.config.Store.SnapshotKey, payload, 0).Err()
	}, g.config.Store.MaxRetries)
}

func (g *redisGateway) Ping(ctx context.Context) error {
	return g.withRetry(func() error {
		return g.client.Ping(ctx).Err()
	}, g.config.Store.MaxRetries)
}

func (g *redisGateway) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (g *redisGateway) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't retry on the last attempt
		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors like key not found
		if !isRetryableError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		_, err = rand.Read(jitterBytes)
		if err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))

		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableError determines if an error is worth retrying
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on nil results (key not found)
	if err == redis.Nil {
		return false
	}

	// Retry on network/connection errors
	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}
