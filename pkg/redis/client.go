package redis

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stockmarket/notifier/pkg/errors"
	"github.com/stockmarket/notifier/pkg/logger"
)

type client struct {
	logger logger.Interface
	config *Config

	mu  sync.RWMutex
	rdb redis.UniversalClient
}

// NewClient creates a new Redis client with the provided logger and configuration.
// Connect must be called before use.
func NewClient(logger logger.Interface, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

func (c *client) validate() error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", errors.RedisConfigError.String(), "connect")
	}

	switch {
	case len(c.config.Addrs) == 0:
		return errors.NewErrorDetails("Redis addresses are empty", errors.RedisConfigError.String(), "addrs")
	case c.config.Mode != Standalone && c.config.Mode != Cluster:
		return errors.NewErrorDetails("Invalid Redis mode", errors.RedisConfigError.String(), "mode")
	case c.config.ConnectTimeout <= 0:
		return errors.NewErrorDetails("Invalid Redis connect timeout", errors.RedisConfigError.String(), "connect_timeout")
	case c.config.PoolSize <= 0:
		return errors.NewErrorDetails("Invalid Redis pool size", errors.RedisConfigError.String(), "pool_size")
	case c.config.MinIdleConns < 0 || c.config.MaxIdleConns < 0:
		return errors.NewErrorDetails("Invalid Redis idle connections", errors.RedisConfigError.String(), "idle_conns")
	case c.config.ConnMaxLifetime <= 0:
		return errors.NewErrorDetails("Invalid Redis connection max lifetime", errors.RedisConfigError.String(), "conn_max_lifetime")
	case c.config.ConnMaxIdleTime <= 0:
		return errors.NewErrorDetails("Invalid Redis connection max idle time", errors.RedisConfigError.String(), "conn_max_idle_time")
	case c.config.PoolTimeout <= 0:
		return errors.NewErrorDetails("Invalid Redis pool timeout", errors.RedisConfigError.String(), "pool_timeout")
	case c.config.MaxRetries < 0:
		return errors.NewErrorDetails("Invalid Redis max retries", errors.RedisConfigError.String(), "max_retries")
	case c.config.MinRetryBackoff < 0 || c.config.MaxRetryBackoff < 0:
		return errors.NewErrorDetails("Invalid Redis retry backoff", errors.RedisConfigError.String(), "retry_backoff")
	}
	return nil
}

func (c *client) Connect(ctx context.Context) error {
	if err := c.validate(); err != nil {
		return err
	}

	opts := &redis.UniversalOptions{
		Addrs:           c.config.Addrs,
		Username:        c.config.Username,
		Password:        c.config.Password,
		MaxRetries:      c.config.MaxRetries,
		MinRetryBackoff: c.config.MinRetryBackoff,
		MaxRetryBackoff: c.config.MaxRetryBackoff,
		DialTimeout:     c.config.ConnectTimeout,
		ReadTimeout:     c.config.ConnectTimeout,
		WriteTimeout:    c.config.ConnectTimeout,
		PoolSize:        c.config.PoolSize,
		MinIdleConns:    c.config.MinIdleConns,
		MaxIdleConns:    c.config.MaxIdleConns,
		ConnMaxLifetime: c.config.ConnMaxLifetime,
		ConnMaxIdleTime: c.config.ConnMaxIdleTime,
		PoolTimeout:     c.config.PoolTimeout,
	}

	// Cluster mode has no databases and is selected explicitly, even with a single seed address.
	var rdb redis.UniversalClient
	if c.config.Mode == Cluster {
		rdb = redis.NewClusterClient(opts.Cluster())
	} else {
		opts.DB = c.config.DB
		rdb = redis.NewClient(opts.Simple())
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return errors.TracerFromError(errors.NewErrorDetails(
			"Failed to connect to Redis: "+err.Error(),
			errors.RedisConnectionError.String(),
			"connect",
		))
	}

	c.mu.Lock()
	prev := c.rdb
	c.rdb = rdb
	c.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

func (c *client) conn() redis.UniversalClient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rdb
}

// Reconnect retries Connect with exponential backoff and jitter. It reports
// whether a connection was established. Callers keep using the previous
// connection until a new one is up.
func (c *client) Reconnect(ctx context.Context) bool {
	baseDelay := c.config.MinRetryBackoff
	maxDelay := c.config.MaxRetryBackoff

	for i := range c.config.ReconnectMaxRetries {
		backoff := min(baseDelay*time.Duration(math.Pow(2, float64(i))), maxDelay)
		totalDelay := backoff + time.Duration(rand.IntN(1000))*time.Millisecond

		c.logger.Info("Reconnecting to Redis",
			logger.Field{Key: "attempt", Value: i + 1},
			logger.Field{Key: "delay", Value: totalDelay},
		)

		select {
		case <-ctx.Done():
			c.logger.Info("Reconnect cancelled", logger.Field{Key: "reason", Value: ctx.Err()})
			return false
		case <-time.After(totalDelay):
			connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := c.Connect(connectCtx)
			cancel()
			if err == nil {
				c.logger.Info("Reconnected to Redis successfully", logger.Field{Key: "attempt", Value: i + 1})
				return true
			}
			c.logger.Error(err, logger.Field{Key: "attempt", Value: i + 1})
		}
	}

	return false
}

func (c *client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	rdb := c.rdb
	c.rdb = nil
	c.mu.Unlock()

	if rdb == nil {
		return nil
	}

	if err := rdb.Close(); err != nil {
		return errors.NewErrorDetails("Failed to disconnect from Redis: "+err.Error(), errors.RedisDisconnectionError.String(), "disconnect")
	}
	return nil
}

func (c *client) Ping(ctx context.Context) error {
	rdb := c.conn()
	if rdb == nil {
		return errors.NewErrorDetails("Redis is not connected", errors.RedisPingError.String(), "ping")
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails("Failed to ping Redis: "+err.Error(), errors.RedisPingError.String(), "ping")
	}
	return nil
}

func (c *client) Get(ctx context.Context, key string) (string, bool, error) {
	rdb := c.conn()
	if rdb == nil {
		return "", false, errors.NewErrorDetails("Redis is not connected", errors.RedisGetError.String(), key)
	}

	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewErrorDetails("Failed to get value from Redis: "+err.Error(), errors.RedisGetError.String(), key)
	}
	return val, true, nil
}

func (c *client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	rdb := c.conn()
	if rdb == nil {
		return errors.NewErrorDetails("Redis is not connected", errors.RedisSetError.String(), key)
	}

	if err := rdb.Set(ctx, key, value, expiration).Err(); err != nil {
		return errors.NewErrorDetails("Failed to set value in Redis: "+err.Error(), errors.RedisSetError.String(), key)
	}
	return nil
}

// Publish sends message to channel. Having no subscribers is not an error.
func (c *client) Publish(ctx context.Context, channel string, message any) (int64, error) {
	rdb := c.conn()
	if rdb == nil {
		return 0, errors.NewErrorDetails("Redis is not connected", errors.RedisPublishError.String(), channel)
	}

	received, err := rdb.Publish(ctx, channel, message).Result()
	if err != nil {
		return 0, errors.NewErrorDetails("Failed to publish message to Redis: "+err.Error(), errors.RedisPublishError.String(), channel)
	}
	return received, nil
}
