package redis

import (
	"context"
	"fmt"
	"goodsStore/pkg/config"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Idempotency keys are single round trips, a small pool is enough and
// short timeouts keep a slow redis from stretching checkout latency.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
	poolSize    = 10
)

// Options maps the redis settings onto client options.
func Options(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolSize:     poolSize,
		MinIdleConns: 1,
	}
}

// Connect opens a client and checks it answers PING before ctx expires.
// The client is closed again when it does not.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(Options(cfg))

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", client.Options().Addr, err)
	}

	return client, nil
}

func Close(client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
