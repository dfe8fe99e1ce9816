package main

import (
	"context"
	"goodsStore/business/orders"
	redisRepo "goodsStore/internal/repository/redis"
	"goodsStore/pkg/config"
	redisdb "goodsStore/pkg/database/redis"
	"goodsStore/pkg/logger"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const redisConnectTimeout = 5 * time.Second

// idempotencyStore connects the Idempotency-Key store. Redis is optional:
// when it is not configured or unreachable the service starts without
// key handling and the returned client is nil.
func idempotencyStore(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, []orders.Option) {
	if !cfg.Enabled() {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	client, err := redisdb.Connect(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unreachable, idempotency keys disabled", err)
		return nil, nil
	}

	logger.Info("Idempotency keys enabled", "redis_host", cfg.RedisHost)
	return client, []orders.Option{orders.WithIdempotencyStore(redisRepo.NewIdempotencyRepository(client))}
}
