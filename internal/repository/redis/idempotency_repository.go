package redis

import (
	"context"
	"errors"
	"fmt"
	"goodsStore/domain"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// idem:order:create:{key} -> "pending" while the order is being written,
	// then the order id
	keyIdemOrderCreate = "idem:order:create:%s"
	pendingMarker      = "pending"
)

var (
	TTLIdempotency = 24 * time.Hour
	TTLInFlight    = 30 * time.Second
)

type IdempotencyRepository struct {
	client *redis.Client
}

func NewIdempotencyRepository(client *redis.Client) *IdempotencyRepository {
	return &IdempotencyRepository{
		client: client,
	}
}

// Reserve claims key for a new order. When the key already belongs to a
// finished order its id is returned with reserved=false.
func (r *IdempotencyRepository) Reserve(ctx context.Context, key string) (uint64, bool, error) {
	redisKey := fmt.Sprintf(keyIdemOrderCreate, key)

	ok, err := r.client.SetNX(ctx, redisKey, pendingMarker, TTLInFlight).Result()
	if err != nil {
		return 0, false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	if ok {
		return 0, true, nil
	}

	val, err := r.client.Get(ctx, redisKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// reservation expired between SETNX and GET
			return 0, false, domain.ErrIdempotencyInFlight
		}
		return 0, false, fmt.Errorf("failed to read idempotency key: %w", err)
	}

	if val == pendingMarker {
		return 0, false, domain.ErrIdempotencyInFlight
	}

	orderID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt idempotency value %q: %w", val, err)
	}

	return orderID, false, nil
}

// Complete binds key to the created order.
func (r *IdempotencyRepository) Complete(ctx context.Context, key string, orderID uint64) error {
	redisKey := fmt.Sprintf(keyIdemOrderCreate, key)

	if err := r.client.Set(ctx, redisKey, strconv.FormatUint(orderID, 10), TTLIdempotency).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}

	return nil
}

// Release drops a reservation after a failed attempt so the client can retry.
func (r *IdempotencyRepository) Release(ctx context.Context, key string) error {
	redisKey := fmt.Sprintf(keyIdemOrderCreate, key)

	if err := r.client.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
