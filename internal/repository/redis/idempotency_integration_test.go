//go:build integration

package redis

import (
	"context"
	"goodsStore/domain"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestIdempotencyRepository(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	repo := NewIdempotencyRepository(client)

	_, reserved, err := repo.Reserve(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, reserved)

	_, _, err = repo.Reserve(ctx, "cart-1")
	assert.ErrorIs(t, err, domain.ErrIdempotencyInFlight)

	require.NoError(t, repo.Complete(ctx, "cart-1", 42))

	id, reserved, err := repo.Reserve(ctx, "cart-1")
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, uint64(42), id)

	ttl, err := client.TTL(ctx, "idem:order:create:cart-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Hour)

	_, reserved, err = repo.Reserve(ctx, "cart-2")
	require.NoError(t, err)
	require.True(t, reserved)
	require.NoError(t, repo.Release(ctx, "cart-2"))

	_, reserved, err = repo.Reserve(ctx, "cart-2")
	require.NoError(t, err)
	assert.True(t, reserved)
}
