package idempotency_test

import (
	"context"
	"testing"
	"time"

	"size-sync/core/idempotency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_MarkProcessed(t *testing.T) {
	store := idempotency.NewMemoryStore()
	defer store.Close()

	ctx := context.Background()

	first, err := store.MarkProcessed(ctx, "delivery-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.MarkProcessed(ctx, "delivery-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, again)

	other, err := store.MarkProcessed(ctx, "delivery-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, other)
	assert.Equal(t, 2, store.Size())
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := idempotency.NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	_, err := store.MarkProcessed(ctx, "short", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	again, err := store.MarkProcessed(ctx, "short", time.Minute)
	require.NoError(t, err)
	assert.True(t, again)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	store := idempotency.NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestNew(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		store, err := idempotency.New(idempotency.Config{Backend: "memory"})
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.NoError(t, store.Close())
	})

	t.Run("None", func(t *testing.T) {
		store, err := idempotency.New(idempotency.Config{Backend: "none"})
		assert.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := idempotency.New(idempotency.Config{Backend: "etcd"})
		assert.Error(t, err)
	})

	t.Run("Redis Unreachable", func(t *testing.T) {
		_, err := idempotency.New(idempotency.Config{Backend: "redis", RedisAddr: "127.0.0.1:1"})
		assert.ErrorContains(t, err, "failed to connect to redis")
	})
}

func TestConfig_TTL(t *testing.T) {
	assert.Equal(t, 24*time.Hour, idempotency.Config{}.TTL())
	assert.Equal(t, 90*time.Second, idempotency.Config{TTLSeconds: 90}.TTL())
}
