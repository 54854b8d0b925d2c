package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/najia/pkg/adapters/redis"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func reading(id string) *domain.Reading {
	return &domain.Reading{Case: domain.Case{
		ID:     id,
		Method: domain.MethodNumbers,
		Original: domain.Hexagram{
			Number: 1, Lower: domain.Qian, Upper: domain.Qian, Palace: domain.Qian,
		},
	}}
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ports.RunReadingStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	store := redis.NewFromClient(client,
		redis.WithTTL(time.Second),
		redis.WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, reading("reading-ttl")))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "reading-ttl")

	// Key expiration is driven by miniredis, index pruning by the store clock.
	mr.FastForward(2 * time.Second)
	now = now.Add(2 * time.Second)

	_, err = store.Load(ctx, "reading-ttl")
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, reading("my-reading")))

	assert.True(t, mr.Exists("custom:app:my-reading"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "my-reading")
	assert.NoError(t, store.Ping(ctx))
}
