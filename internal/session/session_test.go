package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/happi-pos/backend/internal/cfg"
	"github.com/happi-pos/backend/internal/usecase"
	"github.com/happi-pos/backend/pkg/clients"
)

func testStore(t *testing.T) *RedisStore {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set, skipping integration test")
	}

	client := clients.NewRedisClient(&config.RedisCfg{
		Addr:        addr,
		MaxRetries:  1,
		DialTimeout: 2 * time.Second,
		Timeout:     2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	t.Cleanup(func() { client.Client.Close() })

	return NewRedisStore(client, &config.AuthCfg{SessionTTL: time.Minute})
}

func TestSessionRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, &usecase.SessionData{UserID: 7, Email: "admin@happi.mx", Name: "Admin"})
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 байта в hex

	data, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, int64(7), data.UserID)
	assert.Equal(t, "admin@happi.mx", data.Email)

	require.NoError(t, store.Destroy(ctx, token))

	data, err = store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestUnknownTokenIsMiss(t *testing.T) {
	store := testStore(t)

	data, err := store.Get(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestTokensAreUnique(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		token, err := store.Create(ctx, &usecase.SessionData{UserID: int64(i)})
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}

		store.Destroy(ctx, token)
	}
}
