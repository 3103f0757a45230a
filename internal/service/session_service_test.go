package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewSessionStore(rdb, ttl), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionResolveUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionResolveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(45 * time.Second)
	_, err = store.Resolve(ctx, token)
	require.NoError(t, err)

	// The earlier resolve pushed expiry out by a full TTL.
	mr.FastForward(45 * time.Second)
	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionDestroy(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, store.Destroy(ctx, "already-gone"))
}
