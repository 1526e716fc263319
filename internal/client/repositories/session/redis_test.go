package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewRedisRepository(rdb, "")
}

func TestRedis_SaveThenLoad(t *testing.T) {
	mr, r := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, alice))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	tok, err := mr.Get("carbid:session:token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
}

func TestRedis_LoadEmpty(t *testing.T) {
	_, r := setupRedis(t)

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestRedis_Clear(t *testing.T) {
	mr, r := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, alice))
	require.NoError(t, r.Clear(ctx))

	assert.False(t, mr.Exists("carbid:session:token"))
	assert.False(t, mr.Exists("carbid:session:user"))
	_, err := r.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestRedis_CustomPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	r := NewRedisRepository(rdb, "term2")

	require.NoError(t, r.Save(context.Background(), models.Session{Token: "x"}))
	assert.True(t, mr.Exists("term2:token"))
}

func TestRedis_ServerDown(t *testing.T) {
	mr, r := setupRedis(t)
	mr.Close()

	_, err := r.Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load session")
}
