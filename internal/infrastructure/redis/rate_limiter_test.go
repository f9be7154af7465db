package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/redis"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

func mockRedisServer(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestFixedWindowLimiter(t *testing.T) {
	s := mockRedisServer(t)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, config.RedisConfig{Addr: s.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	limiter := redis.NewFixedWindowLimiter(client, "login:", 2, time.Minute)

	ok, remaining, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	ok, remaining, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	ok, _, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Otra IP tiene su propio contador.
	ok, _, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, time.Minute, s.TTL("login:10.0.0.1"))

	s.FastForward(time.Minute + time.Second)
	ok, remaining, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)
}

func TestFixedWindowLimiter_ClaveSinTTLRecuperaVentana(t *testing.T) {
	s := mockRedisServer(t)
	ctx := context.Background()
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	// Contador que quedó sin expiración.
	require.NoError(t, s.Set("login:10.0.0.1", "5"))

	limiter := redis.NewFixedWindowLimiter(client, "login:", 2, time.Minute)
	ok, _, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, s.TTL("login:10.0.0.1"))

	s.FastForward(time.Minute + time.Second)
	ok, remaining, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)
}

func TestFixedWindowLimiter_RedisCaido(t *testing.T) {
	s := mockRedisServer(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	s.Close()

	limiter := redis.NewFixedWindowLimiter(client, "login:", 2, time.Minute)
	_, _, err := limiter.Allow(context.Background(), "10.0.0.1")
	assert.Error(t, err)
}

func TestNewClient_SinServidor(t *testing.T) {
	s := mockRedisServer(t)
	addr := s.Addr()
	s.Close()

	_, err := redis.NewClient(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
