package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/pfvault/internal/errors"
)

func TestConnectRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := ConnectRedis(ctx, "redis://"+mr.Addr()+"/0")
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := ConnectRedis(ctx, "http://nope")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("server down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := ConnectRedis(ctx, "redis://"+addr+"/0?max_retries=-1")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})
}

func TestRedisPinger(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(ctx, "redis://"+mr.Addr()+"/0?max_retries=-1")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	pinger := RedisPinger{Client: client}
	assert.NoError(t, pinger.PingContext(ctx))

	mr.Close()
	assert.Error(t, pinger.PingContext(ctx))
}
