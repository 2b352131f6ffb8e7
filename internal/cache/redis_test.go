package cache

import (
	"context"
	"testing"

	"rurallearn/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("EmptyAddress", func(t *testing.T) {
		client, err := NewRedisClient(context.Background(), config.RedisConfig{})
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("Connected", func(t *testing.T) {
		rs := miniredis.RunT(t)
		client, err := NewRedisClient(context.Background(), config.RedisConfig{Address: rs.Addr()})
		require.NoError(t, err)
		defer client.Close()
		assert.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("Unreachable", func(t *testing.T) {
		rs := miniredis.RunT(t)
		addr := rs.Addr()
		rs.Close()

		client, err := NewRedisClient(context.Background(), config.RedisConfig{Address: addr})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
