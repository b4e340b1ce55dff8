package service

import (
	"context"
	"testing"

	"qrlink/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"qrlink/internal/mocks"
)

func TestNewBloomService(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	assert.NotNil(t, svc)
	assert.Equal(t, int64(1000000), svc.GetCapacity())
}

func TestNewBloomService_WithMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockRedisClient(ctrl)
	mockClient.EXPECT().Exists(gomock.Any(), "qrlink:ids:bloom").Return(redis.NewIntCmd(context.Background()))
	mockClient.EXPECT().Do(gomock.Any(), "BF.RESERVE", "qrlink:ids:bloom", 0.01, int64(1000000)).Return(redis.NewCmd(context.Background()))

	svc := NewBloomService(mockClient, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})
	assert.NotNil(t, svc)
	assert.Equal(t, int64(1000000), svc.GetCapacity())
}

func TestBloomService_AddAndExists(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	t.Run("issued identifier is remembered", func(t *testing.T) {
		// miniredis has no BF commands, so the SET fallback is exercised
		err := svc.Add(context.Background(), "aB3dE5fG")
		require.NoError(t, err)

		exists, err := svc.Exists(context.Background(), "aB3dE5fG")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unissued identifier is absent", func(t *testing.T) {
		exists, err := svc.Exists(context.Background(), "zZ9yX8wV")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("membership survives link deletion", func(t *testing.T) {
		// Nothing ever removes an identifier; deleting a link must not
		// free it for reissue
		err := svc.Add(context.Background(), "qQ1rR2sS")
		require.NoError(t, err)

		exists, err := svc.Exists(context.Background(), "qQ1rR2sS")
		assert.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestBloomService_IsAvailable(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	// miniredis doesn't support BF.INFO
	assert.False(t, svc.IsAvailable(context.Background()))
}

func TestBloomService_fallbackKey(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	assert.Equal(t, "qrlink:ids:bloom:fb:aB3dE5fG", svc.fallbackKey("aB3dE5fG"))
}

func TestBloomService_ContextCancellation(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Add(ctx, "aB3dE5fG")
	assert.Error(t, err)

	_, err = svc.Exists(ctx, "aB3dE5fG")
	assert.Error(t, err)
}
