package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestnav/guestnav/internal/pkg/database"
	"github.com/guestnav/guestnav/internal/pkg/models"
)

func setupPingRepoTest(t *testing.T) (*pingRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &pingRepo{
		redisClient: &database.RedisClient{Client: client},
	}, mr
}

func pingFixture(ttl time.Duration) *models.Ping {
	now := models.Now()
	return &models.Ping{
		OrderID:    "order-1",
		FromUserID: "staff-1",
		ToUserID:   "customer-1",
		Message:    "Your order is ready for pickup",
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		IsActive:   true,
	}
}

func TestStoreAndGetPing(t *testing.T) {
	repo, _ := setupPingRepoTest(t)
	ctx := context.Background()

	record := pingFixture(30 * time.Second)
	require.NoError(t, repo.StorePing(ctx, record))

	got, err := repo.GetPing(ctx, "customer-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, record.OrderID, got.OrderID)
	assert.Equal(t, record.FromUserID, got.FromUserID)
	assert.Equal(t, record.Message, got.Message)
	assert.True(t, got.IsActive)
	assert.True(t, record.ExpiresAt.Equal(got.ExpiresAt))
}

func TestStorePingOverwritesPrevious(t *testing.T) {
	repo, _ := setupPingRepoTest(t)
	ctx := context.Background()

	first := pingFixture(30 * time.Second)
	first.Message = "first"
	require.NoError(t, repo.StorePing(ctx, first))

	second := pingFixture(30 * time.Second)
	second.Message = "second"
	require.NoError(t, repo.StorePing(ctx, second))

	got, err := repo.GetPing(ctx, "customer-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Message)
}

func TestStorePingRejectsExpired(t *testing.T) {
	repo, _ := setupPingRepoTest(t)

	record := pingFixture(-time.Second)
	err := repo.StorePing(context.Background(), record)
	assert.Error(t, err)
}

func TestGetPingNotFound(t *testing.T) {
	repo, _ := setupPingRepoTest(t)

	_, err := repo.GetPing(context.Background(), "customer-1", "order-404")
	assert.ErrorIs(t, err, ErrPingNotFound)
}

func TestPingExpiresWithTTL(t *testing.T) {
	repo, mr := setupPingRepoTest(t)
	ctx := context.Background()

	record := pingFixture(30 * time.Second)
	require.NoError(t, repo.StorePing(ctx, record))

	mr.FastForward(31 * time.Second)

	_, err := repo.GetPing(ctx, "customer-1", "order-1")
	assert.ErrorIs(t, err, ErrPingNotFound)
}

func TestDeletePing(t *testing.T) {
	repo, _ := setupPingRepoTest(t)
	ctx := context.Background()

	record := pingFixture(30 * time.Second)
	require.NoError(t, repo.StorePing(ctx, record))
	require.NoError(t, repo.DeletePing(ctx, "customer-1", "order-1"))

	_, err := repo.GetPing(ctx, "customer-1", "order-1")
	assert.ErrorIs(t, err, ErrPingNotFound)
}
