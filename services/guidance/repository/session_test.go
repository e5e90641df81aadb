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
	"github.com/guestnav/guestnav/services/guidance"
)

func setupSessionRepoTest(t *testing.T) (*sessionRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &sessionRepo{
		redisClient: &database.RedisClient{Client: client},
		sessionTTL:  time.Hour,
	}, mr
}

func sessionFixture() *models.NavigationSession {
	floor := 2
	return &models.NavigationSession{
		SessionID: "session-1",
		CourierID: "courier-1",
		OrderID:   "order-1",
		Target: models.Target{
			Latitude:   36.0890,
			Longitude:  -115.1760,
			FloorLevel: &floor,
			Label:      "Table 12",
		},
		CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
}

func TestStoreAndGetSession(t *testing.T) {
	repo, _ := setupSessionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreSession(ctx, sessionFixture()))

	got, err := repo.GetSession(ctx, "courier-1")
	require.NoError(t, err)
	assert.Equal(t, "session-1", got.SessionID)
	assert.Equal(t, "order-1", got.OrderID)
	require.NotNil(t, got.Target.FloorLevel)
	assert.Equal(t, 2, *got.Target.FloorLevel)
	assert.Equal(t, "Table 12", got.Target.Label)
}

func TestStoreSession_ReplacesPrevious(t *testing.T) {
	repo, _ := setupSessionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreSession(ctx, sessionFixture()))

	replacement := sessionFixture()
	replacement.SessionID = "session-2"
	replacement.OrderID = "order-2"
	require.NoError(t, repo.StoreSession(ctx, replacement))

	got, err := repo.GetSession(ctx, "courier-1")
	require.NoError(t, err)
	assert.Equal(t, "session-2", got.SessionID)
	assert.Equal(t, "order-2", got.OrderID)
}

func TestGetSession_NotFound(t *testing.T) {
	repo, _ := setupSessionRepoTest(t)

	_, err := repo.GetSession(context.Background(), "courier-missing")
	assert.ErrorIs(t, err, guidance.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	repo, _ := setupSessionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreSession(ctx, sessionFixture()))
	require.NoError(t, repo.DeleteSession(ctx, "courier-1"))

	_, err := repo.GetSession(ctx, "courier-1")
	assert.ErrorIs(t, err, guidance.ErrSessionNotFound)
}

func TestSessionTTL(t *testing.T) {
	repo, mr := setupSessionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreSession(ctx, sessionFixture()))

	mr.FastForward(2 * time.Hour)

	_, err := repo.GetSession(ctx, "courier-1")
	assert.ErrorIs(t, err, guidance.ErrSessionNotFound)
}
