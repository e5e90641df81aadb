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

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func setupPositionRepoTest(t *testing.T) (*positionRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := &positionRepo{
		redisClient: &database.RedisClient{Client: client},
		sampleTTL:   30 * time.Second,
	}
	return repo, mr
}

func sampleFixture(courierID string) *models.PositionSample {
	return &models.PositionSample{
		CourierID:      courierID,
		Latitude:       36.0890,
		Longitude:      -115.1760,
		FloorLevel:     intPtr(2),
		HeadingDegrees: floatPtr(87.5),
		AccuracyMeters: 3.2,
		Source:         models.SourceIndoor,
		Timestamp:      time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
	}
}

func TestStoreAndGetSample(t *testing.T) {
	repo, _ := setupPositionRepoTest(t)
	ctx := context.Background()

	sample := sampleFixture("courier-1")
	require.NoError(t, repo.StoreSample(ctx, sample))

	got, err := repo.GetLastSample(ctx, "courier-1")
	require.NoError(t, err)
	assert.Equal(t, sample.CourierID, got.CourierID)
	assert.InDelta(t, sample.Latitude, got.Latitude, 1e-9)
	assert.InDelta(t, sample.Longitude, got.Longitude, 1e-9)
	require.NotNil(t, got.FloorLevel)
	assert.Equal(t, 2, *got.FloorLevel)
	require.NotNil(t, got.HeadingDegrees)
	assert.InDelta(t, 87.5, *got.HeadingDegrees, 1e-9)
	assert.Equal(t, models.SourceIndoor, got.Source)
	assert.True(t, sample.Timestamp.Equal(got.Timestamp))
}

func TestStoreSample_OptionalFieldsDoNotLeak(t *testing.T) {
	repo, _ := setupPositionRepoTest(t)
	ctx := context.Background()

	first := sampleFixture("courier-1")
	require.NoError(t, repo.StoreSample(ctx, first))

	// A follow-up GPS sample without floor or heading must not inherit
	// them from the indoor sample it replaces.
	second := sampleFixture("courier-1")
	second.FloorLevel = nil
	second.HeadingDegrees = nil
	second.Source = models.SourceGPS
	second.Timestamp = first.Timestamp.Add(2 * time.Second)
	require.NoError(t, repo.StoreSample(ctx, second))

	got, err := repo.GetLastSample(ctx, "courier-1")
	require.NoError(t, err)
	assert.Nil(t, got.FloorLevel)
	assert.Nil(t, got.HeadingDegrees)
	assert.Equal(t, models.SourceGPS, got.Source)
}

func TestGetLastSample_NotFound(t *testing.T) {
	repo, _ := setupPositionRepoTest(t)

	_, err := repo.GetLastSample(context.Background(), "courier-missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sample found")
}

func TestSampleExpiry(t *testing.T) {
	repo, mr := setupPositionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreSample(ctx, sampleFixture("courier-1")))

	mr.FastForward(31 * time.Second)

	_, err := repo.GetLastSample(ctx, "courier-1")
	assert.Error(t, err)
}

func TestDeleteSample(t *testing.T) {
	repo, _ := setupPositionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreSample(ctx, sampleFixture("courier-1")))
	require.NoError(t, repo.DeleteSample(ctx, "courier-1"))

	_, err := repo.GetLastSample(ctx, "courier-1")
	assert.Error(t, err)

	nearby, err := repo.GetNearbyCouriers(ctx, 36.0890, -115.1760, 500)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestGetNearbyCouriers(t *testing.T) {
	repo, _ := setupPositionRepoTest(t)
	ctx := context.Background()

	near := sampleFixture("courier-near")
	require.NoError(t, repo.StoreSample(ctx, near))

	far := sampleFixture("courier-far")
	far.Latitude = 36.2000
	far.Longitude = -115.0000
	require.NoError(t, repo.StoreSample(ctx, far))

	nearby, err := repo.GetNearbyCouriers(ctx, 36.0890, -115.1760, 500)
	require.NoError(t, err)
	assert.Equal(t, []string{"courier-near"}, nearby)
}
