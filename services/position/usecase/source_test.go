package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/position"
	"github.com/guestnav/guestnav/services/position/mocks"
	"github.com/guestnav/guestnav/services/position/provider"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func testConfig() *models.Config {
	return &models.Config{
		Venue: models.VenueConfig{ID: "venue-1"},
		Position: models.PositionConfig{
			PreferIndoor:        true,
			MinIntervalMs:       0,
			StalenessWindowSec:  10,
			NoFixTimeoutSec:     60,
			SampleTTLSec:        30,
			IndoorHealthWindowS: 10,
		},
	}
}

func testVenue() *models.VenueProfile {
	return &models.VenueProfile{
		ID:                   "venue-1",
		Name:                 "Harbor Casino",
		AnchorLatitude:       36.0888,
		AnchorLongitude:      -115.1762,
		GroundAltitudeMeters: 610.0,
		MetersPerFloor:       4.0,
		DefaultSpanDegrees:   0.005,
	}
}

func newTestUC(t *testing.T, cfg *models.Config) (position.PositionUC, *mocks.MockPositionRepo, *mocks.MockPositionGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockPositionRepo(ctrl)
	venueRepo := mocks.NewMockVenueRepo(ctrl)
	gw := mocks.NewMockPositionGW(ctrl)

	venueRepo.EXPECT().GetVenueProfile(gomock.Any(), "venue-1").Return(testVenue(), nil)

	uc, err := NewPositionSourceUC(cfg, repo, venueRepo, gw)
	require.NoError(t, err)
	return uc, repo, gw
}

func indoorReading(courierID string, floor int, ts time.Time) *models.ProviderReading {
	return &models.ProviderReading{
		CourierID:      courierID,
		Latitude:       36.0890,
		Longitude:      -115.1760,
		FloorLevel:     intPtr(floor),
		AccuracyMeters: 2.0,
		Timestamp:      ts,
	}
}

func gpsReading(courierID string, ts time.Time) *models.ProviderReading {
	return &models.ProviderReading{
		CourierID:      courierID,
		Latitude:       36.0891,
		Longitude:      -115.1761,
		AltitudeMeters: floatPtr(618.2),
		AccuracyMeters: 9.0,
		Timestamp:      ts,
	}
}

func TestNewPositionSourceUC_VenueProfileMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	venueRepo := mocks.NewMockVenueRepo(ctrl)
	venueRepo.EXPECT().GetVenueProfile(gomock.Any(), "venue-1").
		Return(nil, errors.New("venue profile not found"))

	_, err := NewPositionSourceUC(testConfig(), mocks.NewMockPositionRepo(ctrl), venueRepo, mocks.NewMockPositionGW(ctrl))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "venue profile")
}

func TestSubmitIndoorReading_EmitsSample(t *testing.T) {
	uc, repo, gw := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	var stored *models.PositionSample
	repo.EXPECT().StoreSample(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.PositionSample) error {
			stored = s
			return nil
		})
	gw.EXPECT().PublishSample(gomock.Any(), gomock.Any()).Return(nil)

	reading := indoorReading("courier-1", 3, models.Now())
	require.NoError(t, uc.SubmitIndoorReading(ctx, reading))

	require.NotNil(t, stored)
	assert.Equal(t, "courier-1", stored.CourierID)
	assert.Equal(t, models.SourceIndoor, stored.Source)
	require.NotNil(t, stored.FloorLevel)
	assert.Equal(t, 3, *stored.FloorLevel)
}

func TestSubmitIndoorReading_UntrackedCourierIgnored(t *testing.T) {
	uc, _, _ := newTestUC(t, testConfig())

	// No repo or gateway expectations: the reading must go nowhere.
	err := uc.SubmitIndoorReading(context.Background(), indoorReading("ghost", 1, models.Now()))
	assert.NoError(t, err)
}

func TestSubmitGPSReport_UntrackedCourier(t *testing.T) {
	uc, _, _ := newTestUC(t, testConfig())

	err := uc.SubmitGPSReport(context.Background(), gpsReading("ghost", models.Now()))
	assert.ErrorIs(t, err, ErrCourierNotTracked)
}

func TestSubmitGPSReport_DroppedWhileIndoorHealthy(t *testing.T) {
	uc, repo, gw := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	repo.EXPECT().StoreSample(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishSample(gomock.Any(), gomock.Any()).Return(nil)

	base := models.Now()
	require.NoError(t, uc.SubmitIndoorReading(ctx, indoorReading("courier-1", 2, base)))

	// Indoor just delivered, so the GPS report must be swallowed.
	require.NoError(t, uc.SubmitGPSReport(ctx, gpsReading("courier-1", base.Add(time.Second))))
}

func TestSubmitGPSReport_EmitsWithDerivedFloor(t *testing.T) {
	uc, repo, gw := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	var stored *models.PositionSample
	repo.EXPECT().StoreSample(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.PositionSample) error {
			stored = s
			return nil
		})
	gw.EXPECT().PublishSample(gomock.Any(), gomock.Any()).Return(nil)

	// 618.2m altitude over a 610m ground at 4m per floor is floor 2.
	require.NoError(t, uc.SubmitGPSReport(ctx, gpsReading("courier-1", models.Now())))

	require.NotNil(t, stored)
	assert.Equal(t, models.SourceGPS, stored.Source)
	require.NotNil(t, stored.FloorLevel)
	assert.Equal(t, 2, *stored.FloorLevel)
}

func TestSubmitGPSReport_NoAltitudeMeansUnknownFloor(t *testing.T) {
	uc, repo, gw := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	var stored *models.PositionSample
	repo.EXPECT().StoreSample(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.PositionSample) error {
			stored = s
			return nil
		})
	gw.EXPECT().PublishSample(gomock.Any(), gomock.Any()).Return(nil)

	reading := gpsReading("courier-1", models.Now())
	reading.AltitudeMeters = nil
	require.NoError(t, uc.SubmitGPSReport(ctx, reading))

	require.NotNil(t, stored)
	assert.Nil(t, stored.FloorLevel)
}

func TestSubmitGPSReport_InvalidReading(t *testing.T) {
	uc, _, _ := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	reading := gpsReading("courier-1", models.Now())
	reading.Latitude = 120.0
	assert.ErrorIs(t, uc.SubmitGPSReport(ctx, reading), provider.ErrInvalidReading)
}

func TestEmit_OutOfOrderReadingDropped(t *testing.T) {
	uc, repo, gw := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	// Only the first reading may reach storage.
	repo.EXPECT().StoreSample(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	gw.EXPECT().PublishSample(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	base := models.Now()
	require.NoError(t, uc.SubmitIndoorReading(ctx, indoorReading("courier-1", 1, base)))
	require.NoError(t, uc.SubmitIndoorReading(ctx, indoorReading("courier-1", 1, base.Add(-2*time.Second))))
	require.NoError(t, uc.SubmitIndoorReading(ctx, indoorReading("courier-1", 1, base)))
}

func TestEmit_StaleReadingDropped(t *testing.T) {
	uc, _, _ := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	// Reading is 30s old against a 10s staleness window.
	old := indoorReading("courier-1", 1, models.Now().Add(-30*time.Second))
	assert.NoError(t, uc.SubmitIndoorReading(ctx, old))
}

func TestEmit_MinIntervalThrottle(t *testing.T) {
	cfg := testConfig()
	cfg.Position.MinIntervalMs = 1000
	uc, repo, gw := newTestUC(t, cfg)
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	repo.EXPECT().StoreSample(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	gw.EXPECT().PublishSample(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	base := models.Now()
	require.NoError(t, uc.SubmitIndoorReading(ctx, indoorReading("courier-1", 1, base)))
	require.NoError(t, uc.SubmitIndoorReading(ctx, indoorReading("courier-1", 1, base.Add(100*time.Millisecond))))
}

func TestStopTracking_RemovesSampleAndState(t *testing.T) {
	uc, repo, _ := newTestUC(t, testConfig())
	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	repo.EXPECT().DeleteSample(gomock.Any(), "courier-1").Return(nil)
	require.NoError(t, uc.StopTracking(ctx, "courier-1"))

	assert.ErrorIs(t, uc.SubmitGPSReport(ctx, gpsReading("courier-1", models.Now())), ErrCourierNotTracked)

	// Stopping twice is harmless.
	assert.NoError(t, uc.StopTracking(ctx, "courier-1"))
}

func TestStartTracking_Idempotent(t *testing.T) {
	uc, repo, _ := newTestUC(t, testConfig())
	ctx := context.Background()

	require.NoError(t, uc.StartTracking(ctx, "courier-1"))
	require.NoError(t, uc.StartTracking(ctx, "courier-1"))

	repo.EXPECT().DeleteSample(gomock.Any(), "courier-1").Return(nil)
	require.NoError(t, uc.StopTracking(ctx, "courier-1"))
}

func TestNoFixWatchdog_FiresAfterSilence(t *testing.T) {
	cfg := testConfig()
	cfg.Position.NoFixTimeoutSec = 1
	uc, repo, gw := newTestUC(t, cfg)
	ctx := context.Background()

	repo.EXPECT().DeleteSample(gomock.Any(), "courier-1").Return(nil).AnyTimes()

	fired := make(chan *models.NoFixEvent, 2)
	gw.EXPECT().PublishNoFix(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.NoFixEvent) error {
			fired <- e
			return nil
		}).MinTimes(1)

	require.NoError(t, uc.StartTracking(ctx, "courier-1"))
	t.Cleanup(func() { _ = uc.StopTracking(context.Background(), "courier-1") })

	select {
	case event := <-fired:
		assert.Equal(t, "courier-1", event.CourierID)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(3 * time.Second):
		t.Fatal("no-fix event was not published")
	}
}

func TestGetLastSample(t *testing.T) {
	uc, repo, _ := newTestUC(t, testConfig())
	ctx := context.Background()

	sample := &models.PositionSample{
		CourierID: "courier-1",
		Latitude:  36.0890,
		Longitude: -115.1760,
		Source:    models.SourceIndoor,
		Timestamp: models.Now(),
	}
	repo.EXPECT().GetLastSample(gomock.Any(), "courier-1").Return(sample, nil)

	got, err := uc.GetLastSample(ctx, "courier-1")
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestGetLastSampleStale(t *testing.T) {
	uc, repo, _ := newTestUC(t, testConfig())

	sample := &models.PositionSample{
		CourierID: "courier-1",
		Latitude:  36.0890,
		Longitude: -115.1760,
		Source:    models.SourceIndoor,
		Timestamp: models.Now().Add(-time.Minute),
	}
	repo.EXPECT().GetLastSample(gomock.Any(), "courier-1").Return(sample, nil)

	_, err := uc.GetLastSample(context.Background(), "courier-1")
	assert.ErrorIs(t, err, ErrStalePosition)
}

func newVenueTestUC(t *testing.T) (position.PositionUC, *mocks.MockVenueRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockPositionRepo(ctrl)
	venueRepo := mocks.NewMockVenueRepo(ctrl)
	gw := mocks.NewMockPositionGW(ctrl)

	venueRepo.EXPECT().GetVenueProfile(gomock.Any(), "venue-1").Return(testVenue(), nil)

	uc, err := NewPositionSourceUC(testConfig(), repo, venueRepo, gw)
	require.NoError(t, err)
	return uc, venueRepo
}

func TestListVenueProfiles(t *testing.T) {
	uc, venueRepo := newVenueTestUC(t)

	profiles := []*models.VenueProfile{testVenue()}
	venueRepo.EXPECT().ListVenueProfiles(gomock.Any()).Return(profiles, nil)

	got, err := uc.ListVenueProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profiles, got)
}

func TestUpsertVenueProfile(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.VenueProfile)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(*models.VenueProfile) {},
			wantErr: nil,
		},
		{
			name:    "missing name",
			mutate:  func(p *models.VenueProfile) { p.Name = "" },
			wantErr: ErrInvalidVenueProfile,
		},
		{
			name:    "non-positive meters per floor",
			mutate:  func(p *models.VenueProfile) { p.MetersPerFloor = 0 },
			wantErr: ErrInvalidVenueProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, venueRepo := newVenueTestUC(t)

			profile := testVenue()
			tt.mutate(profile)

			if tt.wantErr == nil {
				venueRepo.EXPECT().UpsertVenueProfile(gomock.Any(), profile).Return(nil)
			}

			err := uc.UpsertVenueProfile(context.Background(), profile)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
