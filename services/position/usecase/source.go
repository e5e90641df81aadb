package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/guestnav/guestnav/internal/pkg/logger"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/position"
	"github.com/guestnav/guestnav/services/position/provider"
)

var (
	// ErrCourierNotTracked is returned when a reading arrives for a
	// courier nobody asked us to track.
	ErrCourierNotTracked = errors.New("courier is not being tracked")

	// ErrStalePosition is returned when the stored sample is older than
	// the staleness window and must not be presented as current.
	ErrStalePosition = errors.New("stored position is stale")

	// ErrInvalidVenueProfile is returned when a venue profile fails
	// validation before persistence.
	ErrInvalidVenueProfile = errors.New("invalid venue profile")
)

// trackState holds per-courier emission state. lastTimestamp enforces the
// monotonic guarantee, lastEmit the minimum interval, and the watchdog
// fires a no-fix event when every provider stays quiet too long.
type trackState struct {
	lastTimestamp time.Time
	lastEmit      time.Time
	watchdog      *time.Timer
}

// PositionSourceUC fuses indoor and GPS readings into a single normalized
// sample stream per courier.
type PositionSourceUC struct {
	cfg       *models.Config
	venue     *models.VenueProfile
	repo      position.PositionRepo
	venueRepo position.VenueRepo
	gw        position.PositionGW
	indoor    position.Provider
	gps       position.Provider

	mu      sync.Mutex
	tracked map[string]*trackState
}

// NewPositionSourceUC creates the position source. It loads the venue
// profile eagerly: without ground altitude and floor height the GPS
// provider cannot derive floors, so a missing profile is fatal.
func NewPositionSourceUC(
	cfg *models.Config,
	repo position.PositionRepo,
	venueRepo position.VenueRepo,
	gw position.PositionGW,
) (position.PositionUC, error) {
	venue, err := venueRepo.GetVenueProfile(context.Background(), cfg.Venue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue profile %s: %w", cfg.Venue.ID, err)
	}

	healthWindow := time.Duration(cfg.Position.IndoorHealthWindowS) * time.Second

	return &PositionSourceUC{
		cfg:       cfg,
		venue:     venue,
		repo:      repo,
		venueRepo: venueRepo,
		gw:        gw,
		indoor:    provider.NewIndoorProvider(healthWindow),
		gps:       provider.NewGPSProvider(venue, healthWindow),
		tracked:   make(map[string]*trackState),
	}, nil
}

// StartTracking begins emitting samples for a courier and arms the no-fix
// watchdog. Calling it again for an already tracked courier is a no-op.
func (uc *PositionSourceUC) StartTracking(ctx context.Context, courierID string) error {
	if courierID == "" {
		return fmt.Errorf("courier id is required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.tracked[courierID]; ok {
		return nil
	}

	state := &trackState{}
	state.watchdog = time.AfterFunc(uc.noFixTimeout(), func() {
		uc.fireNoFix(courierID)
	})
	uc.tracked[courierID] = state

	logger.InfoCtx(ctx, "Started tracking courier",
		logger.String("courier_id", courierID),
		logger.String("venue_id", uc.venue.ID))
	return nil
}

// StopTracking cancels the watchdog, drops provider liveness state and
// removes the stored sample so consumers never see a frozen position.
func (uc *PositionSourceUC) StopTracking(ctx context.Context, courierID string) error {
	uc.mu.Lock()
	state, ok := uc.tracked[courierID]
	if ok {
		state.watchdog.Stop()
		delete(uc.tracked, courierID)
	}
	uc.mu.Unlock()

	if !ok {
		return nil
	}

	uc.indoor.Forget(courierID)
	uc.gps.Forget(courierID)

	if err := uc.repo.DeleteSample(ctx, courierID); err != nil {
		logger.WarnCtx(ctx, "Failed to delete sample on stop",
			logger.String("courier_id", courierID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Stopped tracking courier",
		logger.String("courier_id", courierID))
	return nil
}

// SubmitIndoorReading feeds a venue positioning reading into the source.
// Indoor is the preferred provider: its readings are always emitted.
func (uc *PositionSourceUC) SubmitIndoorReading(ctx context.Context, reading *models.ProviderReading) error {
	if err := uc.indoor.Accept(reading); err != nil {
		return err
	}
	if !uc.isTracked(reading.CourierID) {
		// The venue feed covers every courier in the building; readings
		// for couriers we don't track are expected, not an error.
		return nil
	}
	return uc.emit(ctx, reading)
}

// SubmitGPSReport feeds a device GPS report into the source. While the
// indoor provider is healthy for the courier, GPS reports are dropped so
// the stream never flaps between technologies.
func (uc *PositionSourceUC) SubmitGPSReport(ctx context.Context, reading *models.ProviderReading) error {
	if reading == nil {
		return provider.ErrInvalidReading
	}
	if !uc.isTracked(reading.CourierID) {
		return ErrCourierNotTracked
	}
	if err := uc.gps.Accept(reading); err != nil {
		return err
	}
	if uc.cfg.Position.PreferIndoor && uc.indoor.Healthy(reading.CourierID, models.Now()) {
		logger.Debug("Dropping GPS report while indoor provider is healthy",
			logger.String("courier_id", reading.CourierID))
		return nil
	}
	return uc.emit(ctx, reading)
}

// GetLastSample returns the latest normalized sample for a courier. A
// sample that outlived the staleness window is reported as stale rather
// than returned, even if storage has not expired it yet.
func (uc *PositionSourceUC) GetLastSample(ctx context.Context, courierID string) (*models.PositionSample, error) {
	sample, err := uc.repo.GetLastSample(ctx, courierID)
	if err != nil {
		return nil, err
	}
	if models.Now().Sub(sample.Timestamp) > uc.stalenessWindow() {
		return nil, ErrStalePosition
	}
	return sample, nil
}

// ListVenueProfiles returns every registered venue profile
func (uc *PositionSourceUC) ListVenueProfiles(ctx context.Context) ([]*models.VenueProfile, error) {
	return uc.venueRepo.ListVenueProfiles(ctx)
}

// UpsertVenueProfile creates or updates a venue profile. The active
// profile is loaded at startup; changes to it take effect on restart.
func (uc *PositionSourceUC) UpsertVenueProfile(ctx context.Context, profile *models.VenueProfile) error {
	if profile.ID == "" || profile.Name == "" {
		return fmt.Errorf("%w: venue id and name are required", ErrInvalidVenueProfile)
	}
	if profile.MetersPerFloor <= 0 {
		return fmt.Errorf("%w: meters per floor must be positive", ErrInvalidVenueProfile)
	}

	if err := uc.venueRepo.UpsertVenueProfile(ctx, profile); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Venue profile upserted",
		logger.String("venue_id", profile.ID))
	return nil
}

// GetNearbyCouriers returns courier IDs within radiusMeters of a point
func (uc *PositionSourceUC) GetNearbyCouriers(ctx context.Context, lat, lng, radiusMeters float64) ([]string, error) {
	return uc.repo.GetNearbyCouriers(ctx, lat, lng, radiusMeters)
}

// emit applies the ordering and rate rules, then stores and publishes the
// normalized sample. Readings that lose a rule are silently dropped; the
// provider already counted them as liveness.
func (uc *PositionSourceUC) emit(ctx context.Context, reading *models.ProviderReading) error {
	now := models.Now()

	uc.mu.Lock()
	state, ok := uc.tracked[reading.CourierID]
	if !ok {
		uc.mu.Unlock()
		return nil
	}

	// Samples must move strictly forward in time. Out-of-order provider
	// delivery happens; consumers must never see time go backwards.
	if !reading.Timestamp.After(state.lastTimestamp) {
		uc.mu.Unlock()
		logger.Debug("Dropping out-of-order reading",
			logger.String("courier_id", reading.CourierID),
			logger.Time("reading_ts", reading.Timestamp),
			logger.Time("last_ts", state.lastTimestamp))
		return nil
	}

	if now.Sub(reading.Timestamp) > uc.stalenessWindow() {
		uc.mu.Unlock()
		logger.Debug("Dropping stale reading",
			logger.String("courier_id", reading.CourierID),
			logger.Time("reading_ts", reading.Timestamp))
		return nil
	}

	if !state.lastEmit.IsZero() && now.Sub(state.lastEmit) < uc.minInterval() {
		uc.mu.Unlock()
		return nil
	}

	state.lastTimestamp = reading.Timestamp
	state.lastEmit = now
	state.watchdog.Reset(uc.noFixTimeout())
	uc.mu.Unlock()

	sample := &models.PositionSample{
		CourierID:      reading.CourierID,
		Latitude:       reading.Latitude,
		Longitude:      reading.Longitude,
		FloorLevel:     reading.FloorLevel,
		HeadingDegrees: reading.HeadingDegrees,
		AccuracyMeters: reading.AccuracyMeters,
		Source:         reading.Source,
		Timestamp:      reading.Timestamp,
	}

	if err := uc.repo.StoreSample(ctx, sample); err != nil {
		return fmt.Errorf("failed to store sample: %w", err)
	}

	if err := uc.gw.PublishSample(ctx, sample); err != nil {
		return fmt.Errorf("failed to publish sample: %w", err)
	}

	return nil
}

// fireNoFix publishes a no-fix event for a courier whose providers all
// went quiet, then re-arms the watchdog so silence keeps being reported.
func (uc *PositionSourceUC) fireNoFix(courierID string) {
	uc.mu.Lock()
	state, ok := uc.tracked[courierID]
	if ok {
		state.watchdog.Reset(uc.noFixTimeout())
	}
	uc.mu.Unlock()

	if !ok {
		return
	}

	event := &models.NoFixEvent{
		CourierID: courierID,
		Timestamp: models.Now(),
	}

	if err := uc.gw.PublishNoFix(context.Background(), event); err != nil {
		logger.Error("Failed to publish no-fix event",
			logger.String("courier_id", courierID),
			logger.Err(err))
		return
	}

	logger.Warn("No position fix within timeout",
		logger.String("courier_id", courierID))
}

func (uc *PositionSourceUC) isTracked(courierID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.tracked[courierID]
	return ok
}

func (uc *PositionSourceUC) noFixTimeout() time.Duration {
	return time.Duration(uc.cfg.Position.NoFixTimeoutSec) * time.Second
}

func (uc *PositionSourceUC) stalenessWindow() time.Duration {
	return time.Duration(uc.cfg.Position.StalenessWindowSec) * time.Second
}

func (uc *PositionSourceUC) minInterval() time.Duration {
	return time.Duration(uc.cfg.Position.MinIntervalMs) * time.Millisecond
}
