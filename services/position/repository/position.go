package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/guestnav/guestnav/internal/pkg/constants"
	"github.com/guestnav/guestnav/internal/pkg/database"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/internal/utils"
	"github.com/guestnav/guestnav/services/position"
)

type positionRepo struct {
	redisClient *database.RedisClient
	sampleTTL   time.Duration
}

// NewPositionRepository creates a Redis-backed sample store. Samples
// expire after sampleTTL so a courier that stops reporting disappears
// instead of freezing at their last position.
func NewPositionRepository(redisClient *database.RedisClient, sampleTTL time.Duration) position.PositionRepo {
	return &positionRepo{
		redisClient: redisClient,
		sampleTTL:   sampleTTL,
	}
}

// StoreSample writes the latest sample hash and updates the shared geo
// index used for proximity queries.
func (r *positionRepo) StoreSample(ctx context.Context, sample *models.PositionSample) error {
	key := fmt.Sprintf(constants.KeyCourierSample, sample.CourierID)

	geohash := utils.EncodePoint(utils.GeoPoint{Latitude: sample.Latitude, Longitude: sample.Longitude}, 9)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(sample.AccuracyMeters, 'f', -1, 64),
		constants.FieldSource:    string(sample.Source),
		constants.FieldGeohash:   geohash,
		constants.FieldTimestamp: strconv.FormatInt(sample.Timestamp.UnixMilli(), 10),
	}
	if sample.FloorLevel != nil {
		fields[constants.FieldFloor] = strconv.Itoa(*sample.FloorLevel)
	}
	if sample.HeadingDegrees != nil {
		fields[constants.FieldHeading] = strconv.FormatFloat(*sample.HeadingDegrees, 'f', -1, 64)
	}

	// Replace the hash wholesale so stale optional fields from the
	// previous sample cannot leak into this one.
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear previous sample: %w", err)
	}
	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store sample: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, r.sampleTTL); err != nil {
		return fmt.Errorf("failed to set sample TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyCourierGeo, sample.Longitude, sample.Latitude, sample.CourierID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	return nil
}

// GetLastSample reads the latest sample for a courier. Optional fields
// absent from the hash come back as nil pointers.
func (r *positionRepo) GetLastSample(ctx context.Context, courierID string) (*models.PositionSample, error) {
	key := fmt.Sprintf(constants.KeyCourierSample, courierID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get sample: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no sample found for courier %s", courierID)
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	accuracy, err := strconv.ParseFloat(values[constants.FieldAccuracy], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid accuracy: %w", err)
	}
	tsMillis, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	sample := &models.PositionSample{
		CourierID:      courierID,
		Latitude:       lat,
		Longitude:      lng,
		AccuracyMeters: accuracy,
		Source:         models.PositionSourceType(values[constants.FieldSource]),
		Timestamp:      time.UnixMilli(tsMillis).UTC(),
	}

	if raw, ok := values[constants.FieldFloor]; ok {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid floor level: %w", err)
		}
		sample.FloorLevel = &floor
	}
	if raw, ok := values[constants.FieldHeading]; ok {
		heading, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid heading: %w", err)
		}
		sample.HeadingDegrees = &heading
	}

	return sample, nil
}

// DeleteSample removes the sample hash and the geo index entry
func (r *positionRepo) DeleteSample(ctx context.Context, courierID string) error {
	key := fmt.Sprintf(constants.KeyCourierSample, courierID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete sample: %w", err)
	}
	if err := r.redisClient.GetClient().ZRem(ctx, constants.KeyCourierGeo, courierID).Err(); err != nil {
		return fmt.Errorf("failed to remove geo index entry: %w", err)
	}
	return nil
}

// GetNearbyCouriers returns courier IDs within radiusMeters of a point
func (r *positionRepo) GetNearbyCouriers(ctx context.Context, lat, lng, radiusMeters float64) ([]string, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyCourierGeo, lng, lat, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	courierIDs := make([]string, 0, len(locations))
	for _, loc := range locations {
		courierIDs = append(courierIDs, loc.Name)
	}
	return courierIDs, nil
}
