package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guestnav/guestnav/internal/pkg/database"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/position"
	"github.com/jmoiron/sqlx"
)

type venueRepo struct {
	db *sqlx.DB
}

// NewVenueRepository creates a Postgres-backed venue profile store
func NewVenueRepository(pgClient *database.PostgresClient) position.VenueRepo {
	return &venueRepo{
		db: pgClient.GetDB(),
	}
}

// GetVenueProfile retrieves a venue profile by ID
func (r *venueRepo) GetVenueProfile(ctx context.Context, venueID string) (*models.VenueProfile, error) {
	query := `
		SELECT id, name, anchor_latitude, anchor_longitude,
			ground_altitude_meters, meters_per_floor, default_span_degrees,
			created_at, updated_at
		FROM venue_profiles
		WHERE id = $1
	`

	var profile models.VenueProfile
	err := r.db.GetContext(ctx, &profile, query, venueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venue profile %s not found", venueID)
		}
		return nil, fmt.Errorf("failed to get venue profile: %w", err)
	}

	return &profile, nil
}

// ListVenueProfiles returns all venue profiles
func (r *venueRepo) ListVenueProfiles(ctx context.Context) ([]*models.VenueProfile, error) {
	query := `
		SELECT id, name, anchor_latitude, anchor_longitude,
			ground_altitude_meters, meters_per_floor, default_span_degrees,
			created_at, updated_at
		FROM venue_profiles
		ORDER BY name
	`

	var profiles []*models.VenueProfile
	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, fmt.Errorf("failed to list venue profiles: %w", err)
	}

	return profiles, nil
}

// UpsertVenueProfile inserts or updates a venue profile
func (r *venueRepo) UpsertVenueProfile(ctx context.Context, profile *models.VenueProfile) error {
	now := models.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	query := `
		INSERT INTO venue_profiles (id, name, anchor_latitude, anchor_longitude,
			ground_altitude_meters, meters_per_floor, default_span_degrees,
			created_at, updated_at
		) VALUES (:id, :name, :anchor_latitude, :anchor_longitude,
			:ground_altitude_meters, :meters_per_floor, :default_span_degrees,
			:created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			anchor_latitude = EXCLUDED.anchor_latitude,
			anchor_longitude = EXCLUDED.anchor_longitude,
			ground_altitude_meters = EXCLUDED.ground_altitude_meters,
			meters_per_floor = EXCLUDED.meters_per_floor,
			default_span_degrees = EXCLUDED.default_span_degrees,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("failed to upsert venue profile: %w", err)
	}

	return nil
}
