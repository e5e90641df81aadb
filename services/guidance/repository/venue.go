package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/guestnav/guestnav/internal/pkg/database"
	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/guidance"
)

type venueRepo struct {
	db *sqlx.DB
}

// NewVenueRepository creates a read-only Postgres venue profile store
func NewVenueRepository(pgClient *database.PostgresClient) guidance.VenueRepo {
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
