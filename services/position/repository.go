package position

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/guestnav/guestnav/services/position PositionRepo,VenueRepo

// PositionRepo defines the data access operations for normalized samples
type PositionRepo interface {
	StoreSample(ctx context.Context, sample *models.PositionSample) error
	GetLastSample(ctx context.Context, courierID string) (*models.PositionSample, error)
	DeleteSample(ctx context.Context, courierID string) error
	GetNearbyCouriers(ctx context.Context, lat, lng, radiusMeters float64) ([]string, error)
}

// VenueRepo loads venue reference data from Postgres
type VenueRepo interface {
	GetVenueProfile(ctx context.Context, venueID string) (*models.VenueProfile, error)
	ListVenueProfiles(ctx context.Context) ([]*models.VenueProfile, error)
	UpsertVenueProfile(ctx context.Context, profile *models.VenueProfile) error
}
