package position

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/guestnav/guestnav/services/position PositionUC

// PositionUC defines the business logic of the position source: it fuses
// provider readings into normalized samples and raises no-fix events when
// every provider goes quiet.
type PositionUC interface {
	// StartTracking begins emitting samples for a courier. Idempotent.
	StartTracking(ctx context.Context, courierID string) error
	// StopTracking stops emitting samples and cancels the no-fix watchdog.
	StopTracking(ctx context.Context, courierID string) error

	// SubmitGPSReport feeds a device GPS reading into the source.
	SubmitGPSReport(ctx context.Context, reading *models.ProviderReading) error
	// SubmitIndoorReading feeds a venue positioning reading into the source.
	SubmitIndoorReading(ctx context.Context, reading *models.ProviderReading) error

	// GetLastSample returns the latest normalized sample for a courier.
	GetLastSample(ctx context.Context, courierID string) (*models.PositionSample, error)
	// GetNearbyCouriers returns courier IDs within radiusMeters of a point.
	GetNearbyCouriers(ctx context.Context, lat, lng, radiusMeters float64) ([]string, error)

	// ListVenueProfiles returns every registered venue profile.
	ListVenueProfiles(ctx context.Context) ([]*models.VenueProfile, error)
	// UpsertVenueProfile creates or updates a venue profile.
	UpsertVenueProfile(ctx context.Context, profile *models.VenueProfile) error
}
