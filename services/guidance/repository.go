package guidance

import (
	"context"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/guestnav/guestnav/services/guidance SessionRepo,VenueRepo

// SessionRepo stores active navigation sessions keyed by courier
type SessionRepo interface {
	StoreSession(ctx context.Context, session *models.NavigationSession) error
	GetSession(ctx context.Context, courierID string) (*models.NavigationSession, error)
	DeleteSession(ctx context.Context, courierID string) error
}

// VenueRepo loads the venue reference data used for viewport fallbacks
type VenueRepo interface {
	GetVenueProfile(ctx context.Context, venueID string) (*models.VenueProfile, error)
}
