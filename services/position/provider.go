package position

import (
	"time"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

// Provider is one positioning technology feeding the source. Providers
// validate and normalize raw readings and track per-courier liveness so
// the source can pick the best available one.
type Provider interface {
	// Source identifies the technology behind this provider.
	Source() models.PositionSourceType
	// Accept validates a raw reading and records provider activity for
	// the courier. The reading may be normalized in place.
	Accept(reading *models.ProviderReading) error
	// Healthy reports whether the provider delivered a reading for the
	// courier recently enough to be trusted.
	Healthy(courierID string, now time.Time) bool
	// Forget drops liveness state for a courier.
	Forget(courierID string)
}
