package provider

import (
	"math"
	"time"

	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/position"
)

// GPSProvider normalizes device GPS reports. GPS has no floor concept,
// so the floor is derived from barometric altitude against the venue's
// ground reference. A report without altitude yields an unknown floor,
// never a defaulted one.
type GPSProvider struct {
	groundAltitude float64
	metersPerFloor float64
	live           *liveness
}

// NewGPSProvider creates a GPS provider using the venue profile for
// altitude-to-floor derivation.
func NewGPSProvider(venue *models.VenueProfile, healthWindow time.Duration) position.Provider {
	return &GPSProvider{
		groundAltitude: venue.GroundAltitudeMeters,
		metersPerFloor: venue.MetersPerFloor,
		live:           newLiveness(healthWindow),
	}
}

func (p *GPSProvider) Source() models.PositionSourceType {
	return models.SourceGPS
}

// Accept validates a GPS report and derives the floor level from
// altitude when one was reported.
func (p *GPSProvider) Accept(reading *models.ProviderReading) error {
	if err := validateReading(reading); err != nil {
		return err
	}
	reading.Source = models.SourceGPS
	reading.FloorLevel = p.deriveFloor(reading.AltitudeMeters)
	p.live.record(reading.CourierID, reading.Timestamp)
	return nil
}

// deriveFloor maps altitude to the nearest floor. Nil in, nil out.
func (p *GPSProvider) deriveFloor(altitude *float64) *int {
	if altitude == nil || p.metersPerFloor <= 0 {
		return nil
	}
	floor := int(math.Round((*altitude - p.groundAltitude) / p.metersPerFloor))
	return &floor
}

func (p *GPSProvider) Healthy(courierID string, now time.Time) bool {
	return p.live.healthy(courierID, now)
}

func (p *GPSProvider) Forget(courierID string) {
	p.live.forget(courierID)
}
