package provider

import (
	"fmt"
	"time"

	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/position"
)

// IndoorProvider normalizes readings from the venue positioning feed.
// Indoor readings carry an authoritative floor level, so they pass
// through without derivation.
type IndoorProvider struct {
	live *liveness
}

// NewIndoorProvider creates an indoor provider whose health window bounds
// how long the last venue reading keeps the provider trusted.
func NewIndoorProvider(healthWindow time.Duration) position.Provider {
	return &IndoorProvider{
		live: newLiveness(healthWindow),
	}
}

func (p *IndoorProvider) Source() models.PositionSourceType {
	return models.SourceIndoor
}

// Accept validates an indoor reading. Indoor fixes without a floor level
// are rejected rather than passed through as floor-unknown: the venue
// feed always resolves a floor, so a missing one means a broken reading.
func (p *IndoorProvider) Accept(reading *models.ProviderReading) error {
	if err := validateReading(reading); err != nil {
		return err
	}
	if reading.FloorLevel == nil {
		return fmt.Errorf("%w: indoor reading without floor level", ErrInvalidReading)
	}
	reading.Source = models.SourceIndoor
	reading.AltitudeMeters = nil
	p.live.record(reading.CourierID, reading.Timestamp)
	return nil
}

func (p *IndoorProvider) Healthy(courierID string, now time.Time) bool {
	return p.live.healthy(courierID, now)
}

func (p *IndoorProvider) Forget(courierID string) {
	p.live.forget(courierID)
}
