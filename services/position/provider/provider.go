package provider

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

var (
	// ErrInvalidReading is wrapped by all validation failures
	ErrInvalidReading = errors.New("invalid provider reading")
)

// validateReading checks the fields every provider requires
func validateReading(reading *models.ProviderReading) error {
	if reading == nil {
		return fmt.Errorf("%w: nil reading", ErrInvalidReading)
	}
	if reading.CourierID == "" {
		return fmt.Errorf("%w: missing courier id", ErrInvalidReading)
	}
	if reading.Latitude < -90 || reading.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidReading, reading.Latitude)
	}
	if reading.Longitude < -180 || reading.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidReading, reading.Longitude)
	}
	if reading.AccuracyMeters < 0 {
		return fmt.Errorf("%w: negative accuracy", ErrInvalidReading)
	}
	if reading.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidReading)
	}
	if reading.HeadingDegrees != nil {
		h := *reading.HeadingDegrees
		if h < 0 || h >= 360 {
			return fmt.Errorf("%w: heading %f out of range", ErrInvalidReading, h)
		}
	}
	return nil
}

// liveness tracks the last accepted reading time per courier. Shared by
// both providers; a provider is healthy for a courier while its last
// reading is inside the window.
type liveness struct {
	window time.Duration
	mu     sync.RWMutex
	seen   map[string]time.Time
}

func newLiveness(window time.Duration) *liveness {
	return &liveness{
		window: window,
		seen:   make(map[string]time.Time),
	}
}

func (l *liveness) record(courierID string, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if at.After(l.seen[courierID]) {
		l.seen[courierID] = at
	}
}

func (l *liveness) healthy(courierID string, now time.Time) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	last, ok := l.seen[courierID]
	if !ok {
		return false
	}
	return now.Sub(last) <= l.window
}

func (l *liveness) forget(courierID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.seen, courierID)
}
