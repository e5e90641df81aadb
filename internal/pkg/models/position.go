package models

import "time"

// PositionSourceType identifies which provider produced a sample
type PositionSourceType string

const (
	SourceIndoor PositionSourceType = "INDOOR"
	SourceGPS    PositionSourceType = "GPS"
)

// ProviderReading is a raw reading from a positioning provider before
// normalization. Optional fields are pointers: absence is nil, never zero.
type ProviderReading struct {
	CourierID      string             `json:"courier_id"`
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	FloorLevel     *int               `json:"floor_level,omitempty"`
	HeadingDegrees *float64           `json:"heading_degrees,omitempty"`
	AltitudeMeters *float64           `json:"altitude_meters,omitempty"`
	AccuracyMeters float64            `json:"accuracy_meters"`
	Source         PositionSourceType `json:"source"`
	Timestamp      time.Time          `json:"timestamp"`
}

// PositionSample is the normalized position emitted to consumers regardless
// of which provider was active. Immutable; superseded by the next sample.
type PositionSample struct {
	CourierID      string             `json:"courier_id"`
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	FloorLevel     *int               `json:"floor_level,omitempty"`
	HeadingDegrees *float64           `json:"heading_degrees,omitempty"`
	AccuracyMeters float64            `json:"accuracy_meters"`
	Source         PositionSourceType `json:"source"`
	Timestamp      time.Time          `json:"timestamp"`
}

// NoFixEvent signals that no provider produced a sample within the bounded
// wait. Consumers must treat it as "position unknown", not "unchanged".
type NoFixEvent struct {
	CourierID string    `json:"courier_id"`
	Timestamp time.Time `json:"timestamp"`
}
