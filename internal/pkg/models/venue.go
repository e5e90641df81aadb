package models

import "time"

// VenueProfile holds the per-venue reference data used for GPS floor
// derivation and viewport fallbacks.
type VenueProfile struct {
	ID                   string    `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	AnchorLatitude       float64   `db:"anchor_latitude" json:"anchor_latitude"`
	AnchorLongitude      float64   `db:"anchor_longitude" json:"anchor_longitude"`
	GroundAltitudeMeters float64   `db:"ground_altitude_meters" json:"ground_altitude_meters"`
	MetersPerFloor       float64   `db:"meters_per_floor" json:"meters_per_floor"`
	DefaultSpanDegrees   float64   `db:"default_span_degrees" json:"default_span_degrees"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// Anchor returns the venue anchor as a region-fitter point
func (v *VenueProfile) Anchor() Point {
	return Point{Latitude: v.AnchorLatitude, Longitude: v.AnchorLongitude}
}
