package models

import "time"

// Target is the captured origin of an order: where the customer is waiting.
// Immutable for the lifetime of a navigation session.
type Target struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	FloorLevel *int    `json:"floor_level,omitempty"`
	Label      string  `json:"label"`
}

// GuidanceState is the renderable direction derived from the latest
// position sample and the session target. Never persisted.
type GuidanceState struct {
	DistanceMeters         float64 `json:"distance_meters"`
	BearingDegrees         float64 `json:"bearing_degrees"`
	RelativeBearingDegrees float64 `json:"relative_bearing_degrees"`
	FloorDelta             int     `json:"floor_delta"`
	VerticalTiltDegrees    float64 `json:"vertical_tilt_degrees"`
	IsAligned              bool    `json:"is_aligned"`
	IsArrived              bool    `json:"is_arrived"`
	IsSameFloor            bool    `json:"is_same_floor"`
}

// GuidancePhase is the presentation-facing state derived from GuidanceState
type GuidancePhase string

const (
	PhaseSameFloorSeeking GuidancePhase = "same_floor_seeking"
	PhaseSameFloorAligned GuidancePhase = "same_floor_aligned"
	PhaseDifferentFloor   GuidancePhase = "different_floor"
	PhaseArrived          GuidancePhase = "arrived"
	PhasePositionUnknown  GuidancePhase = "position_unknown"
)

// NavigationSession binds a courier to an order target. At most one active
// session exists per courier; starting a new one replaces the previous.
type NavigationSession struct {
	SessionID string    `json:"session_id"`
	CourierID string    `json:"courier_id"`
	OrderID   string    `json:"order_id"`
	Target    Target    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

// GuidanceFrame is one push to the courier's device: the computed state plus
// the phase the overlay should render.
type GuidanceFrame struct {
	SessionID string        `json:"session_id"`
	CourierID string        `json:"courier_id"`
	OrderID   string        `json:"order_id"`
	Label     string        `json:"label"`
	State     GuidanceState `json:"state"`
	Phase     GuidancePhase `json:"phase"`
	Region    MapRegion     `json:"region"`
	Timestamp time.Time     `json:"timestamp"`
}
