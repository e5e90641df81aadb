package usecase

import (
	"math"

	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/internal/utils"
)

const (
	// ArrivalThresholdMeters is the same-floor distance under which the
	// courier counts as arrived.
	ArrivalThresholdMeters = 15.0
	// AlignmentToleranceDegrees is the wrap-aware bearing offset under
	// which the courier counts as facing the target.
	AlignmentToleranceDegrees = 15.0
	// MetersPerFloor converts floor deltas to vertical meters.
	MetersPerFloor = 4.0
	// MaxTiltDegrees caps the vertical tilt indicator.
	MaxTiltDegrees = 45.0
	// distanceEpsilonMeters floors the divisor in the tilt computation so
	// zero horizontal distance with differing floors yields the steepest
	// tilt instead of a division blowup.
	distanceEpsilonMeters = 0.5
)

// Calculate derives the renderable guidance state from the latest sample
// and the session target. Pure: no side effects, never fails, always
// returns bounded values.
func Calculate(sample *models.PositionSample, target models.Target) models.GuidanceState {
	self := utils.GeoPoint{Latitude: sample.Latitude, Longitude: sample.Longitude}
	dest := utils.GeoPoint{Latitude: target.Latitude, Longitude: target.Longitude}

	distance := utils.DistanceMeters(self, dest)
	bearing := utils.InitialBearing(self, dest)

	// An absent heading still yields a usable indicator: the relative
	// bearing degenerates to the absolute one.
	relativeBearing := bearing
	if sample.HeadingDegrees != nil {
		relativeBearing = utils.NormalizeBearing(bearing - *sample.HeadingDegrees)
	}

	// An unknown floor on either side is assumed to match the other with
	// reduced confidence: navigation continues, but the state must never
	// claim alignment it cannot verify.
	floorDelta := 0
	floorKnown := sample.FloorLevel != nil && target.FloorLevel != nil
	if floorKnown {
		floorDelta = *target.FloorLevel - *sample.FloorLevel
	}
	isSameFloor := floorDelta == 0

	state := models.GuidanceState{
		DistanceMeters:         distance,
		BearingDegrees:         bearing,
		RelativeBearingDegrees: relativeBearing,
		FloorDelta:             floorDelta,
		IsSameFloor:            isSameFloor,
	}

	if isSameFloor {
		state.VerticalTiltDegrees = 0
		state.IsAligned = floorKnown &&
			utils.AngularDistance(relativeBearing, 0) < AlignmentToleranceDegrees
	} else {
		verticalDistance := math.Abs(float64(floorDelta)) * MetersPerFloor
		tilt := math.Atan(verticalDistance/math.Max(distance, distanceEpsilonMeters)) * 180 / math.Pi
		state.VerticalTiltDegrees = math.Min(tilt, MaxTiltDegrees)
		state.IsAligned = false
	}

	state.IsArrived = isSameFloor && distance < ArrivalThresholdMeters

	return state
}

// Phase maps a guidance state to the presentation phase the device
// renders. Arrival dominates every other phase.
func Phase(state models.GuidanceState) models.GuidancePhase {
	switch {
	case state.IsArrived:
		return models.PhaseArrived
	case !state.IsSameFloor:
		return models.PhaseDifferentFloor
	case state.IsAligned:
		return models.PhaseSameFloorAligned
	default:
		return models.PhaseSameFloorSeeking
	}
}
