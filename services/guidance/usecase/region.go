package usecase

import (
	"math"

	"github.com/guestnav/guestnav/internal/pkg/models"
)

const (
	// SanityCeilingDegrees rejects point sets implausibly spread for an
	// indoor venue; such input falls back to the anchor region.
	SanityCeilingDegrees = 0.05
	// floorMinimumDegrees keeps a single point from collapsing the view.
	floorMinimumDegrees = 0.0005
	// paddingFactor leaves breathing room around the bounding box.
	paddingFactor = 1.2
	// CloseZoomFloorDegrees is the narrowest span the viewport may reach.
	CloseZoomFloorDegrees = 0.001
	// WideZoomCeilingDegrees is the widest span the viewport may reach.
	WideZoomCeilingDegrees = 0.02
)

// FitRegion produces a bounded viewport covering every input point. It
// never fails: empty or implausibly spread input yields a fixed close-in
// region centered on the venue anchor. Output deltas always lie within
// the zoom band.
func FitRegion(points []models.Point, anchor models.Point, fallbackSpan float64) models.MapRegion {
	if len(points) == 0 {
		return fallbackRegion(anchor, fallbackSpan)
	}

	minLat, maxLat := points[0].Latitude, points[0].Latitude
	minLng, maxLng := points[0].Longitude, points[0].Longitude
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLng = math.Min(minLng, p.Longitude)
		maxLng = math.Max(maxLng, p.Longitude)
	}

	latRange := maxLat - minLat
	lngRange := maxLng - minLng
	if latRange > SanityCeilingDegrees || lngRange > SanityCeilingDegrees {
		return fallbackRegion(anchor, fallbackSpan)
	}

	return models.MapRegion{
		CenterLatitude:  (minLat + maxLat) / 2,
		CenterLongitude: (minLng + maxLng) / 2,
		LatitudeDelta:   clampDelta(latRange),
		LongitudeDelta:  clampDelta(lngRange),
	}
}

func clampDelta(coordRange float64) float64 {
	delta := math.Max(coordRange, floorMinimumDegrees) * paddingFactor
	return math.Min(math.Max(delta, CloseZoomFloorDegrees), WideZoomCeilingDegrees)
}

func fallbackRegion(anchor models.Point, span float64) models.MapRegion {
	return models.MapRegion{
		CenterLatitude:  anchor.Latitude,
		CenterLongitude: anchor.Longitude,
		LatitudeDelta:   clampDelta(span),
		LongitudeDelta:  clampDelta(span),
	}
}
