package models

// Point is a bare coordinate pair used as RegionFitter input
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapRegion is a bounded camera viewport: center plus angular spans.
// Deltas always lie within the configured zoom band.
type MapRegion struct {
	CenterLatitude  float64 `json:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude"`
	LatitudeDelta   float64 `json:"latitude_delta"`
	LongitudeDelta  float64 `json:"longitude_delta"`
}
