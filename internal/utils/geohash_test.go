package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name: "Same point",
			point1: GeoPoint{
				Latitude:  36.1147,
				Longitude: -115.1728,
			},
			point2: GeoPoint{
				Latitude:  36.1147,
				Longitude: -115.1728,
			},
			expected:  0.0,
			tolerance: 0.01,
		},
		{
			name: "Eleven meters east on the equator",
			point1: GeoPoint{
				Latitude:  0.0,
				Longitude: 0.0,
			},
			point2: GeoPoint{
				Latitude:  0.0,
				Longitude: 0.0001,
			},
			expected:  11.1, // 0.0001 degrees of longitude at the equator
			tolerance: 0.2,
		},
		{
			name: "Across a large casino floor",
			point1: GeoPoint{
				Latitude:  36.1147,
				Longitude: -115.1728,
			},
			point2: GeoPoint{
				Latitude:  36.1162,
				Longitude: -115.1728,
			},
			expected:  166.7, // 0.0015 degrees of latitude
			tolerance: 1.0,
		},
		{
			name: "Cross equator",
			point1: GeoPoint{
				Latitude:  -1.0,
				Longitude: 100.0,
			},
			point2: GeoPoint{
				Latitude:  1.0,
				Longitude: 100.0,
			},
			expected:  222400.0, // 2 degrees of latitude
			tolerance: 500.0,
		},
		{
			name: "Cross 180th meridian",
			point1: GeoPoint{
				Latitude:  0.0,
				Longitude: 179.0,
			},
			point2: GeoPoint{
				Latitude:  0.0,
				Longitude: -179.0,
			},
			expected:  222400.0, // 2 degrees of longitude at the equator
			tolerance: 500.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := DistanceMeters(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, distance, tt.tolerance)

			// Distance is symmetric
			reverse := DistanceMeters(tt.point2, tt.point1)
			assert.InDelta(t, distance, reverse, 0.001)
		})
	}
}

func TestInitialBearing(t *testing.T) {
	tests := []struct {
		name      string
		from      GeoPoint
		to        GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Due north",
			from:      GeoPoint{Latitude: 0, Longitude: 0},
			to:        GeoPoint{Latitude: 0.001, Longitude: 0},
			expected:  0.0,
			tolerance: 0.01,
		},
		{
			name:      "Due east",
			from:      GeoPoint{Latitude: 0, Longitude: 0},
			to:        GeoPoint{Latitude: 0, Longitude: 0.0001},
			expected:  90.0,
			tolerance: 0.01,
		},
		{
			name:      "Due south",
			from:      GeoPoint{Latitude: 0.001, Longitude: 0},
			to:        GeoPoint{Latitude: 0, Longitude: 0},
			expected:  180.0,
			tolerance: 0.01,
		},
		{
			name:      "Due west",
			from:      GeoPoint{Latitude: 0, Longitude: 0.0001},
			to:        GeoPoint{Latitude: 0, Longitude: 0},
			expected:  270.0,
			tolerance: 0.01,
		},
		{
			name:      "Northeast diagonal",
			from:      GeoPoint{Latitude: 0, Longitude: 0},
			to:        GeoPoint{Latitude: 0.0001, Longitude: 0.0001},
			expected:  45.0,
			tolerance: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bearing := InitialBearing(tt.from, tt.to)
			assert.InDelta(t, tt.expected, bearing, tt.tolerance)
			assert.GreaterOrEqual(t, bearing, 0.0)
			assert.Less(t, bearing, 360.0)
		})
	}
}

func TestNormalizeBearing(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeBearing(0))
	assert.Equal(t, 0.0, NormalizeBearing(360))
	assert.Equal(t, 10.0, NormalizeBearing(370))
	assert.Equal(t, 350.0, NormalizeBearing(-10))
	assert.Equal(t, 180.0, NormalizeBearing(-180))
	assert.InDelta(t, 90.0, NormalizeBearing(-990), 0.001)
}

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{"Identical", 90, 90, 0},
		{"Simple difference", 90, 100, 10},
		{"Wrap around north", 350, 10, 20},
		{"Wrap around north reversed", 10, 350, 20},
		{"Opposite directions", 0, 180, 180},
		{"Negative input", -10, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AngularDistance(tt.a, tt.b), 0.001)
		})
	}
}

func TestEncodeDecodeGeohash(t *testing.T) {
	point := GeoPoint{Latitude: 36.1147, Longitude: -115.1728}

	hash := EncodePoint(point, 9)
	assert.Len(t, hash, 9)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, lat, 0.001)
	assert.InDelta(t, point.Longitude, lng, 0.001)
	assert.True(t, math.Abs(lat) <= 90)

	neighbors := GetNeighbors(hash)
	assert.Len(t, neighbors, 8)
}
