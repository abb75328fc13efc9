// Package geo provides great-circle distance helpers for venue filtering.
package geo

import (
	"math"

	"github.com/canchalibre/match-engine/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance between two points
// in kilometers. Defined for all valid latitude/longitude ranges; callers
// validate coordinates.
func DistanceKm(a, b domain.GeoPoint) float64 {
	latA := toRadians(a.Latitude)
	latB := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
