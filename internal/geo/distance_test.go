package geo

import (
	"math"
	"testing"

	"github.com/canchalibre/match-engine/internal/domain"
)

var (
	madrid    = domain.GeoPoint{Latitude: 40.4168, Longitude: -3.7038}
	barcelona = domain.GeoPoint{Latitude: 41.3874, Longitude: 2.1686}
)

func TestDistanceKmKnownPair(t *testing.T) {
	got := DistanceKm(madrid, barcelona)
	// Madrid to Barcelona is roughly 505 km great-circle.
	if math.Abs(got-505) > 5 {
		t.Fatalf("expected ~505 km, got %.2f", got)
	}
}

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	if got := DistanceKm(madrid, madrid); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	forward := DistanceKm(madrid, barcelona)
	backward := DistanceKm(barcelona, madrid)
	if math.Abs(forward-backward) > 1e-9 {
		t.Fatalf("expected symmetric distances, got %f and %f", forward, backward)
	}
}

func TestDistanceKmShortRange(t *testing.T) {
	near := domain.GeoPoint{Latitude: madrid.Latitude + 0.01, Longitude: madrid.Longitude}
	got := DistanceKm(madrid, near)
	// 0.01 degrees of latitude is about 1.11 km.
	if math.Abs(got-1.11) > 0.02 {
		t.Fatalf("expected ~1.11 km, got %.4f", got)
	}
}
