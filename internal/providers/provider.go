// Package providers defines the upstream data contracts the engine consumes:
// booking feeds and hourly forecasts.
package providers

import (
	"context"

	"github.com/canchalibre/match-engine/internal/domain"
)

// BookingProvider fetches the current booking records.
type BookingProvider interface {
	FetchBookings(ctx context.Context) ([]domain.BookingRecord, error)
}

// ForecastProvider fetches the hourly forecast for a location.
// The bundle carries the forecast origin and its time zone identifier.
type ForecastProvider interface {
	FetchHourlyForecast(ctx context.Context, location domain.GeoPoint) (domain.ForecastBundle, error)
}

// Named is implemented by providers that report a stable name for logs
// and metrics.
type Named interface {
	Name() string
}

// NameOf returns the provider's reported name or a fallback.
func NameOf(p any, fallback string) string {
	if named, ok := p.(Named); ok && named.Name() != "" {
		return named.Name()
	}
	return fallback
}
