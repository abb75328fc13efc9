package domain

import "time"

// ForecastHour is one hour of provider forecast data, ordered by Instant.
type ForecastHour struct {
	Instant             time.Time `json:"instant" validate:"required"`
	Temperature         float64   `json:"temperature"`
	ApparentTemperature float64   `json:"apparentTemperature"`
	PrecipProbability   int       `json:"precipitationProbability" validate:"gte=0,lte=100"`
	WindSpeedKmh        float64   `json:"windSpeedKmh" validate:"gte=0"`
	WeatherCode         int       `json:"weatherCode"`
}

// FavorabilityStatus is the three-level playability rating.
// The values are the product's display identifiers and are not localized here.
type FavorabilityStatus string

const (
	Favorable    FavorabilityStatus = "favorable"
	Condicional  FavorabilityStatus = "condicional"
	Desfavorable FavorabilityStatus = "desfavorable"
)

// Favorability is a rating plus its human-readable justification.
// It is derived on demand and never stored.
type Favorability struct {
	Status FavorabilityStatus `json:"status"`
	Reason string             `json:"reason"`
}

// ForecastBundle is what a forecast provider hands back: the hourly series,
// the forecast origin, and the origin's IANA time zone identifier.
type ForecastBundle struct {
	TimeZone string         `json:"timezone"`
	Origin   GeoPoint       `json:"origin"`
	Hours    []ForecastHour `json:"hours"`
}
