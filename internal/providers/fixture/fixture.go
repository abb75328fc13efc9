// Package fixture supplies deterministic bookings and forecast data for
// local development and bootstrapping.
package fixture

import (
	"context"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
)

const (
	providerName = "fixture"
	venueTZ      = "Europe/Madrid"
)

// Venues scattered around central Madrid.
var (
	venueRetiro    = domain.GeoPoint{Latitude: 40.4153, Longitude: -3.6845}
	venueChamartin = domain.GeoPoint{Latitude: 40.4669, Longitude: -3.6766}
	venueVallecas  = domain.GeoPoint{Latitude: 40.3920, Longitude: -3.6510}
)

// Provider returns a static set of bookings and a synthetic 24-hour forecast.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewAt creates a fixture provider pinned to a fixed clock; used by tests.
func NewAt(now func() time.Time) *Provider {
	return &Provider{now: now}
}

func (p *Provider) Name() string { return providerName }

// FetchBookings returns bookings spread around the current instant: one
// in progress, one later today, one already decided, and one cancelled.
func (p *Provider) FetchBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	_ = ctx

	loc, err := time.LoadLocation(venueTZ)
	if err != nil {
		return nil, err
	}
	now := p.now().In(loc)
	clock := func(offset time.Duration) string {
		return now.Add(offset).Format("15:04")
	}
	scoreA, scoreB := 6, 3

	bookings := []domain.BookingRecord{
		{
			ID:            "fixture-live",
			Venue:         &venueRetiro,
			CivilDate:     now,
			WallClockTime: clock(-30 * time.Minute),
			VenueTimeZone: venueTZ,
			Status:        domain.BookingScheduled,
		},
		{
			ID:            "fixture-upcoming",
			Venue:         &venueChamartin,
			CivilDate:     now,
			WallClockTime: clock(2 * time.Hour),
			VenueTimeZone: venueTZ,
			Status:        domain.BookingScheduled,
		},
		{
			ID:            "fixture-completed",
			Venue:         &venueVallecas,
			CivilDate:     now,
			WallClockTime: clock(-3 * time.Hour),
			VenueTimeZone: venueTZ,
			Status:        domain.BookingCompleted,
			ScoreA:        &scoreA,
			ScoreB:        &scoreB,
		},
		{
			ID:            "fixture-cancelled",
			Venue:         &venueRetiro,
			CivilDate:     now,
			WallClockTime: clock(4 * time.Hour),
			VenueTimeZone: venueTZ,
			Status:        domain.BookingCancelled,
		},
	}

	return bookings, nil
}

// FetchHourlyForecast returns a synthetic 24-hour series starting at the
// current hour: clear morning, a rainy band, one storm hour, clear again.
func (p *Provider) FetchHourlyForecast(ctx context.Context, location domain.GeoPoint) (domain.ForecastBundle, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	hours := make([]domain.ForecastHour, 0, 24)
	for i := 0; i < 24; i++ {
		hour := domain.ForecastHour{
			Instant:             start.Add(time.Duration(i) * time.Hour),
			Temperature:         18 + float64(i%12)/2,
			ApparentTemperature: 17 + float64(i%12)/2,
			PrecipProbability:   5,
			WindSpeedKmh:        10,
			WeatherCode:         1,
		}
		switch {
		case i >= 6 && i <= 8:
			hour.PrecipProbability = 70
			hour.WeatherCode = 61
		case i == 9:
			hour.PrecipProbability = 90
			hour.WeatherCode = 95
		case i >= 10 && i <= 11:
			hour.PrecipProbability = 40
			hour.WeatherCode = 51
		}
		hours = append(hours, hour)
	}

	return domain.ForecastBundle{
		TimeZone: venueTZ,
		Origin:   location,
		Hours:    hours,
	}, nil
}
