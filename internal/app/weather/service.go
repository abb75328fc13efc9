package weather

import (
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/match"
	weathereng "github.com/canchalibre/match-engine/internal/weather"
)

// ForecastStore defines the contract for reading and replacing the
// forecast snapshot.
type ForecastStore interface {
	Forecast() domain.ForecastBundle
	SetForecast(bundle domain.ForecastBundle)
}

// Service coordinates forecast operations using a ForecastStore.
type Service struct {
	store ForecastStore
}

// NewService constructs a Service with the provided store.
func NewService(store ForecastStore) *Service {
	return &Service{store: store}
}

// Forecast returns the stored forecast bundle.
func (s *Service) Forecast() domain.ForecastBundle {
	return s.store.Forecast()
}

// ReplaceForecast swaps the stored forecast with a new snapshot.
func (s *Service) ReplaceForecast(bundle domain.ForecastBundle) {
	s.store.SetForecast(bundle)
}

// HourlyFavorability rates each stored hour from now through the next 24
// hours, in forecast order.
func (s *Service) HourlyFavorability(now time.Time) []RatedHour {
	bundle := s.store.Forecast()
	hours := upcomingWindow(bundle.Hours, now)
	rated := make([]RatedHour, 0, len(hours))
	for _, h := range hours {
		rated = append(rated, RatedHour{Hour: h, Rating: weathereng.Classify(h)})
	}
	return rated
}

// BestWindows merges the favorable hours of the next 24 hours into display
// periods, keyed by hour-of-day in the forecast's zone.
func (s *Service) BestWindows(now time.Time) []string {
	bundle := s.store.Forecast()
	loc := match.ResolveTimezone(bundle.TimeZone)
	return weathereng.BestWindows(upcomingWindow(bundle.Hours, now), loc)
}

// RatedHour pairs a forecast hour with its derived rating.
type RatedHour struct {
	Hour   domain.ForecastHour `json:"hour"`
	Rating domain.Favorability `json:"rating"`
}

// upcomingWindow truncates an ordered series to [now's hour, now+24h).
func upcomingWindow(hours []domain.ForecastHour, now time.Time) []domain.ForecastHour {
	from := now.Truncate(time.Hour)
	until := now.Add(24 * time.Hour)

	out := make([]domain.ForecastHour, 0, len(hours))
	for _, h := range hours {
		if h.Instant.Before(from) || !h.Instant.Before(until) {
			continue
		}
		out = append(out, h)
	}
	return out
}
