package server

import (
	"log/slog"
	"strings"

	"github.com/canchalibre/match-engine/internal/config"
	"github.com/canchalibre/match-engine/internal/providers"
	"github.com/canchalibre/match-engine/internal/providers/fixture"
	"github.com/canchalibre/match-engine/internal/providers/openmeteo"
)

// providerFactory assembles the booking and forecast providers for a config.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

// build selects the provider pair. The fixture provider serves both feeds;
// the openmeteo provider serves forecasts while bookings stay on the fixture
// until a real booking upstream exists.
func (f providerFactory) build(cfg config.Config) (providers.BookingProvider, providers.ForecastProvider) {
	fix := fixture.New()
	switch strings.ToLower(cfg.Provider) {
	case "openmeteo":
		return fix, openmeteo.New(cfg.OpenMeteoURL, nil, f.logger)
	default:
		if f.logger != nil && cfg.Provider != "" && !strings.EqualFold(cfg.Provider, "fixture") {
			f.logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fix, fix
	}
}
