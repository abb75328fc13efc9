// Package weather rates forecast hours for playability and merges the
// favorable ones into display windows.
package weather

import (
	"fmt"

	"github.com/canchalibre/match-engine/internal/domain"
)

// Open-Meteo WMO code boundaries relevant to the rating ladder.
const (
	stormCodeMin = 95
	fogCode      = 45
	rimeFogCode  = 48
)

// Thresholds for the rating ladder.
const (
	precipHardLimit = 60
	precipSoftLimit = 25
	windLimitKmh    = 30.0
)

// Classify maps one forecast hour to its playability rating.
// Rules are ordered; the first match wins because conditions overlap.
// Codes outside the known set carry no adverse signal and rate Favorable.
func Classify(h domain.ForecastHour) domain.Favorability {
	switch {
	case h.WeatherCode >= stormCodeMin:
		return domain.Favorability{
			Status: domain.Desfavorable,
			Reason: "Tormentas eléctricas activas",
		}
	case h.PrecipProbability > precipHardLimit:
		return domain.Favorability{
			Status: domain.Desfavorable,
			Reason: fmt.Sprintf("Alta probabilidad de lluvia (%d%%)", h.PrecipProbability),
		}
	case h.WindSpeedKmh > windLimitKmh:
		return domain.Favorability{
			Status: domain.Desfavorable,
			Reason: fmt.Sprintf("Viento fuerte (%.0f km/h)", h.WindSpeedKmh),
		}
	case h.PrecipProbability > precipSoftLimit:
		return domain.Favorability{
			Status: domain.Condicional,
			Reason: fmt.Sprintf("Posible lluvia (%d%%)", h.PrecipProbability),
		}
	case h.WeatherCode == fogCode || h.WeatherCode == rimeFogCode:
		return domain.Favorability{
			Status: domain.Condicional,
			Reason: "Niebla presente",
		}
	default:
		return domain.Favorability{
			Status: domain.Favorable,
			Reason: "Condiciones óptimas para jugar",
		}
	}
}
