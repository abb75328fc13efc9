package weather

import (
	"fmt"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
)

// BestWindows run-length-encodes the favorable hours of an ordered forecast
// into display periods like "14:00 - 17:00" or "20:00". Hours are keyed by
// hour-of-day in loc, so a sequence crossing midnight (23 followed by 0)
// never merges into one range.
func BestWindows(hours []domain.ForecastHour, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}

	var favorable []int
	for _, h := range hours {
		if Classify(h).Status == domain.Favorable {
			favorable = append(favorable, h.Instant.In(loc).Hour())
		}
	}
	if len(favorable) == 0 {
		return nil
	}

	periods := make([]string, 0, len(favorable))
	runStart := favorable[0]
	prev := favorable[0]

	flush := func(last int) {
		if runStart == last {
			periods = append(periods, fmt.Sprintf("%02d:00", runStart))
			return
		}
		periods = append(periods, fmt.Sprintf("%02d:00 - %02d:00", runStart, last+1))
	}

	for _, hour := range favorable[1:] {
		if hour != prev+1 {
			flush(prev)
			runStart = hour
		}
		prev = hour
	}
	flush(prev)

	return periods
}
