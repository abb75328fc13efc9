// Package match resolves absolute match windows from civil booking data and
// derives the live lifecycle state from them.
package match

import (
	"regexp"
	"strconv"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
)

// Fixed match duration and post-match confirmation window.
const (
	Duration    = 60 * time.Minute
	GracePeriod = 60 * time.Minute
)

var wallClockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}

// ResolveWindow converts a booking's stored civil date, wall-clock time and
// venue time zone into the absolute match window.
//
// The calendar day is re-derived by reading the stored date in the venue
// zone: the capture instant may have been produced in another zone and land
// on the wrong side of midnight otherwise. The instant is then built
// directly from the civil fields in the venue location, which applies the
// real transition rules for that date across DST boundaries.
func ResolveWindow(civilDate time.Time, wallClock, venueTZ string) (domain.MatchWindow, error) {
	if venueTZ == "" {
		return domain.MatchWindow{}, &ConfigurationError{TimeZone: venueTZ}
	}
	loc, err := time.LoadLocation(venueTZ)
	if err != nil {
		return domain.MatchWindow{}, &ConfigurationError{TimeZone: venueTZ, Err: err}
	}

	hour, minute, err := parseWallClock(wallClock)
	if err != nil {
		return domain.MatchWindow{}, err
	}

	year, month, day := civilDate.In(loc).Date()
	start := time.Date(year, month, day, hour, minute, 0, 0, loc)

	return domain.MatchWindow{
		Start:    start,
		End:      start.Add(Duration),
		GraceEnd: start.Add(Duration + GracePeriod),
	}, nil
}

func parseWallClock(value string) (hour, minute int, err error) {
	parts := wallClockPattern.FindStringSubmatch(value)
	if parts == nil {
		return 0, 0, &ValidationError{Field: "wallClockTime", Value: value}
	}
	hour, _ = strconv.Atoi(parts[1])
	minute, _ = strconv.Atoi(parts[2])
	return hour, minute, nil
}
