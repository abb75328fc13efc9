package testutil

import (
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
)

// SampleBooking returns a scheduled booking fixture at the given venue
// coordinates, playing on the civil day of date at the given wall-clock time.
func SampleBooking(id string, venue domain.GeoPoint, date time.Time, wallClock, tz string) domain.BookingRecord {
	return domain.BookingRecord{
		ID:            id,
		Venue:         &venue,
		CivilDate:     date,
		WallClockTime: wallClock,
		VenueTimeZone: tz,
		Status:        domain.BookingScheduled,
	}
}
