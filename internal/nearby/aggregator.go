// Package nearby filters and ranks bookings for the "matches near you today"
// surface.
package nearby

import (
	"log/slog"
	"sort"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/geo"
	"github.com/canchalibre/match-engine/internal/logging"
	"github.com/canchalibre/match-engine/internal/match"
	"github.com/canchalibre/match-engine/internal/metrics"
	"github.com/canchalibre/match-engine/internal/timeutil"
)

// DefaultRadiusKm is the fixed discovery radius.
const DefaultRadiusKm = 50.0

// RankedMatch pairs a surviving booking with its resolved window and
// derived status.
type RankedMatch struct {
	Booking domain.BookingRecord
	Window  domain.MatchWindow
	Status  domain.MatchStatus
}

// Aggregator ranks today's nearby bookings. Resolution failures skip the
// offending booking; they never abort the batch.
type Aggregator struct {
	logger   *slog.Logger
	metrics  *metrics.Recorder
	radiusKm float64
}

// New constructs an Aggregator with the default radius.
func New(logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	return &Aggregator{
		logger:   logger,
		metrics:  recorder,
		radiusKm: DefaultRadiusKm,
	}
}

// Rank returns the bookings happening today within the radius of viewer,
// ordered live first, then upcoming/waiting by start ascending, then
// finished by start descending. The reference time zone decides what
// "today" means; an unknown reference zone fails the whole call since no
// booking's day can be compared.
func (a *Aggregator) Rank(bookings []domain.BookingRecord, viewer domain.GeoPoint, referenceTZ string, now time.Time) ([]RankedMatch, error) {
	refLoc, err := time.LoadLocation(referenceTZ)
	if err != nil || referenceTZ == "" {
		return nil, &match.ConfigurationError{TimeZone: referenceTZ, Err: err}
	}

	ranked := make([]RankedMatch, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Venue == nil || booking.Status == domain.BookingCancelled {
			continue
		}
		if geo.DistanceKm(viewer, *booking.Venue) > a.radiusKm {
			continue
		}
		if !timeutil.SameCivilDay(booking.CivilDate, now, refLoc) {
			continue
		}

		tz := booking.VenueTimeZone
		if tz == "" {
			tz = referenceTZ
		}
		window, err := match.ResolveWindow(booking.CivilDate, booking.WallClockTime, tz)
		if err != nil {
			a.recordFailure(booking, err)
			continue
		}

		ranked = append(ranked, RankedMatch{
			Booking: booking,
			Window:  window,
			Status:  match.DeriveStatus(window, booking.Status, now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := priority(ranked[i].Status.State), priority(ranked[j].Status.State)
		if pi != pj {
			return pi < pj
		}
		if ranked[i].Status.State == domain.StateFinished {
			return ranked[i].Window.Start.After(ranked[j].Window.Start)
		}
		return ranked[i].Window.Start.Before(ranked[j].Window.Start)
	})

	return ranked, nil
}

// TodayNearby is the record-only view of Rank.
func (a *Aggregator) TodayNearby(bookings []domain.BookingRecord, viewer domain.GeoPoint, referenceTZ string, now time.Time) ([]domain.BookingRecord, error) {
	ranked, err := a.Rank(bookings, viewer, referenceTZ, now)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BookingRecord, 0, len(ranked))
	for _, entry := range ranked {
		out = append(out, entry.Booking)
	}
	return out, nil
}

func priority(state domain.MatchState) int {
	switch state {
	case domain.StateLive:
		return 1
	case domain.StateUpcoming, domain.StateWaiting:
		return 2
	default:
		return 3
	}
}

func (a *Aggregator) recordFailure(booking domain.BookingRecord, err error) {
	kind := metrics.ResolveFailureValidation
	if _, ok := match.AsConfigurationError(err); ok {
		kind = metrics.ResolveFailureConfiguration
	}
	a.metrics.RecordResolveFailure(kind)
	logging.Warn(a.logger, "booking resolution skipped",
		slog.String(logging.FieldBookingID, booking.ID),
		slog.String(logging.FieldTimezone, booking.VenueTimeZone),
		"error", err,
	)
}
