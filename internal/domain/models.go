package domain

import "time"

// GeoPoint is a WGS 84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BookingStatus mirrors the authoritative lifecycle owned by the booking subsystem.
type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingRecord is the read-only booking shape handed to the engine.
// CivilDate is the stored capture instant; its calendar day must always be
// read in the venue time zone, never in the process-local zone.
type BookingRecord struct {
	ID            string        `json:"id"`
	Venue         *GeoPoint     `json:"venueCoordinates,omitempty"`
	CivilDate     time.Time     `json:"civilDate"`
	WallClockTime string        `json:"wallClockTime"`
	VenueTimeZone string        `json:"venueTimeZone,omitempty"`
	Status        BookingStatus `json:"authoritativeStatus"`
	ScoreA        *int          `json:"scoreA,omitempty"`
	ScoreB        *int          `json:"scoreB,omitempty"`
}

// MatchWindow is the resolved absolute span of a match.
// Start < End < GraceEnd holds for every resolved window.
type MatchWindow struct {
	Start    time.Time `json:"startInstant"`
	End      time.Time `json:"endInstant"`
	GraceEnd time.Time `json:"gracePeriodEndInstant"`
}

// MatchState enumerates the derived lifecycle states.
type MatchState string

const (
	StateUpcoming MatchState = "upcoming"
	StateLive     MatchState = "live"
	StateWaiting  MatchState = "waiting"
	StateFinished MatchState = "finished"
)

// MatchStatus is the derived state plus the live countdown.
// CountdownSeconds is meaningful only while State is live.
type MatchStatus struct {
	State            MatchState `json:"state"`
	CountdownSeconds int        `json:"countdownSeconds,omitempty"`
}

// MatchSummary is the shape exposed by the read surface for a ranked match.
type MatchSummary struct {
	ID        string      `json:"id"`
	StartTime string      `json:"startTime"`
	Status    MatchStatus `json:"status"`
	ScoreA    *int        `json:"scoreA,omitempty"`
	ScoreB    *int        `json:"scoreB,omitempty"`
}

// TodayResponse is the payload returned by /matches/today.
type TodayResponse struct {
	Date    string         `json:"date"`
	Matches []MatchSummary `json:"matches"`
}
