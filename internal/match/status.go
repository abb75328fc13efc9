package match

import (
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
)

// DeriveStatus maps a resolved window, the authoritative booking status and
// the current instant to the derived lifecycle state. It is a pure function
// and is meant to be re-evaluated on every tick; the result is never cached.
//
// Completed and cancelled bookings short-circuit to finished regardless of
// instant comparisons.
func DeriveStatus(window domain.MatchWindow, authoritative domain.BookingStatus, now time.Time) domain.MatchStatus {
	if authoritative == domain.BookingCompleted || authoritative == domain.BookingCancelled {
		return domain.MatchStatus{State: domain.StateFinished}
	}

	switch {
	case !now.Before(window.GraceEnd):
		return domain.MatchStatus{State: domain.StateFinished}
	case now.Before(window.Start):
		return domain.MatchStatus{State: domain.StateUpcoming}
	case now.Before(window.End):
		return domain.MatchStatus{
			State:            domain.StateLive,
			CountdownSeconds: countdownSeconds(window.End, now),
		}
	default:
		return domain.MatchStatus{State: domain.StateWaiting}
	}
}

// countdownSeconds floors the remaining live time to whole seconds,
// never below zero.
func countdownSeconds(end, now time.Time) int {
	remaining := int(end.Sub(now) / time.Second)
	if remaining < 0 {
		return 0
	}
	return remaining
}
