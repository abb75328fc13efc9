package matches

import (
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/match"
)

// Store defines the contract for reading and replacing booking snapshots.
type Store interface {
	ListBookings() []domain.BookingRecord
	GetBooking(id string) (domain.BookingRecord, bool)
	SetBookings(bookings []domain.BookingRecord)
}

// Service coordinates booking operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Bookings returns the current set of booking records.
func (s *Service) Bookings() []domain.BookingRecord {
	return s.store.ListBookings()
}

// BookingByID returns a single booking if present.
func (s *Service) BookingByID(id string) (domain.BookingRecord, bool) {
	return s.store.GetBooking(id)
}

// ReplaceBookings swaps the in-memory bookings with a new snapshot.
func (s *Service) ReplaceBookings(bookings []domain.BookingRecord) {
	s.store.SetBookings(bookings)
}

// StatusOf resolves a booking's window and derives its current status.
func (s *Service) StatusOf(booking domain.BookingRecord, now time.Time) (domain.MatchWindow, domain.MatchStatus, error) {
	window, err := match.ResolveWindow(booking.CivilDate, booking.WallClockTime, booking.VenueTimeZone)
	if err != nil {
		return domain.MatchWindow{}, domain.MatchStatus{}, err
	}
	return window, match.DeriveStatus(window, booking.Status, now), nil
}
