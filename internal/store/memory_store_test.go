package store

import (
	"sync"
	"testing"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
)

func rec(id string) domain.BookingRecord {
	return domain.BookingRecord{
		ID:            id,
		CivilDate:     time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC),
		WallClockTime: "14:00",
		VenueTimeZone: "Europe/Madrid",
		Status:        domain.BookingScheduled,
	}
}

func TestSetAndListBookings(t *testing.T) {
	s := NewMemoryStore()
	if got := s.ListBookings(); len(got) != 0 {
		t.Fatalf("expected empty store, got %d", len(got))
	}

	s.SetBookings([]domain.BookingRecord{rec("a"), rec("b")})
	if got := s.ListBookings(); len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}

	b, ok := s.GetBooking("a")
	if !ok || b.ID != "a" {
		t.Fatalf("expected booking a, got %+v ok=%v", b, ok)
	}
	if _, ok := s.GetBooking("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestSetBookingsReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetBookings([]domain.BookingRecord{rec("a")})
	s.SetBookings([]domain.BookingRecord{rec("b")})

	if _, ok := s.GetBooking("a"); ok {
		t.Fatal("expected previous snapshot gone")
	}
	if _, ok := s.GetBooking("b"); !ok {
		t.Fatal("expected new snapshot present")
	}
}

func TestForecastRoundTripCopiesHours(t *testing.T) {
	s := NewMemoryStore()
	bundle := domain.ForecastBundle{
		TimeZone: "Europe/Madrid",
		Hours: []domain.ForecastHour{
			{Instant: time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC), WeatherCode: 1},
		},
	}
	s.SetForecast(bundle)

	got := s.Forecast()
	if got.TimeZone != "Europe/Madrid" || len(got.Hours) != 1 {
		t.Fatalf("unexpected forecast: %+v", got)
	}

	// Mutating the returned slice must not leak into the store.
	got.Hours[0].WeatherCode = 99
	if s.Forecast().Hours[0].WeatherCode != 1 {
		t.Fatal("expected stored hours unchanged after caller mutation")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetBookings([]domain.BookingRecord{rec("x")})
		}()
		go func() {
			defer wg.Done()
			_ = s.ListBookings()
			_ = s.Forecast()
		}()
	}
	wg.Wait()
}
