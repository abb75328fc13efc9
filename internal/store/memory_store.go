package store

import (
	"sync"

	"github.com/canchalibre/match-engine/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of bookings and the latest
// hourly forecast in memory. Nothing here is persisted.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]domain.BookingRecord
	forecast domain.ForecastBundle
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string]domain.BookingRecord),
	}
}

// ListBookings returns a copy of the current booking records.
func (s *MemoryStore) ListBookings() []domain.BookingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.BookingRecord, 0, len(s.bookings))
	for _, b := range s.bookings {
		result = append(result, b)
	}
	return result
}

// GetBooking retrieves a booking by ID.
func (s *MemoryStore) GetBooking(id string) (domain.BookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	return b, ok
}

// SetBookings replaces the existing bookings with a new snapshot.
func (s *MemoryStore) SetBookings(bookings []domain.BookingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[string]domain.BookingRecord, len(bookings))
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
}

// Forecast returns the latest stored forecast bundle.
func (s *MemoryStore) Forecast() domain.ForecastBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle := s.forecast
	bundle.Hours = append([]domain.ForecastHour(nil), s.forecast.Hours...)
	return bundle
}

// SetForecast replaces the stored forecast bundle.
func (s *MemoryStore) SetForecast(bundle domain.ForecastBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forecast = bundle
}
