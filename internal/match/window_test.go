package match

import (
	"testing"
	"time"
)

func TestResolveWindowInvariants(t *testing.T) {
	zones := []string{"Europe/Madrid", "America/Argentina/Buenos_Aires", "Asia/Tokyo", "UTC"}
	dates := []time.Time{
		time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 25, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 15, 23, 30, 0, 0, time.UTC),
	}
	clocks := []string{"00:00", "09:30", "15:00", "23:45"}

	for _, tz := range zones {
		for _, date := range dates {
			for _, clock := range clocks {
				window, err := ResolveWindow(date, clock, tz)
				if err != nil {
					t.Fatalf("resolve %s %s %s: %v", date, clock, tz, err)
				}
				if !window.Start.Before(window.End) || !window.End.Before(window.GraceEnd) {
					t.Fatalf("window ordering violated for %s %s %s: %+v", date, clock, tz, window)
				}
				if got := window.End.Sub(window.Start); got != Duration {
					t.Fatalf("expected %v match duration, got %v", Duration, got)
				}
				if got := window.GraceEnd.Sub(window.End); got != GracePeriod {
					t.Fatalf("expected %v grace period, got %v", GracePeriod, got)
				}
			}
		}
	}
}

func TestResolveWindowIdempotent(t *testing.T) {
	date := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	first, err := ResolveWindow(date, "18:30", "Europe/Madrid")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	second, err := ResolveWindow(date, "18:30", "Europe/Madrid")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if !first.Start.Equal(second.Start) || !first.End.Equal(second.End) || !first.GraceEnd.Equal(second.GraceEnd) {
		t.Fatalf("expected identical windows, got %+v and %+v", first, second)
	}
}

func TestResolveWindowReadsWallClockInVenueZone(t *testing.T) {
	date := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	window, err := ResolveWindow(date, "18:30", "Europe/Madrid")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	loc, _ := time.LoadLocation("Europe/Madrid")
	if got := window.Start.In(loc).Format("15:04"); got != "18:30" {
		t.Fatalf("expected 18:30 in venue zone, got %s", got)
	}
	// Madrid is UTC+2 in July, so 18:30 local is 16:30 UTC.
	if got := window.Start.UTC().Hour(); got != 16 {
		t.Fatalf("expected 16:00 UTC hour, got %d", got)
	}
}

func TestResolveWindowAcrossDSTTransition(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Madrid")
	// Madrid springs forward on 2026-03-29.
	before, err := ResolveWindow(time.Date(2026, 3, 28, 12, 0, 0, 0, time.UTC), "15:00", "Europe/Madrid")
	if err != nil {
		t.Fatalf("resolve before transition: %v", err)
	}
	after, err := ResolveWindow(time.Date(2026, 3, 30, 12, 0, 0, 0, time.UTC), "15:00", "Europe/Madrid")
	if err != nil {
		t.Fatalf("resolve after transition: %v", err)
	}

	_, beforeOffset := before.Start.Zone()
	_, afterOffset := after.Start.Zone()
	if beforeOffset == afterOffset {
		t.Fatalf("expected different UTC offsets across transition, both %d", beforeOffset)
	}
	for _, window := range []time.Time{before.Start, after.Start} {
		if got := window.In(loc).Format("15:04"); got != "15:00" {
			t.Fatalf("expected 15:00 in venue zone, got %s", got)
		}
	}
}

func TestResolveWindowRederivesCalendarDayInVenueZone(t *testing.T) {
	// Stored as 23:30 UTC on the 15th, which is already the 16th in Tokyo.
	date := time.Date(2026, 7, 15, 23, 30, 0, 0, time.UTC)
	window, err := ResolveWindow(date, "10:00", "Asia/Tokyo")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	loc, _ := time.LoadLocation("Asia/Tokyo")
	if got := window.Start.In(loc).Day(); got != 16 {
		t.Fatalf("expected match on the 16th in Tokyo, got day %d", got)
	}
}

func TestResolveWindowUnknownTimezone(t *testing.T) {
	date := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	for _, tz := range []string{"", "Mars/Olympus_Mons"} {
		_, err := ResolveWindow(date, "15:00", tz)
		if err == nil {
			t.Fatalf("expected error for tz %q", tz)
		}
		if _, ok := AsConfigurationError(err); !ok {
			t.Fatalf("expected ConfigurationError for tz %q, got %T", tz, err)
		}
	}
}

func TestResolveWindowMalformedWallClock(t *testing.T) {
	date := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	for _, clock := range []string{"", "25:00", "12:60", "9:5", "noon", "12.30"} {
		_, err := ResolveWindow(date, clock, "Europe/Madrid")
		if err == nil {
			t.Fatalf("expected error for wall clock %q", clock)
		}
		valErr, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("expected ValidationError for %q, got %T", clock, err)
		}
		if valErr.Field != "wallClockTime" {
			t.Fatalf("expected wallClockTime field, got %q", valErr.Field)
		}
	}
}

func TestResolveTimezone(t *testing.T) {
	if loc := ResolveTimezone("Europe/Madrid"); loc == nil {
		t.Fatal("expected location for valid tz")
	}
	if loc := ResolveTimezone(""); loc != nil {
		t.Fatalf("expected nil for empty tz, got %v", loc)
	}
	if loc := ResolveTimezone("Not/AZone"); loc != nil {
		t.Fatalf("expected nil for bogus tz, got %v", loc)
	}
}
