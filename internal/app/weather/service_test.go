package weather

import (
	"reflect"
	"testing"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/store"
)

func bundleAt(start time.Time, codes ...int) domain.ForecastBundle {
	hours := make([]domain.ForecastHour, 0, len(codes))
	for i, code := range codes {
		hours = append(hours, domain.ForecastHour{
			Instant:     start.Add(time.Duration(i) * time.Hour),
			WeatherCode: code,
		})
	}
	return domain.ForecastBundle{TimeZone: "UTC", Hours: hours}
}

func TestBestWindowsFromStoredForecast(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	start := time.Date(2026, 7, 15, 14, 0, 0, 0, time.UTC)
	// 14,15,16 clear, 17 storm, 18 clear.
	svc.ReplaceForecast(bundleAt(start, 0, 0, 0, 95, 0))

	got := svc.BestWindows(start)
	want := []string{"14:00 - 17:00", "18:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestBestWindowsTruncatesToNext24Hours(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	start := time.Date(2026, 7, 15, 14, 0, 0, 0, time.UTC)
	bundle := bundleAt(start, 0)
	// One favorable hour in the past and one beyond the 24h horizon.
	bundle.Hours = append(bundle.Hours,
		domain.ForecastHour{Instant: start.Add(-2 * time.Hour)},
		domain.ForecastHour{Instant: start.Add(30 * time.Hour)},
	)
	svc.ReplaceForecast(bundle)

	got := svc.BestWindows(start)
	want := []string{"14:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestHourlyFavorabilityRatesEveryHour(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	start := time.Date(2026, 7, 15, 14, 0, 0, 0, time.UTC)
	svc.ReplaceForecast(bundleAt(start, 0, 96, 45))

	rated := svc.HourlyFavorability(start)
	if len(rated) != 3 {
		t.Fatalf("expected 3 rated hours, got %d", len(rated))
	}
	wantStatuses := []domain.FavorabilityStatus{domain.Favorable, domain.Desfavorable, domain.Condicional}
	for i, want := range wantStatuses {
		if rated[i].Rating.Status != want {
			t.Fatalf("hour %d: expected %q got %q", i, want, rated[i].Rating.Status)
		}
	}
}

func TestBestWindowsEmptyStore(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	if got := svc.BestWindows(time.Now()); len(got) != 0 {
		t.Fatalf("expected no windows from empty store, got %v", got)
	}
}
