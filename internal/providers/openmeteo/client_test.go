package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/providers"
)

const samplePayload = `{
	"timezone": "Europe/Madrid",
	"hourly": {
		"time": ["2026-07-15T14:00", "2026-07-15T15:00", "2026-07-15T16:00"],
		"temperature_2m": [28.1, 28.9, 29.4],
		"apparent_temperature": [29.0, 29.8, 30.1],
		"precipitation_probability": [5, 150, 20],
		"wind_speed_10m": [12.0, 10.5, 9.8],
		"weather_code": [1, 2, 3]
	}
}`

func TestFetchHourlyForecastMapsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("latitude") == "" || query.Get("hourly") == "" {
			t.Errorf("missing query params: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(samplePayload)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client(), nil)
	bundle, err := client.FetchHourlyForecast(context.Background(), domain.GeoPoint{Latitude: 40.4, Longitude: -3.7})
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if bundle.TimeZone != "Europe/Madrid" {
		t.Fatalf("expected Madrid tz, got %q", bundle.TimeZone)
	}
	// The 150% precipitation record is rejected; the batch survives.
	if len(bundle.Hours) != 2 {
		t.Fatalf("expected 2 valid hours, got %d", len(bundle.Hours))
	}

	loc, _ := time.LoadLocation("Europe/Madrid")
	first := bundle.Hours[0]
	if got := first.Instant.In(loc).Format("15:04"); got != "14:00" {
		t.Fatalf("expected civil 14:00 in Madrid, got %s", got)
	}
	if first.Temperature != 28.1 || first.WeatherCode != 1 {
		t.Fatalf("unexpected mapping: %+v", first)
	}
}

func TestFetchHourlyForecastUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client(), nil)
	_, err := client.FetchHourlyForecast(context.Background(), domain.GeoPoint{})
	if err == nil {
		t.Fatal("expected error for 502")
	}
	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", upErr.StatusCode)
	}
}

func TestFetchHourlyForecastBadTimezone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"timezone": "Not/AZone", "hourly": {"time": []}}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client(), nil)
	if _, err := client.FetchHourlyForecast(context.Background(), domain.GeoPoint{}); err == nil {
		t.Fatal("expected error for unusable timezone")
	}
}

func TestCircuitBreakerOpensAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client(), nil)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		if _, err := client.FetchHourlyForecast(ctx, domain.GeoPoint{}); err == nil {
			t.Fatal("expected every call to fail")
		}
	}
	// After enough consecutive failures the breaker trips and later calls
	// fail fast without reaching the upstream.
	_, err := client.FetchHourlyForecast(ctx, domain.GeoPoint{})
	if err == nil {
		t.Fatal("expected failure with open breaker")
	}
}

func TestClientDefaults(t *testing.T) {
	client := New("", nil, nil)
	if client.baseURL != defaultBaseURL {
		t.Fatalf("expected default base URL, got %q", client.baseURL)
	}
	if client.httpClient == nil || client.httpClient.Timeout == 0 {
		t.Fatal("expected default http client with timeout")
	}
	if client.Name() != "openmeteo" {
		t.Fatalf("unexpected name %q", client.Name())
	}
}
