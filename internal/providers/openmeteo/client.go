// Package openmeteo fetches hourly forecasts from the Open-Meteo API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/logging"
	"github.com/canchalibre/match-engine/internal/providers"
	"github.com/canchalibre/match-engine/internal/weather"
)

const (
	providerName   = "openmeteo"
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	// Open-Meteo hourly timestamps are civil times in the requested zone.
	hourlyTimeLayout = "2006-01-02T15:04"
)

// Client implements providers.ForecastProvider against Open-Meteo.
// A circuit breaker sheds load when the upstream is failing; there are no
// retries here, failed cycles simply wait for the next poll.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// New constructs a Client. A nil httpClient falls back to a 10s-timeout default.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		breaker:    breaker,
		logger:     logger,
	}
}

func (c *Client) Name() string { return providerName }

type hourlyPayload struct {
	Timezone string `json:"timezone"`
	Hourly   struct {
		Time                []string  `json:"time"`
		Temperature         []float64 `json:"temperature_2m"`
		ApparentTemperature []float64 `json:"apparent_temperature"`
		PrecipProbability   []int     `json:"precipitation_probability"`
		WindSpeed           []float64 `json:"wind_speed_10m"`
		WeatherCode         []int     `json:"weather_code"`
	} `json:"hourly"`
}

// FetchHourlyForecast requests the next 24 hours for the location. Hours
// with out-of-range fields are dropped individually; the rest of the batch
// is returned.
func (c *Client) FetchHourlyForecast(ctx context.Context, location domain.GeoPoint) (domain.ForecastBundle, error) {
	req, err := c.buildRequest(ctx, location)
	if err != nil {
		return domain.ForecastBundle{}, err
	}

	result, err := c.breaker.Execute(func() (any, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &providers.UpstreamError{
				Provider:   providerName,
				StatusCode: resp.StatusCode,
				Message:    "forecast request failed",
			}
		}

		var payload hourlyPayload
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
			return nil, fmt.Errorf("decode forecast payload: %w", decodeErr)
		}
		return payload, nil
	})
	if err != nil {
		return domain.ForecastBundle{}, err
	}

	payload, ok := result.(hourlyPayload)
	if !ok {
		return domain.ForecastBundle{}, fmt.Errorf("unexpected result type from circuit breaker")
	}

	return c.mapPayload(payload, location)
}

func (c *Client) buildRequest(ctx context.Context, location domain.GeoPoint) (*http.Request, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", location.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", location.Longitude))
	values.Set("hourly", "temperature_2m,apparent_temperature,precipitation_probability,wind_speed_10m,weather_code")
	values.Set("forecast_hours", "24")
	values.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (c *Client) mapPayload(payload hourlyPayload, location domain.GeoPoint) (domain.ForecastBundle, error) {
	loc, err := time.LoadLocation(payload.Timezone)
	if err != nil {
		return domain.ForecastBundle{}, fmt.Errorf("forecast reported unusable timezone %q: %w", payload.Timezone, err)
	}

	hours := make([]domain.ForecastHour, 0, len(payload.Hourly.Time))
	for i, raw := range payload.Hourly.Time {
		instant, parseErr := time.ParseInLocation(hourlyTimeLayout, raw, loc)
		if parseErr != nil {
			logging.Warn(c.logger, "skipping unparseable forecast hour",
				slog.String(logging.FieldProvider, providerName),
				slog.String("time", raw),
			)
			continue
		}
		hours = append(hours, domain.ForecastHour{
			Instant:             instant,
			Temperature:         at(payload.Hourly.Temperature, i),
			ApparentTemperature: at(payload.Hourly.ApparentTemperature, i),
			PrecipProbability:   atInt(payload.Hourly.PrecipProbability, i),
			WindSpeedKmh:        at(payload.Hourly.WindSpeed, i),
			WeatherCode:         atInt(payload.Hourly.WeatherCode, i),
		})
	}

	valid, rejected := weather.FilterValid(hours)
	if rejected > 0 {
		logging.Warn(c.logger, "rejected out-of-range forecast hours",
			slog.String(logging.FieldProvider, providerName),
			slog.Int(logging.FieldCount, rejected),
		)
	}

	return domain.ForecastBundle{
		TimeZone: payload.Timezone,
		Origin:   location,
		Hours:    valid,
	}, nil
}

// Column arrays can be shorter than the time array on partial upstream data.
func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func atInt(values []int, i int) int {
	if i < len(values) {
		return values[i]
	}
	return 0
}
