package config

import "time"

const (
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envProvider        = "PROVIDER"
	envDefaultTimeZone = "DEFAULT_TIMEZONE"
	envOriginLat       = "FORECAST_ORIGIN_LAT"
	envOriginLon       = "FORECAST_ORIGIN_LON"
	envOpenMeteoURL    = "OPENMETEO_BASE_URL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Forecast data changes slowly; five minutes keeps well under the
	// Open-Meteo free-tier quota.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "fixture"
	// The product launched in Madrid; the reference zone for "today" when a
	// client does not send one.
	defaultTimeZone    = "Europe/Madrid"
	defaultOriginLat   = 40.4168
	defaultOriginLon   = -3.7038
	defaultMetricsPort = "9090"
)
