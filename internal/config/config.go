package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	PollInterval    Duration
	Provider        string
	DefaultTimeZone string
	OriginLat       float64
	OriginLon       float64
	OpenMeteoURL    string
	Metrics         MetricsConfig
}

// MetricsConfig controls the telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() Config {
	// Existing environment variables win over .env contents.
	_ = godotenv.Load()

	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		PollInterval:    durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		DefaultTimeZone: envOrDefault(envDefaultTimeZone, defaultTimeZone),
		OriginLat:       floatEnvOrDefault(envOriginLat, defaultOriginLat),
		OriginLon:       floatEnvOrDefault(envOriginLon, defaultOriginLon),
		OpenMeteoURL:    envOrDefault(envOpenMeteoURL, ""),
		Metrics:         loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, "match-engine"),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
