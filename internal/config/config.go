package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port               string
	LeagueID           int
	Year               int
	RegularSeasonWeeks int
	ScheduleFile       string
	Provider           string
	MinInterval        Duration
	AllowedOrigins     string
	ESPN               ESPNConfig
	Metrics            MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is merged in first when present;
// missing .env is fine, real environment variables win in deployment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               envOrDefault(envPort, defaultPort),
		LeagueID:           intEnvOrDefault(envLeagueID, 0),
		Year:               intEnvOrDefault(envYear, time.Now().Year()),
		RegularSeasonWeeks: intEnvOrDefault(envSeasonWeeks, defaultSeasonWeeks),
		ScheduleFile:       envOrDefault(envScheduleFile, defaultScheduleFile),
		Provider:           envOrDefault(envProvider, defaultProvider),
		MinInterval:        durationEnvOrDefault(envMinInterval, defaultMinInterval),
		AllowedOrigins:     envOrDefault(envAllowedOrigins, defaultOrigins),
		ESPN:               loadESPN(),
		Metrics:            loadMetrics(),
	}
}
