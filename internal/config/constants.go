package config

import "time"

const (
	envPort            = "PORT"
	envLeagueID        = "LEAGUE_ID"
	envYear            = "SEASON_YEAR"
	envSeasonWeeks     = "REGULAR_SEASON_WEEKS"
	envScheduleFile    = "SCHEDULE_FILE"
	envProvider        = "PROVIDER"
	envMinInterval     = "PROVIDER_MIN_INTERVAL"
	envAllowedOrigins  = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "8080"
	defaultSeasonWeeks  = 13
	defaultScheduleFile = "schedule.json"
	defaultProvider     = "espn"
	// No pacing by default: every request recomputes from the provider, and
	// the ESPN read API tolerates dashboard-scale traffic.
	defaultMinInterval = 0 * Duration(time.Second)
	defaultOrigins     = "*"
	defaultMetricsPort = "9090"
)
