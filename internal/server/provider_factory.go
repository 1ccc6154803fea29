package server

import (
	"log/slog"

	"masters-league-service/internal/config"
	"masters-league-service/internal/metrics"
	"masters-league-service/internal/providers"
	"masters-league-service/internal/providers/espn"
	"masters-league-service/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.LeagueProvider {
	base := selectProvider(cfg)
	wrapped := base
	if cfg.MinInterval > 0 {
		wrapped = providers.NewRateLimitedProvider(wrapped, cfg.MinInterval, f.logger)
	}
	return providers.NewRetryingProvider(wrapped, f.logger, f.metrics, providerName(cfg.Provider), 0, 0)
}

func selectProvider(cfg config.Config) providers.LeagueProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	default:
		return espn.NewClient(espn.Config{
			BaseURL:  cfg.ESPN.BaseURL,
			LeagueID: cfg.LeagueID,
			Year:     cfg.Year,
			S2:       cfg.ESPN.S2,
			SWID:     cfg.ESPN.SWID,
		})
	}
}

func providerName(name string) string {
	if name == "" {
		return "espn"
	}
	return name
}
