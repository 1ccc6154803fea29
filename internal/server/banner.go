package server

import (
	"context"
	"log/slog"

	"masters-league-service/internal/logging"
)

// logBanner logs the configured league and probes provider connectivity.
// The probe is best-effort: a misconfigured league id or expired cookies
// should not keep the server from starting, only show up in the log.
func (s *Server) logBanner(ctx context.Context) {
	logging.Info(s.logger, "masters league backend starting",
		slog.Int("league_id", s.cfg.LeagueID),
		slog.Int("year", s.cfg.Year),
		slog.String(logging.FieldProvider, providerName(s.cfg.Provider)),
	)

	probeCtx, cancel := context.WithTimeout(ctx, bannerTimeout)
	defer cancel()

	name, err := s.provider.FetchLeagueName(probeCtx)
	if err != nil {
		logging.Warn(s.logger, "could not reach league provider; check LEAGUE_ID, ESPN_S2 and SWID", "error", err)
		return
	}
	teams, err := s.provider.FetchTeams(probeCtx)
	if err != nil {
		logging.Warn(s.logger, "provider team fetch failed", "error", err)
		return
	}
	week, err := s.provider.FetchCurrentWeek(probeCtx)
	if err != nil {
		logging.Warn(s.logger, "provider current week fetch failed", "error", err)
		return
	}

	logging.Info(s.logger, "connected to league",
		slog.String("league_name", name),
		slog.Int(logging.FieldCount, len(teams)),
		slog.Int(logging.FieldWeek, week),
	)
}
