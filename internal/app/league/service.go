package league

import (
	"context"
	"log/slog"
	"time"

	"masters-league-service/internal/domain"
	"masters-league-service/internal/logging"
	"masters-league-service/internal/metrics"
	"masters-league-service/internal/providers"
	"masters-league-service/internal/schedule"
)

// ScheduleStore provides the persisted head-to-head schedule.
type ScheduleStore interface {
	Load() domain.Schedule
	Save(domain.Schedule) error
}

// Service coordinates league operations: it recomputes everything from the
// provider per call and consults the schedule store independently. There is
// no cache; the dashboard's refresh cadence is the recompute cadence.
type Service struct {
	provider           providers.LeagueProvider
	store              ScheduleStore
	logger             *slog.Logger
	metrics            *metrics.Recorder
	year               int
	regularSeasonWeeks int
}

// NewService constructs a Service.
func NewService(provider providers.LeagueProvider, store ScheduleStore, logger *slog.Logger, recorder *metrics.Recorder, year, regularSeasonWeeks int) *Service {
	return &Service{
		provider:           provider,
		store:              store,
		logger:             logger,
		metrics:            recorder,
		year:               year,
		regularSeasonWeeks: regularSeasonWeeks,
	}
}

// Overview assembles the full dashboard payload: league metadata, teams, all
// played weeks, and the stored schedule. Any provider failure outside the
// per-week season loop fails the whole request.
func (s *Service) Overview(ctx context.Context) (domain.LeagueResponse, error) {
	name, err := s.provider.FetchLeagueName(ctx)
	if err != nil {
		return domain.LeagueResponse{}, err
	}
	week, err := s.provider.FetchCurrentWeek(ctx)
	if err != nil {
		return domain.LeagueResponse{}, err
	}
	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return domain.LeagueResponse{}, err
	}

	return domain.LeagueResponse{
		LeagueName:         name,
		Year:               s.year,
		RegularSeasonWeeks: s.regularSeasonWeeks,
		CurrentWeek:        min(week, s.regularSeasonWeeks),
		Teams:              teams,
		Weeks:              s.Season(ctx, week),
		Schedule:           s.store.Load(),
	}, nil
}

// Week fetches and aggregates a single week's box scores. Unlike Season, an
// unplayed week is returned as-is with its zero scores.
func (s *Service) Week(ctx context.Context, week int) (domain.WeeklyResult, error) {
	boxes, err := s.provider.FetchBoxScores(ctx, week)
	if err != nil {
		return domain.WeeklyResult{}, err
	}
	return aggregateWeek(week, boxes), nil
}

// Season aggregates weeks 1 through min(currentWeek, regular season length).
// Weeks whose scores are all zero have not been played and are excluded. A
// failing week is logged and skipped; one bad week never aborts the season
// view, so Season returns no error.
func (s *Service) Season(ctx context.Context, currentWeek int) []domain.WeeklyResult {
	start := time.Now()
	limit := min(currentWeek, s.regularSeasonWeeks)

	weeks := make([]domain.WeeklyResult, 0, max(limit, 0))
	for week := 1; week <= limit; week++ {
		boxes, err := s.provider.FetchBoxScores(ctx, week)
		if err != nil {
			logging.Error(s.logger, "season aggregation: week skipped", err, logging.FieldWeek, week)
			s.metrics.RecordWeekFailure(week)
			continue
		}
		result := aggregateWeek(week, boxes)
		if !hasNonzeroScore(result) {
			continue
		}
		weeks = append(weeks, result)
	}

	s.metrics.RecordSeasonAggregation(time.Since(start), len(weeks))
	return weeks
}

// Refresh probes provider connectivity and reports the uncapped current week
// and team count.
func (s *Service) Refresh(ctx context.Context) (domain.RefreshResponse, error) {
	week, err := s.provider.FetchCurrentWeek(ctx)
	if err != nil {
		return domain.RefreshResponse{}, err
	}
	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return domain.RefreshResponse{}, err
	}
	return domain.RefreshResponse{
		Status:      "refreshed",
		CurrentWeek: week,
		Teams:       len(teams),
	}, nil
}

// GenerateSchedule builds a fresh round-robin schedule from the provider's
// current team list, in provider order. The result is not persisted; the
// caller saves it explicitly via SaveSchedule if wanted.
func (s *Service) GenerateSchedule(ctx context.Context) (domain.Schedule, error) {
	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return schedule.Generate(ids, s.regularSeasonWeeks), nil
}

// StoredSchedule returns the persisted schedule (or the default table).
func (s *Service) StoredSchedule() domain.Schedule {
	return s.store.Load()
}

// SaveSchedule replaces the persisted schedule wholesale.
func (s *Service) SaveSchedule(sched domain.Schedule) error {
	return s.store.Save(sched)
}
