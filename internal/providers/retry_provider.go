package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"masters-league-service/internal/domain"
	"masters-league-service/internal/logging"
	"masters-league-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a LeagueProvider with exponential backoff retries.
// Rate limit responses are surfaced immediately: retrying them would only
// burn more upstream quota.
type retryingProvider struct {
	inner           LeagueProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxAttempts     int
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts or
// initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialInterval time.Duration) LeagueProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxAttempts:     maxAttempts,
		initialInterval: initialInterval,
	}
}

func (r *retryingProvider) FetchLeagueName(ctx context.Context) (string, error) {
	var name string
	err := r.do(ctx, "league_name", func() error {
		var err error
		name, err = r.inner.FetchLeagueName(ctx)
		return err
	})
	return name, err
}

func (r *retryingProvider) FetchCurrentWeek(ctx context.Context) (int, error) {
	var week int
	err := r.do(ctx, "current_week", func() error {
		var err error
		week, err = r.inner.FetchCurrentWeek(ctx)
		return err
	})
	return week, err
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.do(ctx, "teams", func() error {
		var err error
		teams, err = r.inner.FetchTeams(ctx)
		return err
	})
	return teams, err
}

func (r *retryingProvider) FetchBoxScores(ctx context.Context, week int) ([]domain.BoxScore, error) {
	var boxes []domain.BoxScore
	err := r.do(ctx, "box_scores", func() error {
		var err error
		boxes, err = r.inner.FetchBoxScores(ctx, week)
		return err
	})
	return boxes, err
}

func (r *retryingProvider) do(ctx context.Context, op string, fn func() error) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)

	attempt := func() error {
		start := time.Now()
		err := fn()
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err == nil {
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			if r.metrics != nil {
				r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			}
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch retry",
			slog.String(logging.FieldProvider, r.name),
			slog.String("op", op),
			slog.Int64("retry_in_ms", delay.Milliseconds()),
			"error", err,
		)
	}

	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "provider fetch failed",
			slog.String(logging.FieldProvider, r.name),
			slog.String("op", op),
			"error", err,
		)
		return err
	}
	return nil
}
