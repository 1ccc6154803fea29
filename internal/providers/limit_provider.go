package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"masters-league-service/internal/domain"
)

// rateLimitedProvider wraps a LeagueProvider and enforces a minimum interval
// between upstream calls across all operations.
type rateLimitedProvider struct {
	next     LeagueProvider
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedProvider returns a LeagueProvider that spaces calls by the
// given interval. Calls block until their slot to avoid exceeding upstream
// quotas.
func NewRateLimitedProvider(next LeagueProvider, interval time.Duration, logger *slog.Logger) LeagueProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchLeagueName(ctx context.Context) (string, error) {
	if err := p.wait(ctx); err != nil {
		return "", err
	}
	return p.next.FetchLeagueName(ctx)
}

func (p *rateLimitedProvider) FetchCurrentWeek(ctx context.Context) (int, error) {
	if err := p.wait(ctx); err != nil {
		return 0, err
	}
	return p.next.FetchCurrentWeek(ctx)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

func (p *rateLimitedProvider) FetchBoxScores(ctx context.Context, week int) ([]domain.BoxScore, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchBoxScores(ctx, week)
}

// wait reserves the next call slot and sleeps until it arrives. The first
// call goes through immediately.
func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}

	p.mu.Lock()
	now := time.Now()
	next := p.last.Add(p.interval)
	if next.Before(now) {
		next = now
	}
	p.last = next
	p.mu.Unlock()

	delay := time.Until(next)
	if delay <= 0 {
		return nil
	}
	if p.logger != nil {
		p.logger.Info("rate-limited provider waiting", slog.Int64("delay_ms", delay.Milliseconds()))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
