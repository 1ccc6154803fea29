package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"masters-league-service/internal/domain"
)

type countingProvider struct {
	calls int
}

func (p *countingProvider) FetchLeagueName(ctx context.Context) (string, error) {
	p.calls++
	return "Master's League", nil
}

func (p *countingProvider) FetchCurrentWeek(ctx context.Context) (int, error) {
	p.calls++
	return 1, nil
}

func (p *countingProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	p.calls++
	return nil, nil
}

func (p *countingProvider) FetchBoxScores(ctx context.Context, week int) ([]domain.BoxScore, error) {
	p.calls++
	return nil, nil
}

func TestRateLimitedProviderFirstCallImmediate(t *testing.T) {
	inner := &countingProvider{}
	provider := NewRateLimitedProvider(inner, time.Minute, nil)

	start := time.Now()
	if _, err := provider.FetchLeagueName(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("first call should not wait, took %v", elapsed)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
}

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &countingProvider{}
	interval := 50 * time.Millisecond
	provider := NewRateLimitedProvider(inner, interval, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := provider.FetchCurrentWeek(context.Background()); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}

	if elapsed := time.Since(start); elapsed < 2*interval {
		t.Fatalf("three calls finished in %v, expected at least %v", elapsed, 2*interval)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 inner calls, got %d", inner.calls)
	}
}

func TestRateLimitedProviderHonorsContextCancel(t *testing.T) {
	inner := &countingProvider{}
	provider := NewRateLimitedProvider(inner, time.Hour, nil)

	if _, err := provider.FetchTeams(context.Background()); err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := provider.FetchTeams(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded while waiting for slot, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("canceled call should not reach the inner provider, got %d calls", inner.calls)
	}
}

func TestRateLimitedProviderNilInner(t *testing.T) {
	provider := NewRateLimitedProvider(nil, time.Second, nil)

	_, err := provider.FetchBoxScores(context.Background(), 1)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
