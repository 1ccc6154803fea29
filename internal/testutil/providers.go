package testutil

import (
	"context"

	"masters-league-service/internal/domain"
	"masters-league-service/internal/providers"
)

// StubProvider returns canned league data. BoxScoresByWeek maps week numbers
// to results; ErrWeeks lists weeks whose fetch should fail with Err.
type StubProvider struct {
	Name            string
	CurrentWeek     int
	Teams           []domain.Team
	BoxScoresByWeek map[int][]domain.BoxScore
	ErrWeeks        map[int]bool
	Err             error
}

func (p *StubProvider) FetchLeagueName(ctx context.Context) (string, error) {
	_ = ctx
	if p.Err != nil && p.ErrWeeks == nil {
		return "", p.Err
	}
	return p.Name, nil
}

func (p *StubProvider) FetchCurrentWeek(ctx context.Context) (int, error) {
	_ = ctx
	if p.Err != nil && p.ErrWeeks == nil {
		return 0, p.Err
	}
	return p.CurrentWeek, nil
}

func (p *StubProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	_ = ctx
	if p.Err != nil && p.ErrWeeks == nil {
		return nil, p.Err
	}
	return p.Teams, nil
}

func (p *StubProvider) FetchBoxScores(ctx context.Context, week int) ([]domain.BoxScore, error) {
	_ = ctx
	if p.ErrWeeks != nil && p.ErrWeeks[week] {
		return nil, p.Err
	}
	if p.Err != nil && p.ErrWeeks == nil {
		return nil, p.Err
	}
	return p.BoxScoresByWeek[week], nil
}

// UnavailableProvider fails every call with ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchLeagueName(ctx context.Context) (string, error) {
	return "", providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchCurrentWeek(ctx context.Context) (int, error) {
	return 0, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchBoxScores(ctx context.Context, week int) ([]domain.BoxScore, error) {
	return nil, providers.ErrProviderUnavailable
}
