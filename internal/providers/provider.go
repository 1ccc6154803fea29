package providers

import (
	"context"

	"masters-league-service/internal/domain"
)

// LeagueProvider defines how upstream league data is fetched and normalized.
// Implementations must map provider-specific shapes into domain types at this
// boundary so callers never branch on upstream representations.
type LeagueProvider interface {
	// FetchLeagueName returns the league's display name.
	FetchLeagueName(ctx context.Context) (string, error)
	// FetchCurrentWeek returns the provider's current matchup week, uncapped.
	FetchCurrentWeek(ctx context.Context) (int, error)
	// FetchTeams returns all teams with owner names resolved.
	FetchTeams(ctx context.Context) ([]domain.Team, error)
	// FetchBoxScores returns the head-to-head results for one week, in the
	// provider's own matchup order.
	FetchBoxScores(ctx context.Context, week int) ([]domain.BoxScore, error)
}
