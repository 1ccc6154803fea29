package testutil

import "masters-league-service/internal/domain"

// SampleTeams returns n teams with ids 1..n.
func SampleTeams(n int) []domain.Team {
	teams := make([]domain.Team, 0, n)
	for i := 1; i <= n; i++ {
		teams = append(teams, domain.Team{
			ID:     i,
			Name:   "Team " + string(rune('A'+i-1)),
			Abbrev: string(rune('A' + i - 1)),
			Owner:  "Owner " + string(rune('A'+i-1)),
		})
	}
	return teams
}

// PlayedWeek returns box scores for a 4-team week with nonzero scores.
func PlayedWeek() []domain.BoxScore {
	return []domain.BoxScore{
		{HomeID: 1, AwayID: 2, HomeScore: 100, AwayScore: 90},
		{HomeID: 3, AwayID: 4, HomeScore: 80.5, AwayScore: 95.25},
	}
}

// UnplayedWeek returns box scores where no team has scored yet.
func UnplayedWeek() []domain.BoxScore {
	return []domain.BoxScore{
		{HomeID: 1, AwayID: 2},
		{HomeID: 3, AwayID: 4},
	}
}
