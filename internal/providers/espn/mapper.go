package espn

import (
	"strings"

	"masters-league-service/internal/domain"
)

// mapTeams normalizes ESPN teams. ESPN lists owners as member GUIDs; the
// first owner's display name is resolved once here so nothing downstream
// branches on upstream shapes.
func mapTeams(payload leagueResponse) []domain.Team {
	names := memberNames(payload.Members)

	teams := make([]domain.Team, 0, len(payload.Teams))
	for _, t := range payload.Teams {
		teams = append(teams, domain.Team{
			ID:     t.ID,
			Name:   teamName(t),
			Abbrev: t.Abbrev,
			Owner:  ownerName(t.Owners, names),
		})
	}
	return teams
}

// mapBoxScores filters the full-season schedule down to one matchup period.
// Sides with a zero team id are byes and are dropped with their matchup.
func mapBoxScores(payload leagueResponse, week int) []domain.BoxScore {
	boxes := make([]domain.BoxScore, 0, len(payload.Teams)/2)
	for _, m := range payload.Schedule {
		if m.MatchupPeriodID != week {
			continue
		}
		if m.Home.TeamID == 0 || m.Away.TeamID == 0 {
			continue
		}
		boxes = append(boxes, domain.BoxScore{
			HomeID:    m.Home.TeamID,
			AwayID:    m.Away.TeamID,
			HomeScore: m.Home.TotalPoints,
			AwayScore: m.Away.TotalPoints,
		})
	}
	return boxes
}

func memberNames(members []member) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		name := m.DisplayName
		if name == "" {
			name = strings.TrimSpace(m.FirstName + " " + m.LastName)
		}
		if name != "" {
			names[m.ID] = name
		}
	}
	return names
}

func teamName(t team) string {
	if t.Name != "" {
		return t.Name
	}
	return strings.TrimSpace(t.Location + " " + t.Nickname)
}

func ownerName(owners []string, names map[string]string) string {
	for _, id := range owners {
		if name, ok := names[id]; ok {
			return name
		}
	}
	if len(owners) > 0 {
		return owners[0]
	}
	return unknownOwner
}
