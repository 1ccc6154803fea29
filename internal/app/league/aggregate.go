package league

import "masters-league-service/internal/domain"

// aggregateWeek normalizes one week of provider box scores into a per-team
// score map plus the provider's matchup pairs in their original order. The
// provider's pairing is trusted to partition the week's active teams; if an
// id somehow repeats, the last score wins.
func aggregateWeek(week int, boxes []domain.BoxScore) domain.WeeklyResult {
	result := domain.WeeklyResult{
		Week:         week,
		Scores:       make(map[int]float64, len(boxes)*2),
		ESPNMatchups: make([][2]int, 0, len(boxes)),
	}
	for _, box := range boxes {
		result.Scores[box.HomeID] = box.HomeScore
		result.Scores[box.AwayID] = box.AwayScore
		result.ESPNMatchups = append(result.ESPNMatchups, [2]int{box.HomeID, box.AwayID})
	}
	return result
}

// hasNonzeroScore reports whether any team scored. All-zero weeks are
// calendar placeholders the provider returns before a week is played.
func hasNonzeroScore(result domain.WeeklyResult) bool {
	for _, score := range result.Scores {
		if score > 0 {
			return true
		}
	}
	return false
}
