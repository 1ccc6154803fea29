package domain

// Team is the normalized team shape exposed by the service. Provider-specific
// owner representations are resolved into a single display name at the
// provider boundary.
type Team struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
	Owner  string `json:"owner"`
}

// BoxScore is a single head-to-head result for one week as reported by the
// upstream provider.
type BoxScore struct {
	HomeID    int     `json:"homeId"`
	AwayID    int     `json:"awayId"`
	HomeScore float64 `json:"homeScore"`
	AwayScore float64 `json:"awayScore"`
}

// WeeklyResult holds one week's per-team scores and the provider's own
// matchup pairs, in provider order. Immutable once built.
type WeeklyResult struct {
	Week         int             `json:"week"`
	Scores       map[int]float64 `json:"scores"`
	ESPNMatchups [][2]int        `json:"espnMatchups"`
}

// Schedule maps a week number (as a string, matching the persisted file and
// the dashboard contract) to its ordered list of [home, away] team-id pairs.
type Schedule map[string][][2]int

// LeagueResponse is the payload returned by /api/league.
type LeagueResponse struct {
	LeagueName         string         `json:"leagueName"`
	Year               int            `json:"year"`
	RegularSeasonWeeks int            `json:"regularSeasonWeeks"`
	CurrentWeek        int            `json:"currentWeek"`
	Teams              []Team         `json:"teams"`
	Weeks              []WeeklyResult `json:"weeks"`
	Schedule           Schedule       `json:"schedule"`
}

// RefreshResponse is the payload returned by /api/refresh.
type RefreshResponse struct {
	Status      string `json:"status"`
	CurrentWeek int    `json:"currentWeek"`
	Teams       int    `json:"teams"`
}

// ScheduleSaved is the payload returned after a schedule update.
type ScheduleSaved struct {
	Status   string   `json:"status"`
	Schedule Schedule `json:"schedule"`
}
