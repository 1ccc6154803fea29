package espn

// Wire shapes for the ESPN Fantasy v3 league endpoint. Only the fields this
// service reads are mapped; the upstream payloads carry far more.
type leagueResponse struct {
	ID       int       `json:"id"`
	Teams    []team    `json:"teams"`
	Members  []member  `json:"members"`
	Schedule []matchup `json:"schedule"`
	Settings settings  `json:"settings"`
	Status   status    `json:"status"`
}

type settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

// team carries both the modern single name field and the legacy
// location/nickname split; older seasons only populate the latter.
type team struct {
	ID       int      `json:"id"`
	Abbrev   string   `json:"abbrev"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Nickname string   `json:"nickname"`
	Owners   []string `json:"owners"`
}

type member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type matchup struct {
	ID              int         `json:"id"`
	MatchupPeriodID int         `json:"matchupPeriodId"`
	Home            matchupSide `json:"home"`
	Away            matchupSide `json:"away"`
}

type matchupSide struct {
	TeamID      int     `json:"teamId"`
	TotalPoints float64 `json:"totalPoints"`
}
