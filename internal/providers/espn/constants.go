package espn

import "time"

const (
	defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	defaultTimeout = 15 * time.Second

	viewTeams    = "mTeam"
	viewMatchups = "mMatchupScore"
	viewSettings = "mSettings"

	cookieS2   = "espn_s2"
	cookieSWID = "SWID"

	unknownOwner = "Unknown"
)
